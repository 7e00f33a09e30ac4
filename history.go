package bridge

// History is the terminal status of a typesetting or bibliography run.
// The values are shared with existing engine code and must not change.
type History int

const (
	HistorySpotless      History = 0
	HistoryWarningIssued History = 1
	HistoryErrorIssued   History = 2
	HistoryFatalError    History = 3
)

func (h History) String() string {
	switch h {
	case HistorySpotless:
		return "spotless"
	case HistoryWarningIssued:
		return "warnings issued"
	case HistoryErrorIssued:
		return "errors issued"
	case HistoryFatalError:
		return "fatal error"
	default:
		return "unknown"
	}
}
