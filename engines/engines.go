package engines

import (
	"go.uber.org/zap"

	"github.com/texforge/bridge"
)

// FatalStatus is returned by the composition and bibliography entry
// points when the run ends in a fatal abort. The value is shared with
// existing host code.
const FatalStatus = 99

// runProtected invokes fn under the abort recovery point. A fatal abort
// anywhere below fn lands here: the recorded status becomes fatal and the
// abort is returned as the error. Any other panic is not ours and is
// re-raised.
func runProtected(logger *zap.Logger, engine, invocation string, fatal int, fn func() int) (status int, err error) {
	defer func() {
		if r := recover(); r != nil {
			ae, ok := r.(*bridge.AbortError)
			if !ok {
				panic(r)
			}
			logger.Error("engine aborted",
				zap.String("engine", engine),
				zap.String("invocation", invocation),
				zap.String("message", ae.Message))
			status, err = fatal, ae
		}
	}()
	return fn(), nil
}
