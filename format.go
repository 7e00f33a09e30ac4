package bridge

// FileFormat tags what kind of resource an input open is asking for. It
// carries no behavior in the bridge itself; providers use it to resolve
// the name against their search paths and bundles.
//
// The numeric values are historical and are part of the compatibility
// surface shared with existing providers. Do not renumber them.
type FileFormat int32

const (
	FormatTFM         FileFormat = 3
	FormatAFM         FileFormat = 4
	FormatBib         FileFormat = 6
	FormatBst         FileFormat = 7
	FormatCnf         FileFormat = 8
	FormatFormat      FileFormat = 10
	FormatFontMap     FileFormat = 11
	FormatOFM         FileFormat = 20
	FormatOVF         FileFormat = 23
	FormatPict        FileFormat = 25
	FormatTex         FileFormat = 26
	FormatTexPsHeader FileFormat = 30
	FormatType1       FileFormat = 32
	FormatVF          FileFormat = 33
	FormatTrueType    FileFormat = 36
	FormatBinary      FileFormat = 40
	FormatMiscFonts   FileFormat = 41
	FormatEnc         FileFormat = 44
	FormatCmap        FileFormat = 45
	FormatSfd         FileFormat = 46
	FormatOpenType    FileFormat = 47

	// FormatPrimary is a pseudo-format requesting the host's primary
	// top-level input rather than a named resource.
	FormatPrimary FileFormat = 59
)

func (f FileFormat) String() string {
	switch f {
	case FormatTFM:
		return "tfm"
	case FormatAFM:
		return "afm"
	case FormatBib:
		return "bib"
	case FormatBst:
		return "bst"
	case FormatCnf:
		return "cnf"
	case FormatFormat:
		return "format"
	case FormatFontMap:
		return "fontmap"
	case FormatOFM:
		return "ofm"
	case FormatOVF:
		return "ovf"
	case FormatPict:
		return "pict"
	case FormatTex:
		return "tex"
	case FormatTexPsHeader:
		return "tex-ps-header"
	case FormatType1:
		return "type1"
	case FormatVF:
		return "vf"
	case FormatTrueType:
		return "truetype"
	case FormatBinary:
		return "binary"
	case FormatMiscFonts:
		return "miscfonts"
	case FormatEnc:
		return "enc"
	case FormatCmap:
		return "cmap"
	case FormatSfd:
		return "sfd"
	case FormatOpenType:
		return "opentype"
	case FormatPrimary:
		return "primary"
	default:
		return "unknown"
	}
}
