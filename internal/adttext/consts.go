package adttext

// Delimiters.
const (
	openTuple  = '('
	closeTuple = ')'
	openList   = '['
	closeList  = ']'
	separator  = ','
	quote      = '"'
	backslash  = '\\'
)

// Integer literals.
const (
	hexPrefixLower = "0x"
	hexPrefixUpper = "0X"
	longSuffix     = 'L' // legacy "long" marker, ignored
)

const (
	// pollInterval is how many input bytes pass between progress polls.
	pollInterval = 4096

	// excerptRadius is how many bytes on each side of an error offset are
	// quoted in the error message.
	excerptRadius = 16

	// initialStackCapacity and initialItemCapacity size the frame stack and
	// child arena for typical documents; both grow on demand.
	initialStackCapacity = 64
	initialItemCapacity  = 1024
)

// Encodings accepted by Decode. Names are matched case-insensitively.
const (
	EncodingUTF8        = "UTF-8"
	EncodingUTF16LE     = "UTF-16LE"
	EncodingUTF16BE     = "UTF-16BE"
	EncodingLatin1      = "ISO-8859-1"
	EncodingWindows1252 = "WINDOWS-1252"
)

var (
	utf8BOM    = []byte{0xEF, 0xBB, 0xBF}
	utf16LEBOM = []byte{0xFF, 0xFE}
	utf16BEBOM = []byte{0xFE, 0xFF}
)
