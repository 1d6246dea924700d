package ast

const (
	// ============================================================================
	// Built-in hierarchy tags
	// ============================================================================

	// RootTag is the implicit ancestor of every tag. Hooks registered on it
	// apply to all nodes.
	RootTag = "ADT"

	// SeqTag is the ancestor of sequence definitions (a single list argument).
	SeqTag = "Seq"

	// MapTag is the ancestor of map definitions (a single list of entries).
	MapTag = "Map"

	// ============================================================================
	// Find conventions
	// ============================================================================

	// SigilIdent prefixes a named term identifier, e.g. "@main".
	SigilIdent = '@'

	// SigilTemp prefixes a numbered term identifier, e.g. "%00000012".
	SigilTemp = '%'

	// FieldID names the identifier field of a term.
	FieldID = "id"

	// FieldName names the human readable name field of a term.
	FieldName = "name"

	// FieldAttrs names the attribute map field of a term.
	FieldAttrs = "attrs"

	// FieldElements names the lone list argument of sequences and maps.
	FieldElements = "elements"

	// AttrAddress is the attribute holding a term's address range ("0x400:64u").
	AttrAddress = "address"

	// AddrSeparator splits an address attribute into address and width.
	AddrSeparator = ":"

	// OptionalFieldSuffix marks a trailing field that may be omitted.
	OptionalFieldSuffix = "?"

	// ============================================================================
	// Limit presets
	// ============================================================================

	// DefaultMaxDepth bounds nesting. Real dumps nest a few thousand levels in
	// long expression chains; the default leaves a wide margin.
	DefaultMaxDepth = 1 << 20

	// StrictMaxDepth is a conservative nesting bound for untrusted input.
	StrictMaxDepth = 4096

	// StrictMaxInputSize is the strict input bound (64 MB).
	StrictMaxInputSize = 64 << 20

	// StrictMaxStringLen is the strict bound on one string literal (1 MB).
	StrictMaxStringLen = 1 << 20

	// StrictMaxListLen is the strict bound on elements of one group.
	StrictMaxListLen = 1 << 20

	// StrictMaxNodes is the strict bound on applications in one document.
	StrictMaxNodes = 10_000_000
)
