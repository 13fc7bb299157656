package config

const SourceFileExt = ".lsp"

// SourceFileExtensions are all recognized source file extensions
var SourceFileExtensions = []string{".lsp", ".lisp"}

const (
	ConfigFileName = "lispy.yaml"
	DefaultPrompt  = "> "
	ExitCommand    = "exit"
)

// Keywords evaluate to literals and shadow environment bindings.
const (
	TrueKeyword  = "true"
	FalseKeyword = "false"
	NilKeyword   = "nil"
)

// Special form names
const (
	QuoteForm  = "quote"
	LambdaForm = "lambda"
	DefineForm = "define"
	IfForm     = "if"
)

// Primitive names
const (
	AddName  = "add"
	SubName  = "sub"
	MulName  = "mul"
	DivName  = "div"
	RemName  = "rem"
	AndName  = "and"
	OrName   = "or"
	XorName  = "xor"
	NotName  = "not"
	ShlName  = "shl"
	ShrName  = "shr"
	GtName   = "gt"
	GeName   = "ge"
	LtName   = "lt"
	LeName   = "le"
	EqName   = "eq"
	NeName   = "ne"
	AtomName = "atom"
	CarName  = "car"
	CdrName  = "cdr"
	ConsName = "cons"
)
