package lexer

// Kind represents the type of token identified by the scanner.
type Kind uint8

const (
	KindEOF Kind = iota
	KindFunc       // func
	KindReturn     // return
	KindIf         // if
	KindElse       // else
	KindFor        // for
	KindInt        // int
	KindIdent      // identifier
	KindNumber     // integer literal
	KindPlus       // +
	KindMinus      // -
	KindStar       // *
	KindSlash      // /
	KindAssign     // =
	KindDeclare    // :=
	KindLParen     // (
	KindRParen     // )
	KindLBrace     // {
	KindRBrace     // }
	KindComma      // ,
)

var kindNames = [...]string{
	KindEOF:     "EOF",
	KindFunc:    "func",
	KindReturn:  "return",
	KindIf:      "if",
	KindElse:    "else",
	KindFor:     "for",
	KindInt:     "int",
	KindIdent:   "identifier",
	KindNumber:  "number",
	KindPlus:    "+",
	KindMinus:   "-",
	KindStar:    "*",
	KindSlash:   "/",
	KindAssign:  "=",
	KindDeclare: ":=",
	KindLParen:  "(",
	KindRParen:  ")",
	KindLBrace:  "{",
	KindRBrace:  "}",
	KindComma:   ",",
}

// String returns a human-readable name for the kind, used in diagnostics.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Token represents a lexical unit. Text is a slice of the source string, so
// producing a token never copies.
type Token struct {
	Kind   Kind
	Text   string
	Offset int
	Line   int
}

// keywords maps whole-word matches checked before the identifier fallback.
var keywords = map[string]Kind{
	"func":   KindFunc,
	"return": KindReturn,
	"if":     KindIf,
	"else":   KindElse,
	"for":    KindFor,
	"int":    KindInt,
}
