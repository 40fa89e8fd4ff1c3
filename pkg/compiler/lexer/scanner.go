package lexer

import "fmt"

// Error reports a position where no token pattern matches.
type Error struct {
	Char   byte
	Offset int
	Line   int
}

func (e *Error) Error() string {
	return fmt.Sprintf("unexpected character %q at offset %d, line %d", e.Char, e.Offset, e.Line)
}

// Scanner performs lexical analysis on nGo source. It yields tokens one at a
// time and cannot be rewound; Reset starts a fresh pass over new source.
type Scanner struct {
	source string
	cursor int
	line   int
}

// NewScanner creates a new scanner for the given source.
func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
	}
}

// Reset re-initializes the scanner with new source for reuse.
func (s *Scanner) Reset(source string) {
	s.source = source
	s.cursor = 0
	s.line = 1
}

// Next returns the next token from the source. Whitespace is discarded, never
// yielded. Once the input is exhausted Next keeps returning an EOF token.
func (s *Scanner) Next() (Token, error) {
	s.skipWhitespace()

	if s.cursor >= len(s.source) {
		return Token{Kind: KindEOF, Offset: s.cursor, Line: s.line}, nil
	}

	start := s.cursor
	ch := s.source[s.cursor]

	if isDigit(ch) {
		return s.scanNumber(), nil
	}

	if isAlpha(ch) {
		return s.scanIdentifier(), nil
	}

	// ":=" must be recognized before the shorter "=" prefix; a bare ":"
	// matches no pattern.
	if ch == ':' {
		if s.peek() == '=' {
			s.cursor += 2
			return s.token(KindDeclare, start), nil
		}
		return Token{}, &Error{Char: ch, Offset: start, Line: s.line}
	}

	var kind Kind
	switch ch {
	case '+':
		kind = KindPlus
	case '-':
		kind = KindMinus
	case '*':
		kind = KindStar
	case '/':
		kind = KindSlash
	case '=':
		kind = KindAssign
	case '(':
		kind = KindLParen
	case ')':
		kind = KindRParen
	case '{':
		kind = KindLBrace
	case '}':
		kind = KindRBrace
	case ',':
		kind = KindComma
	default:
		return Token{}, &Error{Char: ch, Offset: start, Line: s.line}
	}

	s.cursor++
	return s.token(kind, start), nil
}

// Tokenize scans the whole source eagerly. It stops at the first error; on
// success the final token is always EOF.
func Tokenize(source string) ([]Token, error) {
	s := NewScanner(source)
	var tokens []Token
	for {
		tok, err := s.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == KindEOF {
			return tokens, nil
		}
	}
}

func (s *Scanner) skipWhitespace() {
	for s.cursor < len(s.source) {
		ch := s.source[s.cursor]
		if ch == ' ' || ch == '\t' || ch == '\r' {
			s.cursor++
		} else if ch == '\n' {
			s.line++
			s.cursor++
		} else {
			break
		}
	}
}

func (s *Scanner) scanNumber() Token {
	start := s.cursor
	for s.cursor < len(s.source) && isDigit(s.source[s.cursor]) {
		s.cursor++
	}
	return s.token(KindNumber, start)
}

func (s *Scanner) scanIdentifier() Token {
	start := s.cursor
	for s.cursor < len(s.source) && (isAlpha(s.source[s.cursor]) || isDigit(s.source[s.cursor])) {
		s.cursor++
	}

	// Keywords are whole-word matches checked before the identifier fallback.
	literal := s.source[start:s.cursor]
	if kind, ok := keywords[literal]; ok {
		return s.token(kind, start)
	}
	return s.token(KindIdent, start)
}

func (s *Scanner) token(kind Kind, start int) Token {
	return Token{
		Kind:   kind,
		Text:   s.source[start:s.cursor],
		Offset: start,
		Line:   s.line,
	}
}

func (s *Scanner) peek() byte {
	if s.cursor+1 >= len(s.source) {
		return 0
	}
	return s.source[s.cursor+1]
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}
