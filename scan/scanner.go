package scan

import (
	"strconv"
	"unicode"

	"github.com/chidiwilliams/minilox/ast"
)

// Scanner converts a source text into a slice of ast.Token-s
type Scanner struct {
	start   int
	current int
	line    int
	source  []rune
	tokens  []ast.Token
	errs    Errors
}

// NewScanner returns a new Scanner
func NewScanner(source string) *Scanner {
	return &Scanner{source: []rune(source), line: 1}
}

// ScanTokens returns a slice of tokens representing the source text. The
// slice always ends with a single ast.TokenEof token. If any lexical errors
// were found, they are all returned together as Errors and the caller must
// treat the scan as failed.
func (s *Scanner) ScanTokens() ([]ast.Token, error) {
	for !s.isAtEnd() {
		// we're at the beginning of the next lexeme
		s.start = s.current
		s.scanToken()
	}

	s.tokens = append(s.tokens, ast.Token{TokenType: ast.TokenEof, Line: s.line})
	if len(s.errs) > 0 {
		return s.tokens, s.errs
	}
	return s.tokens, nil
}

func (s *Scanner) scanToken() {
	char := s.advance()
	switch char {
	case '(':
		s.addToken(ast.TokenLeftParen)
	case ')':
		s.addToken(ast.TokenRightParen)
	case '{':
		s.addToken(ast.TokenLeftBrace)
	case '}':
		s.addToken(ast.TokenRightBrace)
	case ',':
		s.addToken(ast.TokenComma)
	case '.':
		s.addToken(ast.TokenDot)
	case '-':
		s.addToken(ast.TokenMinus)
	case '+':
		s.addToken(ast.TokenPlus)
	case ';':
		s.addToken(ast.TokenSemicolon)
	case '*':
		s.addToken(ast.TokenStar)

	// with look-ahead
	case '!':
		s.addToken(s.choose('=', ast.TokenBangEqual, ast.TokenBang))
	case '=':
		s.addToken(s.choose('=', ast.TokenEqualEqual, ast.TokenEqual))
	case '<':
		s.addToken(s.choose('=', ast.TokenLessEqual, ast.TokenLess))
	case '>':
		s.addToken(s.choose('=', ast.TokenGreaterEqual, ast.TokenGreater))
	case '/':
		if s.match('/') {
			for s.peek() != '\n' && !s.isAtEnd() {
				s.advance()
			}
		} else {
			s.addToken(ast.TokenSlash)
		}

	// whitespace
	case ' ', '\r', '\t':
	case '\n':
		s.line++

	case '"':
		s.string()

	default:
		if isDigit(char) {
			s.number()
		} else if isAlpha(char) {
			s.identifier()
		} else {
			s.errs = append(s.errs, &UnexpectedCharacterError{Line: s.line, Char: char})
		}
	}
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *Scanner) advance() rune {
	curr := s.source[s.current]
	s.current++
	return curr
}

func (s *Scanner) addToken(tokenType ast.TokenType) {
	s.addTokenWithLiteral(tokenType, nil)
}

func (s *Scanner) addTokenWithLiteral(tokenType ast.TokenType, literal interface{}) {
	text := string(s.source[s.start:s.current])
	token := ast.Token{TokenType: tokenType, Lexeme: text, Literal: literal, Line: s.line}
	s.tokens = append(s.tokens, token)
}

func (s *Scanner) match(expected rune) bool {
	if s.isAtEnd() {
		return false
	}

	if s.source[s.current] != expected {
		return false
	}

	s.current++
	return true
}

// choose returns matched if the next character is expected
// and consumes it, otherwise it returns unmatched
func (s *Scanner) choose(expected rune, matched, unmatched ast.TokenType) ast.TokenType {
	if s.match(expected) {
		return matched
	}
	return unmatched
}

func (s *Scanner) string() {
	startLine := s.line
	for s.peek() != '"' && !s.isAtEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}

	if s.isAtEnd() {
		s.errs = append(s.errs, &UnterminatedStringError{Line: startLine})
		return
	}

	s.advance() // the closing "

	value := string(s.source[s.start+1 : s.current-1])
	s.addTokenWithLiteral(ast.TokenString, value)
}

func (s *Scanner) number() {
	for isDigit(s.peek()) {
		s.advance()
	}

	// look for a fractional part; a trailing '.' is left for the next token
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	text := string(s.source[s.start:s.current])
	val, err := strconv.ParseFloat(text, 64)
	if err != nil {
		panic("scan: malformed number literal " + strconv.Quote(text))
	}
	s.addTokenWithLiteral(ast.TokenNumber, val)
}

func (s *Scanner) peek() rune {
	if s.isAtEnd() {
		return '\000'
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() rune {
	if s.current+1 >= len(s.source) {
		return '\000'
	}
	return s.source[s.current+1]
}

func (s *Scanner) identifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}

	text := string(s.source[s.start:s.current])
	tokenType, found := ast.Keywords[text]
	if !found {
		tokenType = ast.TokenIdentifier
	}
	s.addToken(tokenType)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

// isAlphaNumeric accepts any Unicode digit; only ASCII digits start a number
func isAlphaNumeric(r rune) bool {
	return isAlpha(r) || unicode.IsDigit(r)
}
