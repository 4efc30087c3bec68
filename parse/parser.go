package parse

import (
	"strings"

	"github.com/chidiwilliams/minilox/ast"
)

// Parser parses a flat list of tokens into
// an AST representation of the source program
type Parser struct {
	tokens  []ast.Token
	current int
}

// NewParser returns a new Parser that reads a list of tokens. A missing
// trailing ast.TokenEof is added so the parser never reads past the input.
func NewParser(tokens []ast.Token) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].TokenType != ast.TokenEof {
		line := 1
		if len(tokens) > 0 {
			line = tokens[len(tokens)-1].Line
		}
		tokens = append(tokens[:len(tokens):len(tokens)], ast.Token{TokenType: ast.TokenEof, Line: line})
	}
	return &Parser{tokens: tokens}
}

/**
Parser grammar:

	program        => declaration* EOF
	declaration    => varDecl | statement
	varDecl        => "var" IDENTIFIER ( "=" expression )? ";"
	statement      => printStmt | exprStmt
	printStmt      => "print" expression ";"
	exprStmt       => expression ";"
	expression     => assignment
	assignment     => logic_or ( "=" assignment )?
	logic_or       => logic_and ( "or" logic_and )?
	logic_and      => equality ( "and" equality )?
	equality       => comparison ( ( "!=" | "==" ) comparison )?
	comparison     => addition ( ( ">" | ">=" | "<" | "<=" ) addition )?
	addition       => multiplication ( ( "+" | "-" ) multiplication )?
	multiplication => unary ( ( "/" | "*" ) unary )?
	unary          => ( "!" | "-" ) expression | primary
	primary        => NUMBER | STRING | "true" | "false" | "nil" | "(" expression ")" | IDENTIFIER

Binary levels take at most one operator; "1 + 2 + 3" must be written "(1 + 2) + 3".

*/

// Parse reads the list of tokens and returns a list of statements
// representing the source program. Parsing stops at the first
// syntax error, which is returned as a *SyntaxError.
func (p *Parser) Parse() (statements []ast.Stmt, err error) {
	defer func() {
		if r := recover(); r != nil {
			syntaxErr, ok := r.(*SyntaxError)
			if !ok {
				panic(r)
			}
			statements, err = nil, syntaxErr
		}
	}()

	for !p.isAtEnd() {
		statements = append(statements, p.declaration())
	}
	return statements, nil
}

// ParseAll is like Parse but does not stop at the first syntax error.
// After an error it skips to the start of the next statement and keeps
// parsing. If any errors were found, the statements are discarded and
// all errors are returned as Errors.
func (p *Parser) ParseAll() ([]ast.Stmt, error) {
	var statements []ast.Stmt
	var errs Errors
	for !p.isAtEnd() {
		stmt, err := p.safeDeclaration()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		statements = append(statements, stmt)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return statements, nil
}

// ParseExpression parses the tokens as a single expression
// that must be followed by the end of the input
func (p *Parser) ParseExpression() (expr ast.Expr, err error) {
	defer func() {
		if r := recover(); r != nil {
			syntaxErr, ok := r.(*SyntaxError)
			if !ok {
				panic(r)
			}
			expr, err = nil, syntaxErr
		}
	}()

	expr = p.expression()
	if !p.isAtEnd() {
		p.error(p.peek(), "Expect end of expression.")
	}
	return expr, nil
}

// safeDeclaration parses a declaration. If the declaration contains a
// syntax error, it skips to the start of the next statement and returns
// the error.
func (p *Parser) safeDeclaration() (stmt ast.Stmt, err *SyntaxError) {
	defer func() {
		if r := recover(); r != nil {
			// If the error is a *SyntaxError, synchronize to
			// the next statement. If not, propagate the panic.
			syntaxErr, ok := r.(*SyntaxError)
			if !ok {
				panic(r)
			}
			p.synchronize()
			stmt, err = nil, syntaxErr
		}
	}()

	return p.declaration(), nil
}

func (p *Parser) declaration() ast.Stmt {
	if p.match(ast.TokenVar) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(ast.TokenIdentifier, "Expect variable name.")
	var initializer ast.Expr
	if p.match(ast.TokenEqual) {
		initializer = p.expression()
	}
	p.consume(ast.TokenSemicolon, "Expect ';' after variable declaration.")
	return ast.VarStmt{Name: name.Lexeme, Initializer: initializer}
}

func (p *Parser) statement() ast.Stmt {
	if p.match(ast.TokenPrint) {
		return p.printStatement()
	}
	return p.expressionStatement()
}

func (p *Parser) printStatement() ast.Stmt {
	expr := p.expression()
	p.consume(ast.TokenSemicolon, "Expect ';' after value.")
	return ast.PrintStmt{Expr: expr}
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(ast.TokenSemicolon, "Expect ';' after expression.")
	return ast.ExpressionStmt{Expr: expr}
}

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment parses the left side as an ordinary expression and only
// then checks that it names a variable
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(ast.TokenEqual) {
		equals := p.previous()
		value := p.assignment()

		if varExpr, ok := expr.(ast.VariableExpr); ok {
			return ast.AssignExpr{Name: varExpr.Name, Value: value}
		}
		p.error(equals, "Invalid assignment target.")
	}

	return expr
}

func (p *Parser) or() ast.Expr {
	return p.binary(p.and, ast.TokenOr)
}

func (p *Parser) and() ast.Expr {
	return p.binary(p.equality, ast.TokenAnd)
}

func (p *Parser) equality() ast.Expr {
	return p.binary(p.comparison, ast.TokenBangEqual, ast.TokenEqualEqual)
}

func (p *Parser) comparison() ast.Expr {
	return p.binary(p.addition, ast.TokenGreater, ast.TokenGreaterEqual, ast.TokenLess, ast.TokenLessEqual)
}

func (p *Parser) addition() ast.Expr {
	return p.binary(p.multiplication, ast.TokenMinus, ast.TokenPlus)
}

func (p *Parser) multiplication() ast.Expr {
	return p.binary(p.unary, ast.TokenSlash, ast.TokenStar)
}

// binary parses one precedence level: an operand, optionally
// followed by a single operator and another operand
func (p *Parser) binary(operand func() ast.Expr, types ...ast.TokenType) ast.Expr {
	expr := operand()

	if p.match(types...) {
		operator := p.operator(p.previous())
		right := operand()
		expr = ast.BinaryExpr{Left: expr, Operator: operator, Right: right}
	}

	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(ast.TokenBang, ast.TokenMinus) {
		operator := p.operator(p.previous())
		right := p.expression()
		return ast.UnaryExpr{Operator: operator, Right: right}
	}

	return p.primary()
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(ast.TokenFalse):
		return ast.BoolExpr{Value: false}
	case p.match(ast.TokenTrue):
		return ast.BoolExpr{Value: true}
	case p.match(ast.TokenNil):
		return ast.NilExpr{}
	case p.match(ast.TokenNumber):
		return ast.NumberExpr{Value: p.previous().Lexeme}
	case p.match(ast.TokenString):
		return ast.StringExpr{Value: stringValue(p.previous())}
	case p.match(ast.TokenLeftParen):
		expr := p.expression()
		p.consume(ast.TokenRightParen, "Expect ')' after expression.")
		return ast.GroupingExpr{Expression: expr}
	case p.match(ast.TokenIdentifier):
		return ast.VariableExpr{Name: p.previous().Lexeme}
	}

	p.error(p.peek(), "Expect expression.")
	return nil
}

// stringValue returns the contents of a string token, falling
// back to the lexeme without its quotes if there is no literal
func stringValue(token ast.Token) string {
	if value, ok := token.Literal.(string); ok {
		return value
	}
	return strings.TrimSuffix(strings.TrimPrefix(token.Lexeme, `"`), `"`)
}

func (p *Parser) operator(token ast.Token) ast.Operator {
	op, ok := ast.OperatorFor(token.TokenType)
	if !ok {
		panic("parse: token " + token.TokenType.String() + " is not an operator")
	}
	return op
}

// consume checks that the next ast.Token is of the given ast.TokenType and then
// advances to the next token. If the check fails, it panics with a *SyntaxError.
func (p *Parser) consume(tokenType ast.TokenType, message string) ast.Token {
	if p.check(tokenType) {
		return p.advance()
	}
	p.error(p.peek(), message)
	return ast.Token{}
}

func (p *Parser) error(token ast.Token, message string) {
	panic(tokenError(token, message))
}

func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().TokenType == ast.TokenSemicolon {
			return
		}

		switch p.peek().TokenType {
		case ast.TokenClass, ast.TokenFor, ast.TokenFun, ast.TokenIf,
			ast.TokenPrint, ast.TokenReturn, ast.TokenVar, ast.TokenWhile:
			return
		}

		p.advance()
	}
}

func (p *Parser) match(types ...ast.TokenType) bool {
	for _, tokenType := range types {
		if p.check(tokenType) {
			p.advance()
			return true
		}
	}

	return false
}

func (p *Parser) check(tokenType ast.TokenType) bool {
	if p.isAtEnd() {
		return false
	}

	return p.peek().TokenType == tokenType
}

func (p *Parser) advance() ast.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().TokenType == ast.TokenEof
}

func (p *Parser) peek() ast.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() ast.Token {
	return p.tokens[p.current-1]
}

func tokenError(token ast.Token, message string) *SyntaxError {
	if token.TokenType == ast.TokenEof {
		return &SyntaxError{Line: token.Line, AtEnd: true, Message: message}
	}
	return &SyntaxError{Line: token.Line, Lexeme: token.Lexeme, Message: message}
}
