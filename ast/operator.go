//go:generate go run ../cmd/ast.go

package ast

import "fmt"

// Operator is a unary or binary operator in an expression
type Operator uint8

const (
	OperatorAdd Operator = iota
	OperatorSub
	OperatorMul
	OperatorDiv
	OperatorLt
	OperatorLe
	OperatorGt
	OperatorGe
	OperatorEq
	OperatorNe
	OperatorNot
	OperatorAnd
	OperatorOr
)

var operatorSymbols = [...]string{
	OperatorAdd: "+",
	OperatorSub: "-",
	OperatorMul: "*",
	OperatorDiv: "/",
	OperatorLt:  "<",
	OperatorLe:  "<=",
	OperatorGt:  ">",
	OperatorGe:  ">=",
	OperatorEq:  "==",
	OperatorNe:  "!=",
	OperatorNot: "!",
	OperatorAnd: "and",
	OperatorOr:  "or",
}

// String returns the operator as it is spelled in source
func (o Operator) String() string {
	if int(o) < len(operatorSymbols) {
		return operatorSymbols[o]
	}
	return fmt.Sprintf("Operator(%d)", o)
}

// OperatorFor returns the operator a token type denotes. The
// boolean is false if the token type is not an operator.
func OperatorFor(tokenType TokenType) (Operator, bool) {
	switch tokenType {
	case TokenPlus:
		return OperatorAdd, true
	case TokenMinus:
		return OperatorSub, true
	case TokenStar:
		return OperatorMul, true
	case TokenSlash:
		return OperatorDiv, true
	case TokenLess:
		return OperatorLt, true
	case TokenLessEqual:
		return OperatorLe, true
	case TokenGreater:
		return OperatorGt, true
	case TokenGreaterEqual:
		return OperatorGe, true
	case TokenEqualEqual:
		return OperatorEq, true
	case TokenBangEqual:
		return OperatorNe, true
	case TokenBang:
		return OperatorNot, true
	case TokenAnd:
		return OperatorAnd, true
	case TokenOr:
		return OperatorOr, true
	}
	return 0, false
}
