package interpret

import (
	"fmt"

	"github.com/chidiwilliams/minilox/ast"
)

// ZeroDivisionError is returned when a number is divided by zero
type ZeroDivisionError struct{}

func (ZeroDivisionError) Error() string {
	return "Division by zero."
}

// UnsupportedBinOpError is returned when a binary operator
// is applied to operands of the wrong types
type UnsupportedBinOpError struct {
	Left  Value
	Op    ast.Operator
	Right Value
}

func (e UnsupportedBinOpError) Error() string {
	return fmt.Sprintf("Unsupported operands for '%s': %s and %s.", e.Op, TypeName(e.Left), TypeName(e.Right))
}

// UnsupportedUnaryOpError is returned when a unary operator
// is applied to an operand of the wrong type
type UnsupportedUnaryOpError struct {
	Op    ast.Operator
	Value Value
}

func (e UnsupportedUnaryOpError) Error() string {
	return fmt.Sprintf("Unsupported operand for '%s': %s.", e.Op, TypeName(e.Value))
}

// UndefinedVariableError is returned when reading or
// assigning a variable that was never declared
type UndefinedVariableError struct {
	Name string
}

func (e UndefinedVariableError) Error() string {
	return fmt.Sprintf("Undefined variable '%s'.", e.Name)
}

// runtimeError carries an evaluation error up the
// call stack to the nearest public entry point
type runtimeError struct {
	err error
}
