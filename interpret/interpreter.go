package interpret

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/chidiwilliams/minilox/ast"
	"github.com/chidiwilliams/minilox/env"
)

// Interpreter holds the execution environment of a program.
// Bindings persist across calls, so one Interpreter can
// serve a whole REPL session.
type Interpreter struct {
	// current execution environment
	environment *env.Environment[Value]
	// standard output
	stdOut io.Writer
}

// NewInterpreter sets up a new interpreter with an empty
// global environment that prints to stdOut
func NewInterpreter(stdOut io.Writer) *Interpreter {
	return &Interpreter{
		environment: env.New[Value](nil),
		stdOut:      stdOut,
	}
}

// Environment returns the current execution environment
func (in *Interpreter) Environment() *env.Environment[Value] {
	return in.environment
}

// Interpret executes a list of statements in order. It stops at
// the first runtime error and returns it; the effects of the
// statements before it are kept.
func (in *Interpreter) Interpret(stmts []ast.Stmt) (err error) {
	defer in.recoverRuntimeError(&err)

	for _, statement := range stmts {
		in.execute(statement)
	}
	return nil
}

// Evaluate computes the value of a single expression
func (in *Interpreter) Evaluate(expr ast.Expr) (value Value, err error) {
	defer in.recoverRuntimeError(&err)

	return in.evaluate(expr), nil
}

func (in *Interpreter) recoverRuntimeError(err *error) {
	if r := recover(); r != nil {
		e, ok := r.(runtimeError)
		if !ok {
			panic(r)
		}
		*err = e.err
	}
}

func (in *Interpreter) error(err error) {
	panic(runtimeError{err: err})
}

func (in *Interpreter) execute(stmt ast.Stmt) {
	stmt.Accept(in)
}

func (in *Interpreter) evaluate(expr ast.Expr) Value {
	return expr.Accept(in).(Value)
}

func (in *Interpreter) VisitExpressionStmt(stmt ast.ExpressionStmt) interface{} {
	in.evaluate(stmt.Expr)
	return nil
}

// VisitPrintStmt evaluates the statement's expression and prints
// the result to the interpreter's standard output
func (in *Interpreter) VisitPrintStmt(stmt ast.PrintStmt) interface{} {
	value := in.evaluate(stmt.Expr)
	if _, err := fmt.Fprintln(in.stdOut, value.String()); err != nil {
		in.error(err)
	}
	return nil
}

// VisitVarStmt declares the variable in the current environment,
// shadowing any variable of the same name in enclosing environments
func (in *Interpreter) VisitVarStmt(stmt ast.VarStmt) interface{} {
	var val Value = Nil{}
	if stmt.Initializer != nil {
		val = in.evaluate(stmt.Initializer)
	}
	in.environment.Declare(stmt.Name, val)
	return nil
}

func (in *Interpreter) VisitAssignExpr(expr ast.AssignExpr) interface{} {
	value := in.evaluate(expr.Value)

	if err := in.environment.Assign(expr.Name, value); err != nil {
		in.error(in.variableError(expr.Name, err))
	}

	return value
}

func (in *Interpreter) VisitVariableExpr(expr ast.VariableExpr) interface{} {
	val, err := in.environment.Lookup(expr.Name)
	if err != nil {
		in.error(in.variableError(expr.Name, err))
	}
	return val
}

func (in *Interpreter) variableError(name string, err error) error {
	if errors.Is(err, env.ErrUndefined) {
		return UndefinedVariableError{Name: name}
	}
	return err
}

// VisitBinaryExpr evaluates both operands before applying the operator;
// "and" and "or" do not short-circuit
func (in *Interpreter) VisitBinaryExpr(expr ast.BinaryExpr) interface{} {
	left := in.evaluate(expr.Left)
	right := in.evaluate(expr.Right)

	switch expr.Operator {
	case ast.OperatorEq:
		return Boolean(left == right)
	case ast.OperatorNe:
		return Boolean(left != right)
	case ast.OperatorAnd:
		return Boolean(Truthy(left) && Truthy(right))
	case ast.OperatorOr:
		return Boolean(Truthy(left) || Truthy(right))
	}

	leftNum, leftIsNum := left.(Number)
	rightNum, rightIsNum := right.(Number)
	if leftIsNum && rightIsNum {
		switch expr.Operator {
		case ast.OperatorAdd:
			return leftNum + rightNum
		case ast.OperatorSub:
			return leftNum - rightNum
		case ast.OperatorMul:
			return leftNum * rightNum
		case ast.OperatorDiv:
			if rightNum == 0 {
				in.error(ZeroDivisionError{})
			}
			return leftNum / rightNum
		// comparison
		case ast.OperatorLt:
			return Boolean(leftNum < rightNum)
		case ast.OperatorLe:
			return Boolean(leftNum <= rightNum)
		case ast.OperatorGt:
			return Boolean(leftNum > rightNum)
		case ast.OperatorGe:
			return Boolean(leftNum >= rightNum)
		}
	}

	if expr.Operator == ast.OperatorAdd {
		leftStr, leftIsStr := left.(String)
		rightStr, rightIsStr := right.(String)
		if leftIsStr && rightIsStr {
			return leftStr + rightStr
		}
	}

	in.error(UnsupportedBinOpError{Left: left, Op: expr.Operator, Right: right})
	return nil
}

func (in *Interpreter) VisitUnaryExpr(expr ast.UnaryExpr) interface{} {
	right := in.evaluate(expr.Right)
	switch expr.Operator {
	case ast.OperatorNot:
		return Boolean(!Truthy(right))
	case ast.OperatorSub:
		if num, ok := right.(Number); ok {
			return -num
		}
	}
	in.error(UnsupportedUnaryOpError{Op: expr.Operator, Value: right})
	return nil
}

func (in *Interpreter) VisitGroupingExpr(expr ast.GroupingExpr) interface{} {
	return in.evaluate(expr.Expression)
}

func (in *Interpreter) VisitBoolExpr(expr ast.BoolExpr) interface{} {
	return Boolean(expr.Value)
}

func (in *Interpreter) VisitNilExpr(ast.NilExpr) interface{} {
	return Nil{}
}

// VisitNumberExpr parses the number's source text. The scanner only
// produces well-formed numbers, so a failure here is a bug.
func (in *Interpreter) VisitNumberExpr(expr ast.NumberExpr) interface{} {
	val, err := strconv.ParseFloat(expr.Value, 64)
	if err != nil {
		panic(fmt.Sprintf("interpret: malformed number literal %q", expr.Value))
	}
	return Number(val)
}

func (in *Interpreter) VisitStringExpr(expr ast.StringExpr) interface{} {
	return String(expr.Value)
}
