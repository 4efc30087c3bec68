package ast

import (
	"strconv"
	"strings"
)

type astPrinter struct{}

// Format returns a parenthesised prefix representation of an Expr node
func Format(expr Expr) string {
	return astPrinter{}.print(expr)
}

// FormatStmt returns a parenthesised prefix representation of a Stmt node
func FormatStmt(stmt Stmt) string {
	return stmt.Accept(astPrinter{}).(string)
}

func (a astPrinter) print(expr Expr) string {
	return expr.Accept(a).(string)
}

func (a astPrinter) VisitAssignExpr(expr AssignExpr) interface{} {
	return a.parenthesize("= "+expr.Name, expr.Value)
}

func (a astPrinter) VisitBinaryExpr(expr BinaryExpr) interface{} {
	return a.parenthesize(expr.Operator.String(), expr.Left, expr.Right)
}

func (a astPrinter) VisitBoolExpr(expr BoolExpr) interface{} {
	return strconv.FormatBool(expr.Value)
}

func (a astPrinter) VisitGroupingExpr(expr GroupingExpr) interface{} {
	return a.parenthesize("group", expr.Expression)
}

func (a astPrinter) VisitNilExpr(NilExpr) interface{} {
	return "nil"
}

func (a astPrinter) VisitNumberExpr(expr NumberExpr) interface{} {
	return expr.Value
}

func (a astPrinter) VisitStringExpr(expr StringExpr) interface{} {
	return `"` + expr.Value + `"`
}

func (a astPrinter) VisitUnaryExpr(expr UnaryExpr) interface{} {
	return a.parenthesize(expr.Operator.String(), expr.Right)
}

func (a astPrinter) VisitVariableExpr(expr VariableExpr) interface{} {
	return expr.Name
}

func (a astPrinter) VisitExpressionStmt(stmt ExpressionStmt) interface{} {
	return a.parenthesize("expr", stmt.Expr)
}

func (a astPrinter) VisitPrintStmt(stmt PrintStmt) interface{} {
	return a.parenthesize("print", stmt.Expr)
}

func (a astPrinter) VisitVarStmt(stmt VarStmt) interface{} {
	if stmt.Initializer == nil {
		return a.parenthesize("var " + stmt.Name)
	}
	return a.parenthesize("var "+stmt.Name, stmt.Initializer)
}

func (a astPrinter) parenthesize(name string, exprs ...Expr) string {
	var str strings.Builder

	str.WriteString("(" + name)
	for _, expr := range exprs {
		str.WriteString(" " + a.print(expr))
	}
	str.WriteString(")")

	return str.String()
}
