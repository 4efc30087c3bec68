// Generates AST nodes
package main

import (
	"fmt"
	"go/format"
	"os"
	"strings"
)

func main() {
	writeAst("Expr", []string{
		"Assign   : Name string, Value Expr",
		"Binary   : Left Expr, Operator Operator, Right Expr",
		"Bool     : Value bool",
		"Grouping : Expression Expr",
		"Nil      :",
		"Number   : Value string",
		"String   : Value string",
		"Unary    : Operator Operator, Right Expr",
		"Variable : Name string",
	})

	writeAst("Stmt", []string{
		"Expression : Expr Expr",
		"Print      : Expr Expr",
		"Var        : Name string, Initializer Expr",
	})
}

func writeAst(name string, types []string) {
	ast, err := defineAst(name, types)
	if err != nil {
		panic(err)
	}

	err = os.WriteFile(strings.ToLower(name)+".go", ast, 0644)
	if err != nil {
		panic(err)
	}
}

func defineAst(name string, types []string) ([]byte, error) {
	var str string

	str += "// Code generated by cmd/ast.go. DO NOT EDIT.\n\n"
	str += "package ast\n"
	str += defineInterface(name)
	str += defineTypes(name, types)
	str += defineVisitor(name, types)

	// Format code with go fmt
	return format.Source([]byte(str))
}

func defineInterface(name string) string {
	return fmt.Sprintf(`
type %s interface {
	Accept(visitor %sVisitor) interface{}
}
`, name, name)
}

func defineTypes(name string, types []string) (str string) {
	for _, t := range types {
		splitType := strings.Split(t, ":")
		fullTypeName := strings.TrimSpace(splitType[0]) + name
		str += fmt.Sprintf("\ntype %s struct {\n", fullTypeName)

		if fields := strings.TrimSpace(splitType[1]); fields != "" {
			for _, field := range strings.Split(fields, ", ") {
				str += fmt.Sprintf("\t%s\n", strings.TrimSpace(field))
			}
		}

		str += "}\n"

		str += fmt.Sprintf(`
func (b %s) Accept(visitor %sVisitor) interface{} {
	return visitor.Visit%s(b)
}
`, fullTypeName, name, fullTypeName)
	}
	return str
}

func defineVisitor(name string, types []string) (str string) {
	str += fmt.Sprintf("\ntype %sVisitor interface {\n", name)
	for _, t := range types {
		splitType := strings.Split(t, ":")
		fullTypeName := strings.TrimSpace(splitType[0]) + name
		str += fmt.Sprintf("\tVisit%s(%s %s) interface{}\n", fullTypeName, strings.ToLower(name), fullTypeName)
	}
	str += "}\n"
	return str
}
