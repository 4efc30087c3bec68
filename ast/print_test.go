package ast

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{"number", NumberExpr{Value: "45.67"}, "45.67"},
		{"string", StringExpr{Value: "hello"}, `"hello"`},
		{"bool", BoolExpr{Value: true}, "true"},
		{"nil", NilExpr{}, "nil"},
		{"variable", VariableExpr{Name: "x"}, "x"},
		{
			"binary with unary and grouping",
			BinaryExpr{
				Left:     UnaryExpr{Operator: OperatorSub, Right: NumberExpr{Value: "123"}},
				Operator: OperatorMul,
				Right:    GroupingExpr{Expression: NumberExpr{Value: "45.67"}},
			},
			"(* (- 123) (group 45.67))",
		},
		{"assignment", AssignExpr{Name: "a", Value: NumberExpr{Value: "1"}}, "(= a 1)"},
		{"comparison", BinaryExpr{Left: NumberExpr{Value: "1"}, Operator: OperatorLe, Right: NumberExpr{Value: "2"}}, "(<= 1 2)"},
		{"logical", BinaryExpr{Left: BoolExpr{Value: true}, Operator: OperatorOr, Right: NilExpr{}}, "(or true nil)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.expr); got != tt.want {
				t.Errorf("Format() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestFormatStmt(t *testing.T) {
	tests := []struct {
		stmt Stmt
		want string
	}{
		{PrintStmt{Expr: StringExpr{Value: "hi"}}, `(print "hi")`},
		{ExpressionStmt{Expr: VariableExpr{Name: "x"}}, "(expr x)"},
		{VarStmt{Name: "x"}, "(var x)"},
		{VarStmt{Name: "x", Initializer: NumberExpr{Value: "2"}}, "(var x 2)"},
	}

	for _, tt := range tests {
		if got := FormatStmt(tt.stmt); got != tt.want {
			t.Errorf("FormatStmt() = %s, want %s", got, tt.want)
		}
	}
}

func TestOperatorFor(t *testing.T) {
	op, ok := OperatorFor(TokenLessEqual)
	if !ok || op != OperatorLe {
		t.Fatalf("OperatorFor(TokenLessEqual) = %v, %v", op, ok)
	}
	if _, ok := OperatorFor(TokenSemicolon); ok {
		t.Fatalf("expected TokenSemicolon not to be an operator")
	}
	if OperatorNe.String() != "!=" {
		t.Fatalf("OperatorNe.String() = %s", OperatorNe)
	}
}
