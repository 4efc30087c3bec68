package env

import (
	"errors"
	"testing"
)

func TestEnvironment_Lookup(t *testing.T) {
	root := New[int](nil)
	root.Declare("a", 1)
	child := New(root)
	child.Declare("b", 2)

	tests := []struct {
		name string
		env  *Environment[int]
		want int
		err  error
	}{
		{"a", child, 1, nil},
		{"b", child, 2, nil},
		{"b", root, 0, ErrUndefined},
		{"c", child, 0, ErrUndefined},
	}

	for _, tt := range tests {
		got, err := tt.env.Lookup(tt.name)
		if !errors.Is(err, tt.err) {
			t.Errorf("Lookup(%q) error = %v, want %v", tt.name, err, tt.err)
		}
		if got != tt.want {
			t.Errorf("Lookup(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestEnvironment_DeclareShadows(t *testing.T) {
	root := New[string](nil)
	root.Declare("x", "outer")
	child := New(root)
	child.Declare("x", "inner")

	if v, _ := child.Lookup("x"); v != "inner" {
		t.Errorf("child x = %q, want inner", v)
	}
	if v, _ := root.Lookup("x"); v != "outer" {
		t.Errorf("root x = %q, want outer", v)
	}

	child.Declare("x", "redeclared")
	if v, _ := child.Lookup("x"); v != "redeclared" {
		t.Errorf("child x = %q, want redeclared", v)
	}
	if child.enclosing != root || root.enclosing != nil {
		t.Errorf("unexpected enclosing chain")
	}
}

func TestEnvironment_Assign(t *testing.T) {
	root := New[int](nil)
	root.Declare("x", 1)
	root.Declare("y", 1)
	middle := New(root)
	middle.Declare("x", 2)
	inner := New(middle)

	if err := inner.Assign("x", 20); err != nil {
		t.Fatalf("Assign() error = %v", err)
	}
	if v, _ := middle.Lookup("x"); v != 20 {
		t.Errorf("middle x = %d, want 20", v)
	}
	if v, _ := root.Lookup("x"); v != 1 {
		t.Errorf("root x = %d, want 1", v)
	}

	if err := inner.Assign("y", 10); err != nil {
		t.Fatalf("Assign() error = %v", err)
	}
	if v, _ := root.Lookup("y"); v != 10 {
		t.Errorf("root y = %d, want 10", v)
	}

	if err := inner.Assign("z", 1); !errors.Is(err, ErrUndefined) {
		t.Errorf("Assign() error = %v, want ErrUndefined", err)
	}
	if _, err := inner.Lookup("z"); !errors.Is(err, ErrUndefined) {
		t.Errorf("assignment must not declare z")
	}
	if _, err := inner.Lookup("y"); err != nil {
		t.Errorf("expected y to be visible from inner")
	}
}
