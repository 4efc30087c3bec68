package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/chidiwilliams/minilox/config"
	"github.com/chidiwilliams/minilox/interpret"
)

func Test_Run(t *testing.T) {
	tests := []struct {
		name   string
		source string
		stdOut string
	}{
		// atoms
		{"string", "print \"hello world\";", "hello world\n"},
		{"number", "print 342.32461932591235;", "342.32461932591235\n"},
		{"nil", "print nil;", "nil\n"},
		{"large number", "print 1000000;", "1000000\n"},
		{"small number", "print 0.00001;", "0.00001\n"},

		// comments
		{"single-line comment after source", "print 1 + 1; // hello", "2\n"},
		{"single-line comment", `// hello
print 1 + 1;`, "2\n"},

		// unary and binary operations
		{"arithmetic operations", "print ((-1) + (2 * 3)) - (4 / 5);", "4.2\n"},
		{"negation of a grouped sum", "print (-1 + (2 * 3)) - (4 / 5);", "-7.8\n"},
		{"negation applies to the whole expression", "print -1 + 2;", "-3\n"},
		{"logical operations", "print (!true or false) and false;", "false\n"},
		{"string concatenation", "print (\"hello\" + \" \") + \"world\";", "hello world\n"},
		{"comparison", "print 4 >= 3;", "true\n"},
		{"equality across types", "print 1 == \"1\";", "false\n"},

		// variables
		{"variable declaration", "var a = 10; print a * 2;", "20\n"},
		{"variable assignment after declaration", "var a; a = 20; print a * 2;", "40\n"},
		{"variable re-assignment", "var a = 10; print a; a = 20; print a * 2;", "10\n40\n"},
		{"variable re-declaration", "var x = 1; var x = 2; print x;", "2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdOut := &bytes.Buffer{}
			stdErr := &bytes.Buffer{}
			r := newRunner(stdOut, stdErr, config.Default())

			if err := r.run(tt.source); err != nil {
				t.Fatalf("run() error = %v", err)
			}
			if stdOut.String() != tt.stdOut {
				t.Fatalf("stdOut: got %s, expected %s", stdOut, tt.stdOut)
			}
		})
	}
}

// fixture is one end-to-end case from testdata/*.yaml
type fixture struct {
	Name    string `yaml:"name"`
	Source  string `yaml:"source"`
	Stdout  string `yaml:"stdout"`
	Stderr  string `yaml:"stderr"`
	Stage   string `yaml:"stage"`
	Recover bool   `yaml:"recover"`
}

func loadFixtures(t *testing.T) map[string][]fixture {
	t.Helper()
	paths, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Fatal("no fixtures found in testdata")
	}

	fixtures := make(map[string][]fixture, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		var cases []fixture
		if err := yaml.Unmarshal(data, &cases); err != nil {
			t.Fatalf("%s: %v", path, err)
		}
		fixtures[strings.TrimSuffix(filepath.Base(path), ".yaml")] = cases
	}
	return fixtures
}

func Test_RunFixtures(t *testing.T) {
	for file, cases := range loadFixtures(t) {
		for _, tt := range cases {
			t.Run(file+"/"+tt.Name, func(t *testing.T) {
				stdOut := &bytes.Buffer{}
				stdErr := &bytes.Buffer{}
				cfg := config.Default()
				cfg.Recover = tt.Recover
				r := newRunner(stdOut, stdErr, cfg)

				err := r.run(tt.Source)
				if err != nil {
					r.report(err)
				}

				var runErr *Error
				switch {
				case tt.Stage == "" && err != nil:
					t.Fatalf("run() error = %v", err)
				case tt.Stage != "" && !errors.As(err, &runErr):
					t.Fatalf("run() error = %v, want a %s error", err, tt.Stage)
				case tt.Stage != "" && runErr.Stage.String() != tt.Stage:
					t.Fatalf("run() stage = %s, want %s", runErr.Stage, tt.Stage)
				}

				if stdOut.String() != tt.Stdout {
					t.Errorf("stdOut: got %q, expected %q", stdOut, tt.Stdout)
				}
				if stdErr.String() != tt.Stderr {
					t.Errorf("stdErr: got %q, expected %q", stdErr, tt.Stderr)
				}
			})
		}
	}
}

func Test_RunPrompt(t *testing.T) {
	stdOut := &bytes.Buffer{}
	stdErr := &bytes.Buffer{}
	r := newRunner(stdOut, stdErr, config.Default())

	r.runPrompt(strings.NewReader("var x = 1;\nprint y;\nx = x + 2;\nprint x;\n"))

	if stdOut.String() != "> > > > 3\n> " {
		t.Errorf("stdOut: got %q", stdOut)
	}
	if stdErr.String() != "Undefined variable 'y'.\n" {
		t.Errorf("stdErr: got %q", stdErr)
	}
	x, err := r.interpreter.Environment().Lookup("x")
	if err != nil || x != interpret.Number(3) {
		t.Errorf("x = %v, %v; want 3", x, err)
	}
}

func Test_RunFile(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name     string
		source   string
		exitCode int
	}{
		{"ok", "print 1;", 0},
		{"scan error", "print @;", 65},
		{"parse error", "print 1", 65},
		{"runtime error", "print 1 / 0;", 70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_")+".lox")
			if err := os.WriteFile(path, []byte(tt.source), 0o600); err != nil {
				t.Fatal(err)
			}
			r := newRunner(&bytes.Buffer{}, &bytes.Buffer{}, config.Default())
			if got := r.runFile(path); got != tt.exitCode {
				t.Errorf("runFile() = %d, want %d", got, tt.exitCode)
			}
		})
	}

	r := newRunner(&bytes.Buffer{}, &bytes.Buffer{}, config.Default())
	if got := r.runFile(filepath.Join(dir, "missing.lox")); got != 66 {
		t.Errorf("runFile() on a missing file = %d, want 66", got)
	}
}

func Test_DumpModes(t *testing.T) {
	stdOut := &bytes.Buffer{}
	stdErr := &bytes.Buffer{}
	cfg := config.Default()
	cfg.DumpTokens = true
	cfg.DumpAST = true
	r := newRunner(stdOut, stdErr, cfg)

	if err := r.run("print 1;"); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	want := "PRINT print\nNUMBER 1 1\nSEMICOLON ;\nEOF \n(print 1)\n"
	if stdErr.String() != want {
		t.Errorf("stdErr: got %q, expected %q", stdErr, want)
	}
	if stdOut.String() != "1\n" {
		t.Errorf("stdOut: got %q", stdOut)
	}
}
