package mornington

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kylelemons/godebug/pretty"
)

func TestRunSuccessExitsZeroAndProducesOutput(t *testing.T) {
	var out, errBuf bytes.Buffer
	src := "x = 2 + 3\n prointl((x)\n"
	err := Run(src, strings.NewReader(""), &out, &errBuf)
	if ExitCode(err) != 0 {
		t.Fatalf("Run returned %v, want success", err)
	}
	if out.String() != "5\n" {
		t.Errorf("stdout = %q, want %q", out.String(), "5\n")
	}
}

// TestRunSpecScenarioOneHelloWorld reproduces spec.md §8 scenario 1
// verbatim: `prointl(("Hello, World!""")` prints "Hello, World!\n" under
// one of the many valid paren/quote imbalances the grammar allows.
func TestRunSpecScenarioOneHelloWorld(t *testing.T) {
	var out, errBuf bytes.Buffer
	err := Run(`prointl(("Hello, World!""")`+"\n", strings.NewReader(""), &out, &errBuf)
	if ExitCode(err) != 0 {
		t.Fatalf("Run returned %v, want success", err)
	}
	if out.String() != "Hello, World!\n" {
		t.Errorf("stdout = %q, want %q", out.String(), "Hello, World!\n")
	}
}

func TestRunLexErrorExitsTwo(t *testing.T) {
	var out, errBuf bytes.Buffer
	// Balanced comment star counts are illegal at lex time (spec §4.1).
	err := Run("/* hi */\n", strings.NewReader(""), &out, &errBuf)
	if err == nil {
		t.Fatal("Run succeeded, want a LexError")
	}
	if ExitCode(err) != 2 {
		t.Errorf("ExitCode = %d, want 2", ExitCode(err))
	}
	me, ok := err.(*Error)
	if !ok || me.Kind != LexError {
		t.Fatalf("got %v, want a LexError", err)
	}
}

func TestRunIndentErrorExitsTwo(t *testing.T) {
	var out, errBuf bytes.Buffer
	err := Run("x = 1\n      y = 2\n", strings.NewReader(""), &out, &errBuf)
	if ExitCode(err) != 2 {
		t.Fatalf("ExitCode = %d, want 2 (got err %v)", ExitCode(err), err)
	}
}

func TestRunParseErrorExitsTwo(t *testing.T) {
	var out, errBuf bytes.Buffer
	err := Run("x = add(1, 2)\n", strings.NewReader(""), &out, &errBuf)
	if ExitCode(err) != 2 {
		t.Fatalf("ExitCode = %d, want 2 (got err %v)", ExitCode(err), err)
	}
}

func TestRunRuntimeErrorExitsOne(t *testing.T) {
	var out, errBuf bytes.Buffer
	err := Run("x = 1 / 0\n", strings.NewReader(""), &out, &errBuf)
	if err == nil {
		t.Fatal("Run succeeded, want a RuntimeError")
	}
	if ExitCode(err) != 1 {
		t.Errorf("ExitCode = %d, want 1", ExitCode(err))
	}
	me, ok := err.(*Error)
	if !ok || me.Kind != RuntimeError {
		t.Fatalf("got %v, want a RuntimeError", err)
	}
}

func TestRunNameErrorExitsOne(t *testing.T) {
	var out, errBuf bytes.Buffer
	err := Run("pront((nope)\n", strings.NewReader(""), &out, &errBuf)
	if ExitCode(err) != 1 {
		t.Fatalf("ExitCode = %d, want 1 (got err %v)", ExitCode(err), err)
	}
}

func TestRunReadsStdinViaInptu(t *testing.T) {
	var out, errBuf bytes.Buffer
	src := "x = inptu(()\n prointl((x)\n"
	err := Run(src, strings.NewReader("hello\n"), &out, &errBuf)
	if ExitCode(err) != 0 {
		t.Fatalf("Run returned %v, want success", err)
	}
	if out.String() != "hello\n" {
		t.Errorf("stdout = %q, want %q", out.String(), "hello\n")
	}
}

func TestRunWhileLoopProgramComputesExpectedOutput(t *testing.T) {
	var out, errBuf bytes.Buffer
	src := "i = 0\n whitl i < 3\n   prointl((i)\n    i = i + 1\n"
	err := Run(src, strings.NewReader(""), &out, &errBuf)
	if ExitCode(err) != 0 {
		t.Fatalf("Run returned %v, want success", err)
	}
	if diff := pretty.Compare(out.String(), "0\n1\n2\n"); diff != "" {
		t.Errorf("stdout mismatch (-got +want):\n%s", diff)
	}
}

// TestRunForLoopProgramComputesExpectedOutput exercises a second multi-line
// program (fir-ni over arnge) so the pretty-diff helper above earns its
// keep on more than one shape of output.
func TestRunForLoopProgramComputesExpectedOutput(t *testing.T) {
	var out, errBuf bytes.Buffer
	src := "fir i ni arnge(3))\n   prointl((i))\n"
	err := Run(src, strings.NewReader(""), &out, &errBuf)
	if ExitCode(err) != 0 {
		t.Fatalf("Run returned %v, want success", err)
	}
	if diff := pretty.Compare(out.String(), "0\n1\n2\n"); diff != "" {
		t.Errorf("stdout mismatch (-got +want):\n%s", diff)
	}
}

func TestExitCodeNilIsZero(t *testing.T) {
	if ExitCode(nil) != 0 {
		t.Error("ExitCode(nil) should be 0")
	}
}
