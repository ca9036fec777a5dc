package mornington

import "io"

// Run wires the whole pipeline — Lex, BuildBlocks, Parse, Eval — together
// against one source string. It is the only entry point a caller (the
// cmd/mornington CLI, or a test) needs. stdin/stdout/stderr are the three
// opaque I/O sinks the core is handed per spec §5 — the host owns them.
func Run(source string, stdin io.Reader, stdout, stderr io.Writer) error {
	lines, err := Lex(source)
	if err != nil {
		return err
	}
	block, err := BuildBlocks(lines)
	if err != nil {
		return err
	}
	program, err := Parse(block)
	if err != nil {
		return err
	}
	e := newEnv(stdout, stderr, stdin)
	return Eval(program, e)
}

// ExitCode maps a pipeline error to the process exit code the CLI should
// use: 2 for a Fatal (Lex/Indent/Parse) error caught before any statement
// ran, 1 for anything that went wrong mid-execution, 0 for a nil error.
// This is a resolution of the spec's "non-zero on error" wording into a
// concrete convention (SPEC_FULL.md's "Exit codes" supplement).
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if me, ok := err.(*Error); ok && me.Fatal() {
		return 2
	}
	return 1
}
