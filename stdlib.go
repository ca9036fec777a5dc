package mornington

import (
	"io"
	"strings"
)

// builtinFunc is a standard-library function implementation. Grounded on
// pongo2's globals.go registration table (the same "name maps to Go
// func" shape), narrowed to Mornington's fixed, non-extensible builtin
// set (spec §9) rather than pongo2's user-extensible global registry.
type builtinFunc func(e *env, args []Value, line, col int) (Value, error)

var stdlib = map[string]builtinFunc{
	"pront":     builtinPront,
	"prointl":   builtinProintl,
	"pritner":   builtinPritner,
	"rpintnlwr": builtinRpintnlwr,
	"inptu":     builtinInptu,
	"arnge":     builtinArnge,
}

func writeAll(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

// joinArgs space-joins every argument's string coercion (spec §4.5): zero
// arguments joins to the empty string, not a single space.
func joinArgs(args []Value) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.ToString()
	}
	return strings.Join(parts, " ")
}

// pront writes the space-joined string coercions of its arguments to
// stdout with no trailing newline; called with no arguments it writes
// nothing.
func builtinPront(e *env, args []Value, line, col int) (Value, error) {
	logf("pront: %d argument(s)", len(args))
	if err := writeAll(e.Stdout, joinArgs(args)); err != nil {
		return Value{}, errf(RuntimeError, line, col, "pront: %v", err)
	}
	return EmptyList(), nil
}

// prointl is pront plus a trailing newline.
func builtinProintl(e *env, args []Value, line, col int) (Value, error) {
	logf("prointl: %d argument(s)", len(args))
	if err := writeAll(e.Stdout, joinArgs(args)+"\n"); err != nil {
		return Value{}, errf(RuntimeError, line, col, "prointl: %v", err)
	}
	return EmptyList(), nil
}

// pritner is pront to stderr.
func builtinPritner(e *env, args []Value, line, col int) (Value, error) {
	logf("pritner: %d argument(s)", len(args))
	if err := writeAll(e.Stderr, joinArgs(args)); err != nil {
		return Value{}, errf(RuntimeError, line, col, "pritner: %v", err)
	}
	return EmptyList(), nil
}

// rpintnlwr is pritner plus a trailing newline.
func builtinRpintnlwr(e *env, args []Value, line, col int) (Value, error) {
	logf("rpintnlwr: %d argument(s)", len(args))
	if err := writeAll(e.Stderr, joinArgs(args)+"\n"); err != nil {
		return Value{}, errf(RuntimeError, line, col, "rpintnlwr: %v", err)
	}
	return EmptyList(), nil
}

// inptu reads one line from stdin. Reaching EOF with nothing left to read
// is a RuntimeError (spec §8).
func builtinInptu(e *env, args []Value, line, col int) (Value, error) {
	if len(args) != 0 {
		return Value{}, errf(ArityError, line, col, "inptu takes no arguments, got %d", len(args))
	}
	s, err := e.readLine()
	if err != nil {
		return Value{}, errf(RuntimeError, line, col, "inptu: %v", err)
	}
	return Str(s), nil
}

// arnge builds a lsit of nmu: one argument is an exclusive finish from 0
// with step 1, two are start/finish, three are start/step/finish (spec
// §4.5 — note finish is the last argument of the three-arg form, not the
// step). A zero step is a RuntimeError rather than an infinite loop
// (spec §8 Open Questions).
func builtinArnge(e *env, args []Value, line, col int) (Value, error) {
	var start, stop, step float64 = 0, 0, 1
	switch len(args) {
	case 1:
		stop = args[0].ToNum()
	case 2:
		start, stop = args[0].ToNum(), args[1].ToNum()
	case 3:
		start, step, stop = args[0].ToNum(), args[1].ToNum(), args[2].ToNum()
	default:
		return Value{}, errf(ArityError, line, col, "arnge takes 1 to 3 arguments, got %d", len(args))
	}
	if step == 0 {
		return Value{}, errf(RuntimeError, line, col, "arnge: step must not be zero")
	}

	var out []Value
	if step > 0 {
		for v := start; v < stop; v += step {
			out = append(out, Num(v))
		}
	} else {
		for v := start; v > stop; v += step {
			out = append(out, Num(v))
		}
	}
	return List(out), nil
}
