package mornington

import "strings"

// formatString implements the "sting % lsit" format mini-language (spec
// §4.4/§9): "\%" is a literal percent; "%o"/"%n"/"%s"/"%l" each consume
// the next argument, coerce it to obol/nmu/sting/lsit respectively, and
// render it; any other character following "%" is not a format spec and
// is copied through literally, percent sign included.
func formatString(format string, args []Value, line, col int) (string, error) {
	var out strings.Builder
	argi := 0
	runes := []rune(format)

	next := func() (Value, error) {
		if argi >= len(args) {
			return Value{}, errf(RuntimeError, line, col, "format string: not enough arguments")
		}
		v := args[argi]
		argi++
		return v, nil
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\\' && i+1 < len(runes) && runes[i+1] == '%':
			out.WriteByte('%')
			i++
		case r == '%' && i+1 < len(runes):
			spec := runes[i+1]
			switch spec {
			case 'o', 'n', 's', 'l':
				v, err := next()
				if err != nil {
					return "", err
				}
				out.WriteString(coerceTo(spec, v).ToString())
				i++
			default:
				out.WriteRune(r)
			}
		default:
			out.WriteRune(r)
		}
	}
	return out.String(), nil
}

// coerceTo converts v to the type named by a format spec character before
// rendering: %o -> obol, %n -> nmu, %s -> sting, %l -> lsit.
func coerceTo(spec rune, v Value) Value {
	switch spec {
	case 'o':
		return Bool(v.ToBool())
	case 'n':
		return Num(v.ToNum())
	case 's':
		return Str(v.ToString())
	case 'l':
		return List(v.ToList())
	}
	return v
}
