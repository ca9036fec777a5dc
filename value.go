package mornington

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// ValueKind tags which of the four Mornington value shapes a Value holds.
// The kind space is closed and fixed (spec §3/§6), unlike pongo2's
// *Value which wraps an arbitrary reflect.Value — see DESIGN.md for why
// that departure is warranted here.
type ValueKind int

const (
	KindBool ValueKind = iota
	KindNum
	KindString
	KindList
)

func (k ValueKind) String() string {
	switch k {
	case KindBool:
		return "obol"
	case KindNum:
		return "nmu"
	case KindString:
		return "sting"
	case KindList:
		return "lsit"
	default:
		return "?"
	}
}

// Value is the single runtime value type. Exactly one of B/N/S/L is
// meaningful, selected by Kind.
type Value struct {
	Kind ValueKind
	B    bool
	N    float64
	S    string
	L    []Value
}

func Bool(b bool) Value     { return Value{Kind: KindBool, B: b} }
func Num(n float64) Value   { return Value{Kind: KindNum, N: n} }
func Str(s string) Value    { return Value{Kind: KindString, S: s} }
func List(l []Value) Value  { return Value{Kind: KindList, L: l} }
func EmptyList() Value      { return Value{Kind: KindList} }

// ToBool is total: every kind has a truthiness.
func (v Value) ToBool() bool {
	switch v.Kind {
	case KindBool:
		return v.B
	case KindNum:
		return v.N != 0
	case KindString:
		return v.S != ""
	case KindList:
		return len(v.L) > 0
	}
	return false
}

// ToNum is total. A sting coerces to the sum of its Unicode code points —
// not its digit value — and a lsit coerces to its length; see SPEC_FULL.md's
// "Open Question Resolutions" for why code-point-sum was chosen over the
// more obvious digit-parse reading.
func (v Value) ToNum() float64 {
	switch v.Kind {
	case KindBool:
		if v.B {
			return 1
		}
		return 0
	case KindNum:
		return v.N
	case KindString:
		sum := 0
		for _, r := range v.S {
			sum += int(r)
		}
		return float64(sum)
	case KindList:
		return float64(len(v.L))
	}
	return 0
}

// ToString is total and is also how pront/pritner render values (spec §9).
func (v Value) ToString() string {
	switch v.Kind {
	case KindBool:
		if v.B {
			return "rtue"
		}
		return "flase"
	case KindNum:
		return formatNum(v.N)
	case KindString:
		return v.S
	case KindList:
		parts := make([]string, len(v.L))
		for i, e := range v.L {
			parts[i] = e.ToString()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return ""
}

func formatNum(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// ToList is total. A lsit coerces to itself; every other kind, sting
// included, is a scalar and lifts to a single-element list (spec §4.4: "any
// scalar becomes a one-element list").
func (v Value) ToList() []Value {
	if v.Kind == KindList {
		return v.L
	}
	return []Value{v}
}

// LooseEquals implements ==/!=: rhs is coerced to lhs's kind (spec §3/§6,
// "coerce rhs to lhs's type before comparison"), then compared. A lsit
// lhs coerces rhs via ToList and recurses element-wise — which is also
// why a lsit of one length is never loosely equal to a lsit of another.
func (a Value) LooseEquals(b Value) bool {
	switch a.Kind {
	case KindBool:
		return a.B == b.ToBool()
	case KindNum:
		return a.N == b.ToNum()
	case KindString:
		return a.S == b.ToString()
	case KindList:
		bl := b.ToList()
		if len(a.L) != len(bl) {
			return false
		}
		for i := range a.L {
			if !a.L[i].LooseEquals(bl[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// StrictEquals implements ===/!==: structural deep equality, kind-
// sensitive, via go-cmp — grounded on goyang's use of cmp.Equal for
// structural comparison (pkg/yang/yangtype.go). This is a deliberate
// resolution of an open question: === compares structure, not identity
// (lsit has no identity to compare in the first place). A nil and a
// non-nil empty element slice both count as the empty lsit.
func (a Value) StrictEquals(b Value) bool {
	return cmp.Equal(a, b, cmpopts.EquateEmpty())
}

func (v Value) String() string {
	return fmt.Sprintf("%s(%s)", v.Kind, v.ToString())
}
