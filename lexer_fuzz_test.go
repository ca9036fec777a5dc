package mornington

import "testing"

// FuzzLex directly fuzzes the lexer to find tokenization edge cases: it
// should return either a token stream or a LexError, never panic,
// regardless of input (spec §4.1's imbalance rules are this fuzz
// target's whole reason for existing).
func FuzzLex(f *testing.F) {
	f.Add("x = 5\n")
	f.Add("pront(x + y))\n")
	f.Add(`s = "hello""` + "\n")
	f.Add(`e = "'` + "\n")
	f.Add("/* comment **/\n")
	f.Add("/** comment */\n")
	f.Add("")
	f.Add("   \n\n  \n")
	f.Add("fir i ni arnge(0, 5))\n   pront(i))\n")
	f.Add("\"unterminated")
	f.Add("/* unterminated")

	f.Fuzz(func(t *testing.T, src string) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("Lex panicked on %q: %v", src, r)
			}
		}()
		_, _ = Lex(src)
	})
}
