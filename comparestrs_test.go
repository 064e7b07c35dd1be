package textscan

import "testing"

func TestCompare(t *testing.T) {
	const s = "abc ΑΒΓαβγ"

	tests := []struct {
		name   string
		policy CompareStrs
		b      string
		want   bool
	}{
		{"exact", Exact{}, "abc ΑΒΓαβγ", true},
		{"exact", Exact{}, "Abc ΑΒΓαβγ", false},
		{"exact", Exact{}, "abC ΑΒΓαβγ", false},
		{"exact", Exact{}, "abc αΒΓαβγ", false},
		{"exact", Exact{}, "abc ΑΒΓαβΓ", false},

		{"fold ascii", FoldASCII{}, "abc ΑΒΓαβγ", true},
		{"fold ascii", FoldASCII{}, "Abc ΑΒΓαβγ", true},
		{"fold ascii", FoldASCII{}, "aBc ΑΒΓαβγ", true},
		{"fold ascii", FoldASCII{}, "abC ΑΒΓαβγ", true},
		{"fold ascii", FoldASCII{}, "abc αΒΓαβγ", false},
		{"fold ascii", FoldASCII{}, "abc ΑΒΓαΒγ", false},

		{"fold", Fold{}, "abc ΑΒΓαβγ", true},
		{"fold", Fold{}, "Abc ΑΒΓαβγ", true},
		{"fold", Fold{}, "abc αΒΓαβγ", true},
		{"fold", Fold{}, "abc ΑβΓαβγ", true},
		{"fold", Fold{}, "abc ΑΒΓΑβγ", true},
		{"fold", Fold{}, "abc ΑΒΓαβΓ", true},
		{"fold", Fold{}, "abd ΑΒΓαβγ", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.policy.Compare(s, tt.b); got != tt.want {
				t.Errorf("Compare(%q, %q) = %v, want %v", s, tt.b, got, tt.want)
			}
		})
	}
}

func TestPrefix(t *testing.T) {
	tests := []struct {
		name    string
		policy  CompareStrs
		s       string
		literal string
		wantN   int
		wantOK  bool
	}{
		{"exact match", Exact{}, "abcdef", "abc", 3, true},
		{"exact whole", Exact{}, "abc", "abc", 3, true},
		{"exact mismatch", Exact{}, "abcd", "abx", 0, false},
		{"exact too short", Exact{}, "ab", "abc", 0, false},
		{"exact empty literal", Exact{}, "abc", "", 0, true},

		{"ascii fold", FoldASCII{}, "Content-Length: 42", "content-length", 14, true},
		{"ascii fold mismatch", FoldASCII{}, "Content-Type", "content-length", 0, false},
		{"ascii fold non-ascii", FoldASCII{}, "ΑΒΓ", "αβγ", 0, false},

		{"fold same length", Fold{}, "HELLO world", "hello", 5, true},
		{"fold greek", Fold{}, "ΑΒΓ rest", "αβγ", 6, true},
		{"fold mismatch", Fold{}, "goodbye", "hello", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := tt.policy.Prefix(tt.s, tt.literal)
			if n != tt.wantN || ok != tt.wantOK {
				t.Errorf("Prefix(%q, %q) = (%d, %v), want (%d, %v)", tt.s, tt.literal, n, ok, tt.wantN, tt.wantOK)
			}
		})
	}
}

// Full case folding equates sequences of different lengths, so the
// consumed input length must be reported independently of the literal's
// length.
func TestPrefixUnevenFold(t *testing.T) {
	n, ok := Fold{}.Prefix("straße!", "STRASSE")
	if !ok || n != len("straße") {
		t.Errorf("Prefix(\"straße!\", \"STRASSE\") = (%d, %v), want (%d, true)", n, ok, len("straße"))
	}

	n, ok = Fold{}.Prefix("STRASSE!", "straße")
	if !ok || n != len("STRASSE") {
		t.Errorf("Prefix(\"STRASSE!\", \"straße\") = (%d, %v), want (%d, true)", n, ok, len("STRASSE"))
	}
}
