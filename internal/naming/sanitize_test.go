package naming

import "testing"

func TestReplaceInvalid(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		replacement string
		want        string
	}{
		{"clean text", "Kitchen", "-", "Kitchen"},
		{"slash and question mark", "Kitchen/Stove?", "-", "Kitchen-Stove-"},
		{"comma replacement", "Kitchen/Stove?", ",", "Kitchen,Stove,"},
		{"empty replacement", "Kitchen/Stove?", "", "KitchenStove"},
		{"every invalid char", `#%&{}\<>?/$!'":@+` + "`|=", "", ""},
		{"no trimming", "  Kitchen  ", "-", "  Kitchen  "},
		{"backslash", `a\b`, "-", "a-b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReplaceInvalid(tt.input, tt.replacement); got != tt.want {
				t.Errorf("ReplaceInvalid(%q, %q) = %q, want %q", tt.input, tt.replacement, got, tt.want)
			}
		})
	}
}

func TestContainsInvalid(t *testing.T) {
	if ContainsInvalid("Living Room - 01") {
		t.Error("ContainsInvalid flagged a clean name")
	}
	if !ContainsInvalid("what?") {
		t.Error("ContainsInvalid missed a question mark")
	}
	if !ContainsInvalid("a=b") {
		t.Error("ContainsInvalid missed an equals sign")
	}
}

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a b", "a b"},
		{"a  b", "a b"},
		{"a     b", "a b"},
		{"a  b   c    d", "a b c d"},
		{"", ""},
		{"   ", " "},
	}

	for _, tt := range tests {
		if got := CollapseWhitespace(tt.input); got != tt.want {
			t.Errorf("CollapseWhitespace(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDropVowels(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Kitchen", "Ktchn"},
		{"AEIOUaeiou", ""},
		{"rhythm", "rhythm"},
		{"Upstairs Bathroom", "pstrs Bthrm"},
	}

	for _, tt := range tests {
		if got := dropVowels(tt.input); got != tt.want {
			t.Errorf("dropVowels(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}

	if HasVowels("rhythm") {
		t.Error("HasVowels found a vowel in a vowelless word")
	}
	if !HasVowels("KITCHEN") {
		t.Error("HasVowels missed an uppercase vowel")
	}
}

func TestTruncateBy(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"Kitchen", 2, "Kitch"},
		{"Kitchen", 7, ""},
		{"Kitchen", 100, ""},
		{"Kitchen", 0, "Kitchen"},
		// The cut lands inside the two-byte é and backs up to the
		// rune boundary instead of leaving a broken byte behind.
		{"Café", 1, "Caf"},
		{"Entrée", 3, "Ent"},
	}

	for _, tt := range tests {
		if got := TruncateBy(tt.input, tt.n); got != tt.want {
			t.Errorf("TruncateBy(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}
