package similarity

import "testing"

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"abc", "abcd", 1},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"plan", "plann", 1},
	}

	for _, tt := range tests {
		if got := EditDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("EditDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestEditDistance_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"plan", "plann"},
		{"kitten", "sitting"},
		{"", "review"},
		{"compound", "confound"},
	}

	for _, p := range pairs {
		ab := EditDistance(p[0], p[1])
		ba := EditDistance(p[1], p[0])
		if ab != ba {
			t.Errorf("EditDistance(%q, %q) = %d but reversed = %d", p[0], p[1], ab, ba)
		}
	}
}

func TestEditDistance_Identity(t *testing.T) {
	for _, s := range []string{"", "a", "plan", "design-review"} {
		if got := EditDistance(s, s); got != 0 {
			t.Errorf("EditDistance(%q, %q) = %d, want 0", s, s, got)
		}
	}
}

func TestIsSimilar(t *testing.T) {
	tests := []struct {
		a, b      string
		threshold float64
		want      bool
	}{
		{"plan", "plann", 0.3, true},
		{"plan", "review", 0.3, false},
		{"Plan", "plan", 0.3, true}, // case-insensitive
		{"", "", 0.3, true},         // equal strings, degenerately
		{"", "abc", 0.3, false},
		{"orchestrate", "orchestrated", 0.3, true},
	}

	for _, tt := range tests {
		if got := IsSimilar(tt.a, tt.b, tt.threshold); got != tt.want {
			t.Errorf("IsSimilar(%q, %q, %v) = %v, want %v", tt.a, tt.b, tt.threshold, got, tt.want)
		}
	}
}

func TestScanNames(t *testing.T) {
	pairs := ScanNames([]string{"plan", "plann", "review"})

	if len(pairs) != 1 {
		t.Fatalf("ScanNames returned %d pairs, want 1: %v", len(pairs), pairs)
	}
	if pairs[0].A != "plan" || pairs[0].B != "plann" {
		t.Errorf("flagged pair = (%q, %q), want (plan, plann)", pairs[0].A, pairs[0].B)
	}
}

func TestScanNames_Empty(t *testing.T) {
	if pairs := ScanNames(nil); len(pairs) != 0 {
		t.Errorf("ScanNames(nil) = %v, want empty", pairs)
	}
	if pairs := ScanNames([]string{"solo"}); len(pairs) != 0 {
		t.Errorf("ScanNames with one name = %v, want empty", pairs)
	}
}

func TestScanNames_Order(t *testing.T) {
	// Outer index ascending, inner index ascending.
	pairs := ScanNames([]string{"aaaa", "aaab", "aaac"})

	want := []Pair{
		{A: "aaaa", B: "aaab"},
		{A: "aaaa", B: "aaac"},
		{A: "aaab", B: "aaac"},
	}
	if len(pairs) != len(want) {
		t.Fatalf("ScanNames returned %d pairs, want %d", len(pairs), len(want))
	}
	for i := range want {
		if pairs[i] != want[i] {
			t.Errorf("pairs[%d] = %v, want %v", i, pairs[i], want[i])
		}
	}
}
