package strength

import "testing"

func TestCategoryForScore(t *testing.T) {
	want := map[int]Category{
		0: VeryWeak,
		1: VeryWeak,
		2: Weak,
		3: Moderate,
		4: Strong,
		5: Strong,
		6: VeryStrong,
	}
	for score := 0; score <= MaxScore; score++ {
		if got := categoryForScore(score); got != want[score] {
			t.Errorf("categoryForScore(%d) = %v, want %v", score, got, want[score])
		}
	}
}

func TestParseCategory(t *testing.T) {
	cases := []struct {
		input string
		want  Category
	}{
		{"very weak", VeryWeak},
		{"Very-Weak", VeryWeak},
		{"weak", Weak},
		{"MODERATE", Moderate},
		{" strong ", Strong},
		{"very_strong", VeryStrong},
	}
	for _, tc := range cases {
		got, err := ParseCategory(tc.input)
		if err != nil {
			t.Fatalf("ParseCategory(%q) error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("ParseCategory(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
	if _, err := ParseCategory("mediocre"); err == nil {
		t.Fatalf("expected error for unknown category")
	}
}

func TestCategory_StringAndKey(t *testing.T) {
	for _, c := range Categories {
		back, err := ParseCategory(c.String())
		if err != nil || back != c {
			t.Fatalf("round trip of %v failed: %v, %v", c, back, err)
		}
	}
	if VeryStrong.Key() != "very_strong" {
		t.Fatalf("Key = %q", VeryStrong.Key())
	}
	if Category(42).String() != "unknown" || Category(42).Valid() {
		t.Fatalf("out of range category should be invalid")
	}
}
