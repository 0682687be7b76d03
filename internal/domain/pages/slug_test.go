package pages

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Jane Q. Doe", "jane-q.-doe"},
		{"ALL CAPS", "all-caps"},
		{"runs   of \t whitespace", "runs-of-whitespace"},
		{"  padded  ", "padded"},
		{"single", "single"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := slugify(tt.in); got != tt.want {
			t.Errorf("slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
