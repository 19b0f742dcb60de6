package database

import "testing"

func TestLikeEscaper(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		want   string
	}{
		{name: "plain prefix passes through", prefix: "сол", want: "сол"},
		{name: "underscore is literal", prefix: "_ол", want: `\_ол`},
		{name: "percent is literal", prefix: "50%", want: `50\%`},
		{name: "backslash is literal", prefix: `a\b`, want: `a\\b`},
		{name: "empty prefix stays empty", prefix: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := likeEscaper.Replace(tt.prefix); got != tt.want {
				t.Errorf("likeEscaper.Replace(%q) = %q, want %q", tt.prefix, got, tt.want)
			}
		})
	}
}
