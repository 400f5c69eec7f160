package spotify

import "testing"

func TestBuildSearchQuery(t *testing.T) {
	tests := []struct {
		name       string
		descriptor string
		want       string
	}{
		{name: "plain word", descriptor: "melancholic", want: "melancholic"},
		{name: "uppercase input", descriptor: "Late NIGHT", want: "late night"},
		{name: "noise tokens removed", descriptor: "chill vibes playlist", want: "chill"},
		{name: "punctuation split", descriptor: "lo-fi/beats", want: "lo fi beats"},
		{name: "only noise", descriptor: "music songs tracks", want: ""},
		{name: "empty", descriptor: "", want: ""},
		{name: "whitespace only", descriptor: "   ", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := buildSearchQuery(tc.descriptor); got != tc.want {
				t.Fatalf("buildSearchQuery(%q) = %q, want %q", tc.descriptor, got, tc.want)
			}
		})
	}
}
