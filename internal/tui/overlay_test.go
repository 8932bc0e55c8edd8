package tui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestSpliceOverlay(t *testing.T) {
	tests := []struct {
		name    string
		view    string
		overlay string
		x, y    int
		want    string
	}{
		{name: "inside", view: "aaaa\nbbbb", overlay: "X", x: 1, y: 1, want: "aaaa\nbXbb"},
		{name: "past the end", view: "a", overlay: "XY", x: 3, y: 2, want: "a\n\n   XY"},
		{name: "ragged overlay", view: "....\n....", overlay: "XY\nZ", x: 0, y: 0, want: "XY..\nZ .."},
		{name: "negative anchor", view: "ab", overlay: "X", x: -2, y: -1, want: "Xb"},
		{name: "empty overlay", view: "ab", overlay: "", x: 0, y: 0, want: "ab"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := ansi.Strip(spliceOverlay(test.view, test.overlay, test.x, test.y))
			if got != test.want {
				t.Errorf("Expected %q, but got %q", test.want, got)
			}
		})
	}
}
