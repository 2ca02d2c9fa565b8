package cli

import "testing"

func TestColorWrapping(t *testing.T) {
	orig := colorEnabled
	defer func() { colorEnabled = orig }()

	colorEnabled = true
	tests := []struct {
		name string
		fn   func(string) string
		want string
	}{
		{name: "green", fn: Green, want: "\033[32mok\033[0m"},
		{name: "yellow", fn: Yellow, want: "\033[33mok\033[0m"},
		{name: "red", fn: Red, want: "\033[31mok\033[0m"},
		{name: "bold", fn: Bold, want: "\033[1mok\033[0m"},
		{name: "dim", fn: Dim, want: "\033[2mok\033[0m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn("ok"); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}

	colorEnabled = false
	for _, tt := range tests {
		if got := tt.fn("ok"); got != "ok" {
			t.Errorf("%s with NO_COLOR: got %q, want %q", tt.name, got, "ok")
		}
	}
}
