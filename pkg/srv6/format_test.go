package srv6

import (
	"reflect"
	"testing"
)

func TestFormatCanonical(t *testing.T) {
	text := `# edge router block
SOURCE-ADDRESS 2001:db8::1
locator LOC1
    prefix 2001:db8:1::/48 psp behavior End.DX6
    prefix 2001:db8:2::/48 no usp
locator LOC2
`
	cfg, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := `source-address 2001:db8::1
locator LOC1
  prefix 2001:db8:1::/48 behavior End.DX6 psp
  prefix 2001:db8:2::/48 no usp
locator LOC2
`
	if got := Format(cfg); got != want {
		t.Errorf("Format() =\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{
			name: "full config",
			text: `source-address 2001:db8::1
locator LOC1
  prefix 2001:db8:1::/48 behavior End.DX6 psp usp
  prefix 2001:db8:2::/48 no psp
locator LOC2
  prefix 2001:db8:abcd::/64 behavior uN psp disable
`,
		},
		{name: "no source address", text: "locator A\n  prefix 2001:db8::/32\n"},
		{name: "empty locator", text: "locator EMPTY\n"},
		{name: "empty config", text: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, err := Parse(tt.text)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			second, err := Parse(Format(first))
			if err != nil {
				t.Fatalf("Parse(Format()) error = %v", err)
			}
			if !reflect.DeepEqual(first, second) {
				t.Errorf("round trip not stable:\nfirst:  %+v\nsecond: %+v", first, second)
			}
		})
	}
}
