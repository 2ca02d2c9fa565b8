package srv6

import (
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

const sampleConfig = `source-address 2001:db8::1
locator ZULU
  prefix 2001:db8:2::/48
locator ALPHA
  prefix 2001:db8:1::/48 behavior End.DX6 psp no usp
`

func TestMarshalJSON(t *testing.T) {
	cfg, err := Parse(sampleConfig)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"source_address":"2001:db8::1","locators":{` +
		`"ZULU":{"name":"ZULU","prefixes":[{"prefix":"2001:db8:2::/48"}]},` +
		`"ALPHA":{"name":"ALPHA","prefixes":[{"prefix":"2001:db8:1::/48","behavior":"End.DX6","psp":"enabled","usp":"disabled"}]}}}`
	if string(data) != want {
		t.Errorf("MarshalJSON() =\n%s\nwant:\n%s", data, want)
	}
}

func TestMarshalJSONNoSourceAddress(t *testing.T) {
	cfg, err := Parse("locator A\n")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if strings.Contains(string(data), "source_address") {
		t.Errorf("unset source address leaked into output: %s", data)
	}
}

func TestMarshalYAML(t *testing.T) {
	cfg, err := Parse(sampleConfig)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	// Declaration order survives, map storage notwithstanding
	zulu := strings.Index(string(data), "ZULU")
	alpha := strings.Index(string(data), "ALPHA")
	if zulu < 0 || alpha < 0 || zulu > alpha {
		t.Errorf("locators out of declaration order:\n%s", data)
	}

	var decoded struct {
		SourceAddress string `yaml:"source_address"`
		Locators      map[string]struct {
			Name     string `yaml:"name"`
			Prefixes []struct {
				Prefix   string `yaml:"prefix"`
				Behavior string `yaml:"behavior"`
				PSP      string `yaml:"psp"`
				USP      string `yaml:"usp"`
			} `yaml:"prefixes"`
		} `yaml:"locators"`
	}
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if decoded.SourceAddress != "2001:db8::1" {
		t.Errorf("source_address = %q", decoded.SourceAddress)
	}
	alphaLoc, ok := decoded.Locators["ALPHA"]
	if !ok {
		t.Fatalf("ALPHA missing from output:\n%s", data)
	}
	entry := alphaLoc.Prefixes[0]
	if entry.Prefix != "2001:db8:1::/48" || entry.Behavior != "End.DX6" ||
		entry.PSP != "enabled" || entry.USP != "disabled" {
		t.Errorf("ALPHA entry = %+v", entry)
	}

	// Unspecified flags are omitted, not rendered as "unspecified"
	if strings.Contains(string(data), "unspecified") {
		t.Errorf("unspecified flag leaked into output:\n%s", data)
	}
}

func TestFlagStateText(t *testing.T) {
	tests := []struct {
		name  string
		state FlagState
		want  string
	}{
		{name: "enabled", state: FlagEnabled, want: "enabled"},
		{name: "disabled", state: FlagDisabled, want: "disabled"},
		{name: "unspecified", state: FlagUnspecified, want: "unspecified"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			var back FlagState
			if err := back.UnmarshalText([]byte(tt.want)); err != nil {
				t.Fatalf("UnmarshalText(%q) error = %v", tt.want, err)
			}
			if back != tt.state {
				t.Errorf("UnmarshalText(%q) = %v, want %v", tt.want, back, tt.state)
			}
		})
	}

	var f FlagState
	if err := f.UnmarshalText([]byte("sometimes")); err == nil {
		t.Error("UnmarshalText accepted invalid state")
	}
}
