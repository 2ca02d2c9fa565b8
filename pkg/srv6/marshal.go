package srv6

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the config as a JSON object with locators keyed by
// name. The locators object is written by hand so declaration order
// survives the round trip through map-based storage.
func (c *Config) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	if c.SourceAddress != "" {
		buf.WriteString(`"source_address":`)
		addr, err := json.Marshal(c.SourceAddress)
		if err != nil {
			return nil, err
		}
		buf.Write(addr)
		buf.WriteByte(',')
	}

	buf.WriteString(`"locators":{`)
	for i, name := range c.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(c.locators[name])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteString("}}")

	return buf.Bytes(), nil
}

// MarshalYAML encodes the config as a YAML mapping, locators in
// declaration order.
func (c *Config) MarshalYAML() (interface{}, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}

	if c.SourceAddress != "" {
		root.Content = append(root.Content,
			scalarNode("source_address"), scalarNode(c.SourceAddress))
	}

	locs := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range c.order {
		val := &yaml.Node{}
		if err := val.Encode(c.locators[name]); err != nil {
			return nil, err
		}
		locs.Content = append(locs.Content, scalarNode(name), val)
	}
	root.Content = append(root.Content, scalarNode("locators"), locs)

	return root, nil
}

func scalarNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: s}
}
