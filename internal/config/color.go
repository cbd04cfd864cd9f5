package config

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// RGB is a color in [0,1]^3. In YAML it is written as a "#rrggbb" string or
// as a [r, g, b] sequence of floats.
type RGB colorful.Color

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *RGB) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		parsed, err := colorful.Hex(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: color %q: %w", node.Line, node.Value, err)
		}
		*c = RGB(parsed)
		return nil
	case yaml.SequenceNode:
		var ch []float64
		if err := node.Decode(&ch); err != nil {
			return fmt.Errorf("line %d: color: %w", node.Line, err)
		}
		if len(ch) != 3 {
			return fmt.Errorf("line %d: color needs 3 channels, got %d", node.Line, len(ch))
		}
		*c = RGB{R: ch[0], G: ch[1], B: ch[2]}
		return nil
	default:
		return fmt.Errorf("line %d: color must be a hex string or [r, g, b]", node.Line)
	}
}

// MarshalYAML implements yaml.Marshaler. Float channels keep full precision.
func (c RGB) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range []float64{c.R, c.G, c.B} {
		var n yaml.Node
		if err := n.Encode(v); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &n)
	}
	return node, nil
}
