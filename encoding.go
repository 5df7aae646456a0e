package staticstr

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func (s String[A]) MarshalText() ([]byte, error) {
	return s.Bytes(), nil
}

// UnmarshalText replaces the contents of s. Text longer than the capacity
// fails with ErrOutOfBounds and leaves s unchanged.
func (s *String[A]) UnmarshalText(text []byte) error {
	v, err := TryFromUTF8[A](text)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s String[A]) MarshalYAML() (any, error) {
	return s.String(), nil
}

func (s *String[A]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("staticstr: line %d: expected a scalar, got kind %d", node.Line, node.Kind)
	}
	var str string
	if err := node.Decode(&str); err != nil {
		return err
	}
	v, err := TryFrom[A](str)
	if err != nil {
		return fmt.Errorf("staticstr: line %d: %q: %w", node.Line, str, err)
	}
	*s = v
	return nil
}
