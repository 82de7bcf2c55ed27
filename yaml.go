package fstring

import "gopkg.in/yaml.v3"

// MarshalYAML implements yaml.Marshaler, emitting the content as a plain
// scalar. Value receiver: the yaml encoder looks the interface up on field
// values directly, never through their address.
func (s String[C, A]) MarshalYAML() (any, error) {
	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. yaml.v3 never consults
// encoding.TextUnmarshaler on decode, so the type implements the yaml
// interface directly. Oversized scalars are truncated to capacity.
func (s *String[C, A]) UnmarshalYAML(value *yaml.Node) error {
	var str string
	if err := value.Decode(&str); err != nil {
		return err
	}
	s.Clear()
	s.AppendString(str)
	return nil
}
