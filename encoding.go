// encoding.go projects the path types onto text-based serialisation.
//
// Every type marshals to its native display string. Only the owning forms
// unmarshal: decoding allocates a fresh value, which is exactly what the
// owning forms are for. Unmarshalling re-validates through the same
// constructors as direct construction, so a payload that is not normalised or
// not absolute as required fails the surrounding decode with the
// constructor's message.
//
// encoding.TextMarshaler/TextUnmarshaler cover encoding/json and anything
// else that honours them. gopkg.in/yaml.v3 needs its own method pair: its
// encoder honours TextMarshaler but its decoder does not fall back to
// TextUnmarshaler.

package typedpath

import (
	"encoding"

	"gopkg.in/yaml.v3"
)

var (
	_ encoding.TextMarshaler   = AbsolutePath{}
	_ encoding.TextMarshaler   = RelativePath{}
	_ encoding.TextMarshaler   = CombinedPath{}
	_ encoding.TextMarshaler   = AbsolutePathBuf{}
	_ encoding.TextMarshaler   = RelativePathBuf{}
	_ encoding.TextMarshaler   = CombinedPathBuf{}
	_ encoding.TextUnmarshaler = (*AbsolutePathBuf)(nil)
	_ encoding.TextUnmarshaler = (*RelativePathBuf)(nil)
	_ encoding.TextUnmarshaler = (*CombinedPathBuf)(nil)
)

// MarshalText renders the path as its native display string.
func (p AbsolutePath) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// MarshalText renders the path as its native display string.
func (p RelativePath) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// MarshalText renders the active variant as its native display string.
func (p CombinedPath) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// MarshalText renders the path as its native display string.
func (p AbsolutePathBuf) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// MarshalText renders the path as its native display string.
func (p RelativePathBuf) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// MarshalText renders the active variant as its native display string.
func (p CombinedPathBuf) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText re-validates text through NewAbsolutePathBuf.
func (p *AbsolutePathBuf) UnmarshalText(text []byte) error {
	v, err := NewAbsolutePathBuf(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// UnmarshalText re-validates text through NewRelativePathBuf.
func (p *RelativePathBuf) UnmarshalText(text []byte) error {
	v, err := NewRelativePathBuf(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// UnmarshalText re-dispatches text on its root marker, exactly as
// NewCombinedPathBuf does at construction time.
func (p *CombinedPathBuf) UnmarshalText(text []byte) error {
	v, err := NewCombinedPathBuf(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// MarshalYAML renders the path as its native display string.
func (p AbsolutePath) MarshalYAML() (any, error) { return p.String(), nil }

// MarshalYAML renders the path as its native display string.
func (p RelativePath) MarshalYAML() (any, error) { return p.String(), nil }

// MarshalYAML renders the active variant as its native display string.
func (p CombinedPath) MarshalYAML() (any, error) { return p.String(), nil }

// MarshalYAML renders the path as its native display string.
func (p AbsolutePathBuf) MarshalYAML() (any, error) { return p.String(), nil }

// MarshalYAML renders the path as its native display string.
func (p RelativePathBuf) MarshalYAML() (any, error) { return p.String(), nil }

// MarshalYAML renders the active variant as its native display string.
func (p CombinedPathBuf) MarshalYAML() (any, error) { return p.String(), nil }

// UnmarshalYAML re-validates a YAML scalar through NewAbsolutePathBuf.
func (p *AbsolutePathBuf) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return p.UnmarshalText([]byte(s))
}

// UnmarshalYAML re-validates a YAML scalar through NewRelativePathBuf.
func (p *RelativePathBuf) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return p.UnmarshalText([]byte(s))
}

// UnmarshalYAML re-dispatches a YAML scalar on its root marker.
func (p *CombinedPathBuf) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return p.UnmarshalText([]byte(s))
}
