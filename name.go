package ittech

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// NameLength is the fixed capacity of the song name field.
const NameLength = 26

// Name is the fixed-capacity song name. The on-disk field is 26 bytes that
// may contain NUL bytes in the middle of the text, so the significant length
// is tracked explicitly instead of stopping at the first terminator.
type Name struct {
	buf    [NameLength]byte
	length int
}

// NewName builds a Name from raw header bytes, keeping at most NameLength
// bytes; longer input is truncated.
func NewName(raw []byte) Name {
	var n Name
	n.length = copy(n.buf[:], raw)
	return n
}

func (n Name) Len() int { return n.length }

// Bytes returns a copy of the significant bytes of the name, embedded NULs
// included.
func (n Name) Bytes() []byte {
	return append([]byte(nil), n.buf[:n.length]...)
}

func (n Name) String() string { return string(n.buf[:n.length]) }

func (n Name) MarshalYAML() (interface{}, error) { return n.String(), nil }

func (n *Name) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*n = NewName([]byte(raw))
	return nil
}

func (n Name) MarshalJSON() ([]byte, error) { return json.Marshal(n.String()) }

func (n *Name) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*n = NewName([]byte(raw))
	return nil
}
