package ittech

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrOutOfRange is returned when a ranged value is constructed from a number
// outside its declared range.
var ErrOutOfRange = errors.New("value out of range")

// RangeInclusive represents a range of integers [Min, Max], inclusive.
type RangeInclusive struct{ Min, Max int }

func (r RangeInclusive) Contains(value int) bool { return value >= r.Min && value <= r.Max }

func (r RangeInclusive) Clamp(value int) int { return max(min(value, r.Max), r.Min) }

func (r RangeInclusive) String() string { return fmt.Sprintf("%d..%d", r.Min, r.Max) }

// bound pins the range of a Ranged value at the type level, so that e.g. a
// Speed cannot be passed where a Tempo is expected even though both are bytes
// on disk.
type bound interface{ rangeInclusive() RangeInclusive }

type (
	volumeBound struct{}
	speedBound  struct{}
	tempoBound  struct{}
)

func (volumeBound) rangeInclusive() RangeInclusive { return RangeInclusive{0, 128} }
func (speedBound) rangeInclusive() RangeInclusive  { return RangeInclusive{1, 255} }
func (tempoBound) rangeInclusive() RangeInclusive  { return RangeInclusive{31, 255} }

type (
	// Ranged is a byte checked at construction to lie within the inclusive
	// range of its bound. Values built through the New* constructors or
	// unmarshaled from yaml/json stay in range for their whole lifetime; out
	// of range input is an error, never clamped, as a header field outside
	// its documented range means the file is malformed. The zero value is
	// usable only for bounds whose range contains zero.
	Ranged[B bound] struct {
		value byte
	}

	// Volume is a volume level 0..128, used for the global volume, the sample
	// volume and the pan separation fields.
	Volume = Ranged[volumeBound]

	// Speed is the initial speed (ticks per row) 1..255. Speed 0 would stall
	// playback and is rejected.
	Speed = Ranged[speedBound]

	// Tempo is the initial tempo 31..255.
	Tempo = Ranged[tempoBound]
)

func NewVolume(value byte) (Volume, error) { return newRanged[volumeBound](value) }

func NewSpeed(value byte) (Speed, error) { return newRanged[speedBound](value) }

func NewTempo(value byte) (Tempo, error) { return newRanged[tempoBound](value) }

func newRanged[B bound](value byte) (Ranged[B], error) {
	var b B
	if r := b.rangeInclusive(); !r.Contains(int(value)) {
		return Ranged[B]{}, fmt.Errorf("%w: %d not in %v", ErrOutOfRange, value, r)
	}
	return Ranged[B]{value: value}, nil
}

// Value returns the wrapped byte, guaranteed to be within Range.
func (v Ranged[B]) Value() byte { return v.value }

func (v Ranged[B]) Range() RangeInclusive {
	var b B
	return b.rangeInclusive()
}

func (v Ranged[B]) String() string { return fmt.Sprintf("%d", v.value) }

func (v Ranged[B]) MarshalYAML() (interface{}, error) { return int(v.value), nil }

func (v *Ranged[B]) UnmarshalYAML(value *yaml.Node) error {
	var raw int
	if err := value.Decode(&raw); err != nil {
		return err
	}
	return v.set(raw)
}

func (v Ranged[B]) MarshalJSON() ([]byte, error) { return json.Marshal(int(v.value)) }

func (v *Ranged[B]) UnmarshalJSON(data []byte) error {
	var raw int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return v.set(raw)
}

func (v *Ranged[B]) set(raw int) error {
	var b B
	if r := b.rangeInclusive(); !r.Contains(raw) {
		return fmt.Errorf("%w: %d not in %v", ErrOutOfRange, raw, r)
	}
	v.value = byte(raw)
	return nil
}
