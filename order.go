package ittech

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Order is one entry of the orders list, in the same single-byte encoding the
// orders list has on disk: values below OrderSeparator play the pattern with
// that id, and the two top values are markers. OrderSeparator is inert filler
// with no playback effect; OrderEndOfSong terminates playback sequencing
// (whether a player then stops or loops is the player's business).
type Order uint8

const (
	OrderSeparator Order = 254
	OrderEndOfSong Order = 255
)

// PatternOrder returns the order entry playing the given pattern. Pattern ids
// 254 and 255 are unrepresentable in an orders list; they alias the markers.
func PatternOrder(id PatternID) Order { return Order(id) }

// Pattern returns the referenced pattern id, or false for the two markers.
func (o Order) Pattern() (PatternID, bool) {
	if o >= OrderSeparator {
		return 0, false
	}
	return PatternID(o), true
}

func (o Order) IsSeparator() bool { return o == OrderSeparator }

func (o Order) IsEndOfSong() bool { return o == OrderEndOfSong }

// String renders markers in their conventional tracker notation: "+++" for a
// separator and "---" for end of song.
func (o Order) String() string {
	switch o {
	case OrderSeparator:
		return "+++"
	case OrderEndOfSong:
		return "---"
	}
	return strconv.Itoa(int(o))
}

func (o Order) MarshalYAML() (interface{}, error) {
	if id, ok := o.Pattern(); ok {
		return int(id), nil
	}
	return o.String(), nil
}

func (o *Order) UnmarshalYAML(value *yaml.Node) error {
	return o.parse(value.Value)
}

func (o Order) MarshalJSON() ([]byte, error) {
	if id, ok := o.Pattern(); ok {
		return json.Marshal(int(id))
	}
	return json.Marshal(o.String())
}

func (o *Order) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		return o.parse(raw)
	}
	return o.parse(string(data))
}

func (o *Order) parse(raw string) error {
	switch raw {
	case "+++":
		*o = OrderSeparator
		return nil
	case "---":
		*o = OrderEndOfSong
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid order entry %q", raw)
	}
	if n < 0 || n >= int(OrderSeparator) {
		return fmt.Errorf("order entry %d is not a valid pattern id", n)
	}
	*o = Order(n)
	return nil
}
