package domain

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strconv"
)

// leadingNumber matches the numeric prefix a browser form's parseFloat accepts
var leadingNumber = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)

// FormNumber is a numeric form field. It decodes from a JSON number or a
// string; empty or unparsable input leaves it unset rather than failing.
type FormNumber struct {
	Value float64
	Set   bool
}

// Num builds a set FormNumber
func Num(v float64) FormNumber {
	return FormNumber{Value: v, Set: true}
}

// ParseFormNumber parses the leading numeric prefix of raw
func ParseFormNumber(raw string) FormNumber {
	trimmed := bytes.TrimSpace([]byte(raw))
	match := leadingNumber.Find(trimmed)
	if match == nil {
		return FormNumber{}
	}
	v, err := strconv.ParseFloat(string(match), 64)
	if err != nil {
		return FormNumber{}
	}
	return FormNumber{Value: v, Set: true}
}

// Or returns the value, or fallback when the field is unset
func (n FormNumber) Or(fallback float64) float64 {
	if !n.Set {
		return fallback
	}
	return n.Value
}

// Float returns the value with unset treated as zero
func (n FormNumber) Float() float64 {
	return n.Or(0)
}

// UnmarshalJSON implements json.Unmarshaler
func (n *FormNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = FormNumber{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = ParseFormNumber(s)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		// booleans, objects and arrays coerce like any other garbage input
		*n = FormNumber{}
		return nil
	}
	*n = Num(v)
	return nil
}

// MarshalJSON implements json.Marshaler
func (n FormNumber) MarshalJSON() ([]byte, error) {
	if !n.Set {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}
