package dto

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// The registration form and the older mobile clients are loose about JSON
// scalar types: numbers arrive quoted, months arrive as strings, a single
// subject arrives as a bare string. These types absorb that at the
// boundary so the rest of the code deals with well-typed values.

// FlexFloat unmarshals from a JSON number or a numeric string.
type FlexFloat float64

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexFloat(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("invalid numeric value %q", s)
		}
		*f = FlexFloat(parsed)
		return nil
	}

	return fmt.Errorf("value must be a number or a numeric string")
}

// Float64 returns the underlying value.
func (f FlexFloat) Float64() float64 {
	return float64(f)
}

// FlexInt unmarshals from a JSON number or a numeric string.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (i *FlexInt) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*i = FlexInt(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("invalid integer value %q", s)
		}
		*i = FlexInt(parsed)
		return nil
	}

	return fmt.Errorf("value must be an integer or an integer string")
}

// Int returns the underlying value.
func (i FlexInt) Int() int {
	return int(i)
}

// FlexString unmarshals from a JSON string or a JSON number (rendered as
// its literal, so 2025 becomes "2025").
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexString(n.String())
		return nil
	}

	return fmt.Errorf("value must be a string or a number")
}

// String returns the underlying value.
func (f FlexString) String() string {
	return string(f)
}

// StringList unmarshals from a JSON array of strings or a single bare
// string, which is normalized into a one-element list.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*l = list
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = []string{s}
		return nil
	}

	return fmt.Errorf("value must be a string or a list of strings")
}
