package model

import (
	"math"
	"strconv"

	"github.com/rotisserie/eris"
)

// JSONFloat is a float64 that survives JSON round-trips when infinite.
// encoding/json refuses to marshal ±Inf, but the vendor-client spend ratio is
// defined as +Inf whenever client spend is zero.
type JSONFloat float64

// MarshalJSON encodes infinities as quoted strings and everything else as a
// plain JSON number.
func (f JSONFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsInf(v, 1) {
		return []byte(`"Infinity"`), nil
	}
	if math.IsInf(v, -1) {
		return []byte(`"-Infinity"`), nil
	}
	return []byte(strconv.FormatFloat(v, 'f', -1, 64)), nil
}

// UnmarshalJSON accepts both plain numbers and the quoted infinity forms
// produced by MarshalJSON.
func (f *JSONFloat) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"Infinity"`:
		*f = JSONFloat(math.Inf(1))
		return nil
	case `"-Infinity"`:
		*f = JSONFloat(math.Inf(-1))
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return eris.Wrap(err, "model: parse ratio")
	}
	*f = JSONFloat(v)
	return nil
}
