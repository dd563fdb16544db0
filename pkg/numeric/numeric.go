// Package numeric provides lenient JSON number types for fields that
// historically arrive as either numbers or strings. Unparseable input is
// coerced to zero rather than rejected; this is a documented permissive-parse
// policy for fee, price and quantity style fields, not an error path.
package numeric

import (
	"bytes"
	"strconv"
	"strings"
)

// Float is a float64 that unmarshals from a JSON number, a quoted numeric
// string, or null. Anything unparseable becomes 0.
type Float float64

func (f *Float) UnmarshalJSON(data []byte) error {
	*f = Float(parseFloat(data))
	return nil
}

func (f Float) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(f), 'f', -1, 64)), nil
}

// Int is an int that unmarshals from a JSON number, a quoted numeric string,
// or null. Anything unparseable becomes 0. Fractional input is truncated.
type Int int

func (i *Int) UnmarshalJSON(data []byte) error {
	*i = Int(parseFloat(data))
	return nil
}

func (i Int) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(i))), nil
}

// ID is an int64 foreign-key value that tolerates being sent as a quoted
// string. Unlike Float and Int it reports nothing for invalid input either;
// the zero id never matches a stored record, so a bad key resolves to the
// unknown sentinel downstream instead of failing the request.
type ID int64

func (id *ID) UnmarshalJSON(data []byte) error {
	*id = ID(parseFloat(data))
	return nil
}

func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(id), 10)), nil
}

func parseFloat(data []byte) float64 {
	s := string(bytes.Trim(data, `"`))
	s = strings.TrimSpace(s)
	if s == "" || s == "null" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
