package models

import (
	"strconv"
	"strings"
)

// FlexInt decodes a JSON field that the upstream serves inconsistently as a
// number, a numeric string, or null. Unparseable values decode to 0 rather
// than failing the whole envelope.
type FlexInt int64

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*f = FlexInt(n)
		return nil
	}
	if fl, err := strconv.ParseFloat(s, 64); err == nil {
		*f = FlexInt(int64(fl))
		return nil
	}
	*f = 0
	return nil
}

func (f FlexInt) Int() int { return int(f) }

func (f FlexInt) Int64() int64 { return int64(f) }
