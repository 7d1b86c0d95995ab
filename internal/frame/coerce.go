package frame

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ParseError reports a value in a date-flagged column that could not be
// parsed. Date conversion has no per-value fallback: one bad value
// fails the whole coercion call.
type ParseError struct {
	Column string
	Value  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("column %q: cannot parse %q as a date", e.Column, e.Value)
}

// dateLayouts are tried in order. Statsguru renders "14 Jun 1975",
// cricsheet renders "2008-04-18".
var dateLayouts = []string{
	"2 Jan 2006",
	"2006-01-02",
	"2006/01/02",
}

// Coerce converts column types in place:
//
//   - string columns are trimmed, empty strings become missing, and the
//     column converts to float only when every present value parses —
//     a single unparseable value leaves the whole column as text;
//   - float columns whose present values are all integral narrow to a
//     nullable integer column;
//   - columns whose name contains "date" (case-insensitive) parse as
//     calendar dates instead, returning *ParseError on any bad value.
func Coerce(f *Frame) error {
	return CoerceExcept(f)
}

// CoerceExcept is Coerce with the named columns pinned to text.
// Identifier columns whose values happen to be all digits must not
// narrow to numbers; they are still trimmed.
func CoerceExcept(f *Frame, keep ...string) error {
	kept := make(map[string]bool, len(keep))
	for _, k := range keep {
		kept[k] = true
	}

	for _, name := range f.Names() {
		col := f.Col(name)

		if kept[name] {
			if col.Kind() == String {
				trimStrings(col)
			}
			continue
		}

		if strings.Contains(strings.ToLower(name), "date") {
			parsed, err := toDate(name, col)
			if err != nil {
				return err
			}
			f.Set(name, parsed)
			continue
		}

		if col.Kind() == String {
			trimStrings(col)
			if converted, ok := tryFloats(col); ok {
				col = converted
				f.Set(name, col)
			}
		}

		if col.Kind() == Float {
			if narrowed, ok := tryNarrowInts(col); ok {
				f.Set(name, narrowed)
			}
		}
	}
	return nil
}

// trimStrings strips surrounding whitespace and nulls out empty values.
func trimStrings(c *Column) {
	for i := range c.strs {
		if !c.valid[i] {
			continue
		}
		c.strs[i] = strings.TrimSpace(c.strs[i])
		if c.strs[i] == "" {
			c.valid[i] = false
		}
	}
}

// tryFloats attempts a full-column numeric parse. Any unparseable
// present value aborts the conversion; there is no partial conversion.
func tryFloats(c *Column) (*Column, bool) {
	vals := make([]float64, c.Len())
	valid := make([]bool, c.Len())
	for i := range c.strs {
		if !c.valid[i] {
			continue
		}
		v, err := strconv.ParseFloat(c.strs[i], 64)
		if err != nil {
			return nil, false
		}
		vals[i] = v
		valid[i] = true
	}
	return NewFloats(vals, valid), true
}

// tryNarrowInts converts a float column to a nullable integer column
// when every present value is mathematically integral. Missing values
// stay missing; non-finite values block narrowing.
func tryNarrowInts(c *Column) (*Column, bool) {
	vals := make([]int64, c.Len())
	valid := make([]bool, c.Len())
	for i := range c.f64s {
		if !c.valid[i] {
			continue
		}
		v := c.f64s[i]
		if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
			return nil, false
		}
		vals[i] = int64(v)
		valid[i] = true
	}
	return NewInts(vals, valid), true
}

// toDate parses a column as calendar dates. Already-parsed date
// columns pass through; anything else must be text.
func toDate(name string, c *Column) (*Column, error) {
	if c.Kind() == Date {
		return c, nil
	}
	vals := make([]time.Time, c.Len())
	valid := make([]bool, c.Len())
	for i := 0; i < c.Len(); i++ {
		if c.IsNull(i) {
			continue
		}
		if c.Kind() != String {
			return nil, &ParseError{Column: name, Value: c.Format(i)}
		}
		raw := strings.TrimSpace(c.Str(i))
		if raw == "" {
			continue
		}
		t, err := parseDate(raw)
		if err != nil {
			return nil, &ParseError{Column: name, Value: raw}
		}
		vals[i] = t
		valid[i] = true
	}
	return NewDates(vals, valid), nil
}

func parseDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
