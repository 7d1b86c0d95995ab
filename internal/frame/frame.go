// Package frame implements the small ordered-column table the cleaning
// pipeline operates on. A Frame is rows × named columns; every column
// carries a validity mask so missing values survive numeric narrowing.
//
// Frames are created fresh per invocation from scraped HTML tables or
// CSV files and never shared between calls.
package frame

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Kind identifies the storage type of a Column.
type Kind int

const (
	String Kind = iota
	Float
	Int
	Bool
	Date
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Float:
		return "float"
	case Int:
		return "int"
	case Bool:
		return "bool"
	case Date:
		return "date"
	}
	return "unknown"
}

// SchemaError reports a column that was expected in an input table but
// is absent. It is fatal: no partial result is produced.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("expected column %q is missing from input table", e.Column)
}

// --------------------------------------------------------------------------
// Column
// --------------------------------------------------------------------------

// Column is a single typed column with a validity mask. The zero value
// is not usable; use the New* constructors.
type Column struct {
	kind  Kind
	strs  []string
	f64s  []float64
	i64s  []int64
	bools []bool
	dates []time.Time
	valid []bool
}

// NewStrings creates a string column with every value present.
func NewStrings(vals []string) *Column {
	valid := make([]bool, len(vals))
	for i := range valid {
		valid[i] = true
	}
	return &Column{kind: String, strs: vals, valid: valid}
}

// NewStringsValid creates a string column with an explicit validity mask.
func NewStringsValid(vals []string, valid []bool) *Column {
	return &Column{kind: String, strs: vals, valid: valid}
}

// NewFloats creates a float column with an explicit validity mask.
func NewFloats(vals []float64, valid []bool) *Column {
	return &Column{kind: Float, f64s: vals, valid: valid}
}

// NewInts creates a nullable integer column.
func NewInts(vals []int64, valid []bool) *Column {
	return &Column{kind: Int, i64s: vals, valid: valid}
}

// NewBools creates a bool column with an explicit validity mask.
func NewBools(vals []bool, valid []bool) *Column {
	return &Column{kind: Bool, bools: vals, valid: valid}
}

// NewDates creates a date column with an explicit validity mask.
func NewDates(vals []time.Time, valid []bool) *Column {
	return &Column{kind: Date, dates: vals, valid: valid}
}

// Len returns the number of rows in the column.
func (c *Column) Len() int { return len(c.valid) }

// Kind returns the storage type of the column.
func (c *Column) Kind() Kind { return c.kind }

// IsNull reports whether the value at row i is missing.
func (c *Column) IsNull(i int) bool { return !c.valid[i] }

// SetNull marks the value at row i as missing.
func (c *Column) SetNull(i int) { c.valid[i] = false }

// Str returns the string value at row i. Only meaningful for String columns.
func (c *Column) Str(i int) string { return c.strs[i] }

// SetStr replaces the string value at row i and marks it present.
func (c *Column) SetStr(i int, v string) {
	c.strs[i] = v
	c.valid[i] = true
}

// Float returns the float value at row i.
func (c *Column) Float(i int) float64 { return c.f64s[i] }

// Int returns the integer value at row i.
func (c *Column) Int(i int) int64 { return c.i64s[i] }

// Bool returns the bool value at row i.
func (c *Column) Bool(i int) bool { return c.bools[i] }

// Date returns the date value at row i.
func (c *Column) Date(i int) time.Time { return c.dates[i] }

// Number returns the value at row i as a float64 for Float and Int
// columns. ok is false for missing values and non-numeric columns.
func (c *Column) Number(i int) (float64, bool) {
	if !c.valid[i] {
		return 0, false
	}
	switch c.kind {
	case Float:
		return c.f64s[i], true
	case Int:
		return float64(c.i64s[i]), true
	}
	return 0, false
}

// Value returns the value at row i as an interface{}, or nil when
// missing. Dates render as YYYY-MM-DD strings.
func (c *Column) Value(i int) interface{} {
	if !c.valid[i] {
		return nil
	}
	switch c.kind {
	case String:
		return c.strs[i]
	case Float:
		if math.IsInf(c.f64s[i], 0) || math.IsNaN(c.f64s[i]) {
			return nil
		}
		return c.f64s[i]
	case Int:
		return c.i64s[i]
	case Bool:
		return c.bools[i]
	case Date:
		return c.dates[i].Format("2006-01-02")
	}
	return nil
}

// Format renders the value at row i as text; missing values render empty.
func (c *Column) Format(i int) string {
	if !c.valid[i] {
		return ""
	}
	switch c.kind {
	case String:
		return c.strs[i]
	case Float:
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.4f", c.f64s[i]), "0"), ".")
	case Int:
		return fmt.Sprintf("%d", c.i64s[i])
	case Bool:
		if c.bools[i] {
			return "true"
		}
		return "false"
	case Date:
		return c.dates[i].Format("2006-01-02")
	}
	return ""
}

// MapStrings applies fn to every present value of a string column.
func (c *Column) MapStrings(fn func(string) string) {
	for i := range c.strs {
		if c.valid[i] {
			c.strs[i] = fn(c.strs[i])
		}
	}
}

// --------------------------------------------------------------------------
// Frame
// --------------------------------------------------------------------------

// Frame is an ordered collection of named columns of equal length.
type Frame struct {
	names []string
	cols  map[string]*Column
}

// New creates an empty Frame.
func New() *Frame {
	return &Frame{cols: make(map[string]*Column)}
}

// Len returns the number of rows (zero for an empty frame).
func (f *Frame) Len() int {
	for _, name := range f.names {
		return f.cols[name].Len()
	}
	return 0
}

// Names returns the column names in presentation order.
func (f *Frame) Names() []string {
	out := make([]string, len(f.names))
	copy(out, f.names)
	return out
}

// Has reports whether a column exists.
func (f *Frame) Has(name string) bool {
	_, ok := f.cols[name]
	return ok
}

// Col returns the named column, or nil when absent.
func (f *Frame) Col(name string) *Column { return f.cols[name] }

// Set adds or replaces a column. New columns append to the order.
func (f *Frame) Set(name string, c *Column) {
	if _, exists := f.cols[name]; !exists {
		f.names = append(f.names, name)
	}
	f.cols[name] = c
}

// Drop removes a column if present.
func (f *Frame) Drop(name string) {
	if _, exists := f.cols[name]; !exists {
		return
	}
	delete(f.cols, name)
	for i, n := range f.names {
		if n == name {
			f.names = append(f.names[:i], f.names[i+1:]...)
			break
		}
	}
}

// LowerNames lower-cases every column name, preserving order.
func (f *Frame) LowerNames() {
	renames := make(map[string]string)
	for _, n := range f.names {
		if lower := strings.ToLower(n); lower != n {
			renames[n] = lower
		}
	}
	f.Rename(renames)
}

// Rename renames columns in place per the given old→new mapping.
// Absent keys are ignored.
func (f *Frame) Rename(m map[string]string) {
	for i, n := range f.names {
		newName, ok := m[n]
		if !ok {
			continue
		}
		f.names[i] = newName
		f.cols[newName] = f.cols[n]
		delete(f.cols, n)
	}
}

// Select returns a new frame containing only the listed columns that
// exist, in the listed order. Absent names are skipped, never
// synthesized.
func (f *Frame) Select(order []string) *Frame {
	out := New()
	for _, name := range order {
		if col, ok := f.cols[name]; ok {
			out.Set(name, col)
		}
	}
	return out
}

// Reorder returns a new frame with the listed columns first (those that
// exist) and all remaining columns appended in their original order.
func (f *Frame) Reorder(order []string) *Frame {
	out := New()
	listed := make(map[string]bool, len(order))
	for _, name := range order {
		if col, ok := f.cols[name]; ok {
			out.Set(name, col)
			listed[name] = true
		}
	}
	for _, name := range f.names {
		if !listed[name] {
			out.Set(name, f.cols[name])
		}
	}
	return out
}

// AppendRows appends the rows of other to f. Both frames must be
// all-string with identical column sets; used to combine paginated
// scrape results before any coercion runs.
func (f *Frame) AppendRows(other *Frame) error {
	if len(f.names) == 0 {
		f.names = other.Names()
		for _, n := range f.names {
			f.cols[n] = other.cols[n]
		}
		return nil
	}
	if len(other.names) != len(f.names) {
		return fmt.Errorf("append rows: column count mismatch (%d vs %d)", len(other.names), len(f.names))
	}
	for _, name := range f.names {
		dst := f.cols[name]
		src := other.cols[name]
		if src == nil {
			return &SchemaError{Column: name}
		}
		if dst.kind != String || src.kind != String {
			return fmt.Errorf("append rows: column %q is not a string column", name)
		}
		dst.strs = append(dst.strs, src.strs...)
		dst.valid = append(dst.valid, src.valid...)
	}
	return nil
}

// RowMap returns row i as a name→value map with nil for missing values.
func (f *Frame) RowMap(i int) map[string]interface{} {
	row := make(map[string]interface{}, len(f.names))
	for _, name := range f.names {
		row[name] = f.cols[name].Value(i)
	}
	return row
}
