// pkg/frame/value.go
package frame

import (
	"fmt"
	"strconv"
	"time"
)

// Kind identifies the runtime type of a cell value.
// Cells are a closed tagged variant; there is no open "any" kind.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindText
	KindTime
)

// String returns the lowercase label used in diagnostics and column profiles.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	case KindTime:
		return "time"
	default:
		return "unknown"
	}
}

// IsNumeric reports whether the kind is one of the numeric-compatible kinds.
// Int and float are interchangeable for mixed-type purposes.
func (k Kind) IsNumeric() bool {
	return k == KindInt || k == KindFloat
}

// Value is a single immutable cell. The zero Value is the missing cell.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	t    time.Time
}

// Null returns the missing cell.
func Null() Value { return Value{} }

// Bool returns a boolean cell.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer cell.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating-point cell.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Text returns a text cell.
func Text(s string) Value { return Value{kind: KindText, s: s} }

// Time returns a temporal cell.
func Time(t time.Time) Value { return Value{kind: KindTime, t: t} }

// Kind returns the runtime kind of the cell.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the cell is missing.
func (v Value) IsNull() bool { return v.kind == KindNull }

// BoolValue returns the boolean payload. Valid only for KindBool cells.
func (v Value) BoolValue() bool { return v.b }

// IntValue returns the integer payload. Valid only for KindInt cells.
func (v Value) IntValue() int64 { return v.i }

// FloatValue returns the float payload. Valid only for KindFloat cells.
func (v Value) FloatValue() float64 { return v.f }

// TextValue returns the text payload. Valid only for KindText cells.
func (v Value) TextValue() string { return v.s }

// TimeValue returns the temporal payload. Valid only for KindTime cells.
func (v Value) TimeValue() time.Time { return v.t }

// AsFloat returns the cell as a float64 when it holds either numeric kind.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	default:
		return 0, false
	}
}

// Native returns the cell payload as a plain Go value, nil for missing cells.
// Used when handing samples to serialization-facing consumers.
func (v Value) Native() interface{} {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindText:
		return v.s
	case KindTime:
		return v.t
	default:
		return nil
	}
}

// String renders the cell for display. Missing cells render as the empty string.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindText:
		return v.s
	case KindTime:
		return v.t.Format(time.RFC3339)
	default:
		return ""
	}
}

// Equal reports whether two cells hold the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	case KindText:
		return v.s == o.s
	case KindTime:
		return v.t.Equal(o.t)
	default:
		return false
	}
}

// Fingerprint returns a kind-prefixed encoding of the cell so that cells of
// different kinds with the same display text cannot collide.
func (v Value) Fingerprint() string {
	return fmt.Sprintf("%d:%s", v.kind, v.String())
}
