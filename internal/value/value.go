// Package value defines the closed set of value shapes that can travel
// between block ports: a numeric series, a boolean series, or a single
// scalar. Blocks pattern-match on the kind at their boundary instead of
// reaching into untyped data.
//
// Numeric values are float64 so that NaN can act as the "undefined at this
// index" sentinel required by indicator semantics (e.g. VWAP over zero
// volume, moving-average warmup).
package value

import (
	"fmt"
	"math"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	// KindInvalid is the kind of the zero Value. It is never produced by a
	// well-behaved block.
	KindInvalid Kind = iota
	// KindSeries is an ordered sequence of float64 samples.
	KindSeries
	// KindBoolSeries is an ordered sequence of boolean signals.
	KindBoolSeries
	// KindScalar is a single float64.
	KindScalar
)

// String returns a human-readable name for the kind, used in error messages.
func (k Kind) String() string {
	switch k {
	case KindSeries:
		return "series"
	case KindBoolSeries:
		return "bool_series"
	case KindScalar:
		return "scalar"
	default:
		return "invalid"
	}
}

// Value is a tagged variant holding exactly one of the supported shapes.
// The zero Value is invalid.
type Value struct {
	kind       Kind
	series     []float64
	boolSeries []bool
	scalar     float64
}

// SeriesVal wraps a numeric series. The slice is used as-is, not copied;
// callers hand over ownership.
func SeriesVal(s []float64) Value {
	return Value{kind: KindSeries, series: s}
}

// BoolSeriesVal wraps a boolean series.
func BoolSeriesVal(s []bool) Value {
	return Value{kind: KindBoolSeries, boolSeries: s}
}

// ScalarVal wraps a single number.
func ScalarVal(f float64) Value {
	return Value{kind: KindScalar, scalar: f}
}

// Kind reports which variant the value holds.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether the value holds any variant at all.
func (v Value) IsValid() bool { return v.kind != KindInvalid }

// AsSeries returns the numeric series, or an error if the value holds a
// different kind.
func (v Value) AsSeries() ([]float64, error) {
	if v.kind != KindSeries {
		return nil, fmt.Errorf("value is %s, not series", v.kind)
	}
	return v.series, nil
}

// AsBoolSeries returns the boolean series, or an error if the value holds a
// different kind.
func (v Value) AsBoolSeries() ([]bool, error) {
	if v.kind != KindBoolSeries {
		return nil, fmt.Errorf("value is %s, not bool_series", v.kind)
	}
	return v.boolSeries, nil
}

// AsScalar returns the scalar, or an error if the value holds a different kind.
func (v Value) AsScalar() (float64, error) {
	if v.kind != KindScalar {
		return 0, fmt.Errorf("value is %s, not scalar", v.kind)
	}
	return v.scalar, nil
}

// Len returns the element count for series kinds and 1 for a scalar.
func (v Value) Len() int {
	switch v.kind {
	case KindSeries:
		return len(v.series)
	case KindBoolSeries:
		return len(v.boolSeries)
	case KindScalar:
		return 1
	default:
		return 0
	}
}

// Equal compares two values structurally. NaN elements compare equal to NaN
// so that indicator outputs carrying the sentinel can be asserted on.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindSeries:
		if len(v.series) != len(o.series) {
			return false
		}
		for i := range v.series {
			if !floatEqual(v.series[i], o.series[i]) {
				return false
			}
		}
		return true
	case KindBoolSeries:
		if len(v.boolSeries) != len(o.boolSeries) {
			return false
		}
		for i := range v.boolSeries {
			if v.boolSeries[i] != o.boolSeries[i] {
				return false
			}
		}
		return true
	case KindScalar:
		return floatEqual(v.scalar, o.scalar)
	default:
		return true
	}
}

// GoString renders the value for log lines and test failure messages.
func (v Value) GoString() string {
	switch v.kind {
	case KindSeries:
		return fmt.Sprintf("series%v", v.series)
	case KindBoolSeries:
		return fmt.Sprintf("bool_series%v", v.boolSeries)
	case KindScalar:
		return fmt.Sprintf("scalar(%v)", v.scalar)
	default:
		return "invalid"
	}
}

func floatEqual(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return a == b
}
