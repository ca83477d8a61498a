package hclgraph

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/signalgridgo/internal/value"
)

// ctyToValue converts an evaluated seed expression into a port value. The
// accepted shapes are the closed variant set: a list/tuple of numbers, a
// list/tuple of bools, or a single number.
func ctyToValue(v cty.Value) (value.Value, error) {
	if v.IsNull() {
		return value.Value{}, fmt.Errorf("seed value is null")
	}
	ty := v.Type()

	switch {
	case ty == cty.Number:
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return value.Value{}, fmt.Errorf("bad scalar seed: %w", err)
		}
		return value.ScalarVal(f), nil

	case ty.IsListType() || ty.IsTupleType():
		it := v.ElementIterator()
		var floats []float64
		var bools []bool
		for it.Next() {
			_, ev := it.Element()
			switch ev.Type() {
			case cty.Number:
				var f float64
				if err := gocty.FromCtyValue(ev, &f); err != nil {
					return value.Value{}, fmt.Errorf("bad series element: %w", err)
				}
				floats = append(floats, f)
			case cty.Bool:
				bools = append(bools, ev.True())
			default:
				return value.Value{}, fmt.Errorf("series elements must be numbers or bools, got %s", ev.Type().FriendlyName())
			}
		}
		if len(bools) > 0 && len(floats) > 0 {
			return value.Value{}, fmt.Errorf("series mixes numbers and bools")
		}
		if len(bools) > 0 {
			return value.BoolSeriesVal(bools), nil
		}
		if floats == nil {
			floats = []float64{}
		}
		return value.SeriesVal(floats), nil

	default:
		return value.Value{}, fmt.Errorf("unsupported seed shape %s", ty.FriendlyName())
	}
}

// ctyToGo converts a config attribute value into a plain Go value: string,
// bool, float64, or a slice of those for lists/tuples.
func ctyToGo(v cty.Value) (any, error) {
	if v.IsNull() {
		return nil, nil
	}
	ty := v.Type()

	switch {
	case ty == cty.String:
		return v.AsString(), nil
	case ty == cty.Bool:
		return v.True(), nil
	case ty == cty.Number:
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return nil, err
		}
		return f, nil
	case ty.IsListType() || ty.IsTupleType():
		var out []any
		it := v.ElementIterator()
		for it.Next() {
			_, ev := it.Element()
			gv, err := ctyToGo(ev)
			if err != nil {
				return nil, err
			}
			out = append(out, gv)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported config value type %s", ty.FriendlyName())
	}
}
