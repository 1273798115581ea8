package numeric

import (
	"fmt"

	"github.com/govalues/decimal"
)

// Step moves current by units of the smallest increment at l's precision
// (10^-places each) and normalizes the result. Positive units increment,
// negative units decrement; an empty current counts as zero.
//
// current is treated as a committed value: when it already sits on the bound
// in the direction of travel the normalized current is returned together
// with ErrStepDisabled.
func Step(current string, l Limits, units int64) (Value, error) {
	if current != "" {
		d, err := decimal.Parse(current)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q", ErrNotNumber, current)
		}
		v, err := l.normalize(d)
		if err != nil {
			return Value{}, err
		}
		if (units > 0 && v.AtUpper) || (units < 0 && v.AtLower) {
			return v, ErrStepDisabled
		}
	}
	return Shift(current, l, units)
}

// Shift is Step without the boundary check. Text past a bound moves by units
// and is then clamped, so "6" shifted up under max 5 yields "5".
func Shift(current string, l Limits, units int64) (Value, error) {
	var cur decimal.Decimal
	if current != "" {
		d, err := decimal.Parse(current)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q", ErrNotNumber, current)
		}
		cur = d
	}
	n, err := l.scaled(cur)
	if err != nil {
		return Value{}, err
	}
	n, err = n.Add(decimal.MustNew(units, 0))
	if err != nil {
		return Value{}, fmt.Errorf("%w: %v", ErrOverflow, err)
	}
	next, err := l.unscaled(n)
	if err != nil {
		return Value{}, err
	}
	return l.normalize(next)
}

// StepUnits converts a configured step size into units of 10^-places.
// A nil step means one unit. Steps finer than the precision round up to
// one unit so a click always moves the value.
func StepUnits(step *float64, places int) (int64, error) {
	if step == nil {
		return 1, nil
	}
	if *step <= 0 {
		return 0, fmt.Errorf("%w: step must be positive, got %v", ErrNotNumber, *step)
	}
	l, err := NewLimits(places, nil, nil)
	if err != nil {
		return 0, err
	}
	d, err := fromFloat(*step)
	if err != nil {
		return 0, err
	}
	n, err := l.scaled(d)
	if err != nil {
		return 0, err
	}
	units, _, ok := n.Int64(0)
	if !ok {
		return 0, fmt.Errorf("%w: step %v", ErrOverflow, *step)
	}
	if units < 1 {
		units = 1
	}
	return units, nil
}
