package numeric

import (
	"errors"
	"fmt"
	"math"

	"github.com/govalues/decimal"
)

// MaxPlaces is the largest number of fraction digits a field may keep.
// 10^MaxPlaces must fit the decimal coefficient.
const MaxPlaces = 18

var (
	ErrNotNumber    = errors.New("not a number")
	ErrOverflow     = errors.New("number out of range")
	ErrPlaces       = errors.New("decimal places out of range")
	ErrStepDisabled = errors.New("step disabled")
)

var half = decimal.MustNew(5, 1)

// Value is the canonical form of a committed field. The zero Value is the
// empty field.
type Value struct {
	Text    string // exactly Places fraction digits, or "" when empty
	AtLower bool   // value sits on the configured min
	AtUpper bool   // value sits on the configured max
}

// IsEmpty reports whether the field holds no number.
func (v Value) IsEmpty() bool { return v.Text == "" }

// Float returns the committed number; ok is false for an empty field.
func (v Value) Float() (f float64, ok bool) {
	if v.IsEmpty() {
		return 0, false
	}
	d, err := decimal.Parse(v.Text)
	if err != nil {
		return 0, false
	}
	return d.Float64()
}

func (v Value) String() string {
	if v.IsEmpty() {
		return "(empty)"
	}
	return v.Text
}

// Limits carries the numeric configuration of a field: precision and the
// optional inclusive bounds.
type Limits struct {
	places int
	factor decimal.Decimal // 10^places
	ulp    decimal.Decimal // 10^-places
	min    *decimal.Decimal
	max    *decimal.Decimal
}

// NewLimits validates places and converts the bounds to exact decimals.
func NewLimits(places int, min, max *float64) (Limits, error) {
	if places < 0 || places > MaxPlaces {
		return Limits{}, fmt.Errorf("%w: %d (want 0..%d)", ErrPlaces, places, MaxPlaces)
	}
	l := Limits{
		places: places,
		factor: decimal.MustNew(pow10(places), 0),
		ulp:    decimal.MustNew(1, places),
	}
	if min != nil {
		d, err := fromFloat(*min)
		if err != nil {
			return Limits{}, fmt.Errorf("min: %w", err)
		}
		l.min = &d
	}
	if max != nil {
		d, err := fromFloat(*max)
		if err != nil {
			return Limits{}, fmt.Errorf("max: %w", err)
		}
		l.max = &d
	}
	return l, nil
}

// Places returns the configured number of fraction digits.
func (l Limits) Places() int { return l.places }

// Normalize rounds and clamps a candidate string. Empty input yields the
// empty Value.
func Normalize(text string, l Limits) (Value, error) {
	if text == "" {
		return Value{}, nil
	}
	d, err := decimal.Parse(text)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %q", ErrNotNumber, text)
	}
	return l.normalize(d)
}

// NormalizeFloat is Normalize for a number supplied by the caller, such as a
// configured initial value. The float is taken at its shortest decimal form,
// so 1.005 is treated as 1.005 and not as its binary neighbour.
func NormalizeFloat(f float64, l Limits) (Value, error) {
	d, err := fromFloat(f)
	if err != nil {
		return Value{}, err
	}
	return l.normalize(d)
}

func (l Limits) normalize(d decimal.Decimal) (Value, error) {
	n, err := l.scaled(d)
	if err != nil {
		return Value{}, err
	}
	var v Value
	if l.min != nil {
		lo, err := l.scaled(*l.min)
		if err != nil {
			return Value{}, fmt.Errorf("min: %w", err)
		}
		v.AtLower = n.Cmp(lo) <= 0
	}
	if l.max != nil {
		hi, err := l.scaled(*l.max)
		if err != nil {
			return Value{}, fmt.Errorf("max: %w", err)
		}
		v.AtUpper = n.Cmp(hi) >= 0
	}
	// upper clamp is applied last so max wins when both flags hold
	if v.AtLower {
		n, _ = l.scaled(*l.min)
	}
	if v.AtUpper {
		n, _ = l.scaled(*l.max)
	}
	out, err := l.unscaled(n)
	if err != nil {
		return Value{}, err
	}
	v.Text = out.String()
	return v, nil
}

// scaled returns d*10^places rounded half away from zero to an integer.
func (l Limits) scaled(d decimal.Decimal) (decimal.Decimal, error) {
	s, err := d.Mul(l.factor)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %v", ErrOverflow, err)
	}
	a, err := s.Abs().Add(half)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %v", ErrOverflow, err)
	}
	return a.Trunc(0).CopySign(s), nil
}

// unscaled divides an integer count of units back down to places digits.
func (l Limits) unscaled(n decimal.Decimal) (decimal.Decimal, error) {
	out, err := n.Mul(l.ulp)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %v", ErrOverflow, err)
	}
	return out, nil
}

func fromFloat(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, fmt.Errorf("%w: %v", ErrNotNumber, f)
	}
	d, err := decimal.NewFromFloat64(f)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %v", ErrOverflow, err)
	}
	return d, nil
}

func pow10(n int) int64 {
	p := int64(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}
