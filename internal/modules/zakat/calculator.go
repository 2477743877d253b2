package zakat

import (
	"fmt"
	"math"
	"strings"
)

type Calculator struct {
	nisab Nisab
}

func NewCalculator(n Nisab) (*Calculator, error) {
	if !(n.Gold > 0) || !(n.Silver > 0) || math.IsInf(n.Gold, 0) || math.IsInf(n.Silver, 0) {
		return nil, fmt.Errorf("%w: %+v", ErrInvalidNisab, n)
	}
	return &Calculator{nisab: n}, nil
}

func (c *Calculator) Nisab() Nisab {
	return c.nisab
}

// Calculate applies Rate to the holdings selected by kind. Gold and silver
// alone are checked against their nisab; cash and the combined total are not.
// The zakat amount is rounded to cents.
func (c *Calculator) Calculate(kind Kind, a Assets) (Result, error) {
	for _, v := range []float64{a.Gold, a.Silver, a.Cash} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return Result{}, fmt.Errorf("%w: amounts must be finite and non-negative", ErrBadRequest)
		}
	}

	res := Result{Kind: Kind(strings.ToLower(string(kind)))}
	switch res.Kind {
	case KindGold:
		res.Total, res.Nisab = a.Gold, c.nisab.Gold
	case KindSilver:
		res.Total, res.Nisab = a.Silver, c.nisab.Silver
	case KindCash:
		res.Total = a.Cash
	case KindAll:
		res.Total = a.Gold + a.Silver + a.Cash
	default:
		return Result{}, fmt.Errorf("%w: unknown kind %q", ErrBadRequest, kind)
	}
	if res.Total <= 0 {
		return Result{}, fmt.Errorf("%w: enter an amount above zero", ErrBadRequest)
	}

	res.Eligible = res.Total >= res.Nisab
	if res.Eligible {
		res.Zakat = math.Round(res.Total*Rate*100) / 100
	}
	return res, nil
}
