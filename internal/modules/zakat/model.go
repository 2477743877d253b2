// README: Zakat request and result types, nisab thresholds and errors.
package zakat

import "errors"

var (
	ErrBadRequest   = errors.New("bad request")
	ErrInvalidNisab = errors.New("invalid nisab")
)

// Rate is the share of eligible wealth due as zakat.
const Rate = 0.025

type Kind string

const (
	KindGold   Kind = "gold"
	KindSilver Kind = "silver"
	KindCash   Kind = "cash"
	KindAll    Kind = "all"
)

// Nisab holds the minimum holdings, in the user's currency, on which zakat
// is due.
type Nisab struct {
	Gold   float64 `json:"gold"`
	Silver float64 `json:"silver"`
}

var DefaultNisab = Nisab{Gold: 87000, Silver: 5500}

// Assets are amounts in the user's currency. Only the fields relevant to the
// requested Kind are read.
type Assets struct {
	Gold   float64 `json:"gold"`
	Silver float64 `json:"silver"`
	Cash   float64 `json:"cash"`
}

type Result struct {
	Kind     Kind    `json:"kind"`
	Total    float64 `json:"total"`
	Nisab    float64 `json:"nisab,omitempty"`
	Eligible bool    `json:"eligible"`
	Zakat    float64 `json:"zakat"`
}
