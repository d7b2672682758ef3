package domain

import (
	"time"
)

// ExchangeRate is a persisted mid-market rate for an ordered currency pair.
// At most one row exists per (base, quote); the pair is directional, so
// USD/EUR and EUR/USD are distinct rows.
type ExchangeRate struct {
	ID            int64     `json:"id"`
	BaseCurrency  string    `json:"baseCurrency"`
	QuoteCurrency string    `json:"quoteCurrency"`
	Rate          float64   `json:"rate"`
	UpdateTime    time.Time `json:"updateTime"`
}

type RatePair struct {
	Base  string
	Quote string
}

func (p RatePair) String() string {
	return p.Base + "/" + p.Quote
}
