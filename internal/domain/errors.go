package domain

import "errors"

var (
	ErrCurrencyNotFound = errors.New("currency not found")
	ErrRateNotFound     = errors.New("rate not found")
)
