package rate

import (
	"currencyconverter/internal/domain"
)

// updateTimeLayout matches the format the pair-lookup endpoint has always
// exposed ("yyyy/MM/dd HH:mm:ss"); clients depend on it.
const updateTimeLayout = "2006/01/02 15:04:05"

type View struct {
	UpdateTime    string  `json:"updateTime" example:"2025/08/28 09:30:00"`
	BaseCurrency  string  `json:"baseCurrency" example:"USD"`
	QuoteCurrency string  `json:"quoteCurrency" example:"EUR"`
	Rate          float64 `json:"rate" example:"0.92"`
}

func NewView(rate domain.ExchangeRate) View {
	return View{
		UpdateTime:    rate.UpdateTime.Format(updateTimeLayout),
		BaseCurrency:  rate.BaseCurrency,
		QuoteCurrency: rate.QuoteCurrency,
		Rate:          rate.Rate,
	}
}
