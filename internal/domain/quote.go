package domain

// RateQuote is a single chart point returned by the external quote
// provider. All numeric fields are transmitted as decimal strings and are
// parsed only at the point of use.
type RateQuote struct {
	BaseCurrency  string `json:"base_currency"`
	QuoteCurrency string `json:"quote_currency"`
	CloseTime     string `json:"close_time"`
	AverageBid    string `json:"average_bid"`
	AverageAsk    string `json:"average_ask"`
	HighBid       string `json:"high_bid"`
	HighAsk       string `json:"high_ask"`
	LowBid        string `json:"low_bid"`
	LowAsk        string `json:"low_ask"`
}
