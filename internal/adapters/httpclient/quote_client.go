package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"currencyconverter/internal/domain"
)

const dateLayout = "2006-01-02"

type QuoteClient struct {
	http    *http.Client
	baseURL string
}

// chartResponse is the provider's envelope. Unknown fields are ignored for
// forward compatibility; an absent or empty array is a valid "no data"
// result, not an error.
type chartResponse struct {
	Response []domain.RateQuote `json:"response"`
}

func (c *QuoteClient) GetQuotes(ctx context.Context, base string, quote string, start time.Time, end time.Time) ([]domain.RateQuote, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("base", base)
	q.Set("quote", quote)
	q.Set("data_type", "chart")
	q.Set("start_date", start.Format(dateLayout))
	q.Set("end_date", end.Format(dateLayout))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for pair %q/%q: %w", base, quote, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request for pair %q/%q: %w", base, quote, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status code %d for pair %q/%q: %s", resp.StatusCode, base, quote, resp.Status)
	}

	var body chartResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response for pair %q/%q: %w", base, quote, err)
	}

	return body.Response, nil
}

func NewQuoteClient(httpClient *http.Client, baseURL string) *QuoteClient {
	return &QuoteClient{http: httpClient, baseURL: baseURL}
}
