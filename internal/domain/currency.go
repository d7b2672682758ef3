package domain

// Currency is a reference-data entry: a 3-letter ISO code mapped to a
// display name. The code is the primary key and never changes once stored.
type Currency struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
