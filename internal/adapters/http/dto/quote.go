package dto

import "github.com/jsamuelsen/daily-quote-service/internal/domain"

// QuoteResponse is the wire form of a stored quote.
type QuoteResponse struct {
	ID       int    `json:"id"       example:"1"`
	Text     string `json:"text"     example:"The only true wisdom is in knowing you know nothing."`
	Author   string `json:"author"   example:"Socrates"`
	Category string `json:"category" example:"Philosophy"`
}

// FromQuote converts a domain quote.
func FromQuote(q domain.Quote) QuoteResponse {
	return QuoteResponse{
		ID:       q.ID,
		Text:     q.Text,
		Author:   q.Author,
		Category: q.Category,
	}
}

// FromQuotes converts a list. The result is never nil so it encodes as [].
func FromQuotes(quotes []domain.Quote) []QuoteResponse {
	out := make([]QuoteResponse, len(quotes))
	for i, q := range quotes {
		out[i] = FromQuote(q)
	}

	return out
}
