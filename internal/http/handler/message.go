package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

const quoteUnavailable = "quote unavailable"

type Response struct {
	Message string `json:"message,omitempty"` // short message for humans
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

type QuoteResponse struct {
	AmountOut string `json:"amountOut"`
	Error     string `json:"error,omitempty"`
}
