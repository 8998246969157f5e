package payload

import (
	"github.com/jellydator/validation"
)

type QuoteRequest struct {
	TokenIn  string
	TokenOut string
	AmountIn string
}

func (q QuoteRequest) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.TokenIn, validation.Required, isAddress),
		validation.Field(&q.TokenOut, validation.Required, isAddress),
		validation.Field(&q.AmountIn, validation.Required, validation.Match(amountRegex)),
	)
}
