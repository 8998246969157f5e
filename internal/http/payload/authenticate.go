package payload

import (
	"moonpump/internal/core"

	"github.com/jellydator/validation"
)

type AuthRequest struct {
	Address   string `json:"address"`
	IssuedAt  int64  `json:"issuedAt"`
	Signature string `json:"signature"`
}

func (a *AuthRequest) Validate() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.Address, validation.Required, isAddress),
		validation.Field(&a.IssuedAt, validation.Required),
		validation.Field(&a.Signature, validation.Required, validation.Match(signatureRegex)),
	)
}

func (a AuthRequest) ToMessage() core.AuthMessage {
	return core.AuthMessage{
		Address:   a.Address,
		IssuedAt:  a.IssuedAt,
		Signature: a.Signature,
	}
}
