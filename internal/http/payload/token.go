package payload

import (
	"moonpump/internal/core"

	"github.com/jellydator/validation"
)

type CreateTokenRequest struct {
	Address  string `json:"address"`
	Creator  string `json:"creator"`
	TokenURI string `json:"tokenURI"`
}

func (c *CreateTokenRequest) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Address, validation.Required, isAddress),
		validation.Field(&c.Creator, validation.Required, isAddress),
		validation.Field(&c.TokenURI, validation.Required, validation.Length(1, 2048)),
	)
}

func (c CreateTokenRequest) ToNewToken() core.NewToken {
	return core.NewToken{
		Address:  c.Address,
		Creator:  c.Creator,
		TokenURI: c.TokenURI,
	}
}

type TokenRequest struct {
	Address string
}

func (t TokenRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Address, validation.Required, isAddress),
	)
}
