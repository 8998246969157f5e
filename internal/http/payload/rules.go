package payload

import (
	"errors"
	"regexp"

	"github.com/jellydator/validation"
	"github.com/shopspring/decimal"
)

var (
	addressRegex   = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	txHashRegex    = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)
	signatureRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{130}$`)
	amountRegex    = regexp.MustCompile(`^[0-9]*\.?[0-9]+$`)
)

var isAddress = validation.Match(addressRegex).Error("must be a 0x prefixed 20 byte hex address")

var notNegative = validation.By(func(value any) error {
	d, ok := value.(decimal.Decimal)
	if !ok {
		return errors.New("must be a number")
	}
	if d.IsNegative() {
		return errors.New("must not be negative")
	}
	return nil
})
