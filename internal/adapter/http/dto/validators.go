package dto

import (
	"micropay-gateway/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterValidators(v)
	}
}

// RegisterValidators installs the custom tags on v.
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("wallet_kind", validateWalletKind)
	_ = v.RegisterValidation("decimal_amount", validateDecimalAmount)
}

// validateWalletKind accepts any tag that names a supported wallet scheme.
func validateWalletKind(fl validator.FieldLevel) bool {
	return domain.ParseWalletKind(fl.Field().String()) != domain.WalletKindUnknown
}

// validateDecimalAmount accepts strictly positive decimal strings.
func validateDecimalAmount(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return d.IsPositive()
}
