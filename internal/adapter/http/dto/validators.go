package dto

import (
	"regexp"

	"bank-ledger/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Plain decimal notation only: no exponent, no leading plus, at most one sign.
var decimalAmountRe = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("decimal_amount", validateDecimalAmount)
	}
}

func validateDecimalAmount(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if !decimalAmountRe.MatchString(raw) {
		return false
	}
	_, err := domain.ParseDecimal(raw)
	return err == nil
}
