package transport

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	appvalidator "quote_pdf_backend/platform/validator"
)

// Opportunity record IDs are 18 characters: the "006" object prefix followed
// by 15 alphanumeric characters.
var opportunityIDRegex = regexp.MustCompile(`^006[a-zA-Z0-9]{15}$`)

// RegisterValidations installs the quotes module's custom validation rules.
func RegisterValidations(val *appvalidator.Validator) error {
	return val.RegisterValidation("opportunity_id", validateOpportunityID)
}

func validateOpportunityID(fl validator.FieldLevel) bool {
	return opportunityIDRegex.MatchString(fl.Field().String())
}
