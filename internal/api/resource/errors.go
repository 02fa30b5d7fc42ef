package resource

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// BindingErrors turns a binding failure into the per-field message map the
// API reports under "exception". Non-validation failures (malformed JSON,
// type mismatches) collapse to a single message.
func BindingErrors(err error) any {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	out := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = append(out[fe.Field()], fieldMessage(fe))
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Missing data for required field."
	case "email_basic":
		return "Provided email is not an email address"
	case "oneof":
		return fmt.Sprintf("Must be one of: %s.", fe.Param())
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s.", fe.Param())
	case "lte":
		return fmt.Sprintf("Must be less than or equal to %s.", fe.Param())
	default:
		return "Invalid value."
	}
}
