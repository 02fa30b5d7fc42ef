package resource

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Emails only need to look like an address: something, an @, a dot somewhere
// in the domain part.
var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// RegisterValidators wires the custom rules and the json field naming into
// gin's binding validator. Must run before any handler binds a body.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("email_basic", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
}
