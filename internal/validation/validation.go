package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"jobtrust/internal/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report field names the way clients send them
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	mustRegister(v, "report_reason", enumValidator(models.ParseReportReason))
	mustRegister(v, "job_type", enumValidator(models.ParseJobType))
	mustRegister(v, "experience_level", enumValidator(models.ParseExperienceLevel))
	mustRegister(v, "job_status", enumValidator(models.ParseJobStatus))
	mustRegister(v, "company_size", enumValidator(models.ParseCompanySize))

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: failed to register %s: %v", tag, err))
	}
}

func enumValidator[T any](parse func(string) (T, bool)) validator.Func {
	return func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() != reflect.String {
			return false
		}
		_, ok := parse(field.String())
		return ok
	}
}

// ValidateStruct validates a struct using go-playground/validator. Field
// failures come back as validator.ValidationErrors.
func ValidateStruct(s interface{}) error {
	if s == nil {
		return nil
	}

	val := reflect.ValueOf(s)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("validator: expected a struct, got %T", s)
	}

	return validate.Struct(s)
}
