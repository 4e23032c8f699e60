package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()

	// Use JSON tag names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomValidations()
}

func registerCustomValidations() {
	// Booking status validation
	validate.RegisterValidation("booking_status", func(fl validator.FieldLevel) bool {
		status := fl.Field().String()
		validStatuses := []string{"pending", "confirmed", "cancelled"}
		for _, s := range validStatuses {
			if status == s {
				return true
			}
		}
		return false
	})

	// Transmission validation for vehicle specs
	validate.RegisterValidation("transmission", func(fl validator.FieldLevel) bool {
		transmission := fl.Field().String()
		validTypes := []string{"manual", "automatic", "semi-automatic", ""}
		for _, t := range validTypes {
			if transmission == t {
				return true
			}
		}
		return false
	})
}

// Validate validates a struct and returns a map of field errors
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		switch err.Tag() {
		case "required":
			errors[field] = "This field is required"
		case "email":
			errors[field] = "Invalid email format"
		case "min":
			errors[field] = "Value is too short (min: " + err.Param() + ")"
		case "max":
			errors[field] = "Value is too long (max: " + err.Param() + ")"
		case "gte":
			errors[field] = "Value must be at least " + err.Param()
		case "lte":
			errors[field] = "Value must be at most " + err.Param()
		case "uuid":
			errors[field] = "Invalid identifier format"
		case "booking_status":
			errors[field] = "Invalid status. Must be: pending, confirmed, or cancelled"
		case "transmission":
			errors[field] = "Invalid transmission. Must be: manual, automatic, or semi-automatic"
		default:
			errors[field] = "Invalid value"
		}
	}

	return errors
}

// ValidateVar validates a single variable
func ValidateVar(field interface{}, tag string) error {
	return validate.Var(field, tag)
}
