package validators

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"megacitycab/internal/utils"
)

var validate *validator.Validate

var (
	// Booking page rule: something@something.tld with an alphabetic TLD.
	bookingEmailRegex = regexp.MustCompile(`^[^@]+@[^@]+\.[a-zA-Z]{2,}$`)
	// Registration and profile pages use a looser check.
	looseEmailRegex = regexp.MustCompile(`^\S+@\S+\.\S+$`)
)

func init() {
	validate = validator.New()

	// Report form field names instead of Go field names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"form", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})

	must(validate.RegisterValidation("required_trimmed", validateRequiredTrimmed))
	must(validate.RegisterValidation("phone_10", validatePhone10))
	must(validate.RegisterValidation("booking_email", validateBookingEmail))
	must(validate.RegisterValidation("loose_email", validateLooseEmail))
}

func must(err error) {
	if err != nil {
		panic(fmt.Sprintf("validators: %v", err))
	}
}

// ValidationError represents a field validation error
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

// Map keys the first message per field, the shape the error envelope uses.
func (v ValidationErrors) Map() map[string]string {
	out := make(map[string]string, len(v))
	for _, err := range v {
		if _, ok := out[err.Field]; !ok {
			out[err.Field] = err.Message
		}
	}
	return out
}

// ValidateStruct validates a struct and returns detailed errors
func ValidateStruct(s interface{}) ValidationErrors {
	var validationErrors ValidationErrors

	err := validate.Struct(s)
	if err != nil {
		fieldErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return ValidationErrors{{Field: "form", Tag: "invalid", Message: err.Error()}}
		}
		for _, err := range fieldErrors {
			value := fmt.Sprintf("%v", err.Value())
			if strings.Contains(strings.ToLower(err.Field()), "password") {
				value = ""
			}
			validationErrors = append(validationErrors, ValidationError{
				Field:   err.Field(),
				Tag:     err.Tag(),
				Value:   value,
				Message: getErrorMessage(err),
			})
		}
	}

	return validationErrors
}

func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required", "required_trimmed":
		return fmt.Sprintf("%s is required", err.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or more", err.Field(), err.Param())
	case "phone_10":
		return MsgPhoneLength
	case "booking_email", "loose_email":
		return MsgInvalidEmail
	default:
		return fmt.Sprintf("Validation failed for %s", err.Field())
	}
}

func validateRequiredTrimmed(fl validator.FieldLevel) bool {
	return !utils.IsBlank(fl.Field().String())
}

func validatePhone10(fl validator.FieldLevel) bool {
	return utils.IsTenDigitPhone(fl.Field().String())
}

func validateBookingEmail(fl validator.FieldLevel) bool {
	return IsValidBookingEmail(fl.Field().String())
}

func validateLooseEmail(fl validator.FieldLevel) bool {
	email := fl.Field().String()
	if email == "" {
		return true
	}
	return looseEmailRegex.MatchString(email)
}

func IsValidBookingEmail(email string) bool {
	return bookingEmailRegex.MatchString(email)
}
