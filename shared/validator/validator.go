package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"strings"

	"campusvisit/shared/constant"
	"campusvisit/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

var otpPattern = regexp.MustCompile(`^\d{6}$`)

func registerOTPValidation(field val.FieldLevel) bool {
	return otpPattern.MatchString(field.Field().String())
}

func registerRoleValidation(field val.FieldLevel) bool {
	switch field.Field().String() {
	case constant.RoleVisitor, constant.RoleAdmin, constant.RoleGuide:
		return true
	}

	return false
}

// fieldName prefers the form tag, then the json tag, so messages name what the user typed into.
func fieldName(field reflect.StructField) string {
	for _, tag := range []string{"form", "json"} {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}

	return field.Name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(fieldName)

	err := validate.RegisterValidation("otp", registerOTPValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("role", registerRoleValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
