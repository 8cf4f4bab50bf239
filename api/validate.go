package api

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/rpupo63/dsa-learning-backend/errs"
	"github.com/rpupo63/dsa-learning-backend/models"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// newValidator registers the catalog's custom tags and reports fields by
// their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister(v, "slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "categorytype", func(fl validator.FieldLevel) bool {
		return models.CategoryType(fl.Field().String()).Valid()
	})
	mustRegister(v, "difficulty", func(fl validator.FieldLevel) bool {
		return models.Difficulty(fl.Field().String()).Valid()
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("registering validation %q: %v", tag, err))
	}
}

// validateInput runs struct validation and folds failures into one 422.
func validateInput(v *validator.Validate, input any) error {
	err := v.Struct(input)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errs.NewBadRequestError(err.Error())
	}

	fields := make([]errs.FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, errs.FieldError{Field: fe.Field(), Message: validationMessage(fe)})
	}
	return errs.NewValidationError(fields...)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "notblank":
		return "must not be blank"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "slug":
		return "must be lowercase letters and digits separated by single hyphens"
	case "categorytype":
		return "must be one of: " + models.JoinValues(models.CategoryTypes())
	case "difficulty":
		return "must be one of: " + models.JoinValues(models.Difficulties())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
