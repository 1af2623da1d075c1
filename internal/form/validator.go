package form

import (
	"errors"
	"sort"
	"strings"

	"github.com/asaskevich/govalidator"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FieldErrors maps a json field name to a message id of the violated rule.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}
	return strings.Join(parts, "; ")
}

// ValidateStruct is validation.ValidateStruct reporting every failing
// field as a FieldErrors value.
func ValidateStruct(structPtr interface{}, rules ...*validation.FieldRules) error {
	err := validation.ValidateStruct(structPtr, rules...)
	if err == nil {
		return nil
	}
	var ve validation.Errors
	if !errors.As(err, &ve) {
		return err
	}
	fe := make(FieldErrors, len(ve))
	for field, fieldErr := range ve {
		var ie validation.InternalError
		if errors.As(fieldErr, &ie) {
			return fieldErr
		}
		fe[field] = fieldErr.Error()
	}
	return fe
}

var emailRule = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if s == "" || govalidator.IsEmail(s) {
		return nil
	}
	return validation.NewError("validation_email", "validation.email_invalid")
})

func required() validation.Rule {
	return validation.Required.Error("validation.required")
}

func minRunes(n int, msg string) validation.Rule {
	return validation.RuneLength(n, 0).Error(msg)
}

func maxRunes(n int) validation.Rule {
	return validation.RuneLength(0, n).Error("validation.too_long")
}

func inStrings[T ~string](msg string, values []T) validation.Rule {
	elems := make([]interface{}, 0, len(values))
	for _, v := range values {
		elems = append(elems, string(v))
	}
	return validation.In(elems...).Error(msg)
}

func trim(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}
