// Package inputval validates decoded request bodies and query parameters
// with go-playground/validator, reporting failures as English messages
// keyed by JSON field name.
package inputval

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

var (
	once     sync.Once
	validate *validator.Validate
	trans    ut.Translator
)

func setup() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report JSON names (or query names) instead of Go field names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ = uni.GetTranslator("en")
	_ = entranslations.RegisterDefaultTranslations(validate, trans)
}

// Struct validates v and returns nil or a map of field name to message.
func Struct(v any) map[string]string {
	once.Do(setup)
	if err := validate.Struct(v); err != nil {
		return Translate(err)
	}
	return nil
}

// Translate turns a validation error into field messages. Errors that are
// not validation errors are reported under "detail".
func Translate(err error) map[string]string {
	once.Do(setup)
	fields := make(map[string]string)

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[fe.Field()] = fe.Translate(trans)
		}
		return fields
	}

	fields["detail"] = err.Error()
	return fields
}
