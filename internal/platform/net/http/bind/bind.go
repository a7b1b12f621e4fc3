// Package bind decodes request bodies and validates them with go-playground/validator
package bind

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entrans "github.com/go-playground/validator/v10/translations/en"

	perr "marketwatch/internal/platform/errors"
	"marketwatch/internal/platform/logger"
)

// MaxBody caps a JSON request body
const MaxBody = 1 << 20

// Validator pairs the validator with its english translator
type Validator struct {
	v     *validator.Validate
	trans ut.Translator
}

// shortMessages replace the library's wordier english texts
var shortMessages = map[string]string{
	"min": "{0} must be at least {1}",
	"max": "{0} must be at most {1}",
}

// Get returns the process wide validator
var Get = sync.OnceValue(func() *Validator {
	loc := en.New()
	trans, _ := ut.New(loc, loc).GetTranslator("en")

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	_ = entrans.RegisterDefaultTranslations(v, trans)
	for tag, text := range shortMessages {
		_ = v.RegisterTranslation(tag, trans,
			func(t ut.Translator) error { return t.Add(tag, text, true) },
			func(t ut.Translator, fe validator.FieldError) string {
				msg, _ := t.T(tag, fe.Field(), fe.Param())
				return msg
			},
		)
	}
	return &Validator{v: v, trans: trans}
})

// jsonName reports fields by their json key
func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

// Struct validates s, the first failing field becomes a Validation error carrying that field
func (x *Validator) Struct(s any) error {
	err := x.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		logger.Get().Error().Err(err).Type("target", s).Msg("validator misuse")
		return perr.Wrap(err, perr.ErrorCodeUnknown, "validation unavailable")
	}
	fe := verrs[0]
	return perr.WithField(perr.New(perr.ErrorCodeValidation, fe.Translate(x.trans)), fe.Field())
}

// ParseJSON decodes exactly one JSON value into T, unknown fields rejected, then validates it
func ParseJSON[T any](r *http.Request) (T, error) {
	var zero T
	raw, err := io.ReadAll(io.LimitReader(r.Body, MaxBody+1))
	_ = r.Body.Close()
	switch {
	case err != nil:
		return zero, perr.Wrap(err, perr.ErrorCodeJSON, "read body")
	case len(raw) > MaxBody:
		return zero, perr.JSONErrf("body exceeds %d bytes", MaxBody)
	case len(bytes.TrimSpace(raw)) == 0:
		return zero, perr.JSONErrf("empty body")
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	var dst T
	if err := dec.Decode(&dst); err != nil {
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if dec.More() {
		return zero, perr.JSONErrf("unexpected trailing data")
	}
	if err := Get().Struct(dst); err != nil {
		return zero, err
	}
	return dst, nil
}
