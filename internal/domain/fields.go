package domain

import (
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"github.com/talkincode/catalogd/internal/store"
)

// Fields is a decoded JSON object as received from API clients.
type Fields map[string]any

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report fields by their wire name
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeFields copies the recognized keys of fields into the pointer fields
// of out. Keys must match the mapstructure tag exactly. Scalars are coerced
// weakly: "75000" becomes 75000 for numeric targets and 5 becomes "5" for
// string targets. JSON null leaves the target nil.
func decodeFields(fields map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		DecodeHook:       intRangeHook,
		MatchName: func(mapKey, fieldName string) bool {
			return mapKey == fieldName
		},
		Result: out,
	})
	if err != nil {
		return errors.Wrap(err, "build field decoder")
	}
	if err := dec.Decode(fields); err != nil {
		zap.L().Debug("field decode failed", zap.Error(err))
		msg := err.Error()
		var me *mapstructure.Error
		if errors.As(err, &me) && len(me.Errors) > 0 {
			msg = me.Errors[0]
		}
		field := quotedName(msg)
		if field == "" {
			return &store.ValidationError{Message: "invalid field value"}
		}
		return &store.ValidationError{Field: field, Message: field + " is invalid"}
	}
	return nil
}

// intRangeHook rejects JSON numbers that do not fit an int target.
func intRangeHook(from, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Int {
		return data, nil
	}
	f, ok := data.(float64)
	if !ok {
		return data, nil
	}
	if math.IsNaN(f) || f < float64(math.MinInt) || f >= -float64(math.MinInt) {
		return nil, errors.Errorf("%v is out of range", f)
	}
	return data, nil
}

// quotedName extracts the field name mapstructure puts in single quotes.
func quotedName(msg string) string {
	start := strings.IndexByte(msg, '\'')
	if start < 0 {
		return ""
	}
	end := strings.IndexByte(msg[start+1:], '\'')
	if end < 0 {
		return ""
	}
	return msg[start+1 : start+1+end]
}

// checkFields runs struct tag validation and turns failures into a single
// client facing ValidationError.
func checkFields(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(err, "validate fields")
	}

	var missing []string
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			missing = append(missing, fe.Field())
		case "min":
			return &store.ValidationError{Field: fe.Field(), Message: fe.Field() + " must not be empty"}
		default:
			return &store.ValidationError{Field: fe.Field(), Message: fe.Field() + " is invalid"}
		}
	}
	switch len(missing) {
	case 0:
		return nil
	case 1:
		return &store.ValidationError{Field: missing[0], Message: missing[0] + " is required"}
	default:
		return &store.ValidationError{Field: missing[0], Message: strings.Join(missing, " and ") + " are required"}
	}
}

// trim strips surrounding whitespace and stores the text in NFC form, so
// composed and decomposed spellings of a name compare equal.
func trim(s *string) {
	if s != nil {
		*s = norm.NFC.String(strings.TrimSpace(*s))
	}
}
