package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator"
)

type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationErrors lists every problem found in a payload.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, fe := range v {
		if fe.Path == "" {
			parts[i] = fe.Message
			continue
		}
		parts[i] = fe.Path + ": " + fe.Message
	}
	return strings.Join(parts, "; ")
}

func (v ValidationErrors) has(path string) bool {
	for _, fe := range v {
		if fe.Path == path {
			return true
		}
	}
	return false
}

type normalizer interface {
	normalize()
}

type InsertValidator struct {
	validate *validator.Validate
	listMin  int
}

// NewInsertValidator builds the validator used for every create payload.
// listMin is the minimum number of entries required in list fields.
func NewInsertValidator(listMin int) *InsertValidator {
	if listMin < 0 {
		listMin = 0
	}
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterValidation("category", ValidateCategory)
	v.RegisterValidation("clothingtype", ValidateClothingType)
	v.RegisterValidation("listmin", func(fl validator.FieldLevel) bool {
		return fl.Field().Len() >= listMin
	})
	v.RegisterValidation("imagedata", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return &InsertValidator{validate: v, listMin: listMin}
}

// Struct validates an already decoded value.
func (iv *InsertValidator) Struct(i interface{}) error {
	errs := iv.collect(i, nil)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (iv *InsertValidator) collect(i interface{}, errs ValidationErrors) ValidationErrors {
	err := iv.validate.Struct(i)
	if err == nil {
		return errs
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return append(errs, FieldError{Message: err.Error()})
	}
	for _, fe := range verrs {
		if errs.has(fe.Field()) {
			continue
		}
		errs = append(errs, FieldError{Path: fe.Field(), Message: iv.message(fe)})
	}
	return errs
}

func (iv *InsertValidator) message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "category":
		return "must be one of: " + joinValues(Categories)
	case "clothingtype":
		return "must be one of: " + joinValues(ClothingTypes)
	case "imagedata":
		return "Image data is required"
	case "listmin":
		return fmt.Sprintf("must contain at least %d item(s)", iv.listMin)
	case "max":
		return fmt.Sprintf("must be at most %s characters long", fe.Param())
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	}
	return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
}

// DecodeInsert parses raw into T and validates it. On failure the returned
// error is ValidationErrors naming every offending field; no partial value is
// returned.
func DecodeInsert[T any](iv *InsertValidator, raw []byte) (*T, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		raw = []byte("{}")
	}
	var in T
	var errs ValidationErrors
	if err := json.Unmarshal(raw, &in); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return nil, ValidationErrors{{Message: "Malformed JSON body"}}
		}
		if typeErr.Field == "" {
			return nil, ValidationErrors{{Message: fmt.Sprintf("Expected %s, received %s", describeType(typeErr.Type), typeErr.Value)}}
		}
		errs = append(errs, FieldError{
			Path:    typeErr.Field,
			Message: fmt.Sprintf("Expected %s, received %s", describeType(typeErr.Type), typeErr.Value),
		})
	}
	errs = iv.collect(&in, errs)
	if len(errs) > 0 {
		return nil, errs
	}
	if n, ok := any(&in).(normalizer); ok {
		n.normalize()
	}
	return &in, nil
}

// ValidateInsert dispatches on kind and returns a pointer to the matching
// Insert struct.
func (iv *InsertValidator) ValidateInsert(kind ResourceKind, raw []byte) (any, error) {
	switch kind {
	case KindClothingItem:
		return DecodeInsert[InsertClothingItem](iv, raw)
	case KindOutfit:
		return DecodeInsert[InsertOutfit](iv, raw)
	case KindStyleGuide:
		return DecodeInsert[InsertStyleGuide](iv, raw)
	case KindColorPalette:
		return DecodeInsert[InsertColorPalette](iv, raw)
	case KindStyleAnalysis:
		return DecodeInsert[InsertStyleAnalysis](iv, raw)
	}
	return nil, fmt.Errorf("unknown resource kind %q", kind)
}

func describeType(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Struct, reflect.Map:
		return "object"
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Ptr:
		return describeType(t.Elem())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	}
	return t.String()
}
