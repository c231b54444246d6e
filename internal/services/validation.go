package services

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs the struct tags of req and folds failures into a ValidationError
func validateStruct(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := map[string]string{}
	for _, fe := range verrs {
		fields[fieldPath(fe.Namespace())] = describe(fe)
	}
	return &ValidationError{Fields: fields}
}

// fieldPath drops the leading struct name ("CreatePartyRequest.name" -> "name")
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "min":
		return "must have at least " + fe.Param() + " entries"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "datetime":
		return "must be a date in YYYY-MM-DD form"
	default:
		return "is invalid"
	}
}

// fieldErrors accumulates checks the tags cannot express
type fieldErrors map[string]string

func (f fieldErrors) add(field, msg string) {
	if _, ok := f[field]; !ok {
		f[field] = msg
	}
}

// merge combines tag validation with manual checks into a single error
func (f fieldErrors) merge(err error) error {
	if err == nil && len(f) == 0 {
		return nil
	}
	var verr *ValidationError
	if err != nil && !errors.As(err, &verr) {
		return err
	}
	out := &ValidationError{Fields: map[string]string{}}
	if verr != nil {
		for k, v := range verr.Fields {
			out.Fields[k] = v
		}
	}
	for k, v := range f {
		if _, ok := out.Fields[k]; !ok {
			out.Fields[k] = v
		}
	}
	return out
}
