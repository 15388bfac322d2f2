// Package validate provides struct-tag validation for request payloads.
//
// Supported rules (comma-separated in the `validate` tag):
//
//	required    field must not be zero/empty
//	nullable    if empty, skip all remaining rules for this field
//	email       valid email address
//	min=N       string: min char length | number: min value
//	max=N       string: max char length | number: max value
//	gt=N        number > N
//	gte=N       number >= N
//
// Example:
//
//	type CustomerInput struct {
//	    Name  string `json:"name"  validate:"required,min=2,max=100"`
//	    Phone string `json:"phone" validate:"required,min=6,max=20"`
//	}
package validate

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

var emailRE = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Struct validates all exported fields of v that carry a `validate` tag.
// Returns a map of fieldName to error message; empty map means no errors.
func Struct(v interface{}) map[string]string {
	errs := make(map[string]string)
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return errs
	}
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		value := rv.Field(i)

		tag := field.Tag.Get("validate")
		if tag == "" {
			continue
		}

		name := jsonFieldName(field)
		rules := strings.Split(tag, ",")

		if contains(rules, "nullable") && isEmpty(value) {
			continue
		}

		for _, rule := range rules {
			if rule == "nullable" {
				continue
			}
			if msg := applyRule(rule, name, value); msg != "" {
				errs[name] = msg
				break // first failing rule per field
			}
		}
	}

	return errs
}

// HasErrors returns true when the errs map is non-empty.
func HasErrors(errs map[string]string) bool { return len(errs) > 0 }

func applyRule(rule, field string, v reflect.Value) string {
	key, param, _ := strings.Cut(rule, "=")

	switch key {
	case "required":
		if isEmpty(v) {
			return fmt.Sprintf("The %s field is required.", field)
		}
	case "email":
		if !emailRE.MatchString(fmt.Sprintf("%v", v.Interface())) {
			return fmt.Sprintf("The %s must be a valid email address.", field)
		}
	case "min":
		n, _ := strconv.ParseFloat(param, 64)
		if size(v) < n {
			return fmt.Sprintf("The %s must be at least %s.", field, param)
		}
	case "max":
		n, _ := strconv.ParseFloat(param, 64)
		if size(v) > n {
			return fmt.Sprintf("The %s may not be greater than %s.", field, param)
		}
	case "gt":
		n, _ := strconv.ParseFloat(param, 64)
		if size(v) <= n {
			return fmt.Sprintf("The %s must be greater than %s.", field, param)
		}
	case "gte":
		n, _ := strconv.ParseFloat(param, 64)
		if size(v) < n {
			return fmt.Sprintf("The %s must be at least %s.", field, param)
		}
	}

	return ""
}

// size is the rule-comparable magnitude of a value: character length for
// strings, numeric value for numbers.
func size(v reflect.Value) float64 {
	switch v.Kind() {
	case reflect.String:
		return float64(len([]rune(v.String())))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint())
	case reflect.Float32, reflect.Float64:
		return v.Float()
	case reflect.Ptr:
		if v.IsNil() {
			return 0
		}
		return size(v.Elem())
	}
	return 0
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	}
	return v.IsZero()
}

func jsonFieldName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" || tag == "-" {
		return strings.ToLower(f.Name)
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return strings.ToLower(f.Name)
	}
	return name
}

func contains(rules []string, rule string) bool {
	for _, r := range rules {
		if r == rule {
			return true
		}
	}
	return false
}
