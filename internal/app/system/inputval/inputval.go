// Package inputval validates user input in form handlers.
//
// Validation rules are declared with struct tags:
//
//	type createGroupInput struct {
//		Name string `validate:"required,max=200" label:"Name"`
//	}
//
//	if result := inputval.Validate(input); result.HasErrors() {
//		// re-render the form with result.First()
//	}
//
// Supported rules: required, max=N, email.
package inputval

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Result collects validation failures in field declaration order.
type Result struct {
	errs []string
}

// HasErrors reports whether any rule failed.
func (r Result) HasErrors() bool { return len(r.errs) > 0 }

// First returns the first failure message, or "".
func (r Result) First() string {
	if len(r.errs) == 0 {
		return ""
	}
	return r.errs[0]
}

// All returns every failure message.
func (r Result) All() []string { return r.errs }

func (r *Result) add(msg string) { r.errs = append(r.errs, msg) }

// Validate applies the `validate` tag rules of every string field of
// the given struct. Non-struct values and non-string fields are
// ignored.
func Validate(v any) Result {
	var res Result
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return res
	}
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		rules := f.Tag.Get("validate")
		if rules == "" || rv.Field(i).Kind() != reflect.String {
			continue
		}
		label := f.Tag.Get("label")
		if label == "" {
			label = f.Name
		}
		val := rv.Field(i).String()
		for _, rule := range strings.Split(rules, ",") {
			applyRule(&res, rule, label, val)
		}
	}
	return res
}

func applyRule(res *Result, rule, label, val string) {
	switch {
	case rule == "required":
		if strings.TrimSpace(val) == "" {
			res.add(fmt.Sprintf("%s is required.", label))
		}
	case strings.HasPrefix(rule, "max="):
		n, err := strconv.Atoi(strings.TrimPrefix(rule, "max="))
		if err == nil && utf8.RuneCountInString(val) > n {
			res.add(fmt.Sprintf("%s must be at most %d characters.", label, n))
		}
	case rule == "email":
		if val != "" && !IsValidEmail(val) {
			res.add(fmt.Sprintf("%s must be a valid email address.", label))
		}
	}
}

// emailRe rejects leading/trailing/consecutive dots in both the local
// part and the domain, and anything with whitespace or display names.
var emailRe = regexp.MustCompile(`^[A-Za-z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+(\.[A-Za-z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+)*@[A-Za-z0-9-]+(\.[A-Za-z0-9-]+)*$`)

// IsValidEmail reports whether s looks like a deliverable address.
// Single-label domains are accepted (useful for dev environments).
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	return emailRe.MatchString(s)
}
