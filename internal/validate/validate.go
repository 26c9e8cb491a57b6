// Package validate checks request payloads against per-entity rule sets.
// Rules operate on decoded JSON maps so create and patch-style update
// requests share one path: Required fires on create only, every other check
// fires whenever the field is present.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	slugRe = regexp.MustCompile(`^[a-z0-9-]+$`)
	hexRe  = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)
)

// Rule describes the checks applied to a single payload field.
type Rule struct {
	Field    string
	Label    string // human-readable; defaults to Field
	Required bool   // create-only
	NotBlank bool   // reject empty-after-trim strings when present
	MaxLen   int
	Slug     bool
	Enum     []string
	HexColor bool
	NonNeg   bool // non-negative integer
	Bool     bool
	Keywords bool // string array, <=10 entries of <=50 chars
	Outcomes bool // object array, each needs metric and value
}

// RuleSet is one entity's validator. FailFast entities report only the first
// error; the rest aggregate the full list.
type RuleSet struct {
	FailFast bool
	Rules    []Rule
}

// Validate returns the ordered list of error messages; empty means valid.
func (rs RuleSet) Validate(payload map[string]any, isUpdate bool) []string {
	var errs []string
	for _, r := range rs.Rules {
		v, present := payload[r.Field]
		if !present || v == nil {
			if r.Required && !isUpdate {
				errs = append(errs, r.label()+" is required")
				if rs.FailFast {
					return errs
				}
			}
			continue
		}
		for _, msg := range r.check(v) {
			errs = append(errs, msg)
			if rs.FailFast {
				return errs
			}
		}
	}
	return errs
}

func (r Rule) label() string {
	if r.Label != "" {
		return r.Label
	}
	return r.Field
}

// check dispatches on the rule's declared kind before looking at the Go
// type, so a string payload value still fails a Bool or NonNeg rule.
func (r Rule) check(v any) []string {
	switch {
	case r.Bool:
		if _, ok := v.(bool); !ok {
			return []string{r.label() + " must be a boolean"}
		}
		return nil
	case r.NonNeg:
		n, ok := v.(float64)
		if !ok || n != float64(int64(n)) || n < 0 {
			return []string{r.label() + " must be a non-negative integer"}
		}
		return nil
	case r.Keywords:
		return checkKeywords(r.label(), v)
	case r.Outcomes:
		return checkOutcomes(r.label(), v)
	}

	s, ok := v.(string)
	if !ok {
		return []string{r.label() + " must be a string"}
	}
	trimmed := strings.TrimSpace(s)
	if (r.Required || r.NotBlank) && trimmed == "" {
		return []string{r.label() + " must not be empty"}
	}
	var errs []string
	if r.MaxLen > 0 && len(trimmed) > r.MaxLen {
		errs = append(errs, fmt.Sprintf("%s must be at most %d characters", r.label(), r.MaxLen))
	}
	if r.Slug && trimmed != "" && !slugRe.MatchString(trimmed) {
		errs = append(errs, r.label()+" may only contain lowercase letters, numbers and hyphens")
	}
	if len(r.Enum) > 0 && !contains(r.Enum, trimmed) {
		errs = append(errs, fmt.Sprintf("%s must be one of: %s", r.label(), strings.Join(r.Enum, ", ")))
	}
	if r.HexColor && trimmed != "" && !hexRe.MatchString(trimmed) {
		errs = append(errs, r.label()+" must be a valid hex color")
	}
	return errs
}

func checkKeywords(label string, v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return []string{label + " must be an array"}
	}
	var errs []string
	if len(arr) > 10 {
		errs = append(errs, label+" must contain at most 10 entries")
	}
	for _, e := range arr {
		s, ok := e.(string)
		if !ok {
			errs = append(errs, "Each entry of "+label+" must be a string")
			break
		}
		if utf8.RuneCountInString(s) > 50 {
			errs = append(errs, "Each entry of "+label+" must be at most 50 characters")
			break
		}
	}
	return errs
}

func checkOutcomes(label string, v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return []string{label + " must be an array"}
	}
	for _, e := range arr {
		obj, ok := e.(map[string]any)
		if !ok {
			return []string{"Each outcome must be an object"}
		}
		metric, _ := obj["metric"].(string)
		value, _ := obj["value"].(string)
		if strings.TrimSpace(metric) == "" || strings.TrimSpace(value) == "" {
			return []string{"Each outcome must include a metric and a value"}
		}
	}
	return nil
}

func contains(set []string, s string) bool {
	for _, e := range set {
		if e == s {
			return true
		}
	}
	return false
}
