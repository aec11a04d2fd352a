package regform

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9\s\-().]{5,19}$`)
)

// FieldResult is the outcome of validating a single field. Skipped
// fields (conditional evaluated false) are valid by definition.
type FieldResult struct {
	Valid   bool
	Skipped bool
	Reason  string
}

func valid() FieldResult   { return FieldResult{Valid: true} }
func skipped() FieldResult { return FieldResult{Valid: true, Skipped: true} }

func invalid(reason string) FieldResult { return FieldResult{Reason: reason} }

// EvaluateConditional applies a display rule against the current
// answers. A missing dependency answer does not match equals/contains
// and does match notEquals.
func EvaluateConditional(rule *Conditional, answers AnswerMap) bool {
	if rule == nil {
		return true
	}

	raw, ok := answers[rule.DependsOn]
	if !ok || raw == nil {
		return rule.Operator == OpNotEquals
	}

	switch rule.Operator {
	case OpEquals:
		return stringify(raw) == rule.Value
	case OpNotEquals:
		return stringify(raw) != rule.Value
	case OpContains:
		if values, ok := raw.([]any); ok {
			for _, v := range values {
				if stringify(v) == rule.Value {
					return true
				}
			}
			return false
		}
		return strings.Contains(stringify(raw), rule.Value)
	default:
		return false
	}
}

// ValidateField checks one field's answer. Checks run in order and the
// first failure wins: conditional skip, then required, then the
// type-specific constraints. It never panics, even on malformed rules;
// those are rejected earlier at config save time.
func ValidateField(f FormField, answers AnswerMap, files map[string]FileRef) FieldResult {
	if !EvaluateConditional(f.Conditional, answers) {
		return skipped()
	}

	if f.Type == FieldFile {
		return validateFileField(f, files)
	}

	raw, present := answers[f.ID]
	if !present || isEmpty(raw) {
		if f.Required {
			return invalid("required field is missing")
		}
		return valid()
	}

	switch f.Type {
	case FieldText, FieldTextarea:
		return validateText(f, raw)
	case FieldNumber:
		return validateNumber(f, raw)
	case FieldDate:
		return validateDate(raw)
	case FieldSelect:
		return validateSelect(f, raw)
	case FieldMultiselect:
		return validateMultiselect(f, raw)
	case FieldCheckbox:
		if _, ok := raw.(bool); !ok {
			return invalid("expected a boolean value")
		}
		return valid()
	case FieldEmail:
		s, ok := raw.(string)
		if !ok || !emailPattern.MatchString(s) {
			return invalid("invalid email address")
		}
		return valid()
	case FieldPhone:
		s, ok := raw.(string)
		if !ok || !phonePattern.MatchString(s) {
			return invalid("invalid phone number")
		}
		return valid()
	default:
		return invalid(fmt.Sprintf("unknown field type %q", f.Type))
	}
}

func validateText(f FormField, raw any) FieldResult {
	s, ok := raw.(string)
	if !ok {
		return invalid("expected a string value")
	}
	if f.Rules == nil {
		return valid()
	}
	if f.Rules.MinLength > 0 && len(s) < f.Rules.MinLength {
		return invalid(fmt.Sprintf("must be at least %d characters", f.Rules.MinLength))
	}
	if f.Rules.MaxLength > 0 && len(s) > f.Rules.MaxLength {
		return invalid(fmt.Sprintf("must be at most %d characters", f.Rules.MaxLength))
	}
	if f.Rules.Pattern != "" {
		// Invalid patterns are rejected at save time; if one slips
		// through, the constraint is ignored rather than panicking.
		if re, err := regexp.Compile(f.Rules.Pattern); err == nil && !re.MatchString(s) {
			return invalid("does not match the expected format")
		}
	}
	return valid()
}

func validateNumber(f FormField, raw any) FieldResult {
	var n float64
	switch v := raw.(type) {
	case float64:
		n = v
	case int:
		n = float64(v)
	case int64:
		n = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return invalid("expected a numeric value")
		}
		n = parsed
	default:
		return invalid("expected a numeric value")
	}

	if f.Rules != nil {
		if f.Rules.Min != nil && n < *f.Rules.Min {
			return invalid(fmt.Sprintf("must be at least %v", *f.Rules.Min))
		}
		if f.Rules.Max != nil && n > *f.Rules.Max {
			return invalid(fmt.Sprintf("must be at most %v", *f.Rules.Max))
		}
	}
	return valid()
}

func validateDate(raw any) FieldResult {
	s, ok := raw.(string)
	if !ok {
		return invalid("expected a date string")
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		if _, err := time.Parse(time.RFC3339, s); err != nil {
			return invalid("invalid date")
		}
	}
	return valid()
}

func validateSelect(f FormField, raw any) FieldResult {
	s, ok := raw.(string)
	if !ok {
		return invalid("expected a string value")
	}
	if !hasOption(f.Options, s) {
		return invalid("value is not one of the declared options")
	}
	return valid()
}

func validateMultiselect(f FormField, raw any) FieldResult {
	values, ok := raw.([]any)
	if !ok {
		return invalid("expected a list of values")
	}
	for _, v := range values {
		s, ok := v.(string)
		if !ok || !hasOption(f.Options, s) {
			return invalid("value is not one of the declared options")
		}
	}
	return valid()
}

func validateFileField(f FormField, files map[string]FileRef) FieldResult {
	ref, present := files[f.ID]
	if !present {
		if f.Required {
			return invalid("required file is missing")
		}
		return valid()
	}
	return CheckFileRules(f.Rules, ref.Size, ref.ContentType)
}

// CheckFileRules validates a file's size and MIME type against a file
// field's constraints. The upload endpoint applies the same check
// before the object ever reaches storage.
func CheckFileRules(rules *Rules, size int64, contentType string) FieldResult {
	if rules == nil {
		return valid()
	}
	if rules.MaxFileSize > 0 && size > rules.MaxFileSize {
		return invalid(fmt.Sprintf("file exceeds the maximum size of %d bytes", rules.MaxFileSize))
	}
	if len(rules.AllowedTypes) > 0 {
		for _, t := range rules.AllowedTypes {
			if strings.EqualFold(t, contentType) {
				return valid()
			}
		}
		return invalid("file type is not allowed")
	}
	return valid()
}

func hasOption(options []Option, value string) bool {
	for _, o := range options {
		if o.Value == value {
			return true
		}
	}
	return false
}

func isEmpty(raw any) bool {
	switch v := raw.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case bool:
		return !v
	case []any:
		return len(v) == 0
	default:
		return false
	}
}

func stringify(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
