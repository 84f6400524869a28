// Package contact validates and delivers the portfolio contact form.
package contact

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// Field names, in form order.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldSubject = "subject"
	FieldMessage = "message"
)

// Fields lists the form fields in display order.
var Fields = []string{FieldName, FieldEmail, FieldSubject, FieldMessage}

// Validation messages.
const (
	MsgRequired     = "This field is required"
	MsgInvalidEmail = "Please enter a valid email address"
	MsgShortName    = "Name must be at least 2 characters"
	MsgShortMessage = "Message must be at least 10 characters"
)

const (
	MinNameLength    = 2
	MinMessageLength = 10
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Form holds the raw field values.
type Form struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Get returns the value of a field by name.
func (f Form) Get(field string) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldEmail:
		return f.Email
	case FieldSubject:
		return f.Subject
	case FieldMessage:
		return f.Message
	}
	return ""
}

// Set assigns a field by name. Unknown names are ignored.
func (f *Form) Set(field, value string) {
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldSubject:
		f.Subject = value
	case FieldMessage:
		f.Message = value
	}
}

// Reset empties every field.
func (f *Form) Reset() { *f = Form{} }

// Trimmed returns the form with surrounding whitespace removed.
func (f Form) Trimmed() Form {
	return Form{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Subject: strings.TrimSpace(f.Subject),
		Message: strings.TrimSpace(f.Message),
	}
}

// FieldErrors maps a field name to its message.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e[k]
	}
	return strings.Join(parts, "; ")
}

// ValidateField checks one field and returns its message, or "" when the
// value is acceptable. Every field is required.
func ValidateField(field, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return MsgRequired
	}
	switch field {
	case FieldEmail:
		if !emailPattern.MatchString(value) {
			return MsgInvalidEmail
		}
	case FieldName:
		if utf8.RuneCountInString(value) < MinNameLength {
			return MsgShortName
		}
	case FieldMessage:
		if utf8.RuneCountInString(value) < MinMessageLength {
			return MsgShortMessage
		}
	}
	return ""
}

// Validate checks every field. It returns nil when the form is valid.
func Validate(f Form) FieldErrors {
	var errs FieldErrors
	for _, field := range Fields {
		if msg := ValidateField(field, f.Get(field)); msg != "" {
			if errs == nil {
				errs = FieldErrors{}
			}
			errs[field] = msg
		}
	}
	return errs
}
