// Package contact validates contact form submissions and delivers them to the
// contact API or, when no API is configured, by mail.
package contact

import (
	"errors"
	"sort"
	"strings"
)

// ErrValidation marks a submission missing required fields.
var ErrValidation = errors.New("invalid submission")

// Submission is one contact form post.
type Submission struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

// Normalize trims surrounding whitespace from every field.
func (s Submission) Normalize() Submission {
	return Submission{
		Name:    strings.TrimSpace(s.Name),
		Email:   strings.TrimSpace(s.Email),
		Subject: strings.TrimSpace(s.Subject),
		Message: strings.TrimSpace(s.Message),
	}
}

// ValidationError lists the fields that failed, keyed by form field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "missing required fields: " + strings.Join(names, ", ")
}

// Is makes errors.Is(err, ErrValidation) hold.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Validate checks that name, email and message are present. Subject is optional.
func (s Submission) Validate() error {
	s = s.Normalize()
	fields := make(map[string]string)
	if s.Name == "" {
		fields["name"] = "Name is required"
	}
	if s.Email == "" {
		fields["email"] = "Email is required"
	}
	if s.Message == "" {
		fields["message"] = "Message is required"
	}
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
