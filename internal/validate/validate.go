// Package validate holds the request validators shared by the handlers.
// Validators are pure: they return a *FieldError (nil when valid) and never
// touch the store or the response.
package validate

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MinAge = 10
	MaxAge = 120

	MinMessageLen = 10
	MaxMessageLen = 5000

	PasswordMinLen   = 8
	PasswordSpecials = "@$!%*?&"
)

var (
	Genders         = []string{"male", "female", "other", "prefer_not_to_say"}
	Roles           = []string{"user", "admin"}
	MessageStatuses = []string{"new", "read", "archived"}
)

// FieldError is one rejected input. Details carries sub-rule messages, e.g.
// the password rules that failed.
type FieldError struct {
	Field   string
	Message string
	Details []string
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Errors is an ordered list of rejected inputs.
type Errors []*FieldError

// Collect keeps the non-nil results in order.
func Collect(checks ...*FieldError) Errors {
	var out Errors
	for _, c := range checks {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

// First returns the first error, or nil.
func (es Errors) First() *FieldError {
	if len(es) == 0 {
		return nil
	}
	return es[0]
}

// Required fails with msg if any value is blank.
func Required(msg string, values ...string) *FieldError {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return &FieldError{Message: msg}
		}
	}
	return nil
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsEmail reports whether v looks like local@domain.tld.
func IsEmail(v string) bool {
	return emailRe.MatchString(strings.ToLower(v))
}

func Email(field, v string) *FieldError {
	if IsEmail(v) {
		return nil
	}
	return &FieldError{Field: field, Message: "Invalid email format."}
}

// PasswordViolations returns the message of every strength rule pw breaks.
func PasswordViolations(pw string) []string {
	var out []string
	if utf8.RuneCountInString(pw) < PasswordMinLen {
		out = append(out, fmt.Sprintf("Password must be at least %d characters long.", PasswordMinLen))
	}
	var lower, upper, digit, special bool
	for _, r := range pw {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(PasswordSpecials, r):
			special = true
		}
	}
	if !lower {
		out = append(out, "Password must include at least one lowercase letter.")
	}
	if !upper {
		out = append(out, "Password must include at least one uppercase letter.")
	}
	if !digit {
		out = append(out, "Password must include at least one number.")
	}
	if !special {
		out = append(out, "Password must include at least one special character ("+PasswordSpecials+").")
	}
	return out
}

func Password(field, pw string) *FieldError {
	v := PasswordViolations(pw)
	if len(v) == 0 {
		return nil
	}
	return &FieldError{Field: field, Message: "Password does not meet strength requirements.", Details: v}
}

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Age is the number of whole years between birth and now, counting a year
// only once its month and day have been reached.
func Age(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

// BirthDate checks a YYYY-MM-DD date and that the age it implies is within
// [MinAge, MaxAge] at now.
func BirthDate(field, s string, now time.Time) *FieldError {
	if !dateRe.MatchString(s) {
		return &FieldError{Field: field, Message: "Invalid birth date format. Please use YYYY-MM-DD."}
	}
	birth, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return &FieldError{Field: field, Message: "Invalid birth date provided."}
	}
	age := Age(birth, now)
	if age < MinAge {
		return &FieldError{Field: field, Message: MinAgeMessage()}
	}
	if age > MaxAge {
		return &FieldError{Field: field, Message: "Invalid birth date (too old)."}
	}
	return nil
}

func MinAgeMessage() string {
	return fmt.Sprintf("You must be at least %d years old to register.", MinAge)
}

func Gender(field, v string) *FieldError {
	if slices.Contains(Genders, strings.ToLower(v)) {
		return nil
	}
	return &FieldError{Field: field, Message: "Invalid gender selected."}
}

// OneOf fails with msg unless v is exactly one of allowed.
func OneOf(field, v, msg string, allowed ...string) *FieldError {
	if slices.Contains(allowed, v) {
		return nil
	}
	return &FieldError{Field: field, Message: msg}
}

// ID parses a base-10 path parameter; what names the resource in the message.
func ID(raw, what string) (int64, *FieldError) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, &FieldError{Message: fmt.Sprintf("Invalid %s ID format.", what)}
	}
	return id, nil
}

// MessageBody bounds a contact message to [MinMessageLen, MaxMessageLen] characters.
func MessageBody(field, v string) *FieldError {
	n := utf8.RuneCountInString(v)
	if n < MinMessageLen {
		return &FieldError{Field: field, Message: fmt.Sprintf("Message must be at least %d characters long.", MinMessageLen)}
	}
	if n > MaxMessageLen {
		return &FieldError{Field: field, Message: fmt.Sprintf("Message is too long (max %d characters).", MaxMessageLen)}
	}
	return nil
}
