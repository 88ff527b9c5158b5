package domain

import (
	"fmt"
	"strings"
)

// Enrolment states as stored in the roster file.
const (
	Enrolled    = "enrolled"
	NotEnrolled = "not_enrolled"
)

// User is one roster entry.
type User struct {
	ID       string
	Name     string
	Email    string
	Enrolled string
}

func (u User) Validate() error {
	if strings.TrimSpace(u.ID) == "" {
		return fmt.Errorf("user id is required")
	}
	if strings.ContainsAny(u.ID+u.Name+u.Email+u.Enrolled, ",\n") {
		return fmt.Errorf("user fields must not contain commas or newlines")
	}
	if u.Enrolled != Enrolled && u.Enrolled != NotEnrolled {
		return fmt.Errorf("enrolment must be %q or %q", Enrolled, NotEnrolled)
	}
	return nil
}

// Matches reports whether the query appears in the id, name or email,
// case-insensitively. The empty query matches everyone.
func (u User) Matches(query string) bool {
	query = strings.ToLower(query)
	for _, field := range []string{u.ID, u.Name, u.Email} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}
