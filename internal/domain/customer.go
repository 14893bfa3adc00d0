package domain

import (
	"fmt"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[\w\-.]+@([\w\-]+\.)+[\w\-]{2,4}$`)

type Customer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// NormalizeEmail trims and lowercases an email so it can be used as a lookup key.
func NormalizeEmail(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return "", fmt.Errorf("email must not be empty: %w", ErrInvalidArgument)
	}
	return normalized, nil
}

func NewCustomer(firstName, lastName, email string) (Customer, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" {
		return Customer{}, fmt.Errorf("first name must not be empty: %w", ErrInvalidArgument)
	}
	if lastName == "" {
		return Customer{}, fmt.Errorf("last name must not be empty: %w", ErrInvalidArgument)
	}
	if !emailPattern.MatchString(email) {
		return Customer{}, fmt.Errorf("%q: %w", email, ErrInvalidEmail)
	}
	return Customer{FirstName: firstName, LastName: lastName, Email: email}, nil
}

func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
