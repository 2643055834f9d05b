package models

import "strings"

// Viewer roles recognized by the portal.
const (
	RoleStudent = "student"
	RoleParent  = "parent"
	RoleTutor   = "tutor"
	RoleAdmin   = "admin"
)

// User is a read-only projection of a portal account as returned by the
// remote API when a participant reference is expanded.
type User struct {
	ID         string  `json:"id"`
	FirstName  string  `json:"firstName,omitempty"`
	LastName   string  `json:"lastName,omitempty"`
	Email      string  `json:"email,omitempty"`
	Role       string  `json:"role,omitempty"`
	HourlyRate float64 `json:"hourlyRate,omitempty"`
}

// FullName joins the name fields, tolerating either being empty.
func (u User) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
}
