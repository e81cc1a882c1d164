package entity

import "strings"

// CompanyUser is a platform user nested under a company's user_details.
type CompanyUser struct {
	ID              ID     `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	PhoneNo         string `json:"phone_no"`
	RoleID          int    `json:"role_id"`
	IsActive        int    `json:"is_active"`          // 0/1
	IsEmailVerified int    `json:"is_email_verified"`  // 0/1
	UserKey         string `json:"user_key,omitempty"` // secret, display masked
	CreatedAt       string `json:"created_at,omitempty"`
}

// Role ids assigned by the backend.
const (
	RoleOwner    = 1
	RoleManager  = 2
	RoleAdmin    = 3
	RoleEmployee = 4
)

var roleNames = map[int]string{
	RoleOwner:    "Owner",
	RoleManager:  "Manager",
	RoleAdmin:    "Admin",
	RoleEmployee: "Employee",
}

// RoleName returns the display name for the user's role id; unknown ids
// render as plain "User".
func (u CompanyUser) RoleName() string {
	if name, ok := roleNames[u.RoleID]; ok {
		return name
	}
	return "User"
}

// MaskedKey renders the user key with everything but the last four
// characters hidden. Keys are secrets and are never shown in full by
// default.
func (u CompanyUser) MaskedKey() string {
	if u.UserKey == "" {
		return ""
	}
	if len(u.UserKey) <= 4 {
		return strings.Repeat("*", len(u.UserKey))
	}
	return strings.Repeat("*", len(u.UserKey)-4) + u.UserKey[len(u.UserKey)-4:]
}
