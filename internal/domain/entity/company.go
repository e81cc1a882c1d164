package entity

import "time"

// Company represents a tenant organization on the billing platform.
// The backend owns these records; the client holds a per-load read-through
// cache mutated locally only after a confirmed server action.
type Company struct {
	ID        ID     `json:"id"`
	TenantID  string `json:"tenant_id"`
	Domain    string `json:"domain,omitempty"` // alternate business key, same namespace as TenantID
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
	State     string `json:"state"`
	Status    string `json:"status"`
	UserCount int    `json:"userCount"`

	CreatedAt time.Time `json:"createdAt,omitempty"`

	// Present only on detail endpoints.
	Business    *Business     `json:"business,omitempty"`
	UserDetails []CompanyUser `json:"user_details,omitempty"`
}

// Company status values.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusPending  = "pending"
)

// DisplayName falls back to the tenant id when the company has no name set.
func (c Company) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.TenantID
}

// DomainKey returns the business key used by the tenant-by-domain endpoints.
func (c Company) DomainKey() string {
	if c.Domain != "" {
		return c.Domain
	}
	return c.TenantID
}

// NormalizedStatus maps unknown or missing status values to pending.
func (c Company) NormalizedStatus() string {
	switch c.Status {
	case StatusActive, StatusInactive, StatusPending:
		return c.Status
	default:
		return StatusPending
	}
}

// IsActive reports whether the tenant is active. Everything that is not
// exactly active (inactive, pending, unknown) counts as not active.
func (c Company) IsActive() bool {
	return c.Status == StatusActive
}

// Business holds the address, tax and verification details nested under a
// company on the detail endpoints.
type Business struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	Pincode    string `json:"pincode"`
	GSTNumber  string `json:"gst_number"`
	IsVerified int    `json:"is_verified"` // 0/1
}
