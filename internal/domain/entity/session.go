package entity

import "time"

// DefaultUserName is the display-name fallback when the backend sends
// neither name nor username at login.
const DefaultUserName = "Super Admin"

// SessionRecord is the persisted representation of the authenticated user
// and the companies they can administer. JSON keys match the record format
// the web console writes, so a store can be shared between clients.
type SessionRecord struct {
	UserType  string    `json:"userType"`
	Companies []Company `json:"companies"`
	Email     string    `json:"email"`
	LoginTime time.Time `json:"loginTime"`
	Name      string    `json:"name"`
}

// Clone returns a deep-enough copy: the companies slice is copied so callers
// can merge-and-replace without mutating the original record.
func (r *SessionRecord) Clone() *SessionRecord {
	if r == nil {
		return nil
	}
	out := *r
	out.Companies = append([]Company(nil), r.Companies...)
	return &out
}

// SessionPatch is a partial update applied to a session record. Nil fields
// are left untouched; the merge always produces a new record.
type SessionPatch struct {
	UserType *string
	Email    *string
	Name     *string
}

// Merge applies the patch to a copy of the record and returns it.
func (r *SessionRecord) Merge(p SessionPatch) *SessionRecord {
	out := r.Clone()
	if out == nil {
		out = &SessionRecord{}
	}
	if p.UserType != nil {
		out.UserType = *p.UserType
	}
	if p.Email != nil {
		out.Email = *p.Email
	}
	if p.Name != nil {
		out.Name = *p.Name
	}
	return out
}
