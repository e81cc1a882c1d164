package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mydailybill/mdb-admin/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// ID
// ──────────────────────────────────────────────────────────────────────────────

func TestID_DecodesStringNumberAndNull(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want entity.ID
	}{
		{"string", `{"id":"42"}`, "42"},
		{"number", `{"id":42}`, "42"},
		{"large number stays intact", `{"id":9007199254740993}`, "9007199254740993"},
		{"null", `{"id":null}`, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var c entity.Company
			require.NoError(t, json.Unmarshal([]byte(tc.in), &c))
			assert.Equal(t, tc.want, c.ID)
		})
	}
}

func TestID_EncodesAsString(t *testing.T) {
	data, err := json.Marshal(entity.ID("7"))
	require.NoError(t, err)
	assert.Equal(t, `"7"`, string(data))
}

// ──────────────────────────────────────────────────────────────────────────────
// Company
// ──────────────────────────────────────────────────────────────────────────────

func TestCompany_DisplayNameFallsBackToTenantID(t *testing.T) {
	assert.Equal(t, "Acme Corp", entity.Company{Name: "Acme Corp", TenantID: "acme"}.DisplayName())
	assert.Equal(t, "acme", entity.Company{TenantID: "acme"}.DisplayName())
}

func TestCompany_DomainKeyPrefersDomain(t *testing.T) {
	assert.Equal(t, "acme.example", entity.Company{Domain: "acme.example", TenantID: "acme"}.DomainKey())
	assert.Equal(t, "acme", entity.Company{TenantID: "acme"}.DomainKey())
}

func TestCompany_NormalizedStatus(t *testing.T) {
	cases := []struct {
		status string
		want   string
	}{
		{"active", "active"},
		{"inactive", "inactive"},
		{"pending", "pending"},
		{"deactivated", "pending"},
		{"", "pending"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, entity.Company{Status: tc.status}.NormalizedStatus(), tc.status)
	}
}

func TestCompany_IsActiveIsStrict(t *testing.T) {
	assert.True(t, entity.Company{Status: "active"}.IsActive())
	for _, s := range []string{"inactive", "pending", "", "Active"} {
		assert.False(t, entity.Company{Status: s}.IsActive(), s)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CompanyUser
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanyUser_RoleName(t *testing.T) {
	cases := []struct {
		roleID int
		want   string
	}{
		{entity.RoleOwner, "Owner"},
		{entity.RoleManager, "Manager"},
		{entity.RoleAdmin, "Admin"},
		{entity.RoleEmployee, "Employee"},
		{0, "User"},
		{99, "User"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, entity.CompanyUser{RoleID: tc.roleID}.RoleName())
	}
}

func TestCompanyUser_MaskedKey(t *testing.T) {
	cases := []struct {
		name string
		key  string
		want string
	}{
		{"long key shows last four", "sk_live_abcd1234", "************1234"},
		{"short key fully masked", "abcd", "****"},
		{"tiny key fully masked", "ab", "**"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, entity.CompanyUser{UserKey: tc.key}.MaskedKey())
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// SessionRecord
// ──────────────────────────────────────────────────────────────────────────────

func TestSessionRecord_CloneIsIndependent(t *testing.T) {
	orig := &entity.SessionRecord{
		Name:      "Super Admin",
		Companies: []entity.Company{{ID: "1", TenantID: "acme"}},
	}
	clone := orig.Clone()
	clone.Companies[0].TenantID = "changed"
	clone.Name = "Other"

	assert.Equal(t, "acme", orig.Companies[0].TenantID)
	assert.Equal(t, "Super Admin", orig.Name)
}

func TestSessionRecord_CloneNil(t *testing.T) {
	var rec *entity.SessionRecord
	assert.Nil(t, rec.Clone())
}

func TestSessionRecord_MergeTouchesOnlyPatchedFields(t *testing.T) {
	orig := &entity.SessionRecord{UserType: "Super Admin", Email: "a@b.com", Name: "Old"}

	name := "New"
	merged := orig.Merge(entity.SessionPatch{Name: &name})

	assert.Equal(t, "New", merged.Name)
	assert.Equal(t, "a@b.com", merged.Email)
	assert.Equal(t, "Super Admin", merged.UserType)
	assert.Equal(t, "Old", orig.Name, "merge never mutates the original")
}
