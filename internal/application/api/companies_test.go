package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────────────────────────────────────────────────────────────────────────────
// Listing envelopes
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanies_ListAcceptsAllEnvelopeShapes(t *testing.T) {
	cases := []struct {
		name string
		body string
		want int
	}{
		{
			"bare array",
			`[{"id":"1","tenant_id":"a"},{"id":"2","tenant_id":"b"}]`,
			2,
		},
		{
			"nested under data",
			`{"data":[{"id":"1","tenant_id":"a"}]}`,
			1,
		},
		{
			"nested under resource key",
			`{"companies":[{"id":"1","tenant_id":"a"},{"id":"2","tenant_id":"b"},{"id":"3","tenant_id":"c"}]}`,
			3,
		},
		{
			"unrecognized shape decodes empty",
			`{"count":0}`,
			0,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, _ := newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/doamin", r.URL.Path, "listing path is misspelled server-side")
				_, _ = w.Write([]byte(tc.body))
			}))

			companies, err := a.Companies.List(context.Background())
			require.NoError(t, err)
			assert.Len(t, companies, tc.want)
		})
	}
}

func TestCompanies_ListErrorFallback(t *testing.T) {
	a, _ := newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := a.Companies.List(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Failed to fetch companies", err.Error())
}

// ──────────────────────────────────────────────────────────────────────────────
// Mutations by domain key
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanies_DeleteAndToggleByDomain(t *testing.T) {
	var gotMethod, gotPath string
	a, _ := newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		_, _ = w.Write([]byte(`{}`))
	}))

	require.NoError(t, a.Companies.DeleteByDomain(context.Background(), "acme-corp"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/tenant-by-domain/acme-corp", gotPath)

	require.NoError(t, a.Companies.ToggleStatusByDomain(context.Background(), "acme-corp"))
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/tenant-by-domain/acme-corp", gotPath)
}

// ──────────────────────────────────────────────────────────────────────────────
// Detail with nested payload
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanies_GetDecodesNestedDetails(t *testing.T) {
	a, _ := newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/companies/7", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":{
			"id": 7,
			"tenant_id": "acme-corp",
			"name": "Acme Corporation",
			"status": "active",
			"business": {"address":"12 Main St","gst_number":"29ABCDE1234F2Z5","is_verified":1},
			"user_details": [
				{"id":"u1","name":"Asha","role_id":1,"is_active":1,"user_key":"sk_live_abcd1234"},
				{"id":"u2","name":"Ravi","role_id":9}
			]
		}}`))
	}))

	company, err := a.Companies.Get(context.Background(), "7")
	require.NoError(t, err)

	require.NotNil(t, company.Business)
	assert.Equal(t, "29ABCDE1234F2Z5", company.Business.GSTNumber)
	require.Len(t, company.UserDetails, 2)
	assert.Equal(t, "Owner", company.UserDetails[0].RoleName())
	assert.Equal(t, "User", company.UserDetails[1].RoleName(), "unknown role ids fall back to User")
	assert.Equal(t, "************1234", company.UserDetails[0].MaskedKey())
}
