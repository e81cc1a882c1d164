package api

import (
	"context"
	"net/url"

	"github.com/mydailybill/mdb-admin/internal/domain/entity"
	"github.com/mydailybill/mdb-admin/internal/infrastructure/gateway"
)

// CompaniesAPI wraps the tenant endpoints.
type CompaniesAPI struct {
	gw *gateway.Client
}

// List fetches all companies. The listing path is misspelled server-side;
// the client has to match it.
func (c *CompaniesAPI) List(ctx context.Context) ([]entity.Company, error) {
	resp, err := c.gw.Get(ctx, "/doamin")
	if err := normalize(resp, err, "Failed to fetch companies"); err != nil {
		return nil, err
	}
	return decodeList[entity.Company](resp.Body, "companies"), nil
}

// DeleteByDomain removes a tenant by its domain key.
func (c *CompaniesAPI) DeleteByDomain(ctx context.Context, domain string) error {
	resp, err := c.gw.Delete(ctx, "/tenant-by-domain/"+url.PathEscape(domain))
	return normalize(resp, err, "Failed to delete company")
}

// ToggleStatusByDomain flips a tenant's active status by its domain key.
func (c *CompaniesAPI) ToggleStatusByDomain(ctx context.Context, domain string) error {
	resp, err := c.gw.Post(ctx, "/tenant-by-domain/"+url.PathEscape(domain), nil)
	return normalize(resp, err, "Failed to update company status")
}

// Get fetches one company with its nested business and user details.
func (c *CompaniesAPI) Get(ctx context.Context, id string) (*entity.Company, error) {
	resp, err := c.gw.Get(ctx, "/companies/"+url.PathEscape(id))
	if err := normalize(resp, err, "Failed to fetch company"); err != nil {
		return nil, err
	}
	company, err := decodeItem[entity.Company](resp.Body)
	if err != nil {
		return nil, &Error{Message: "Failed to fetch company"}
	}
	return company, nil
}

// Create registers a new tenant.
func (c *CompaniesAPI) Create(ctx context.Context, company entity.Company) (*entity.Company, error) {
	resp, err := c.gw.Post(ctx, "/companies", company)
	if err := normalize(resp, err, "Failed to create company"); err != nil {
		return nil, err
	}
	created, err := decodeItem[entity.Company](resp.Body)
	if err != nil {
		return nil, &Error{Message: "Failed to create company"}
	}
	return created, nil
}

// Update replaces a tenant's details.
func (c *CompaniesAPI) Update(ctx context.Context, id string, company entity.Company) (*entity.Company, error) {
	resp, err := c.gw.Put(ctx, "/companies/"+url.PathEscape(id), company)
	if err := normalize(resp, err, "Failed to update company"); err != nil {
		return nil, err
	}
	updated, err := decodeItem[entity.Company](resp.Body)
	if err != nil {
		return nil, &Error{Message: "Failed to update company"}
	}
	return updated, nil
}
