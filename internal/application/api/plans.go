package api

import (
	"context"
	"net/url"

	"github.com/mydailybill/mdb-admin/internal/domain/entity"
	"github.com/mydailybill/mdb-admin/internal/infrastructure/gateway"
)

// PlansAPI wraps the subscription plan endpoints.
type PlansAPI struct {
	gw *gateway.Client
}

// List fetches all plans.
func (p *PlansAPI) List(ctx context.Context) ([]entity.Plan, error) {
	resp, err := p.gw.Get(ctx, "/planList")
	if err := normalize(resp, err, "Failed to fetch plans"); err != nil {
		return nil, err
	}
	return decodeList[entity.Plan](resp.Body, "plans"), nil
}

// Active fetches only the currently active plans.
func (p *PlansAPI) Active(ctx context.Context) ([]entity.Plan, error) {
	resp, err := p.gw.Get(ctx, "/planList/active")
	if err := normalize(resp, err, "Failed to fetch active plans"); err != nil {
		return nil, err
	}
	return decodeList[entity.Plan](resp.Body, "plans"), nil
}

// Get fetches one plan.
func (p *PlansAPI) Get(ctx context.Context, id string) (*entity.Plan, error) {
	resp, err := p.gw.Get(ctx, "/planList/"+url.PathEscape(id))
	if err := normalize(resp, err, "Failed to fetch plan"); err != nil {
		return nil, err
	}
	plan, err := decodeItem[entity.Plan](resp.Body)
	if err != nil {
		return nil, &Error{Message: "Failed to fetch plan"}
	}
	return plan, nil
}

// Create adds a new plan.
func (p *PlansAPI) Create(ctx context.Context, plan entity.Plan) (*entity.Plan, error) {
	resp, err := p.gw.Post(ctx, "/planList", plan)
	if err := normalize(resp, err, "Failed to create plan"); err != nil {
		return nil, err
	}
	created, err := decodeItem[entity.Plan](resp.Body)
	if err != nil {
		return nil, &Error{Message: "Failed to create plan"}
	}
	return created, nil
}

// Update replaces a plan.
func (p *PlansAPI) Update(ctx context.Context, id string, plan entity.Plan) (*entity.Plan, error) {
	resp, err := p.gw.Put(ctx, "/planList/"+url.PathEscape(id), plan)
	if err := normalize(resp, err, "Failed to update plan"); err != nil {
		return nil, err
	}
	updated, err := decodeItem[entity.Plan](resp.Body)
	if err != nil {
		return nil, &Error{Message: "Failed to update plan"}
	}
	return updated, nil
}

// ToggleStatus flips a plan's is_active flag. Callers apply the change
// locally only after this returns without error.
func (p *PlansAPI) ToggleStatus(ctx context.Context, id string) error {
	resp, err := p.gw.Patch(ctx, "/planList/"+url.PathEscape(id)+"/toggle-status", nil)
	return normalize(resp, err, "Failed to toggle plan status")
}
