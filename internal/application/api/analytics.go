package api

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/mydailybill/mdb-admin/internal/infrastructure/gateway"
)

// AnalyticsAPI wraps the reporting endpoints. The payload schemas are still
// in flux server-side, so the facade hands back raw JSON for rendering.
type AnalyticsAPI struct {
	gw *gateway.Client
}

// Overview fetches the platform-wide analytics overview.
func (a *AnalyticsAPI) Overview(ctx context.Context) (json.RawMessage, error) {
	return a.raw(ctx, "/analytics/overview", "Failed to fetch analytics overview")
}

// CompanyStats fetches analytics for a single company.
func (a *AnalyticsAPI) CompanyStats(ctx context.Context, companyID string) (json.RawMessage, error) {
	return a.raw(ctx, "/analytics/companies/"+url.PathEscape(companyID), "Failed to fetch company analytics")
}

// PlanStats fetches per-plan analytics.
func (a *AnalyticsAPI) PlanStats(ctx context.Context) (json.RawMessage, error) {
	return a.raw(ctx, "/analytics/plans", "Failed to fetch plan analytics")
}

// Stats fetches the dashboard counters.
func (a *AnalyticsAPI) Stats(ctx context.Context) (json.RawMessage, error) {
	return a.raw(ctx, "/stats", "Failed to fetch stats")
}

func (a *AnalyticsAPI) raw(ctx context.Context, path, fallback string) (json.RawMessage, error) {
	resp, err := a.gw.Get(ctx, path)
	if err := normalize(resp, err, fallback); err != nil {
		return nil, err
	}
	return json.RawMessage(resp.Body), nil
}
