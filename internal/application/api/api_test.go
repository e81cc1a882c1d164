package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mydailybill/mdb-admin/internal/application/api"
	"github.com/mydailybill/mdb-admin/internal/domain/entity"
	"github.com/mydailybill/mdb-admin/internal/infrastructure/credstore"
	"github.com/mydailybill/mdb-admin/internal/infrastructure/gateway"
	"github.com/mydailybill/mdb-admin/pkg/logger"
)

func samplePlan() entity.Plan {
	return entity.Plan{
		Name:       "Starter",
		OfferPrice: decimal.NewFromInt(999),
		SalePrice:  decimal.NewFromInt(1499),
		NoOfDays:   30,
		IsActive:   true,
	}
}

// newAPI spins a mocked backend and the full client stack against it.
func newAPI(t *testing.T, handler http.Handler) (*api.API, *credstore.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := credstore.New(credstore.NewMemory(), logger.Nop())
	gw := gateway.New(gateway.Config{BaseURL: srv.URL}, store, logger.Nop())
	return api.New(gw, logger.Nop()), store
}

// deadAPI points at a closed port to simulate transport failure.
func deadAPI(t *testing.T) *api.API {
	t.Helper()
	store := credstore.New(credstore.NewMemory(), logger.Nop())
	gw := gateway.New(gateway.Config{BaseURL: "http://127.0.0.1:1"}, store, logger.Nop())
	return api.New(gw, logger.Nop())
}
