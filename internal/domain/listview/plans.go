package listview

import (
	"github.com/mydailybill/mdb-admin/internal/domain/entity"
)

// Sort keys exposed by the plans listing.
const (
	PlanSortName  = "name"
	PlanSortPrice = "price"
	PlanSortDays  = "days"
)

// PlanFields adapts Plan to the pipeline: search over name and description,
// price sorting on the offer price (the price actually charged).
func PlanFields() Fields[entity.Plan] {
	return Fields[entity.Plan]{
		SearchText: func(p entity.Plan) string {
			return p.Name + " " + p.Description
		},
		Active:      func(p entity.Plan) bool { return p.IsActive },
		DefaultSort: PlanSortName,
		Compare: map[string]func(a, b entity.Plan) int{
			PlanSortName: func(a, b entity.Plan) int {
				return CompareFold(a.Name, b.Name)
			},
			PlanSortPrice: func(a, b entity.Plan) int {
				return a.OfferPrice.Cmp(b.OfferPrice)
			},
			PlanSortDays: func(a, b entity.Plan) int {
				return a.NoOfDays - b.NoOfDays
			},
		},
	}
}
