package listview

import (
	"strings"

	"github.com/mydailybill/mdb-admin/internal/domain/entity"
)

// Sort keys exposed by the companies listing.
const (
	CompanySortName = "name"
	CompanySortID   = "id"
	CompanySortDate = "date"
)

// CompanyFields adapts Company to the pipeline: search over tenant id,
// name, id, email and city; name sorting falls back to the tenant id like
// DisplayName does.
func CompanyFields() Fields[entity.Company] {
	return Fields[entity.Company]{
		SearchText: func(c entity.Company) string {
			return strings.Join([]string{c.TenantID, c.Name, c.ID.String(), c.Email, c.City}, " ")
		},
		Active:      entity.Company.IsActive,
		DefaultSort: CompanySortName,
		Compare: map[string]func(a, b entity.Company) int{
			CompanySortName: func(a, b entity.Company) int {
				return CompareFold(a.DisplayName(), b.DisplayName())
			},
			CompanySortID: func(a, b entity.Company) int {
				return CompareFold(a.ID.String(), b.ID.String())
			},
			CompanySortDate: func(a, b entity.Company) int {
				return CompareTime(a.CreatedAt, b.CreatedAt)
			},
		},
	}
}
