package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mydailybill/mdb-admin/internal/domain/listview"
)

// listFlags binds the shared listing controls (search, status filter, sort)
// onto a command and converts them to a pipeline configuration.
type listFlags struct {
	Search string
	Status string
	SortBy string
	Order  string
}

func (f *listFlags) bind(cmd *cobra.Command, defaultSort, sortKeys string) {
	cmd.Flags().StringVar(&f.Search, "search", "", "substring search (case-insensitive)")
	cmd.Flags().StringVar(&f.Status, "status", string(listview.StatusAll), "status filter (all|active|inactive)")
	cmd.Flags().StringVar(&f.SortBy, "sort", defaultSort, "sort key ("+sortKeys+")")
	cmd.Flags().StringVar(&f.Order, "order", string(listview.OrderAsc), "sort order (asc|desc)")
}

func (f *listFlags) config() (listview.Config, error) {
	switch listview.StatusFilter(f.Status) {
	case listview.StatusAll, listview.StatusActive, listview.StatusInactive:
	default:
		return listview.Config{}, fmt.Errorf("invalid status %q: must be all, active or inactive", f.Status)
	}
	switch listview.SortOrder(f.Order) {
	case listview.OrderAsc, listview.OrderDesc:
	default:
		return listview.Config{}, fmt.Errorf("invalid order %q: must be asc or desc", f.Order)
	}
	return listview.Config{
		Search: f.Search,
		Status: listview.StatusFilter(f.Status),
		SortBy: f.SortBy,
		Order:  listview.SortOrder(f.Order),
	}, nil
}
