package reports

import (
	"context"

	"snackpos/internal/core"
	"snackpos/internal/store"
)

// Service reads sales from the store and hands them to the pure
// aggregation functions.
type Service struct {
	tables *store.Tables
}

func NewService(tables *store.Tables) *Service {
	return &Service{tables: tables}
}

// Load returns all recorded sales sorted newest first.
func (s *Service) Load(ctx context.Context) []core.Sale {
	return SortByDateDesc(s.tables.Sales(ctx))
}

// Report is the full reporting payload for one filter selection.
type Report struct {
	Statistics core.Statistics      `json:"statistics"`
	Monthly    []core.MonthlyBucket `json:"monthly"`
	Items      []core.ItemSales     `json:"items"`
	Years      []int                `json:"years"`
}

// Build filters the full sales set by the optional month/year and
// derives every view over the filtered slice. Years always come from
// the unfiltered set, because they drive the filter control itself.
func (s *Service) Build(ctx context.Context, month, year *int) Report {
	all := s.Load(ctx)
	filtered := FilterByPeriod(all, month, year)
	return Report{
		Statistics: Statistics(filtered),
		Monthly:    MonthlyBreakdown(filtered),
		Items:      ItemWiseSales(filtered),
		Years:      YearOptions(all),
	}
}
