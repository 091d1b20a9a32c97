// Package reports derives aggregate views over recorded sales: summary
// statistics, month-bucketed breakdowns, and item-wise totals, with an
// optional month/year filter.
package reports

import (
	"fmt"
	"sort"

	"snackpos/internal/core"
)

// FilterByPeriod returns the sales matching the optional filter. Month
// is a zero-based index (0=January) and year a four-digit value; a nil
// pointer means "all". The source slice is never mutated.
func FilterByPeriod(sales []core.Sale, month, year *int) []core.Sale {
	out := make([]core.Sale, 0, len(sales))
	for _, s := range sales {
		local := s.Date.Local()
		if month != nil && int(local.Month())-1 != *month {
			continue
		}
		if year != nil && local.Year() != *year {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Statistics computes the headline numbers for a set of sales. The
// average is zero when there are no transactions.
func Statistics(sales []core.Sale) core.Statistics {
	stats := core.Statistics{TotalTransactions: len(sales)}
	months := make(map[string]struct{})
	for _, s := range sales {
		stats.TotalSales.Paise += s.Total.Paise
		months[bucketKey(s)] = struct{}{}
	}
	stats.ActiveMonths = len(months)
	if stats.TotalTransactions > 0 {
		stats.AverageSale = core.Money{
			Paise: stats.TotalSales.Paise / int64(stats.TotalTransactions),
		}
	}
	return stats
}

// MonthlyBreakdown buckets sales by local year and month, newest month
// first.
func MonthlyBreakdown(sales []core.Sale) []core.MonthlyBucket {
	byKey := make(map[string]*core.MonthlyBucket)
	for _, s := range sales {
		key := bucketKey(s)
		b, ok := byKey[key]
		if !ok {
			local := s.Date.Local()
			b = &core.MonthlyBucket{
				Key:         key,
				DisplayName: fmt.Sprintf("%s %d", local.Month(), local.Year()),
			}
			byKey[key] = b
		}
		b.Total.Paise += s.Total.Paise
		b.Transactions++
	}

	out := make([]core.MonthlyBucket, 0, len(byKey))
	for _, b := range byKey {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key > out[j].Key })
	return out
}

// ItemWiseSales aggregates line items by name across all sales, sorted
// by revenue descending.
func ItemWiseSales(sales []core.Sale) []core.ItemSales {
	byName := make(map[string]*core.ItemSales)
	order := make([]string, 0)
	for _, s := range sales {
		for _, it := range s.Items {
			agg, ok := byName[it.Name]
			if !ok {
				agg = &core.ItemSales{Name: it.Name}
				byName[it.Name] = agg
				order = append(order, it.Name)
			}
			agg.Quantity += it.Quantity
			agg.Revenue.Paise += it.Price.Paise * int64(it.Quantity)
		}
	}

	out := make([]core.ItemSales, 0, len(order))
	for _, name := range order {
		out = append(out, *byName[name])
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Revenue.Paise > out[j].Revenue.Paise
	})
	return out
}

// YearOptions returns the distinct local years present across sales,
// sorted descending. It is meant to drive the year filter control and
// always reads the full unfiltered set.
func YearOptions(sales []core.Sale) []int {
	seen := make(map[int]struct{})
	for _, s := range sales {
		seen[s.Date.Local().Year()] = struct{}{}
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// SortByDateDesc orders sales newest first for display. The sort is
// unstable with respect to equal timestamps.
func SortByDateDesc(sales []core.Sale) []core.Sale {
	out := make([]core.Sale, len(sales))
	copy(out, sales)
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

func bucketKey(s core.Sale) string {
	local := s.Date.Local()
	return fmt.Sprintf("%04d-%02d", local.Year(), int(local.Month()))
}
