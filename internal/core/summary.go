package core

// Statistics is the headline summary over a set of sales.
type Statistics struct {
	TotalSales        Money `json:"totalSales"`
	TotalTransactions int   `json:"totalTransactions"`
	AverageSale       Money `json:"averageSale"`
	ActiveMonths      int   `json:"activeMonths"`
}

// MonthlyBucket is one month's slice of the breakdown, keyed "YYYY-MM".
type MonthlyBucket struct {
	Key          string `json:"key"`
	DisplayName  string `json:"displayName"`
	Total        Money  `json:"total"`
	Transactions int    `json:"transactions"`
}

// ItemSales aggregates quantity and revenue for one item name.
type ItemSales struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Revenue  Money  `json:"revenue"`
}
