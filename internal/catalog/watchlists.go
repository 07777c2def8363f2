package catalog

import "github.com/bobmcallan/finchat/internal/models"

// Overview watchlists shown in the quick market overview
var (
	OverviewIndices     = []string{"^NSEI", "^BSESN", "^GSPC", "^IXIC"}
	OverviewForexPairs  = []string{"USDINR", "EURUSD", "GBPUSD"}
	OverviewCommodities = []string{"GC=F", "CL=F"}
)

// PopularCategories returns the fixed "popular categories" groups
func PopularCategories() []models.Watchlist {
	return []models.Watchlist{
		{Name: "Indian Stocks", Symbols: []string{"RELIANCE.NS", "TCS.NS", "INFY.NS"}},
		{Name: "US Tech", Symbols: []string{"AAPL", "MSFT", "GOOGL"}},
		{Name: "Commodities", Symbols: []string{"GC=F", "CL=F", "SI=F"}},
		{Name: "Forex", Symbols: []string{"USDINR=X", "EURUSD=X", "GBPUSD=X"}},
	}
}
