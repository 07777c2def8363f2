package catalog

import "github.com/bobmcallan/finchat/internal/models"

func e(alias, symbol string, class models.AssetClass) models.SymbolEntry {
	return models.SymbolEntry{Alias: alias, Symbol: symbol, AssetClass: class}
}

// IndianStocks lists NSE equities and Indian indices
var IndianStocks = Table{
	Name: "india",
	Entries: []models.SymbolEntry{
		e("reliance", "RELIANCE.NS", models.AssetEquityRegional),
		e("tcs", "TCS.NS", models.AssetEquityRegional),
		e("infosys", "INFY.NS", models.AssetEquityRegional),
		e("hdfc bank", "HDFCBANK.NS", models.AssetEquityRegional),
		e("icici bank", "ICICIBANK.NS", models.AssetEquityRegional),
		e("sbi", "SBIN.NS", models.AssetEquityRegional),
		e("bharti airtel", "BHARTIARTL.NS", models.AssetEquityRegional),
		e("itc", "ITC.NS", models.AssetEquityRegional),
		e("wipro", "WIPRO.NS", models.AssetEquityRegional),
		e("maruti", "MARUTI.NS", models.AssetEquityRegional),
		e("bajaj finance", "BAJFINANCE.NS", models.AssetEquityRegional),
		e("asian paints", "ASIANPAINT.NS", models.AssetEquityRegional),
		e("tata motors", "TATAMOTORS.NS", models.AssetEquityRegional),
		e("titan", "TITAN.NS", models.AssetEquityRegional),
		e("adani enterprises", "ADANIENT.NS", models.AssetEquityRegional),
		e("nifty", "^NSEI", models.AssetIndex),
		e("sensex", "^BSESN", models.AssetIndex),
		e("bank nifty", "^NSEBANK", models.AssetIndex),
	},
}

// USStocks lists US equities and indices
var USStocks = Table{
	Name: "us",
	Entries: []models.SymbolEntry{
		e("apple", "AAPL", models.AssetEquityUS),
		e("microsoft", "MSFT", models.AssetEquityUS),
		e("google", "GOOGL", models.AssetEquityUS),
		e("amazon", "AMZN", models.AssetEquityUS),
		e("tesla", "TSLA", models.AssetEquityUS),
		e("meta", "META", models.AssetEquityUS),
		e("nvidia", "NVDA", models.AssetEquityUS),
		e("netflix", "NFLX", models.AssetEquityUS),
		e("facebook", "META", models.AssetEquityUS),
		e("alphabet", "GOOGL", models.AssetEquityUS),
		e("berkshire", "BRK-B", models.AssetEquityUS),
		e("johnson", "JNJ", models.AssetEquityUS),
		e("walmart", "WMT", models.AssetEquityUS),
		e("visa", "V", models.AssetEquityUS),
		e("mastercard", "MA", models.AssetEquityUS),
		e("sp500", "^GSPC", models.AssetIndex),
		e("nasdaq", "^IXIC", models.AssetIndex),
		e("dow", "^DJI", models.AssetIndex),
	},
}

// Commodities lists futures contracts
var Commodities = Table{
	Name: "commodities",
	Entries: []models.SymbolEntry{
		e("gold", "GC=F", models.AssetCommodity),
		e("silver", "SI=F", models.AssetCommodity),
		e("crude oil", "CL=F", models.AssetCommodity),
		e("brent oil", "BZ=F", models.AssetCommodity),
		e("natural gas", "NG=F", models.AssetCommodity),
		e("copper", "HG=F", models.AssetCommodity),
		e("platinum", "PL=F", models.AssetCommodity),
		e("palladium", "PA=F", models.AssetCommodity),
		e("corn", "C=F", models.AssetCommodity),
		e("wheat", "W=F", models.AssetCommodity),
		e("soybeans", "S=F", models.AssetCommodity),
		e("coffee", "KC=F", models.AssetCommodity),
		e("sugar", "SB=F", models.AssetCommodity),
		e("cotton", "CT=F", models.AssetCommodity),
	},
}

// ForexPairs lists currency pairs
var ForexPairs = Table{
	Name: "forex",
	Entries: []models.SymbolEntry{
		e("eurusd", "EURUSD=X", models.AssetForex),
		e("gbpusd", "GBPUSD=X", models.AssetForex),
		e("usdjpy", "USDJPY=X", models.AssetForex),
		e("usdchf", "USDCHF=X", models.AssetForex),
		e("audusd", "AUDUSD=X", models.AssetForex),
		e("usdcad", "USDCAD=X", models.AssetForex),
		e("nzdusd", "NZDUSD=X", models.AssetForex),
		e("usdinr", "USDINR=X", models.AssetForex),
		e("eurjpy", "EURJPY=X", models.AssetForex),
		e("gbpjpy", "GBPJPY=X", models.AssetForex),
		e("chfjpy", "CHFJPY=X", models.AssetForex),
		e("eurgbp", "EURGBP=X", models.AssetForex),
	},
}

// CryptoPairs lists crypto/USD pairs
var CryptoPairs = Table{
	Name: "crypto",
	Entries: []models.SymbolEntry{
		e("bitcoin", "BTC-USD", models.AssetCrypto),
		e("ethereum", "ETH-USD", models.AssetCrypto),
		e("cardano", "ADA-USD", models.AssetCrypto),
		e("solana", "SOL-USD", models.AssetCrypto),
		e("dogecoin", "DOGE-USD", models.AssetCrypto),
		e("litecoin", "LTC-USD", models.AssetCrypto),
		e("chainlink", "LINK-USD", models.AssetCrypto),
		e("polygon", "MATIC-USD", models.AssetCrypto),
		e("avalanche", "AVAX-USD", models.AssetCrypto),
	},
}
