package classify

// Vocabulary tables for the rule list. All entries are lower-case; unit
// strings are lower-cased and tokenized before lookup.

// cryptoTokens are crypto-asset unit symbols. A unit carrying one of these
// classifies as crypto regardless of the indicator name.
var cryptoTokens = map[string]struct{}{
	"btc": {}, "eth": {}, "sol": {}, "ada": {}, "xrp": {}, "dot": {},
	"doge": {}, "avax": {}, "matic": {}, "link": {}, "ltc": {}, "bch": {},
	"uni": {}, "atom": {}, "xlm": {}, "trx": {}, "bnb": {}, "usdt": {},
	"usdc": {}, "dai": {}, "shib": {}, "near": {}, "algo": {}, "ftm": {},
	"sats": {}, "satoshi": {}, "wei": {}, "gwei": {},
}

// energyUnits are physical units whose per-currency prices are energy prices.
var energyUnits = map[string]struct{}{
	"mwh": {}, "kwh": {}, "gwh": {}, "twh": {}, "barrel": {}, "barrels": {},
	"bbl": {}, "btu": {}, "mmbtu": {}, "therm": {}, "therms": {}, "mcf": {},
	"gallon": {}, "gallons": {}, "litre": {}, "liter": {}, "litres": {},
	"liters": {},
}

// metalsUnits are physical units conventionally used for metal prices.
var metalsUnits = map[string]struct{}{
	"ounce": {}, "ounces": {}, "oz": {}, "troy": {}, "gram": {}, "grams": {},
	"kilogram": {}, "kilograms": {}, "kg": {}, "dmtu": {}, "flask": {},
}

// agricultureUnits are physical units conventionally used for agricultural
// commodity prices.
var agricultureUnits = map[string]struct{}{
	"bushel": {}, "bushels": {}, "bale": {}, "bales": {}, "cwt": {},
	"hundredweight": {}, "pound": {}, "pounds": {}, "lb": {}, "lbs": {},
	"dozen": {}, "head": {},
}

// commodityUnits are generic physical units; per-currency prices over these
// stay in the generic commodities bucket unless name keywords refine them.
var commodityUnits = map[string]struct{}{
	"tonne": {}, "tonnes": {}, "ton": {}, "tons": {}, "mt": {},
	"unit": {}, "item": {}, "carat": {}, "board": {}, "sheet": {},
	"cubic": {}, "m3": {},
}

// Name keywords that refine a generic commodity price into a sub-bucket.
var energyNameWords = []string{
	"electricity", "power", "gas", "oil", "crude", "brent", "wti", "diesel",
	"gasoline", "petrol", "coal", "fuel", "lng", "energy", "uranium",
}
var metalsNameWords = []string{
	"gold", "silver", "copper", "platinum", "palladium", "aluminium",
	"aluminum", "zinc", "nickel", "tin", "lead", "iron", "steel", "lithium",
	"cobalt", "metal",
}
var agricultureNameWords = []string{
	"wheat", "corn", "maize", "soybean", "soybeans", "rice", "sugar",
	"coffee", "cocoa", "cotton", "cattle", "hogs", "livestock", "milk",
	"palm", "rubber", "wool", "barley", "oats", "orange",
}

// flowKeywords mark period-accumulated monetary amounts.
var flowKeywords = []string{
	"export", "import", "remittance", "fdi", "foreign direct investment",
	"inflow", "outflow", "revenue", "spending", "expenditure", "consumption",
	"sales", "aid", "grant", "disbursement", "gdp", "gross domestic product",
	"income", "earnings", "wage", "salary", "turnover", "balance", "deficit",
	"surplus", "receipts", "investment",
}

// stockKeywords mark point-in-time monetary amounts.
var stockKeywords = []string{
	"reserve", "reserves", "debt", "money supply", "m0", "m1", "m2", "m3",
	"stock", "assets", "liabilities", "deposits", "loans", "credit",
	"capitalization", "capitalisation", "position", "holdings", "outstanding",
}

// countUnits are bare physical-count unit words.
var countUnits = map[string]struct{}{
	"unit": {}, "units": {}, "one": {}, "ones": {}, "person": {},
	"persons": {}, "people": {}, "number": {}, "households": {}, "jobs": {},
	"vehicles": {}, "cars": {}, "dwellings": {}, "permits": {}, "head": {},
	"tonnes": {}, "tons": {}, "barrels": {}, "hectares": {}, "employees": {},
	"subscribers": {}, "passengers": {},
}

// indexTokens mark index-level units, e.g. "Index (2015=100)", "points".
var indexTokens = []string{"index", "points", "=100"}
