package domain

// Bucket is the domain classification of an indicator.
type Bucket string

const (
	BucketMonetaryStock Bucket = "monetaryStock" // point-in-time currency amounts (reserves, debt, money supply)
	BucketMonetaryFlow  Bucket = "monetaryFlow"  // period-accumulated currency amounts (exports, FDI, remittances)
	BucketCommodities   Bucket = "commodities"   // generic commodity prices
	BucketEnergy        Bucket = "energy"        // energy prices (electricity, gas, oil)
	BucketMetals        Bucket = "metals"        // metal prices
	BucketAgriculture   Bucket = "agriculture"   // agricultural commodity prices
	BucketCrypto        Bucket = "crypto"        // crypto-asset denominated quantities
	BucketCounts        Bucket = "counts"        // physical counts (units, persons, vehicles)
	BucketPercentages   Bucket = "percentages"   // rates expressed in percent
	BucketIndices       Bucket = "indices"       // index levels and points
	BucketRatios        Bucket = "ratios"        // dimensionless ratios
	BucketOther         Bucket = "other"         // fallback when no rule matches
)

// IsMonetary reports whether the bucket holds absolute currency amounts,
// which always require conversion when the currency differs from the target.
func (b Bucket) IsMonetary() bool {
	return b == BucketMonetaryStock || b == BucketMonetaryFlow
}

// IsCommodityFamily reports whether the bucket holds rate-style prices
// (currency per physical unit). Only the price component of these is
// currency-denominated, so FX handling is conditional.
func (b Bucket) IsCommodityFamily() bool {
	switch b {
	case BucketCommodities, BucketEnergy, BucketMetals, BucketAgriculture:
		return true
	}
	return false
}

// NeverNeedsFX reports whether the bucket is dimensionless with respect
// to currency regardless of any embedded token.
func (b Bucket) NeverNeedsFX() bool {
	switch b {
	case BucketCounts, BucketPercentages, BucketIndices, BucketRatios:
		return true
	}
	return false
}
