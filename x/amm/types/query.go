package types

// QueryMarketRequest looks a market up by id, or by pair when MarketId is zero.
type QueryMarketRequest struct {
	MarketId uint64 `json:"market_id,omitempty"`
	DenomX   string `json:"denom_x,omitempty"`
	DenomY   string `json:"denom_y,omitempty"`
}

// QueryMarketResponse returns a market with its pool and whitelist.
type QueryMarketResponse struct {
	Config    PoolConfig     `json:"config"`
	Pool      *Pool          `json:"pool,omitempty"`
	Whitelist *HookWhitelist `json:"whitelist,omitempty"`
}

type QueryMarketsResponse struct {
	Markets []PoolConfig `json:"markets"`
}

type QueryQuoteRequest struct {
	DenomIn  string `json:"denom_in"`
	DenomOut string `json:"denom_out"`
	AmountIn uint64 `json:"amount_in"`
}

type QueryQuoteResponse struct {
	MarketId  uint64 `json:"market_id"`
	AmountOut uint64 `json:"amount_out"`
}

type QueryAssetResponse struct {
	Asset      AssetMetadata `json:"asset"`
	Registered bool          `json:"registered"`
}
