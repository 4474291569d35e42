package keeper

import (
	"context"

	"github.com/TanmayDhobale/token22AMM/x/amm/types"
)

// Querier serves read-only AMM queries.
type Querier struct {
	Keeper
}

// NewQuerier returns a Querier over the keeper.
func NewQuerier(k Keeper) Querier {
	return Querier{Keeper: k}
}

// Params returns the module params.
func (q Querier) Params(ctx context.Context) (types.Params, error) {
	return q.GetParams(ctx), nil
}

// Market returns a market with its pool and whitelist.
func (q Querier) Market(ctx context.Context, req types.QueryMarketRequest) (*types.QueryMarketResponse, error) {
	var (
		cfg types.PoolConfig
		err error
	)
	if req.MarketId != 0 {
		cfg, err = q.GetMarket(ctx, req.MarketId)
	} else {
		cfg, err = q.GetMarketByPair(ctx, req.DenomX, req.DenomY)
	}
	if err != nil {
		return nil, err
	}

	resp := &types.QueryMarketResponse{Config: cfg}
	if pool, found := q.GetPool(ctx, cfg.Id); found {
		resp.Pool = &pool
	}
	if wl, found := q.GetWhitelist(ctx, cfg.Id); found {
		resp.Whitelist = &wl
	}
	return resp, nil
}

// Markets lists every market.
func (q Querier) Markets(ctx context.Context) (*types.QueryMarketsResponse, error) {
	markets, err := q.GetAllMarkets(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryMarketsResponse{Markets: markets}, nil
}

// QuoteSwap prices a swap without executing it.
func (q Querier) QuoteSwap(ctx context.Context, req types.QueryQuoteRequest) (*types.QueryQuoteResponse, error) {
	cfg, err := q.GetMarketByPair(ctx, req.DenomIn, req.DenomOut)
	if err != nil {
		return nil, err
	}
	out, err := q.Quote(ctx, req.DenomIn, req.DenomOut, req.AmountIn)
	if err != nil {
		return nil, err
	}
	return &types.QueryQuoteResponse{MarketId: cfg.Id, AmountOut: out}, nil
}

// Asset returns the metadata of a denom.
func (q Querier) Asset(ctx context.Context, denom string) (*types.QueryAssetResponse, error) {
	meta, found := q.GetAssetMetadata(ctx, denom)
	return &types.QueryAssetResponse{Asset: meta, Registered: found}, nil
}
