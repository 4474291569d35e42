package keeper

import (
	"context"
	"encoding/binary"
	"fmt"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/TanmayDhobale/token22AMM/x/amm/types"
)

// InitializeMarket creates the config of a new market for an unordered pair.
// Passing a zero fee selects the params fee tier.
func (k Keeper) InitializeMarket(ctx context.Context, authority sdk.AccAddress, denomX, denomY string, feeNum, feeDen uint64) (types.PoolConfig, error) {
	if authority.Empty() {
		return types.PoolConfig{}, types.ErrInvalidAddress.Wrap("authority cannot be empty")
	}
	if err := types.ValidatePair(denomX, denomY); err != nil {
		return types.PoolConfig{}, err
	}
	if feeNum == 0 && feeDen == 0 {
		params := k.GetParams(ctx)
		feeNum, feeDen = params.DefaultFeeNumerator, params.DefaultFeeDenominator
	}
	if err := types.ValidateFee(feeNum, feeDen); err != nil {
		return types.PoolConfig{}, err
	}

	store := k.getStore(ctx)
	if store.Has(types.MarketByPairKey(denomX, denomY)) {
		return types.PoolConfig{}, types.ErrMarketAlreadyExists.Wrapf("%s/%s", denomX, denomY)
	}

	marketID, err := k.GetNextMarketID(ctx)
	if err != nil {
		return types.PoolConfig{}, err
	}

	assetA, assetB := types.PairKey(denomX, denomY)
	cfg := types.PoolConfig{
		Id:             marketID,
		Authority:      authority.String(),
		FeeNumerator:   feeNum,
		FeeDenominator: feeDen,
		AssetA:         assetA,
		AssetB:         assetB,
		Vault:          VaultAddress(marketID).String(),
		LpDenom:        types.LpDenom(marketID),
	}
	if err := k.SetMarket(ctx, cfg); err != nil {
		return types.PoolConfig{}, err
	}
	k.SetNextMarketID(ctx, marketID+1)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeMarketInitialized,
			sdk.NewAttribute(types.AttributeKeyMarketID, strconv.FormatUint(marketID, 10)),
			sdk.NewAttribute(types.AttributeKeyAuthority, cfg.Authority),
			sdk.NewAttribute(types.AttributeKeyAssetA, assetA),
			sdk.NewAttribute(types.AttributeKeyAssetB, assetB),
			sdk.NewAttribute(types.AttributeKeyFee, fmt.Sprintf("%d/%d", feeNum, feeDen)),
		),
	)
	k.metrics.MarketsTotal.Inc()
	k.Logger(ctx).Info("market initialized", "market_id", marketID, "asset_a", assetA, "asset_b", assetB)

	return cfg, nil
}

// VaultAddress derives the reserve account of a market.
func VaultAddress(marketID uint64) sdk.AccAddress {
	return authtypes.NewModuleAddress(types.VaultModuleName(marketID))
}

// GetMarket returns a market config by id.
func (k Keeper) GetMarket(ctx context.Context, marketID uint64) (types.PoolConfig, error) {
	var cfg types.PoolConfig
	found, err := k.getJSON(ctx, types.MarketKey(marketID), &cfg)
	if err != nil {
		return types.PoolConfig{}, err
	}
	if !found {
		return types.PoolConfig{}, types.ErrMarketNotFound.Wrapf("market %d", marketID)
	}
	return cfg, nil
}

// GetMarketByPair returns the market of an unordered pair.
func (k Keeper) GetMarketByPair(ctx context.Context, denomX, denomY string) (types.PoolConfig, error) {
	bz := k.getStore(ctx).Get(types.MarketByPairKey(denomX, denomY))
	if bz == nil {
		return types.PoolConfig{}, types.ErrMarketNotFound.Wrapf("no market for %s/%s", denomX, denomY)
	}
	return k.GetMarket(ctx, binary.BigEndian.Uint64(bz))
}

// SetMarket stores a market config and its pair index.
func (k Keeper) SetMarket(ctx context.Context, cfg types.PoolConfig) error {
	if err := k.setJSON(ctx, types.MarketKey(cfg.Id), cfg); err != nil {
		return err
	}
	idBz := make([]byte, 8)
	binary.BigEndian.PutUint64(idBz, cfg.Id)
	k.getStore(ctx).Set(types.MarketByPairKey(cfg.AssetA, cfg.AssetB), idBz)
	return nil
}

// IterateMarkets visits markets in id order until cb returns true.
func (k Keeper) IterateMarkets(ctx context.Context, cb func(cfg types.PoolConfig) (stop bool)) error {
	return iterateJSON(k.getStore(ctx), types.MarketKeyPrefix, cb)
}

// GetAllMarkets returns every market config.
func (k Keeper) GetAllMarkets(ctx context.Context) ([]types.PoolConfig, error) {
	markets := []types.PoolConfig{}
	err := k.IterateMarkets(ctx, func(cfg types.PoolConfig) bool {
		markets = append(markets, cfg)
		return false
	})
	return markets, err
}

// GetNextMarketID returns the id the next market will receive.
func (k Keeper) GetNextMarketID(ctx context.Context) (uint64, error) {
	bz := k.getStore(ctx).Get(types.NextMarketIDKey)
	if bz == nil {
		return 1, nil
	}
	if len(bz) != 8 {
		return 0, fmt.Errorf("corrupt next market id")
	}
	return binary.BigEndian.Uint64(bz), nil
}

// SetNextMarketID sets the next market id.
func (k Keeper) SetNextMarketID(ctx context.Context, marketID uint64) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, marketID)
	k.getStore(ctx).Set(types.NextMarketIDKey, bz)
}
