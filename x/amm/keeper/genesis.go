package keeper

import (
	"context"
	"fmt"

	"github.com/TanmayDhobale/token22AMM/x/amm/types"
)

// InitGenesis initializes the amm module's state from a provided genesis state.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid amm genesis state: %w", err)
	}
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return err
	}

	for _, asset := range genState.Assets {
		if err := k.SetAssetMetadata(ctx, asset); err != nil {
			return fmt.Errorf("asset %s: %w", asset.Denom, err)
		}
	}

	for _, m := range genState.Markets {
		if m.Config.Vault != VaultAddress(m.Config.Id).String() {
			return types.ErrInvalidGenesis.Wrapf("market %d vault %s is not derived from its id", m.Config.Id, m.Config.Vault)
		}
		if err := k.SetMarket(ctx, m.Config); err != nil {
			return err
		}
		if m.Pool != nil {
			if err := k.SetPool(ctx, *m.Pool); err != nil {
				return fmt.Errorf("market %d pool: %w", m.Config.Id, err)
			}
		}
		if m.Whitelist != nil {
			if err := k.SetWhitelist(ctx, *m.Whitelist); err != nil {
				return fmt.Errorf("market %d whitelist: %w", m.Config.Id, err)
			}
		}
	}

	k.SetNextMarketID(ctx, genState.NextMarketId)
	return nil
}

// ExportGenesis returns the amm module's exported genesis.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	genesis := types.DefaultGenesis()
	genesis.Params = k.GetParams(ctx)

	assets, err := k.GetAllAssets(ctx)
	if err != nil {
		return nil, err
	}
	genesis.Assets = assets

	markets, err := k.GetAllMarkets(ctx)
	if err != nil {
		return nil, err
	}
	for _, cfg := range markets {
		entry := types.GenesisMarket{Config: cfg}
		if pool, found := k.GetPool(ctx, cfg.Id); found {
			entry.Pool = &pool
		}
		if wl, found := k.GetWhitelist(ctx, cfg.Id); found {
			entry.Whitelist = &wl
		}
		genesis.Markets = append(genesis.Markets, entry)
	}

	nextID, err := k.GetNextMarketID(ctx)
	if err != nil {
		return nil, err
	}
	genesis.NextMarketId = nextID
	return genesis, nil
}
