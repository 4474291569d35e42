package keeper

import (
	"context"

	"github.com/TanmayDhobale/token22AMM/x/amm/types"
)

// SetAssetMetadata registers the metadata of an asset type.
func (k Keeper) SetAssetMetadata(ctx context.Context, meta types.AssetMetadata) error {
	if err := meta.Validate(); err != nil {
		return err
	}
	return k.setJSON(ctx, types.AssetMetadataKey(meta.Denom), meta)
}

// GetAssetMetadata returns the metadata of denom. An unregistered denom is a
// plain asset with no transfer hook.
func (k Keeper) GetAssetMetadata(ctx context.Context, denom string) (types.AssetMetadata, bool) {
	var meta types.AssetMetadata
	found, err := k.getJSON(ctx, types.AssetMetadataKey(denom), &meta)
	if err != nil {
		panic(err)
	}
	if !found {
		return types.PlainAsset(denom, 0), false
	}
	return meta, true
}

// IterateAssets calls cb for every registered asset in denom order until cb
// returns true.
func (k Keeper) IterateAssets(ctx context.Context, cb func(meta types.AssetMetadata) (stop bool)) error {
	return iterateJSON(k.getStore(ctx), types.AssetMetadataKeyPrefix, cb)
}

// GetAllAssets returns every registered asset.
func (k Keeper) GetAllAssets(ctx context.Context) ([]types.AssetMetadata, error) {
	assets := []types.AssetMetadata{}
	err := k.IterateAssets(ctx, func(meta types.AssetMetadata) bool {
		assets = append(assets, meta)
		return false
	})
	return assets, err
}
