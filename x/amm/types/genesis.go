package types

// GenesisMarket bundles a market config with its optional pool and whitelist.
type GenesisMarket struct {
	Config    PoolConfig     `json:"config"`
	Pool      *Pool          `json:"pool,omitempty"`
	Whitelist *HookWhitelist `json:"whitelist,omitempty"`
}

// GenesisState defines the AMM module's genesis state.
type GenesisState struct {
	Params       Params          `json:"params"`
	Assets       []AssetMetadata `json:"assets"`
	Markets      []GenesisMarket `json:"markets"`
	NextMarketId uint64          `json:"next_market_id"`
}

// DefaultGenesis returns the default genesis state for the AMM module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:       DefaultParams(),
		Assets:       []AssetMetadata{},
		Markets:      []GenesisMarket{},
		NextMarketId: 1,
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	if gs.NextMarketId == 0 {
		return ErrInvalidGenesis.Wrap("next market id must be positive")
	}

	assets := make(map[string]struct{}, len(gs.Assets))
	for _, asset := range gs.Assets {
		if err := asset.Validate(); err != nil {
			return ErrInvalidGenesis.Wrapf("asset %s: %s", asset.Denom, err)
		}
		if _, dup := assets[asset.Denom]; dup {
			return ErrInvalidGenesis.Wrapf("duplicate asset metadata for %s", asset.Denom)
		}
		assets[asset.Denom] = struct{}{}
	}

	ids := make(map[uint64]struct{}, len(gs.Markets))
	pairs := make(map[string]struct{}, len(gs.Markets))
	for _, m := range gs.Markets {
		cfg := m.Config
		if err := cfg.Validate(); err != nil {
			return ErrInvalidGenesis.Wrapf("market %d: %s", cfg.Id, err)
		}
		if cfg.Id == 0 || cfg.Id >= gs.NextMarketId {
			return ErrInvalidGenesis.Wrapf("market id %d outside [1, %d)", cfg.Id, gs.NextMarketId)
		}
		if _, dup := ids[cfg.Id]; dup {
			return ErrInvalidGenesis.Wrapf("duplicate market id %d", cfg.Id)
		}
		ids[cfg.Id] = struct{}{}

		pair := string(MarketByPairKey(cfg.AssetA, cfg.AssetB))
		if _, dup := pairs[pair]; dup {
			return ErrInvalidGenesis.Wrapf("duplicate market for pair %s/%s", cfg.AssetA, cfg.AssetB)
		}
		pairs[pair] = struct{}{}

		if m.Pool != nil {
			p := *m.Pool
			if p.MarketId != cfg.Id || p.AssetA != cfg.AssetA || p.AssetB != cfg.AssetB {
				return ErrInvalidGenesis.Wrapf("pool does not belong to market %d", cfg.Id)
			}
			if err := p.Validate(); err != nil {
				return ErrInvalidGenesis.Wrapf("market %d pool: %s", cfg.Id, err)
			}
		}
		if m.Whitelist != nil {
			w := *m.Whitelist
			if w.MarketId != cfg.Id {
				return ErrInvalidGenesis.Wrapf("whitelist does not belong to market %d", cfg.Id)
			}
			if w.Capacity > gs.Params.MaxWhitelistCapacity {
				return ErrInvalidGenesis.Wrapf("market %d whitelist capacity %d exceeds %d", cfg.Id, w.Capacity, gs.Params.MaxWhitelistCapacity)
			}
			if err := w.Validate(); err != nil {
				return ErrInvalidGenesis.Wrapf("market %d whitelist: %s", cfg.Id, err)
			}
		}
	}
	return nil
}
