package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// AMMMetrics holds all Prometheus metrics for the AMM module
type AMMMetrics struct {
	// Swap metrics
	SwapsTotal  *prometheus.CounterVec
	SwapVolume  *prometheus.CounterVec
	SwapLatency prometheus.Histogram

	// Liquidity metrics
	LiquidityAdded   *prometheus.CounterVec
	LiquidityRemoved *prometheus.CounterVec
	PoolReserves     *prometheus.GaugeVec
	LPSupply         *prometheus.GaugeVec

	// Market metrics
	MarketsTotal prometheus.Counter
	PoolsCreated prometheus.Counter

	// Hook metrics
	HookRejections *prometheus.CounterVec
	WhitelistSize  *prometheus.GaugeVec
}

var (
	ammMetricsOnce sync.Once
	ammMetrics     *AMMMetrics
)

// NewAMMMetrics creates and registers AMM metrics (singleton pattern)
func NewAMMMetrics() *AMMMetrics {
	ammMetricsOnce.Do(func() {
		ammMetrics = &AMMMetrics{
			SwapsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "token22",
					Subsystem: "amm",
					Name:      "swaps_total",
					Help:      "Total number of swaps by outcome",
				},
				[]string{"market_id", "denom_in", "denom_out", "status"},
			),
			SwapVolume: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "token22",
					Subsystem: "amm",
					Name:      "swap_volume_total",
					Help:      "Total swap input volume in base units",
				},
				[]string{"market_id", "denom_in"},
			),
			SwapLatency: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Namespace: "token22",
					Subsystem: "amm",
					Name:      "swap_latency_seconds",
					Help:      "Swap execution latency",
					Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12),
				},
			),
			LiquidityAdded: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "token22",
					Subsystem: "amm",
					Name:      "liquidity_added_lp_total",
					Help:      "LP units minted by deposits",
				},
				[]string{"market_id"},
			),
			LiquidityRemoved: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "token22",
					Subsystem: "amm",
					Name:      "liquidity_removed_lp_total",
					Help:      "LP units burned by withdrawals",
				},
				[]string{"market_id"},
			),
			PoolReserves: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "token22",
					Subsystem: "amm",
					Name:      "pool_reserves",
					Help:      "Current pool reserves per asset",
				},
				[]string{"market_id", "denom"},
			),
			LPSupply: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "token22",
					Subsystem: "amm",
					Name:      "lp_supply",
					Help:      "Outstanding LP units per market",
				},
				[]string{"market_id"},
			),
			MarketsTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "token22",
					Subsystem: "amm",
					Name:      "markets_initialized_total",
					Help:      "Markets initialized",
				},
			),
			PoolsCreated: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "token22",
					Subsystem: "amm",
					Name:      "pools_created_total",
					Help:      "Pools seeded with a first deposit",
				},
			),
			HookRejections: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "token22",
					Subsystem: "amm",
					Name:      "hook_rejections_total",
					Help:      "Transfer hook programs refused by the whitelist or rejecting a transfer",
				},
				[]string{"program", "reason"},
			),
			WhitelistSize: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "token22",
					Subsystem: "amm",
					Name:      "whitelist_size",
					Help:      "Whitelisted hook programs per market",
				},
				[]string{"market_id"},
			),
		}
	})
	return ammMetrics
}
