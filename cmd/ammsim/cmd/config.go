package cmd

import (
	"fmt"
	"os"
	"strings"

	"cosmossdk.io/log"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix = "AMMSIM"

	flagConfig       = "config"
	flagGenesis      = "genesis"
	flagLogLevel     = "log-level"
	flagLogJSON      = "log-json"
	flagMinOut       = "min-out"
	flagTrader       = "trader"
	flagHookAccounts = "hook-accounts"
)

// Config holds the simulator settings merged from flags, AMMSIM_* environment
// variables and an optional config file.
type Config struct {
	Genesis      string
	LogLevel     string
	LogJSON      bool
	MinOut       uint64
	Trader       string
	HookAccounts []string
}

// LoadConfig resolves Config for a command. Flags win over the environment,
// which wins over the config file.
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(flagLogLevel, "info")
	v.SetDefault(flagTrader, "ammsim-trader")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	return Config{
		Genesis:      v.GetString(flagGenesis),
		LogLevel:     v.GetString(flagLogLevel),
		LogJSON:      v.GetBool(flagLogJSON),
		MinOut:       v.GetUint64(flagMinOut),
		Trader:       v.GetString(flagTrader),
		HookAccounts: cleanStrings(v.GetStringSlice(flagHookAccounts)),
	}, nil
}

// NewLogger builds the simulator logger on stderr.
func (c Config) NewLogger() (log.Logger, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	opts := []log.Option{log.LevelOption(level)}
	if c.LogJSON {
		opts = append(opts, log.OutputJSONOption())
	} else {
		opts = append(opts, log.ColorOption(false))
	}
	return log.NewLogger(os.Stderr, opts...), nil
}

func cleanStrings(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
