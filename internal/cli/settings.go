package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/tagtree/internal/configloader"
	"github.com/yaklabco/tagtree/internal/logging"
	"github.com/yaklabco/tagtree/pkg/config"
)

// commandContext returns the command's context carrying the default logger.
func commandContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return logging.WithLogger(ctx, logging.Default())
}

// loadConfig resolves the configuration for one command run. overrides
// holds the values the command's own flags set explicitly.
func (g *globalFlags) loadConfig(cmd *cobra.Command, overrides *config.Config) (*config.Config, error) {
	cliCfg := overrides.Clone()
	if cliCfg == nil {
		cliCfg = &config.Config{}
	}
	if cmd.Flags().Changed("color") {
		cliCfg.Color = config.ColorMode(g.color)
	}
	cliCfg.Debug = g.debug

	if g.debug {
		logging.SetLevel("debug")
	}

	result, err := configloader.Load(commandContext(cmd), configloader.LoadOptions{
		ExplicitPath:        g.configPath,
		IgnoreSystemConfig:  g.noConfig,
		IgnoreUserConfig:    g.noConfig,
		IgnoreProjectConfig: g.noConfig,
		IgnoreEnv:           g.noConfig,
		CLIConfig:           cliCfg,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	cfg := result.Config
	if cfg.Debug {
		logging.SetLevel("debug")
	} else {
		logging.SetLevel(cfg.LogLevel)
	}

	logger := logging.Default()
	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}
	logger.Debug("configuration loaded",
		logging.FieldConfig, result.LoadedFrom,
		logging.FieldEnv, result.EnvApplied,
		logging.FieldFormat, cfg.Format,
		logging.FieldColor, cfg.Color,
		logging.FieldLogLevel, cfg.LogLevel,
	)

	return cfg, nil
}
