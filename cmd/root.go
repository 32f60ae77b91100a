package cmd

import (
	"fmt"
	"os"

	"github.com/creasty/defaults"
	"github.com/ethpandaops/chain-resolver/pkg/chains"
	"github.com/ethpandaops/chain-resolver/pkg/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type cli struct {
	log        *logrus.Logger
	configFile string
	logLevel   string

	resolver *chains.Resolver
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{log: logrus.New()}

	rootCmd := &cobra.Command{
		Use:          "chain-resolver",
		Short:        "Resolves chain identifiers to chain metadata and RPC endpoints.",
		Long:         `Resolves chain IDs and network names to chain metadata and RPC endpoints, defaulting to Flow EVM mainnet.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.initCommon(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&c.configFile, "config", "", "config file (built-in networks only when empty)")
	rootCmd.PersistentFlags().StringVar(&c.logLevel, "logging", "", "logging level, overrides the config file")

	rootCmd.AddCommand(
		c.newResolveCmd(),
		c.newChainCmd(),
		c.newRPCURLCmd(),
		c.newNetworksCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func (c *cli) initCommon(cmd *cobra.Command) error {
	c.log.SetOutput(cmd.ErrOrStderr())

	cfg, err := loadConfigFromFile(c.configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if c.logLevel != "" {
		cfg.LoggingLevel = c.logLevel
	}

	level, err := logrus.ParseLevel(cfg.LoggingLevel)
	if err != nil {
		c.log.WithError(err).Warn("Invalid logging level, using info")

		level = logrus.InfoLevel
	}

	c.log.SetLevel(level)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	resolver, err := chains.NewResolver(c.log, chains.GetMetricsInstance(cfg.MetricsNamespace), cfg.Providers(), cfg.Chains())
	if err != nil {
		return fmt.Errorf("failed to create resolver: %w", err)
	}

	c.resolver = resolver

	return nil
}

func loadConfigFromFile(file string) (*config.Config, error) {
	cfg := &config.Config{}

	if err := defaults.Set(cfg); err != nil {
		return nil, err
	}

	if file == "" {
		return cfg, nil
	}

	yamlFile, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	type plain config.Config

	if err := yaml.Unmarshal(yamlFile, (*plain)(cfg)); err != nil {
		return nil, err
	}

	if err := cfg.ApplyDefaults(); err != nil {
		return nil, err
	}

	return cfg, nil
}
