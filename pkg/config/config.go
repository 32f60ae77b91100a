// Package config provides configuration types for chain-resolver.
package config

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"

	"github.com/0xsequence/ethkit/ethproviders"
	"github.com/creasty/defaults"
	"github.com/ethpandaops/chain-resolver/pkg/chains"
)

// Config is the main configuration for chain-resolver.
type Config struct {
	// LoggingLevel is the logging level to use.
	LoggingLevel string `yaml:"logging" default:"info"`
	// MetricsNamespace prefixes the lookup metrics.
	MetricsNamespace string `yaml:"metricsNamespace" default:"chain_resolver"`
	// Networks adds to or overrides the built-in networks, keyed by name.
	Networks map[string]*NetworkConfig `yaml:"networks"`
}

// NetworkConfig describes a single named network.
type NetworkConfig struct {
	// ChainID is the EIP-155 chain ID the name resolves to.
	ChainID uint64 `yaml:"chainId"`
	// RPCURL is the endpoint returned for the chain.
	RPCURL string `yaml:"rpcUrl"`
	// DisplayName is the descriptor name for chains not built in.
	DisplayName string `yaml:"displayName"`
	// Testnet marks the network as a test network.
	Testnet bool `yaml:"testnet"`
	// Disabled removes the name from the lookup tables.
	Disabled bool `yaml:"disabled"`
	// Currency is the native currency for chains not built in.
	Currency chains.Currency `yaml:"currency" default:"{\"name\":\"Flow\",\"symbol\":\"FLOW\",\"decimals\":18}"`
	// Explorer is the block explorer for chains not built in.
	Explorer chains.Explorer `yaml:"explorer"`
}

// ApplyDefaults fills unset network fields. It must run after the config
// has been unmarshalled since defaults do not reach into map values.
func (c *Config) ApplyDefaults() error {
	for name, network := range c.Networks {
		if network == nil {
			continue
		}

		if err := defaults.Set(network); err != nil {
			return fmt.Errorf("failed to set defaults for network %s: %w", name, err)
		}
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	for _, name := range slices.Sorted(maps.Keys(c.Networks)) {
		if err := c.Networks[name].Validate(name); err != nil {
			return fmt.Errorf("invalid network configuration for %s: %w", name, err)
		}
	}

	return nil
}

// Validate validates a network entry registered under name.
func (n *NetworkConfig) Validate(name string) error {
	if n == nil {
		return fmt.Errorf("network configuration is empty")
	}

	if name == "" || strings.ToLower(name) != name {
		return fmt.Errorf("network name must be non-empty lowercase")
	}

	if n.Disabled {
		return nil
	}

	if n.ChainID == 0 {
		return fmt.Errorf("chainId is required")
	}

	if n.RPCURL == "" {
		return fmt.Errorf("rpcUrl is required")
	}

	u, err := url.Parse(n.RPCURL)
	if err != nil {
		return fmt.Errorf("invalid rpcUrl: %w", err)
	}

	switch u.Scheme {
	case "http", "https", "ws", "wss":
	default:
		return fmt.Errorf("rpcUrl scheme %q is not supported", u.Scheme)
	}

	if u.Host == "" {
		return fmt.Errorf("rpcUrl has no host")
	}

	return nil
}

// Providers returns the built-in provider table with the configured
// networks layered on top.
func (c *Config) Providers() ethproviders.Config {
	providers := chains.BuiltinProviders()

	for name, network := range c.Networks {
		if network == nil {
			continue
		}

		providers[name] = ethproviders.NetworkConfig{
			ID:       network.ChainID,
			URL:      network.RPCURL,
			Testnet:  network.Testnet,
			Disabled: network.Disabled,
		}
	}

	return providers
}

// Chains returns the built-in descriptors plus one descriptor for every
// enabled configured chain ID that is not built in.
func (c *Config) Chains() []*chains.Chain {
	out := chains.BuiltinChains()

	known := make(map[chains.ChainID]bool, len(out))
	for _, chain := range out {
		known[chain.ID] = true
	}

	for _, name := range slices.Sorted(maps.Keys(c.Networks)) {
		network := c.Networks[name]
		if network == nil || network.Disabled {
			continue
		}

		id := chains.ChainID(network.ChainID) //nolint:gosec // chain IDs fit in int64
		if known[id] {
			continue
		}

		displayName := network.DisplayName
		if displayName == "" {
			displayName = name
		}

		out = append(out, &chains.Chain{
			ID:             id,
			Name:           displayName,
			Network:        name,
			NativeCurrency: network.Currency,
			RPCURLs:        []string{network.RPCURL},
			BlockExplorer:  network.Explorer,
			Testnet:        network.Testnet,
		})

		known[id] = true
	}

	return out
}
