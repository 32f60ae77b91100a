package chains

import (
	"github.com/0xsequence/ethkit/go-ethereum/common"
)

// Currency describes a chain's native currency.
type Currency struct {
	Name     string `yaml:"name" json:"name"`
	Symbol   string `yaml:"symbol" json:"symbol"`
	Decimals int    `yaml:"decimals" json:"decimals"`
}

// Explorer is a block explorer front-end for a chain.
type Explorer struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url" json:"url"`
}

// Contract is a well-known contract deployment.
type Contract struct {
	Address      common.Address `yaml:"address" json:"address"`
	BlockCreated uint64         `yaml:"blockCreated,omitempty" json:"blockCreated,omitempty"`
}

// Chain describes a blockchain network's parameters.
type Chain struct {
	ID             ChainID   `yaml:"id" json:"id"`
	Name           string    `yaml:"name" json:"name"`
	Network        string    `yaml:"network" json:"network"`
	NativeCurrency Currency  `yaml:"nativeCurrency" json:"nativeCurrency"`
	RPCURLs        []string  `yaml:"rpcUrls" json:"rpcUrls"`
	BlockExplorer  Explorer  `yaml:"blockExplorer" json:"blockExplorer"`
	Multicall3     *Contract `yaml:"multicall3,omitempty" json:"multicall3,omitempty"`
	Testnet        bool      `yaml:"testnet" json:"testnet"`
}

// DefaultRPCURL returns the first RPC endpoint of the chain, or an empty
// string if none is known.
func (c *Chain) DefaultRPCURL() string {
	if c == nil || len(c.RPCURLs) == 0 {
		return ""
	}

	return c.RPCURLs[0]
}

// clone returns a deep copy so callers cannot mutate resolver tables.
func (c *Chain) clone() *Chain {
	if c == nil {
		return nil
	}

	out := *c
	out.RPCURLs = append([]string(nil), c.RPCURLs...)

	if c.Multicall3 != nil {
		mc := *c.Multicall3
		out.Multicall3 = &mc
	}

	return &out
}
