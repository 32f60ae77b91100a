package chains

import (
	"github.com/0xsequence/ethkit/ethproviders"
	"github.com/0xsequence/ethkit/go-ethereum/common"
)

const (
	// DefaultChainID is Flow EVM mainnet.
	DefaultChainID ChainID = 747
	// DefaultRPCURL is returned whenever no RPC endpoint is known for a chain.
	DefaultRPCURL = "https://mainnet.evm.nodes.onflow.org"
)

var multicall3Address = common.HexToAddress("0xcA11bde05977b3631167028862bE2a173976CA11")

// FlowMainnet is the Flow EVM mainnet descriptor.
var FlowMainnet = Chain{
	ID:      747,
	Name:    "Flow EVM Mainnet",
	Network: "flow",
	NativeCurrency: Currency{
		Name:     "Flow",
		Symbol:   "FLOW",
		Decimals: 18,
	},
	RPCURLs: []string{"https://mainnet.evm.nodes.onflow.org"},
	BlockExplorer: Explorer{
		Name: "Mainnet Explorer",
		URL:  "https://evm.flowscan.io",
	},
	Multicall3: &Contract{
		Address:      multicall3Address,
		BlockCreated: 6205,
	},
}

// FlowTestnet is the Flow EVM testnet descriptor.
var FlowTestnet = Chain{
	ID:      545,
	Name:    "Flow EVM Testnet",
	Network: "flow-testnet",
	NativeCurrency: Currency{
		Name:     "Flow",
		Symbol:   "FLOW",
		Decimals: 18,
	},
	RPCURLs: []string{"https://testnet.evm.nodes.onflow.org"},
	BlockExplorer: Explorer{
		Name: "Flow Diver",
		URL:  "https://evm-testnet.flowscan.io",
	},
	Multicall3: &Contract{
		Address:      multicall3Address,
		BlockCreated: 137518,
	},
	Testnet: true,
}

// BuiltinChains returns copies of the descriptors shipped with the package.
func BuiltinChains() []*Chain {
	return []*Chain{FlowMainnet.clone(), FlowTestnet.clone()}
}

// BuiltinProviders returns the built-in network name and RPC endpoint table.
func BuiltinProviders() ethproviders.Config {
	return ethproviders.Config{
		"flow": {
			ID:  uint64(FlowMainnet.ID),
			URL: "https://mainnet.evm.nodes.onflow.org",
		},
		"flow-testnet": {
			ID:      uint64(FlowTestnet.ID),
			URL:     "https://testnet.evm.nodes.onflow.org",
			Testnet: true,
		},
	}
}
