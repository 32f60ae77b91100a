package chains

import "errors"

// Sentinel errors for chain lookups.
var (
	// ErrUnsupportedNetwork indicates a network name absent from the name table.
	ErrUnsupportedNetwork = errors.New("unsupported network")

	// ErrUnsupportedChainID indicates a chain ID absent from the chain table.
	ErrUnsupportedChainID = errors.New("unsupported chain ID")

	// ErrInvalidNetworkConfig indicates network tables that cannot be built.
	ErrInvalidNetworkConfig = errors.New("invalid network configuration")
)
