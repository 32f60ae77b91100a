package chains

import (
	"io"

	"github.com/sirupsen/logrus"
)

var defaultResolver = mustBuiltinResolver()

func mustBuiltinResolver() *Resolver {
	log := logrus.New()
	log.SetOutput(io.Discard)

	r, err := NewResolver(log, nil, BuiltinProviders(), BuiltinChains())
	if err != nil {
		panic(err)
	}

	return r
}

// Default returns the resolver over the built-in tables.
func Default() *Resolver {
	return defaultResolver
}

// ResolveChainID resolves id against the built-in tables.
func ResolveChainID(id Identifier) ChainID {
	return defaultResolver.ResolveChainID(id)
}

// GetChain returns the built-in descriptor for id.
func GetChain(id Identifier) (*Chain, error) {
	return defaultResolver.GetChain(id)
}

// GetRPCURL returns the built-in RPC endpoint for id.
func GetRPCURL(id Identifier) string {
	return defaultResolver.GetRPCURL(id)
}

// SupportedNetworks lists the built-in network names.
func SupportedNetworks() []string {
	return defaultResolver.SupportedNetworks()
}
