package chains

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/0xsequence/ethkit/ethproviders"
	"github.com/sirupsen/logrus"
)

// Resolver maps chain identifiers to chain descriptors and RPC endpoints.
// Its tables are built once by NewResolver and never mutated, so a Resolver
// is safe for concurrent use without locking.
type Resolver struct {
	log     logrus.FieldLogger
	metrics *Metrics

	chains    map[ChainID]*Chain
	networks  map[string]ChainID
	rpcURLs   map[ChainID]string
	providers ethproviders.Config
}

// NewResolver builds a resolver from a provider table (network name to chain
// ID and RPC endpoint) and the chain descriptors those IDs refer to.
// Disabled providers are skipped. Every enabled provider must reference a
// known descriptor. metrics may be nil.
func NewResolver(log logrus.FieldLogger, metrics *Metrics, providers ethproviders.Config, descriptors []*Chain) (*Resolver, error) {
	r := &Resolver{
		log:       log.WithField("module", "chains"),
		metrics:   metrics,
		chains:    make(map[ChainID]*Chain, len(descriptors)),
		networks:  make(map[string]ChainID, len(providers)),
		rpcURLs:   make(map[ChainID]string, len(providers)),
		providers: make(ethproviders.Config, len(providers)),
	}

	for _, chain := range descriptors {
		if chain == nil {
			continue
		}

		if chain.ID <= 0 {
			return nil, fmt.Errorf("%w: chain %q has invalid ID %d", ErrInvalidNetworkConfig, chain.Name, chain.ID)
		}

		if _, exists := r.chains[chain.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate chain ID %d", ErrInvalidNetworkConfig, chain.ID)
		}

		r.chains[chain.ID] = chain.clone()
	}

	// Sorted so that conflicts are reported deterministically.
	for _, name := range slices.Sorted(maps.Keys(providers)) {
		provider := providers[name]
		if provider.Disabled {
			continue
		}

		if name == "" || strings.ToLower(name) != name {
			return nil, fmt.Errorf("%w: network name %q must be non-empty lowercase", ErrInvalidNetworkConfig, name)
		}

		id := ChainID(provider.ID) //nolint:gosec // chain IDs fit in int64

		if _, exists := r.chains[id]; !exists {
			return nil, fmt.Errorf("%w: network %q references unknown chain ID %d", ErrInvalidNetworkConfig, name, id)
		}

		if provider.URL == "" {
			return nil, fmt.Errorf("%w: network %q has no RPC URL", ErrInvalidNetworkConfig, name)
		}

		if existing, ok := r.rpcURLs[id]; ok && existing != provider.URL {
			return nil, fmt.Errorf("%w: network %q sets RPC URL %s for chain ID %d, already %s",
				ErrInvalidNetworkConfig, name, provider.URL, id, existing)
		}

		r.networks[name] = id
		r.rpcURLs[id] = provider.URL
		r.providers[name] = provider
	}

	r.log.WithFields(logrus.Fields{
		"chains":   len(r.chains),
		"networks": len(r.networks),
	}).Debug("Built chain tables")

	return r, nil
}

// ResolveChainID converts an identifier into a chain ID. It never fails:
// numeric identifiers are returned unchanged, known names map to their
// chain ID, names with a leading integer yield that integer, and anything
// else yields DefaultChainID.
func (r *Resolver) ResolveChainID(id Identifier) ChainID {
	switch v := id.(type) {
	case nil:
		return DefaultChainID
	case ChainID:
		return v
	case NetworkName:
		name := v.normalized()

		if chainID, ok := r.networks[name]; ok {
			r.metrics.ObserveLookup("resolve_chain_id", resultHit)

			return chainID
		}

		if parsed, ok := parseLeadingInt(name); ok {
			r.metrics.ObserveLookup("resolve_chain_id", resultParsed)

			return ChainID(parsed)
		}

		r.log.WithField("network", string(v)).Debug("Unknown network, using default chain ID")
		r.metrics.ObserveLookup("resolve_chain_id", resultFallback)

		return DefaultChainID
	default:
		panic(fmt.Sprintf("chains: unhandled identifier type %T", id))
	}
}

// GetChain returns the descriptor for the identifier. Unknown network names
// wrap ErrUnsupportedNetwork and unknown chain IDs wrap ErrUnsupportedChainID.
// The returned descriptor is a copy.
func (r *Resolver) GetChain(id Identifier) (*Chain, error) {
	switch v := id.(type) {
	case nil:
		return r.GetChain(DefaultChainID)
	case NetworkName:
		chainID, ok := r.networks[v.normalized()]
		if !ok {
			r.metrics.ObserveLookup("get_chain", resultUnsupported)

			return nil, fmt.Errorf("%w: %s", ErrUnsupportedNetwork, string(v))
		}

		r.metrics.ObserveLookup("get_chain", resultHit)

		return r.chains[chainID].clone(), nil
	case ChainID:
		chain, ok := r.LookupChain(v)
		if !ok {
			r.metrics.ObserveLookup("get_chain", resultUnsupported)

			return nil, fmt.Errorf("%w: %d", ErrUnsupportedChainID, v)
		}

		r.metrics.ObserveLookup("get_chain", resultHit)

		return chain, nil
	default:
		panic(fmt.Sprintf("chains: unhandled identifier type %T", id))
	}
}

// LookupChain returns a copy of the descriptor for id and whether it exists.
func (r *Resolver) LookupChain(id ChainID) (*Chain, bool) {
	chain, ok := r.chains[id]
	if !ok {
		return nil, false
	}

	return chain.clone(), true
}

// GetRPCURL returns the RPC endpoint for the identifier, or DefaultRPCURL
// when the resolved chain has none.
func (r *Resolver) GetRPCURL(id Identifier) string {
	var chainID ChainID

	switch v := id.(type) {
	case nil:
		chainID = DefaultChainID
	case NetworkName:
		chainID = r.ResolveChainID(v)
	case ChainID:
		chainID = v
	default:
		panic(fmt.Sprintf("chains: unhandled identifier type %T", id))
	}

	if url, ok := r.rpcURLs[chainID]; ok {
		r.metrics.ObserveLookup("get_rpc_url", resultHit)

		return url
	}

	r.log.WithField("chain_id", int64(chainID)).Debug("No RPC URL for chain, using default")
	r.metrics.ObserveLookup("get_rpc_url", resultFallback)

	return DefaultRPCURL
}

// SupportedNetworks returns the known network names in lexicographic order.
func (r *Resolver) SupportedNetworks() []string {
	return slices.Sorted(maps.Keys(r.networks))
}

// Providers returns a copy of the enabled network entries, suitable for
// building ethkit providers.
func (r *Resolver) Providers() ethproviders.Config {
	return maps.Clone(r.providers)
}
