package chains_test

import (
	"testing"

	"github.com/ethpandaops/chain-resolver/pkg/chains"
	"github.com/stretchr/testify/assert"
)

func TestParseIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		want chains.Identifier
	}{
		{in: "747", want: chains.ChainID(747)},
		{in: " 545 ", want: chains.ChainID(545)},
		{in: "-1", want: chains.ChainID(-1)},
		{in: "flow", want: chains.NetworkName("flow")},
		{in: "FLOW-Testnet", want: chains.NetworkName("FLOW-Testnet")},
		{in: "12abc", want: chains.NetworkName("12abc")},
		{in: "", want: chains.NetworkName("")},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, chains.ParseIdentifier(tt.in))
		})
	}
}

func TestIdentifierString(t *testing.T) {
	assert.Equal(t, "747", chains.ChainID(747).String())
	assert.Equal(t, "Flow", chains.NetworkName("Flow").String())
}
