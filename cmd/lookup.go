package cmd

import (
	"fmt"

	"github.com/ethpandaops/chain-resolver/pkg/chains"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func identifierFromArgs(args []string) chains.Identifier {
	if len(args) == 0 {
		return nil
	}

	return chains.ParseIdentifier(args[0])
}

func (c *cli) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <chain-id|network>",
		Short: "Prints the chain ID for a chain ID or network name.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), c.resolver.ResolveChainID(identifierFromArgs(args)))

			return err
		},
	}
}

func (c *cli) newChainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chain [chain-id|network]",
		Short: "Prints the chain descriptor as YAML.",
		Long:  `Prints the chain descriptor as YAML. Defaults to the Flow EVM mainnet when no identifier is given.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chain, err := c.resolver.GetChain(identifierFromArgs(args))
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)

			if err := enc.Encode(chain); err != nil {
				return fmt.Errorf("failed to encode chain: %w", err)
			}

			return enc.Close()
		},
	}
}

func (c *cli) newRPCURLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rpc-url [chain-id|network]",
		Short: "Prints the RPC URL for a chain ID or network name.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), c.resolver.GetRPCURL(identifierFromArgs(args)))

			return err
		},
	}
}

func (c *cli) newNetworksCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "networks",
		Short: "Lists the supported network names.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			for _, name := range c.resolver.SupportedNetworks() {
				if !verbose {
					fmt.Fprintln(out, name)

					continue
				}

				id := c.resolver.ResolveChainID(chains.NetworkName(name))
				fmt.Fprintf(out, "%-20s %10d  %s\n", name, id, c.resolver.GetRPCURL(id))
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "include chain ID and RPC URL")

	return cmd
}
