package main

import "github.com/ethpandaops/chain-resolver/cmd"

func main() {
	cmd.Execute()
}
