// Package main is the entry point for pokedex.
package main

import (
	"fmt"
	"os"

	"github.com/pokedex-cli/pokedex/cmd"
	"github.com/pokedex-cli/pokedex/config"
	"github.com/pokedex-cli/pokedex/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())

	if err := log.Setup(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "logging disabled: %v\n", err)
	}

	cmd.Execute()
}
