// Package cmd implements the command-line interface for pokedex.
package cmd

import (
	"encoding/json"
	"os"

	"github.com/pokedex-cli/pokedex/pokemon"
	"github.com/pokedex-cli/pokedex/rarity"
	"github.com/pokedex-cli/pokedex/render"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(typesCmd)
	typesCmd.Flags().BoolP("json", "j", false, "Print the color tables as JSON")
	typesCmd.SetOut(os.Stdout)
}

type legendEntry struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// typesCmd prints the type and rarity color legends.
var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "Print the type and rarity color legends",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("json")) {
			legend := struct {
				Types  []legendEntry `json:"types"`
				Rarity []legendEntry `json:"rarity"`
			}{
				Types: lo.Map(pokemon.Types(), func(t pokemon.Type, _ int) legendEntry {
					return legendEntry{Name: t.String(), Color: string(render.TypeColor(t))}
				}),
				Rarity: lo.Map(rarity.All(), func(t rarity.Tier, _ int) legendEntry {
					return legendEntry{Name: string(t), Color: string(t.Color())}
				}),
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(legend))
			return
		}

		cmd.Println(render.Legend())
		cmd.Println()
		cmd.Println(render.RarityLegend())
	},
}
