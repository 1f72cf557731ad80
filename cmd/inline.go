// Package cmd implements the command-line interface for pokedex.
package cmd

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/pokedex-cli/pokedex/export"
	"github.com/pokedex-cli/pokedex/inline"
	"github.com/pokedex-cli/pokedex/pokemon"
	"github.com/pokedex-cli/pokedex/query"
	"github.com/pokedex-cli/pokedex/rarity"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("query", "q", "", "Case-insensitive name substring to filter by")
	inlineCmd.Flags().StringP("type", "t", "", "Only show entries having this type")
	inlineCmd.Flags().StringP("rarity", "r", "", "Only show entries of this rarity tier")
	inlineCmd.Flags().StringP("format", "f", "", "Output format: text, json, yaml, html or xlsx")
	inlineCmd.Flags().BoolP("json", "j", false, "Shorthand for --format json")
	inlineCmd.Flags().StringP("output", "o", "", "Write the result to a file. The format is inferred from its extension")
	inlineCmd.Flags().String("theme", "", "Force the html appearance (light or dark). Follows the reader's system by default")
	inlineCmd.Flags().BoolP("progress", "p", false, "Show loading progress on stderr")

	inlineCmd.MarkFlagsMutuallyExclusive("format", "json")

	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("query", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("type", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(pokemon.Types(), func(t pokemon.Type, _ int) string { return t.String() }), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("rarity", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(rarity.All(), func(t rarity.Tier, _ int) string { return string(t) }), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		formats := lo.Map(export.Formats(), func(f export.Format, _ int) string { return string(f) })
		return append([]string{"text"}, formats...), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("theme", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"light", "dark"}, cobra.ShellCompDirectiveNoFileComp
	}))
}

// inlineCmd loads the catalog once, filters it and prints the result.
var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Filter the catalog without the interactive browser",
	Long: `Load the catalog, apply the filters and print the result.

All filters are combined. An empty filter matches everything.
Entries that could not be loaded are skipped and reported on stderr.`,
	Example: `  pokedex inline --type fire
  pokedex inline -q saur --json
  pokedex inline --rarity legendary -o legendary.html
  pokedex inline -n 386 -o dex.xlsx`,
	Run: func(cmd *cobra.Command, args []string) {
		format := lo.Must(cmd.Flags().GetString("format"))
		if lo.Must(cmd.Flags().GetBool("json")) {
			format = string(export.JSON)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		options := &inline.Options{
			Out:      cmd.OutOrStdout(),
			Err:      cmd.ErrOrStderr(),
			Query:    lo.Must(cmd.Flags().GetString("query")),
			Type:     lo.Must(cmd.Flags().GetString("type")),
			Rarity:   lo.Must(cmd.Flags().GetString("rarity")),
			Format:   format,
			Output:   lo.Must(cmd.Flags().GetString("output")),
			Theme:    lo.Must(cmd.Flags().GetString("theme")),
			Progress: lo.Must(cmd.Flags().GetBool("progress")),
		}

		handleErr(inline.Run(ctx, options))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

// inlineSchemaCmd prints the JSON schema of the structured inline output.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the structured inline output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			return "export." + t.Name()
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(reflector.Reflect(&export.Output{})))
	},
}
