// Package cmd implements the command-line interface for pokedex.
package cmd

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/pokedex-cli/pokedex/color"
	"github.com/pokedex-cli/pokedex/icon"
	"github.com/pokedex-cli/pokedex/style"
	"github.com/pokedex-cli/pokedex/theme"
	"github.com/spf13/cobra"
)

func newThemeController() *theme.Controller {
	return theme.NewController(theme.DefaultStore(), theme.FirstOf(theme.DetectSystem, theme.DetectTerminal))
}

func printTheme(cmd *cobra.Command, verb string, a theme.Appearance) {
	cmd.Printf(
		"%s %s theme %s\n",
		style.Fg(color.Green)(icon.Get(icon.Success)),
		verb,
		style.Fg(color.Yellow)(a.String()),
	)
}

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.SetOut(os.Stdout)
}

// themeCmd reads and changes the persisted light/dark preference.
var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or change the light/dark theme",
	Long: `Show or change the light/dark theme.

Until a theme is chosen, the desktop appearance decides, then the terminal background.
A chosen theme is remembered across sessions.`,
	Run: func(cmd *cobra.Command, args []string) {
		controller := newThemeController()

		source := "system"
		if controller.Explicit() {
			source = "chosen"
		}

		cmd.Printf("%s %s %s\n",
			icon.Get(icon.Theme),
			style.Bold(controller.Current().String()),
			style.Faint(fmt.Sprintf("(%s)", source)),
		)
	},
}

func init() {
	themeCmd.AddCommand(themeGetCmd)
}

var themeGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the current theme and where it comes from",
	Run: func(cmd *cobra.Command, args []string) {
		themeCmd.Run(cmd, args)
	},
}

func init() {
	themeCmd.AddCommand(themeToggleCmd)
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch to the opposite theme and remember it",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newThemeController().Toggle()
		handleErr(err)
		printTheme(cmd, "switched to", a)
	},
}

func init() {
	themeCmd.AddCommand(themeSetCmd)
}

var themeSetCmd = &cobra.Command{
	Use:       "set [light|dark]",
	Short:     "Choose the theme and remember it",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{theme.Light.String(), theme.Dark.String()},
	Run: func(cmd *cobra.Command, args []string) {
		controller := newThemeController()

		var choice string
		if len(args) == 1 {
			choice = args[0]
		} else {
			prompt := &survey.Select{
				Message: "Theme",
				Options: []string{theme.Light.String(), theme.Dark.String()},
				Default: controller.Current().String(),
			}
			handleErr(survey.AskOne(prompt, &choice))
		}

		a, err := theme.Parse(choice)
		handleErr(err)
		handleErr(controller.Set(a))
		printTheme(cmd, "set", a)
	},
}
