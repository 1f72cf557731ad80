package theme

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/pokedex-cli/pokedex/constant"
)

const systemQueryTimeout = 2 * time.Second

// runCommand returns the trimmed stdout of a short-lived command.
var runCommand = func(name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), systemQueryTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, name, args...).Output()
	return strings.TrimSpace(string(out)), err
}

// DetectSystem reads the desktop appearance setting. It does not touch the
// terminal, so it can run while the TUI owns stdin.
func DetectSystem() (Appearance, bool) {
	return detectSystem(runtime.GOOS)
}

func detectSystem(goos string) (Appearance, bool) {
	switch goos {
	case constant.Darwin:
		out, err := runCommand("defaults", "read", "-g", "AppleInterfaceStyle")
		var exitErr *exec.ExitError
		switch {
		case err == nil:
			return fromFlag(strings.EqualFold(out, "dark")), true
		case errors.As(err, &exitErr):
			// the key only exists while dark mode is on
			return Light, true
		default:
			return "", false
		}
	case constant.Linux:
		out, err := runCommand("gsettings", "get", "org.gnome.desktop.interface", "color-scheme")
		if err != nil {
			return "", false
		}
		switch strings.Trim(out, "'") {
		case "prefer-dark":
			return Dark, true
		case "prefer-light", "default":
			return Light, true
		}
		return "", false
	case constant.Windows:
		out, err := runCommand("reg", "query",
			`HKCU\Software\Microsoft\Windows\CurrentVersion\Themes\Personalize`,
			"/v", "AppsUseLightTheme")
		if err != nil {
			return "", false
		}
		switch {
		case strings.HasSuffix(out, "0x0"):
			return Dark, true
		case strings.HasSuffix(out, "0x1"):
			return Light, true
		}
		return "", false
	default:
		return "", false
	}
}

// DetectTerminal asks the terminal for its background color. It reads the
// reply from the tty, so only call it before the TUI starts.
func DetectTerminal() (Appearance, bool) {
	return fromFlag(lipgloss.NewRenderer(os.Stdout).HasDarkBackground()), true
}

// FirstOf returns the answer of the first detector that has one.
func FirstOf(detectors ...Detector) Detector {
	return func() (Appearance, bool) {
		for _, detect := range detectors {
			if a, ok := detect(); ok {
				return a, true
			}
		}
		return "", false
	}
}

func fromFlag(dark bool) Appearance {
	if dark {
		return Dark
	}
	return Light
}
