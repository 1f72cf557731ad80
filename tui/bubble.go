package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/pokedex-cli/pokedex/constant"
	"github.com/pokedex-cli/pokedex/internal/ui"
	"github.com/pokedex-cli/pokedex/key"
	"github.com/pokedex-cli/pokedex/log"
	"github.com/pokedex-cli/pokedex/pokeapi"
	"github.com/pokedex-cli/pokedex/pokemon"
	"github.com/pokedex-cli/pokedex/rarity"
	"github.com/pokedex-cli/pokedex/style"
	"github.com/pokedex-cli/pokedex/theme"
	"github.com/pokedex-cli/pokedex/util"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// statefulBubble owns the catalog snapshot and everything derived from it.
// Filtering and rendering are recomputed from this state on every change.
type statefulBubble struct {
	state  state
	keymap *statefulKeymap

	spinnerC  spinner.Model
	progressC progress.Model
	inputC    textinput.Model
	gridC     viewport.Model
	helpC     help.Model

	ctx    context.Context
	cancel context.CancelFunc
	client *pokeapi.Client
	limit  int

	progressChannel chan progressMsg
	progressStatus  string
	progressPercent float64

	// catalog is never modified after it is loaded
	catalog  []*pokemon.Pokemon
	failures []*pokeapi.FetchError
	filtered []*pokemon.Pokemon
	cursor   int

	typeSelector   selector[pokemon.Type]
	raritySelector selector[rarity.Tier]

	tabs   tabs
	theme  *theme.Controller
	detect theme.Detector

	searchSuggestion mo.Option[string]
	notifier         *ui.Model
	lastError        error

	width, height int
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.setState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// header lines above the grid: tabs, blank, search, selectors, blank
const headerHeight = 5

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()

	b.width = width - x
	b.height = height - y

	b.helpC.Width = b.width
	b.progressC.Width = util.Min(b.width, 60)
	b.inputC.Width = util.Max(b.width-lipgloss.Width(b.inputC.Prompt)-1, 10)

	b.gridC.Width = b.width
	b.gridC.Height = util.Max(b.height-headerHeight-1, 1)
}

func (b *statefulBubble) applyTheme() {
	style.Use(b.theme.Current() == theme.Dark)
	palette := style.Current()

	b.spinnerC.Style = style.New().Foreground(palette.Accent)
	b.inputC.PromptStyle = style.New().Foreground(palette.Accent)
	b.inputC.TextStyle = style.New().Foreground(palette.Text)
	b.inputC.PlaceholderStyle = style.New().Foreground(palette.Overlay)

	b.refreshGrid()
}

func newBubble(ctx context.Context, options *Options) *statefulBubble {
	ctx, cancel := context.WithCancel(ctx)

	bubble := &statefulBubble{
		keymap:          newStatefulKeymap(),
		ctx:             ctx,
		cancel:          cancel,
		limit:           options.Limit,
		theme:           options.Theme,
		detect:          options.Detector,
		progressChannel: make(chan progressMsg, 32),
		typeSelector:    newSelector[pokemon.Type]("Type", nil),
		raritySelector:  newSelector("Rarity", rarity.All()),
		notifier:        &ui.Model{},
	}

	if bubble.limit <= 0 {
		bubble.limit = viper.GetInt(key.CatalogLimit)
	}

	client := options.Client
	if client == nil {
		client = pokeapi.FromConfig()
	}
	bubble.client = client.With(pokeapi.WithProgress(bubble.reportProgress))

	if bubble.theme == nil {
		bubble.theme = theme.NewController(theme.DefaultStore(), theme.FirstOf(theme.DetectSystem, theme.DetectTerminal))
	}
	if bubble.detect == nil {
		bubble.detect = theme.DetectSystem
	}

	tabName := options.Tab
	if tabName == "" {
		tabName = viper.GetString(key.TUIDefaultTab)
	}
	initial, ok := parseTab(tabName)
	if !ok {
		log.Warnf("unknown tab %q, using %s", tabName, initial)
	}
	bubble.tabs.selectTab(initial)

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot

	bubble.progressC = progress.New(progress.WithDefaultGradient())

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = fmt.Sprintf("Search Pokémon (v%s)", constant.Version)
	bubble.inputC.CharLimit = 40
	bubble.inputC.Prompt = viper.GetString(key.TUISearchPromptString)

	bubble.gridC = viewport.New(0, 0)
	bubble.gridC.KeyMap = viewport.KeyMap{
		PageDown: bubble.keymap.pageDown,
		PageUp:   bubble.keymap.pageUp,
	}

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	bubble.setState(loadingState)
	bubble.applyTheme()
	bubble.inputC.Focus()

	return bubble
}
