package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pokedex-cli/pokedex/filesystem"
	"github.com/pokedex-cli/pokedex/key"
	"github.com/pokedex-cli/pokedex/pokeapi"
	"github.com/pokedex-cli/pokedex/pokemon"
	"github.com/pokedex-cli/pokedex/rarity"
	"github.com/pokedex-cli/pokedex/style"
	"github.com/pokedex-cli/pokedex/theme"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.RenderCardWidth, 26)
	viper.Set(key.IconsVariant, "plain")
}

type memStore struct {
	saved theme.Appearance
	has   bool
}

func (m *memStore) Load() (theme.Appearance, bool, error) {
	return m.saved, m.has, nil
}

func (m *memStore) Save(a theme.Appearance) error {
	m.saved, m.has = a, true
	return nil
}

var catalog = []*pokemon.Pokemon{
	{ID: 1, Name: "bulbasaur", Types: []pokemon.Type{pokemon.Grass, pokemon.Poison}, Sprite: "https://sprites.example/1.png"},
	{ID: 4, Name: "charmander", Types: []pokemon.Type{pokemon.Fire}},
	{ID: 133, Name: "eevee", Types: []pokemon.Type{pokemon.Normal}},
	{ID: 151, Name: "mew", Types: []pokemon.Type{pokemon.Psychic}},
}

func press(b *statefulBubble, k tea.KeyType) tea.Cmd {
	_, cmd := b.Update(tea.KeyMsg{Type: k})
	return cmd
}

func typeText(b *statefulBubble, s string) {
	b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func names(list []*pokemon.Pokemon) []string {
	out := make([]string, len(list))
	for i, p := range list {
		out[i] = p.Name
	}
	return out
}

func newTestBubble(store *memStore, system theme.Appearance) *statefulBubble {
	detector := func() (theme.Appearance, bool) { return system, true }
	b := newBubble(context.Background(), &Options{
		Client:   pokeapi.New(pokeapi.WithBaseURL("http://127.0.0.1:1")),
		Limit:    len(catalog),
		Tab:      "pokedex",
		Theme:    theme.NewController(store, detector),
		Detector: detector,
	})
	b.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return b
}

func TestLoading(t *testing.T) {
	Convey("Given a bubble that is loading", t, func() {
		b := newTestBubble(&memStore{}, theme.Light)
		So(b.state, ShouldEqual, loadingState)

		Convey("When progress arrives", func() {
			_, cmd := b.Update(progressMsg{done: 2, total: 4})

			Convey("Then the status is updated and progress is awaited again", func() {
				So(b.progressStatus, ShouldEqual, "2/4")
				So(b.progressPercent, ShouldAlmostEqual, 0.5)
				So(cmd, ShouldNotBeNil)
				So(b.View(), ShouldContainSubstring, "2/4")
			})
		})

		Convey("When the catalog loads", func() {
			b.Update(catalogLoadedMsg{result: &pokeapi.Result{Pokemon: catalog}})

			Convey("Then every entry is shown and the type selector offers the observed types", func() {
				So(b.state, ShouldEqual, browseState)
				So(names(b.filtered), ShouldResemble, []string{"bulbasaur", "charmander", "eevee", "mew"})
				So(b.typeSelector.options, ShouldResemble, []pokemon.Type{
					pokemon.Normal, pokemon.Fire, pokemon.Grass, pokemon.Poison, pokemon.Psychic,
				})
				So(b.View(), ShouldContainSubstring, "Bulbasaur")
			})
		})

		Convey("When every entry failed", func() {
			failure := &pokeapi.FetchError{ID: 1, Err: pokeapi.ErrStatus}
			b.Update(catalogLoadedMsg{result: &pokeapi.Result{Failures: []*pokeapi.FetchError{failure}}})

			Convey("Then the error view is shown with the last failure", func() {
				So(b.state, ShouldEqual, errorState)
				So(errors.Is(b.lastError, errEmptyCatalog), ShouldBeTrue)

				var fetchErr *pokeapi.FetchError
				So(errors.As(b.lastError, &fetchErr), ShouldBeTrue)
				So(fetchErr.ID, ShouldEqual, 1)
				So(b.View(), ShouldContainSubstring, "Error")
			})

			Convey("Then esc quits", func() {
				cmd := press(b, tea.KeyEsc)
				So(cmd, ShouldNotBeNil)
			})
		})

		Convey("When the load itself fails", func() {
			b.Update(context.Canceled)
			So(b.state, ShouldEqual, errorState)
		})
	})
}

func TestBrowse(t *testing.T) {
	Convey("Given a loaded catalog", t, func() {
		b := newTestBubble(&memStore{}, theme.Light)
		b.Update(catalogLoadedMsg{result: &pokeapi.Result{
			Pokemon:  catalog,
			Failures: []*pokeapi.FetchError{{ID: 2, Err: pokeapi.ErrStatus}},
		}})

		Convey("When cycling the type selector to fire", func() {
			press(b, tea.KeyCtrlT)
			press(b, tea.KeyCtrlT)

			Convey("Then only fire entries remain", func() {
				So(b.typeSelector.label(), ShouldEqual, "fire")
				So(names(b.filtered), ShouldResemble, []string{"charmander"})
			})
		})

		Convey("When cycling the rarity selector to mythical", func() {
			press(b, tea.KeyCtrlR)

			Convey("Then only 151 remains", func() {
				So(b.raritySelector.value().MustGet(), ShouldEqual, rarity.Mythical)
				So(names(b.filtered), ShouldResemble, []string{"mew"})
			})
		})

		Convey("When typing a query", func() {
			typeText(b, "CHAR")

			Convey("Then the match is case-insensitive", func() {
				So(names(b.filtered), ShouldResemble, []string{"charmander"})
			})

			Convey("Then combining with a non-matching type yields nothing", func() {
				press(b, tea.KeyCtrlT)
				So(b.filtered, ShouldBeEmpty)
				So(b.View(), ShouldContainSubstring, "No Pokémon match")
			})

			Convey("Then resetting restores the full catalog", func() {
				press(b, tea.KeyCtrlR)
				press(b, tea.KeyCtrlX)
				So(b.inputC.Value(), ShouldBeEmpty)
				So(b.raritySelector.label(), ShouldEqual, "all")
				So(len(b.filtered), ShouldEqual, len(catalog))
			})
		})

		Convey("When moving the highlight", func() {
			press(b, tea.KeyShiftRight)
			So(b.cursor, ShouldEqual, 1)

			press(b, tea.KeyDown)
			So(b.cursor, ShouldEqual, len(catalog)-1)

			press(b, tea.KeyUp)
			So(b.cursor, ShouldEqual, 0)
		})

		Convey("When opening the sprite of an entry without one", func() {
			press(b, tea.KeyShiftRight)
			cmd := press(b, tea.KeyCtrlO)
			So(cmd, ShouldNotBeNil)
		})

		Convey("When switching to the types tab", func() {
			press(b, tea.KeyF2)

			Convey("Then exactly that tab is active and typing does not search", func() {
				So(b.tabs.isActive(typesTab), ShouldBeTrue)
				So(b.tabs.isActive(pokedexTab), ShouldBeFalse)
				typeText(b, "mew")
				So(b.inputC.Value(), ShouldBeEmpty)
				So(b.View(), ShouldContainSubstring, "fairy")
			})

			Convey("Then ctrl+n moves to the about tab", func() {
				press(b, tea.KeyCtrlN)
				So(b.tabs.isActive(aboutTab), ShouldBeTrue)
				So(b.View(), ShouldContainSubstring, "could not be loaded")
			})
		})

		Convey("When pressing esc", func() {
			cmd := press(b, tea.KeyEsc)

			Convey("Then the program quits and the fetch context is cancelled", func() {
				So(cmd, ShouldNotBeNil)
				So(b.ctx.Err(), ShouldNotBeNil)
			})
		})
	})
}

func TestTheme(t *testing.T) {
	Convey("Given a bubble following a dark terminal", t, func() {
		defer style.Use(false)

		store := &memStore{}
		b := newTestBubble(store, theme.Dark)

		Convey("Then the dark palette is active", func() {
			So(b.theme.Current(), ShouldEqual, theme.Dark)
			So(style.IsDark(), ShouldBeTrue)
		})

		Convey("When the terminal regains focus with a light preference", func() {
			b.detect = func() (theme.Appearance, bool) { return theme.Light, true }
			_, cmd := b.Update(tea.FocusMsg{})
			So(cmd, ShouldNotBeNil)
			b.Update(cmd())

			Convey("Then the theme follows", func() {
				So(b.theme.Current(), ShouldEqual, theme.Light)
				So(style.IsDark(), ShouldBeFalse)
				So(store.has, ShouldBeFalse)
			})
		})

		Convey("When the desktop poll fires", func() {
			b.detect = func() (theme.Appearance, bool) { return theme.Light, true }
			_, cmd := b.Update(systemPollMsg{})

			Convey("Then it checks the desktop and schedules the next poll", func() {
				So(cmd, ShouldNotBeNil)
				batch, ok := cmd().(tea.BatchMsg)
				So(ok, ShouldBeTrue)
				So(batch, ShouldHaveLength, 2)

				b.Update(batch[0]())
				So(b.theme.Current(), ShouldEqual, theme.Light)
			})
		})

		Convey("When the user toggles the theme", func() {
			press(b, tea.KeyCtrlG)

			Convey("Then it is light and persisted", func() {
				So(b.theme.Current(), ShouldEqual, theme.Light)
				So(store.saved, ShouldEqual, theme.Light)
				So(style.IsDark(), ShouldBeFalse)
			})

			Convey("Then focus changes are no longer queried", func() {
				_, cmd := b.Update(tea.FocusMsg{})
				So(cmd, ShouldBeNil)
			})

			Convey("Then desktop polling stops", func() {
				_, cmd := b.Update(systemPollMsg{})
				So(cmd, ShouldBeNil)
			})

			Convey("Then a late OS notification is ignored", func() {
				b.Update(systemThemeMsg{appearance: theme.Dark})
				So(b.theme.Current(), ShouldEqual, theme.Light)
			})
		})
	})
}
