package theme

import (
	"errors"
	"testing"

	"github.com/pokedex-cli/pokedex/filesystem"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

func init() {
	filesystem.SetMemMapFs()
}

type memStore struct {
	saved   Appearance
	has     bool
	loadErr error
	saveErr error
	saves   int
}

func (m *memStore) Load() (Appearance, bool, error) {
	if m.loadErr != nil {
		return "", false, m.loadErr
	}
	return m.saved, m.has, nil
}

func (m *memStore) Save(a Appearance) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved, m.has = a, true
	return nil
}

func system(a Appearance) Detector {
	return func() (Appearance, bool) { return a, true }
}

func undetectable() (Appearance, bool) {
	return "", false
}

func TestNewController(t *testing.T) {
	Convey("Given no stored preference", t, func() {
		store := &memStore{}

		Convey("When the OS prefers dark", func() {
			c := NewController(store, system(Dark))

			Convey("Then the initial appearance is dark and not explicit", func() {
				So(c.Current(), ShouldEqual, Dark)
				So(c.Explicit(), ShouldBeFalse)
			})
		})

		Convey("When the OS preference is unknown", func() {
			c := NewController(store, undetectable)

			Convey("Then it falls back to light", func() {
				So(c.Current(), ShouldEqual, Light)
			})
		})

		Convey("When there is no detector", func() {
			So(NewController(store, nil).Current(), ShouldEqual, Light)
		})
	})

	Convey("Given a stored light preference and a dark OS", t, func() {
		store := &memStore{saved: Light, has: true}
		c := NewController(store, system(Dark))

		Convey("Then the stored preference wins", func() {
			So(c.Current(), ShouldEqual, Light)
			So(c.Explicit(), ShouldBeTrue)
		})
	})

	Convey("Given a store that cannot be read", t, func() {
		store := &memStore{loadErr: errors.New("corrupt")}
		c := NewController(store, system(Dark))

		Convey("Then it behaves as if nothing was stored", func() {
			So(c.Current(), ShouldEqual, Dark)
			So(c.Explicit(), ShouldBeFalse)
		})
	})
}

func TestToggle(t *testing.T) {
	Convey("Given a controller following a light OS", t, func() {
		store := &memStore{}
		c := NewController(store, system(Light))

		Convey("When toggled", func() {
			next, err := c.Toggle()

			Convey("Then it becomes dark and is persisted", func() {
				So(err, ShouldBeNil)
				So(next, ShouldEqual, Dark)
				So(c.Current(), ShouldEqual, Dark)
				So(c.Explicit(), ShouldBeTrue)
				So(store.saved, ShouldEqual, Dark)
			})

			Convey("Then toggling twice returns to light", func() {
				_, err := c.Toggle()
				So(err, ShouldBeNil)
				So(c.Current(), ShouldEqual, Light)
				So(store.saves, ShouldEqual, 2)
			})

			Convey("Then later OS changes are ignored", func() {
				So(c.SystemChanged(Light), ShouldBeFalse)
				So(c.Current(), ShouldEqual, Dark)
			})
		})
	})

	Convey("Given a store that cannot be written", t, func() {
		store := &memStore{saveErr: errors.New("read-only")}
		c := NewController(store, system(Light))

		Convey("When toggled", func() {
			next, err := c.Toggle()

			Convey("Then the appearance still flips for the session", func() {
				So(err, ShouldNotBeNil)
				So(next, ShouldEqual, Dark)
				So(c.Current(), ShouldEqual, Dark)
			})
		})
	})
}

func TestSystemChanged(t *testing.T) {
	Convey("Given no explicit choice", t, func() {
		c := NewController(&memStore{}, system(Light))

		Convey("When the OS switches to dark", func() {
			changed := c.SystemChanged(Dark)

			Convey("Then the appearance follows", func() {
				So(changed, ShouldBeTrue)
				So(c.Current(), ShouldEqual, Dark)
			})
		})

		Convey("When the OS reports the same appearance", func() {
			So(c.SystemChanged(Light), ShouldBeFalse)
		})
	})
}

func TestParse(t *testing.T) {
	Convey("Parse accepts known labels only", t, func() {
		a, err := Parse("dark")
		So(err, ShouldBeNil)
		So(a, ShouldEqual, Dark)

		_, err = Parse("sepia")
		So(err, ShouldNotBeNil)

		So(Light.Opposite(), ShouldEqual, Dark)
		So(Dark.Opposite(), ShouldEqual, Light)
	})
}

func TestFileStore(t *testing.T) {
	Convey("Given a file store", t, func() {
		store := FileStore("/state/theme-test.json")

		Convey("When a preference is saved", func() {
			So(store.Save(Dark), ShouldBeNil)

			Convey("Then a fresh store reads it back", func() {
				a, ok, err := FileStore("/state/theme-test.json").Load()
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)
				So(a, ShouldEqual, Dark)
			})

			Convey("Then a controller restores it over the OS preference", func() {
				c := NewController(FileStore("/state/theme-test.json"), system(Light))
				So(c.Current(), ShouldEqual, Dark)
			})
		})
	})
}

func TestDefaultStoreReadOnly(t *testing.T) {
	Convey("Given a filesystem where the state file cannot be created", t, func() {
		filesystem.SetFs(afero.NewReadOnlyFs(afero.NewMemMapFs()))
		defer filesystem.SetMemMapFs()

		var c *Controller
		So(func() { c = NewController(DefaultStore(), system(Dark)) }, ShouldNotPanic)

		Convey("Then the OS preference is used", func() {
			So(c.Current(), ShouldEqual, Dark)
			So(c.Explicit(), ShouldBeFalse)
		})

		Convey("When toggling", func() {
			var (
				a   Appearance
				err error
			)
			So(func() { a, err = c.Toggle() }, ShouldNotPanic)

			Convey("Then the theme still flips and the write error is returned", func() {
				So(a, ShouldEqual, Light)
				So(c.Current(), ShouldEqual, Light)
				So(err, ShouldNotBeNil)
			})
		})
	})
}
