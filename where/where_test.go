package where

import (
	"path/filepath"
	"testing"

	"github.com/pokedex-cli/pokedex/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

func init() {
	// Use in-memory filesystem for tests to avoid creating real directories
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			So(Config(), ShouldNotBeEmpty)
		})

		Convey("Cache()", func() {
			So(Cache(), ShouldNotBeEmpty)
		})

		Convey("Logs() lives in the config", func() {
			So(filepath.Dir(Logs()), ShouldEqual, Config())
		})

		Convey("State() lives next to the config", func() {
			So(filepath.Dir(State()), ShouldEqual, Config())
		})

		Convey("Catalog() lives in the cache", func() {
			So(filepath.Dir(Catalog()), ShouldEqual, Cache())
		})

		Convey("Resolving does not create directories", func() {
			So(lo.Must(filesystem.API().Exists(Logs())), ShouldBeFalse)
		})
	})

	Convey("Given POKEDEX_CONFIG_PATH", t, func() {
		t.Setenv(EnvConfigPath, "/tmp/pokedex-test-config")

		Convey("Config() honors it", func() {
			So(Config(), ShouldEqual, "/tmp/pokedex-test-config")
		})
	})

	Convey("Given no home directory", t, func() {
		t.Setenv("HOME", "")
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("XDG_CACHE_HOME", "")

		Convey("Paths still resolve", func() {
			So(func() { _ = State() }, ShouldNotPanic)
			So(Config(), ShouldNotBeEmpty)
			So(Cache(), ShouldNotBeEmpty)
		})
	})
}

func TestEnsure(t *testing.T) {
	Convey("Ensure", t, func() {
		Convey("creates the directory", func() {
			dir := filepath.Join(Cache(), "ensure-test")
			So(Ensure(dir), ShouldBeNil)
			So(lo.Must(filesystem.API().IsDir(dir)), ShouldBeTrue)
		})

		Convey("returns the error on a read-only filesystem", func() {
			filesystem.SetFs(afero.NewReadOnlyFs(afero.NewMemMapFs()))
			defer filesystem.SetMemMapFs()

			So(Ensure(Logs()), ShouldNotBeNil)
		})
	})
}
