package config_test

import (
	"errors"
	"testing"

	"github.com/pokedex-cli/pokedex/config"
	"github.com/pokedex-cli/pokedex/filesystem"
	"github.com/pokedex-cli/pokedex/key"
	"github.com/pokedex-cli/pokedex/where"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := config.Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = config.Setup()
			for name := range config.Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetInt(key.CatalogLimit), ShouldEqual, 151)
			So(viper.GetString(key.TUIDefaultTab), ShouldEqual, "pokedex")
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := config.EnvKeyReplacer.Replace("catalog.base_url")
			So(result, ShouldEqual, "catalog_base_url")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := config.Default[key.CatalogLimit]

		Convey("Its env name is prefixed with the app name", func() {
			So(field.Env(), ShouldEqual, "POKEDEX_CATALOG_LIMIT")
		})

		Convey("Its JSON form carries the type name", func() {
			data, err := field.MarshalJSON()
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, `"type":"int"`)
		})
	})
}

func TestSetupReadOnly(t *testing.T) {
	Convey("Given a filesystem where nothing can be created", t, func() {
		t.Setenv(where.EnvConfigPath, "/missing/config")
		filesystem.SetFs(afero.NewReadOnlyFs(afero.NewMemMapFs()))
		defer filesystem.SetMemMapFs()

		Convey("Setup falls back to the defaults", func() {
			var err error
			So(func() { err = config.Setup() }, ShouldNotPanic)
			So(err, ShouldBeNil)
			So(viper.GetInt(key.CatalogLimit), ShouldEqual, 151)
		})

		Convey("Write returns the error", func() {
			_ = config.Setup()
			So(config.Write(), ShouldNotBeNil)
		})
	})
}

func TestSetAndWrite(t *testing.T) {
	Convey("Given a fresh config directory", t, func() {
		t.Setenv(where.EnvConfigPath, "/fresh/config")
		filesystem.SetMemMapFs()
		So(config.Setup(), ShouldBeNil)
		defer func() { _ = config.Reset("") }()

		Convey("Set converts the value to the field type", func() {
			v, err := config.Set(key.CatalogLimit, "251")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 251)
			So(viper.GetInt(key.CatalogLimit), ShouldEqual, 251)

			Convey("And Write creates the directory and the file", func() {
				So(config.Write(), ShouldBeNil)
				So(lo.Must(filesystem.API().Exists(config.Path())), ShouldBeTrue)
			})

			Convey("And Reset restores the default", func() {
				So(config.Reset(key.CatalogLimit), ShouldBeNil)
				So(viper.GetInt(key.CatalogLimit), ShouldEqual, 151)
			})
		})

		Convey("Set rejects values of the wrong type", func() {
			_, err := config.Set(key.CatalogCache, "maybe")
			So(err, ShouldNotBeNil)
			So(viper.GetBool(key.CatalogCache), ShouldBeFalse)
		})

		Convey("Unknown keys are reported", func() {
			_, err := config.Set("catalog.limt", "1")
			So(errors.Is(err, config.ErrUnknownKey), ShouldBeTrue)
			So(errors.Is(config.Reset("catalog.limt"), config.ErrUnknownKey), ShouldBeTrue)
		})
	})
}
