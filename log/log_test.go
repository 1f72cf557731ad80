package log

import (
	"bytes"
	"testing"

	"github.com/pokedex-cli/pokedex/filesystem"
	"github.com/pokedex-cli/pokedex/key"
	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestLog(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)
		So(Setup(), ShouldBeNil)

		Convey("Emissions are discarded without error", func() {
			So(func() { Warn("nothing to see") }, ShouldNotPanic)
		})
	})

	Convey("Given a captured output", t, func() {
		var buf bytes.Buffer
		SetOutput(&buf, logrus.DebugLevel)

		Convey("Structured fields are written", func() {
			With(Fields{"id": 25}).Warn("fetch failed")
			So(buf.String(), ShouldContainSubstring, "fetch failed")
			So(buf.String(), ShouldContainSubstring, "id=25")
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "not-a-level")
		defer viper.Set(key.LogsWrite, false)

		Convey("Setup falls back to info level", func() {
			So(Setup(), ShouldBeNil)
			So(logger.GetLevel(), ShouldEqual, logrus.InfoLevel)
		})
	})

	Convey("Given logging is enabled on a read-only filesystem", t, func() {
		filesystem.SetFs(afero.NewReadOnlyFs(afero.NewMemMapFs()))
		viper.Set(key.LogsWrite, true)
		defer func() {
			viper.Set(key.LogsWrite, false)
			filesystem.SetMemMapFs()
		}()

		Convey("Setup reports the error instead of panicking", func() {
			var err error
			So(func() { err = Setup() }, ShouldNotPanic)
			So(err, ShouldNotBeNil)
			So(func() { Warn("still usable") }, ShouldNotPanic)
		})
	})
}
