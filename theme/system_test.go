package theme

import (
	"errors"
	"os/exec"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func stubCommand(out string, err error) func() {
	previous := runCommand
	runCommand = func(string, ...string) (string, error) { return out, err }
	return func() { runCommand = previous }
}

func TestDetectSystem(t *testing.T) {
	Convey("Given macOS", t, func() {
		Convey("Dark interface style is dark", func() {
			defer stubCommand("Dark", nil)()
			a, ok := detectSystem("darwin")
			So(ok, ShouldBeTrue)
			So(a, ShouldEqual, Dark)
		})

		Convey("A missing key means light", func() {
			defer stubCommand("", &exec.ExitError{})()
			a, ok := detectSystem("darwin")
			So(ok, ShouldBeTrue)
			So(a, ShouldEqual, Light)
		})

		Convey("A missing tool gives no answer", func() {
			defer stubCommand("", exec.ErrNotFound)()
			_, ok := detectSystem("darwin")
			So(ok, ShouldBeFalse)
		})
	})

	Convey("Given a GNOME desktop", t, func() {
		Convey("prefer-dark is dark", func() {
			defer stubCommand("'prefer-dark'", nil)()
			a, ok := detectSystem("linux")
			So(ok, ShouldBeTrue)
			So(a, ShouldEqual, Dark)
		})

		Convey("default is light", func() {
			defer stubCommand("'default'", nil)()
			a, ok := detectSystem("linux")
			So(ok, ShouldBeTrue)
			So(a, ShouldEqual, Light)
		})

		Convey("An unknown value or a failure gives no answer", func() {
			defer stubCommand("'sepia'", nil)()
			_, ok := detectSystem("linux")
			So(ok, ShouldBeFalse)

			defer stubCommand("", errors.New("no schema"))()
			_, ok = detectSystem("linux")
			So(ok, ShouldBeFalse)
		})
	})

	Convey("Given Windows", t, func() {
		Convey("AppsUseLightTheme 0 is dark", func() {
			defer stubCommand("HKEY_CURRENT_USER\\...\\Personalize\n    AppsUseLightTheme    REG_DWORD    0x0", nil)()
			a, ok := detectSystem("windows")
			So(ok, ShouldBeTrue)
			So(a, ShouldEqual, Dark)
		})

		Convey("AppsUseLightTheme 1 is light", func() {
			defer stubCommand("    AppsUseLightTheme    REG_DWORD    0x1", nil)()
			a, ok := detectSystem("windows")
			So(ok, ShouldBeTrue)
			So(a, ShouldEqual, Light)
		})
	})

	Convey("Given an unsupported OS", t, func() {
		_, ok := detectSystem("plan9")
		So(ok, ShouldBeFalse)
	})
}

func TestFirstOf(t *testing.T) {
	Convey("FirstOf", t, func() {
		Convey("uses the first detector with an answer", func() {
			a, ok := FirstOf(undetectable, system(Dark), system(Light))()
			So(ok, ShouldBeTrue)
			So(a, ShouldEqual, Dark)
		})

		Convey("has no answer when none does", func() {
			_, ok := FirstOf(undetectable)()
			So(ok, ShouldBeFalse)
		})
	})
}
