package style

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUse(t *testing.T) {
	Convey("Given the default palette", t, func() {
		defer Use(false)
		So(IsDark(), ShouldBeFalse)
		light := Current()

		Convey("When switching to dark", func() {
			Use(true)

			Convey("Then the palette changes", func() {
				So(IsDark(), ShouldBeTrue)
				So(Current().Base, ShouldNotEqual, light.Base)
				So(Current().Text, ShouldNotEqual, light.Text)
			})

			Convey("Then switching back restores light", func() {
				Use(false)
				So(Current(), ShouldEqual, light)
			})
		})
	})
}

func TestRender(t *testing.T) {
	Convey("Rendering helpers keep the text", t, func() {
		So(Badge("#F08030", "fire"), ShouldContainSubstring, "fire")
		So(Title("Pokedex"), ShouldContainSubstring, "Pokedex")
		So(Border(true).Render("x"), ShouldContainSubstring, "x")
	})
}
