package rarity

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClassify(t *testing.T) {
	Convey("Classify", t, func() {
		Convey("Known entries land in their tier", func() {
			So(Classify(150), ShouldEqual, Legendary)
			So(Classify(151), ShouldEqual, Mythical)
			So(Classify(149), ShouldEqual, Rare)
			So(Classify(133), ShouldEqual, Uncommon)
			So(Classify(1), ShouldEqual, Common)
		})

		Convey("Mythical wins over every other table", func() {
			for _, id := range mythical {
				So(Classify(id), ShouldEqual, Mythical)
			}
		})

		Convey("Ids outside every table are common", func() {
			listed := lo.Flatten([][]int{mythical, legendary, rare, uncommon})
			for id := -5; id <= 300; id++ {
				if lo.Contains(listed, id) {
					continue
				}
				So(Classify(id), ShouldEqual, Common)
			}
		})

		Convey("It is stable across calls", func() {
			So(Classify(144), ShouldEqual, Classify(144))
		})
	})
}

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		for _, tier := range All() {
			parsed, err := Parse(tier.String())
			So(err, ShouldBeNil)
			So(parsed, ShouldEqual, tier)
		}

		_, err := Parse("epic")
		So(err, ShouldNotBeNil)
	})

	Convey("Every tier has a display name and a color", t, func() {
		for _, tier := range All() {
			So(tier.DisplayName(), ShouldNotEqual, tier.String())
			So(string(tier.Color()), ShouldStartWith, "#")
		}
	})
}
