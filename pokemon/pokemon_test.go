package pokemon

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

const bulbasaurJSON = `{
	"id": 1,
	"name": "bulbasaur",
	"sprites": {"front_default": "https://img.example/1.png"},
	"types": [
		{"slot": 2, "type": {"name": "poison"}},
		{"slot": 1, "type": {"name": "grass"}}
	]
}`

func TestDecode(t *testing.T) {
	Convey("Given an API document", t, func() {
		Convey("It decodes the fields in slot order", func() {
			p, err := Decode([]byte(bulbasaurJSON))
			So(err, ShouldBeNil)
			So(p.ID, ShouldEqual, 1)
			So(p.Name, ShouldEqual, "bulbasaur")
			So(p.Types, ShouldResemble, []Type{Grass, Poison})
			So(p.Sprite, ShouldEqual, "https://img.example/1.png")
			So(p.HasSprite(), ShouldBeTrue)
		})

		Convey("A null sprite decodes to an empty one", func() {
			p, err := Decode([]byte(`{"id":10,"name":"caterpie","sprites":{"front_default":null},"types":[{"slot":1,"type":{"name":"bug"}}]}`))
			So(err, ShouldBeNil)
			So(p.HasSprite(), ShouldBeFalse)
		})

		Convey("Missing fields are rejected", func() {
			_, err := Decode([]byte(`{"id":0,"name":"x","types":[{"slot":1,"type":{"name":"bug"}}]}`))
			So(errors.Is(err, ErrInvalidID), ShouldBeTrue)

			_, err = Decode([]byte(`{"id":3,"name":"","types":[{"slot":1,"type":{"name":"bug"}}]}`))
			So(errors.Is(err, ErrEmptyName), ShouldBeTrue)

			_, err = Decode([]byte(`{"id":3,"name":"venusaur","types":[]}`))
			So(errors.Is(err, ErrEmptyTypes), ShouldBeTrue)
		})

		Convey("Malformed JSON is rejected", func() {
			_, err := Decode([]byte(`<html>`))
			So(err, ShouldNotBeNil)
		})
	})
}

func TestPokemon(t *testing.T) {
	Convey("Given an entry", t, func() {
		p := &Pokemon{ID: 7, Name: "squirtle", Types: []Type{Water}}

		Convey("Its number is zero-padded to three digits", func() {
			So(p.Number(), ShouldEqual, "#007")
			So((&Pokemon{ID: 151}).Number(), ShouldEqual, "#151")
		})

		Convey("HasType matches exactly", func() {
			So(p.HasType(Water), ShouldBeTrue)
			So(p.HasType(Fire), ShouldBeFalse)
		})
	})
}

func TestTypes(t *testing.T) {
	Convey("The canonical vocabulary", t, func() {
		types := Types()

		Convey("Has eighteen members, each with a color", func() {
			So(types, ShouldHaveLength, 18)
			for _, typ := range types {
				c, ok := typ.Color()
				So(ok, ShouldBeTrue)
				So(string(c), ShouldStartWith, "#")
				So(typ.Known(), ShouldBeTrue)
			}
		})

		Convey("Keeps legend order", func() {
			So(types[0], ShouldEqual, Normal)
			So(types[17], ShouldEqual, Fairy)
			So(Psychic.Order(), ShouldBeLessThan, Fairy.Order())
		})

		Convey("Reports unknown labels", func() {
			c, ok := Type("stellar").Color()
			So(ok, ShouldBeFalse)
			So(c, ShouldBeEmpty)
			So(Type("stellar").Order(), ShouldEqual, 18)
		})
	})

	Convey("Unmapped", t, func() {
		list := []*Pokemon{
			{ID: 1, Name: "a", Types: []Type{Grass, "stellar"}},
			{ID: 2, Name: "b", Types: []Type{"stellar", "shadow"}},
			{ID: 3, Name: "c", Types: []Type{Fire}},
		}
		So(Unmapped(list), ShouldResemble, []Type{"stellar", "shadow"})
		So(Unmapped(list[2:]), ShouldBeEmpty)
	})
}
