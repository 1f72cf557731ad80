package filesystem

import (
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "MemMapFS")
		})

		Convey("Should accept a read-only backend", func() {
			SetFs(afero.NewReadOnlyFs(afero.NewMemMapFs()))
			_, err := API().Create("/state.json")
			So(err, ShouldNotBeNil)
			SetMemMapFs()
		})
	})

	Convey("GacheFs writes through the active backend", t, func() {
		SetMemMapFs()
		So(GacheFs{}.MkdirAll("/a/b", os.ModePerm), ShouldBeNil)

		f, err := GacheFs{}.OpenFile("/a/b/c.json", os.O_CREATE|os.O_RDWR, 0644)
		So(err, ShouldBeNil)
		_, _ = f.Write([]byte("{}"))
		So(f.Close(), ShouldBeNil)

		exists, err := API().Exists("/a/b/c.json")
		So(err, ShouldBeNil)
		So(exists, ShouldBeTrue)
	})
}
