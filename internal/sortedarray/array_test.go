//go:build go1.23

package sortedarray_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/ptizoom/hexastore/internal/sortedarray"
)

func TestArray(t *testing.T) {
	Convey("Given an empty array with a small initial capacity", t, func() {
		a := sortedarray.New[int, string](4)

		Convey("it starts empty", func() {
			So(a.Len(), ShouldEqual, 0)
			found, idx := a.Search(1)
			So(found, ShouldBeFalse)
			So(idx, ShouldEqual, 0)
		})

		Convey("inserting keeps ascending order", func() {
			for _, k := range []int{5, 1, 3, 2, 4} {
				_, idx := a.Search(k)
				a.InsertAt(idx, k, "")
			}

			So(a.Len(), ShouldEqual, 5)

			var keys []int
			for k := range a.All() {
				keys = append(keys, k)
			}
			So(keys, ShouldResemble, []int{1, 2, 3, 4, 5})
		})

		Convey("inserting past the initial capacity grows geometrically", func() {
			for i := 0; i < 100; i++ {
				_, idx := a.Search(i)
				a.InsertAt(idx, i, "")
			}

			So(a.Len(), ShouldEqual, 100)
			So(a.Cap(), ShouldBeGreaterThanOrEqualTo, 100)

			v, ok := a.Get(42)
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, "")
		})

		Convey("removing all elements shrinks back toward the initial capacity", func() {
			for i := 0; i < 100; i++ {
				_, idx := a.Search(i)
				a.InsertAt(idx, i, "")
			}

			for a.Len() > 0 {
				_, idx := a.Search(0)
				a.RemoveAt(idx)
				found, _ := a.Search(0)
				So(found, ShouldBeFalse)
			}

			So(a.Len(), ShouldEqual, 0)
			So(a.Cap(), ShouldEqual, 4)
		})

		Convey("removing a middle element preserves order of the rest", func() {
			for _, k := range []int{1, 2, 3, 4, 5} {
				_, idx := a.Search(k)
				a.InsertAt(idx, k, "")
			}

			_, idx := a.Search(3)
			k, _ := a.RemoveAt(idx)
			So(k, ShouldEqual, 3)

			var keys []int
			for k := range a.All() {
				keys = append(keys, k)
			}
			So(keys, ShouldResemble, []int{1, 2, 4, 5})
		})
	})
}
