package toml

import (
	"math"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestArrayOfTables(t *testing.T) {
	convey.Convey("array of tables", t, func() {
		src := `
[[products]]
name = "Hammer"
sku = 738594937

[[products]]
name = "Nails"
sku = 284758393
count = 100
`
		root, err := ParseString(src)
		convey.So(err, convey.ShouldBeNil)
		v, ok := root.Get("products")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(v.IsTableArray(), convey.ShouldBeTrue)
		arr, _ := v.AsArray()
		convey.So(len(arr), convey.ShouldEqual, 2)
		first, _ := arr[0].AsTable()
		name, err := first.GetString("name")
		convey.So(err, convey.ShouldBeNil)
		convey.So(name, convey.ShouldEqual, "Hammer")
	})
}

func TestInlineTable(t *testing.T) {
	convey.Convey("inline table", t, func() {
		src := `owner = { name = "Tom", dob = 1979-05-27T07:32:00Z }`
		root, err := ParseString(src)
		convey.So(err, convey.ShouldBeNil)
		tbl, err := root.GetTable("owner")
		convey.So(err, convey.ShouldBeNil)
		name, err := tbl.GetString("name")
		convey.So(err, convey.ShouldBeNil)
		convey.So(name, convey.ShouldEqual, "Tom")

		dobVal, ok := tbl.Get("dob")
		convey.So(ok, convey.ShouldBeTrue)
		odt, ok := dobVal.AsOffsetDateTime()
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(odt.Date.Year, convey.ShouldEqual, 1979)
		convey.So(odt.Time.Hour, convey.ShouldEqual, 7)
	})
}

func TestMultilineBasicString(t *testing.T) {
	convey.Convey("multiline basic string", t, func() {
		src := "desc = \"\"\"first\nsecond\nthird\"\"\""
		root, err := ParseString(src)
		convey.So(err, convey.ShouldBeNil)
		desc, err := root.GetString("desc")
		convey.So(err, convey.ShouldBeNil)
		convey.So(desc, convey.ShouldEqual, "first\nsecond\nthird")
	})
}

func TestQuotedKeys(t *testing.T) {
	convey.Convey("quoted keys", t, func() {
		src := "\"a.b\" = 1\na.c = 2"
		root, err := ParseString(src)
		convey.So(err, convey.ShouldBeNil)

		dotted, err := root.GetInteger("a.b")
		convey.So(err, convey.ShouldBeNil)
		convey.So(dotted, convey.ShouldEqual, 1)

		a, err := root.GetTable("a")
		convey.So(err, convey.ShouldBeNil)
		c, err := a.GetInteger("c")
		convey.So(err, convey.ShouldBeNil)
		convey.So(c, convey.ShouldEqual, 2)
	})
}

func TestSpecialFloatsAndInts(t *testing.T) {
	convey.Convey("floats and ints with underscores and bases", t, func() {
		src := `
f1 = +inf
f2 = -inf
f3 = nan
i1 = 1_000
hex = 0xDEADBEEF
oct = 0o755
bin = 0b1010
`
		root, err := ParseString(src)
		convey.So(err, convey.ShouldBeNil)

		f1, err := root.GetFloat("f1")
		convey.So(err, convey.ShouldBeNil)
		convey.So(f1, convey.ShouldEqual, math.Inf(1))

		f2, err := root.GetFloat("f2")
		convey.So(err, convey.ShouldBeNil)
		convey.So(f2, convey.ShouldEqual, math.Inf(-1))

		f3, err := root.GetFloat("f3")
		convey.So(err, convey.ShouldBeNil)
		convey.So(math.IsNaN(f3), convey.ShouldBeTrue)

		i1, err := root.GetInteger("i1")
		convey.So(err, convey.ShouldBeNil)
		convey.So(i1, convey.ShouldEqual, 1000)

		hex, err := root.GetInteger("hex")
		convey.So(err, convey.ShouldBeNil)
		convey.So(hex, convey.ShouldEqual, 0xDEADBEEF)

		oct, err := root.GetInteger("oct")
		convey.So(err, convey.ShouldBeNil)
		convey.So(oct, convey.ShouldEqual, 0755)

		bin, err := root.GetInteger("bin")
		convey.So(err, convey.ShouldBeNil)
		convey.So(bin, convey.ShouldEqual, 10)
	})
}

func TestMultilineArrayAndTrailingComma(t *testing.T) {
	convey.Convey("multiline array with trailing comma", t, func() {
		src := `
ports = [
  8001,
  8002,
]
`
		root, err := ParseString(src)
		convey.So(err, convey.ShouldBeNil)
		ports, err := root.GetArray("ports")
		convey.So(err, convey.ShouldBeNil)
		convey.So(len(ports), convey.ShouldEqual, 2)
		p0, _ := ports[0].AsInteger()
		p1, _ := ports[1].AsInteger()
		convey.So(p0, convey.ShouldEqual, 8001)
		convey.So(p1, convey.ShouldEqual, 8002)
	})
}
