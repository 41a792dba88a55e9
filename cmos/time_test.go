package cmos_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/osdevkit/drivers/cmos"
)

func TestTimeCompare(t *testing.T) {
	c := qt.New(t)
	base := cmos.Time{Second: 30, Minute: 30, Hour: 12, Day: 15, Month: 6, Year: 2024, Century: 20}

	cases := []struct {
		name string
		a, b cmos.Time
		want int
	}{
		{"equal", base, base, 0},
		{"century dominates", cmos.Time{Century: 19, Year: 2999, Month: 12}, cmos.Time{Century: 20, Year: 2000, Month: 1}, -1},
		{"year", cmos.Time{Century: 20, Year: 2023, Month: 12, Day: 31}, cmos.Time{Century: 20, Year: 2024, Month: 1, Day: 1}, -1},
		{"month", cmos.Time{Year: 2024, Month: 5, Day: 31}, cmos.Time{Year: 2024, Month: 6, Day: 1}, -1},
		{"day", cmos.Time{Year: 2024, Month: 6, Day: 14, Hour: 23}, cmos.Time{Year: 2024, Month: 6, Day: 15}, -1},
		{"hour", cmos.Time{Year: 2024, Month: 6, Day: 15, Hour: 11, Minute: 59}, cmos.Time{Year: 2024, Month: 6, Day: 15, Hour: 12}, -1},
		{"minute", cmos.Time{Hour: 12, Minute: 29, Second: 59}, cmos.Time{Hour: 12, Minute: 30}, -1},
		{"second", cmos.Time{Minute: 30, Second: 29}, cmos.Time{Minute: 30, Second: 30}, -1},
	}
	for _, tc := range cases {
		c.Run(tc.name, func(c *qt.C) {
			c.Assert(tc.a.Compare(tc.b), qt.Equals, tc.want)
			c.Assert(tc.b.Compare(tc.a), qt.Equals, -tc.want)
		})
	}
}

// exactly one of a<b, a==b, a>b must hold for every pair
func TestTimeOrderingTrichotomy(t *testing.T) {
	c := qt.New(t)
	times := []cmos.Time{
		{},
		{Second: 1},
		{Minute: 1},
		{Hour: 23, Minute: 59, Second: 59},
		{Day: 1},
		{Month: 1},
		{Year: 1999, Month: 12, Day: 31},
		{Year: 2024, Month: 6, Day: 15, Hour: 12},
		{Year: 2024, Month: 6, Day: 15, Hour: 12, Second: 1},
		{Century: 20, Year: 2024},
		{Century: 21},
	}
	for _, a := range times {
		for _, b := range times {
			lt, eq, gt := a.Before(b), a.Compare(b) == 0, a.After(b)
			holds := 0
			for _, v := range []bool{lt, eq, gt} {
				if v {
					holds++
				}
			}
			c.Assert(holds, qt.Equals, 1, qt.Commentf("a=%v b=%v", a, b))
			c.Assert(eq, qt.Equals, a == b)
			c.Assert(lt, qt.Equals, b.After(a))
		}
	}
}

func TestTimeString(t *testing.T) {
	c := qt.New(t)
	tm := cmos.Time{Second: 5, Minute: 4, Hour: 15, Day: 2, Month: 1, Year: 2006}
	c.Assert(tm.String(), qt.Equals, "2006-01-02 15:04:05")
}
