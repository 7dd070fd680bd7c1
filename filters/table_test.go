// This file is part of mdoutput.
//
// mdoutput is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mdoutput is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mdoutput.  If not, see <https://www.gnu.org/licenses/>.

package filters_test

import (
	"testing"

	"github.com/jetsetilly/mdoutput/curated"
	"github.com/jetsetilly/mdoutput/filters"
	"github.com/jetsetilly/mdoutput/test"
)

func TestFind(t *testing.T) {
	test.ExpectEquality(t, filters.Find("scale"), filters.Scale)
	test.ExpectEquality(t, filters.Find("STRETCH"), filters.Stretch)
	test.ExpectEquality(t, filters.Find(" Off "), filters.Off)
	test.ExpectEquality(t, filters.Find("hqx"), (*filters.Filter)(nil))

	// the off filter is the only safe filter
	for _, f := range filters.Available {
		test.ExpectEquality(t, f.Safe, f == filters.Off)
		test.ExpectEquality(t, f.Resize, f != filters.Off)
		test.ExpectEquality(t, f.Kind.String(), f.Name)
	}
}

func TestParseList(t *testing.T) {
	l, err := filters.ParseList("stretch, off,scale")
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(l), 3)
	test.ExpectEquality(t, l[0], filters.Stretch)
	test.ExpectEquality(t, l[1], filters.Off)
	test.ExpectEquality(t, l[2], filters.Scale)

	l, err = filters.ParseList("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(l), 0)

	_, err = filters.ParseList("scale,hqx")
	test.ExpectSuccess(t, curated.Is(err, filters.UnknownFilter))
	test.ExpectEquality(t, err.Error(), "filters: unknown filter: hqx")
}
