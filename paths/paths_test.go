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

package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/mdoutput/paths"
	"github.com/jetsetilly/mdoutput/test"
)

func TestPaths(t *testing.T) {
	// paths are relative to the current directory for non-release builds so
	// move to a temporary directory for the duration of the test
	t.Chdir(t.TempDir())

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".mdoutput", "foo", "bar", "baz"))

	// the directory has been created but not the file
	_, err = os.Stat(filepath.Dir(pth))
	test.ExpectSuccess(t, err)
	_, err = os.Stat(pth)
	test.ExpectFailure(t, err)

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".mdoutput", "baz"))

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".mdoutput")
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("screenshot", "")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "screenshot_"))
	test.ExpectEquality(t, len(fn), len("screenshot_YYYYMMDD_HHMMSS"))

	fn = paths.UniqueFilename("screenshot", " raw ")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "screenshot_raw_"))
}
