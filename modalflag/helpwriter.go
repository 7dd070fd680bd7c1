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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter collects the output of the flag package so that it can be
// amended with the list of modes.
type helpWriter struct {
	strings.Builder
}

func (hw *helpWriter) help(output io.Writer, banner string, subModes []subMode) {
	s := hw.String()

	if s == "Usage:\n" && len(subModes) == 0 {
		if banner != "" {
			fmt.Fprintf(output, "No help available for %s\n", banner)
		} else {
			fmt.Fprintln(output, "No help available")
		}
		return
	}

	usage, flags, _ := strings.Cut(s, "\n")
	if banner != "" {
		fmt.Fprintf(output, "%s for %s mode:\n", strings.TrimSuffix(usage, ":"), banner)
	} else {
		fmt.Fprintln(output, usage)
	}
	io.WriteString(output, flags)

	if len(subModes) == 0 {
		return
	}

	if flags != "" {
		io.WriteString(output, "\n")
	}
	io.WriteString(output, "  modes:\n")

	var width int
	for _, m := range subModes {
		width = max(width, len(m.name))
	}

	for i, m := range subModes {
		summary := m.summary
		if i == 0 {
			summary = strings.TrimSpace(summary + " (default)")
		}
		line := fmt.Sprintf("    %-*s  %s", width, m.name, summary)
		fmt.Fprintln(output, strings.TrimRight(line, " "))
	}
}
