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

// Package paths contains functions to prepare paths to mdoutput resources,
// such as the preferences file and screenshots.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory. For example, the
// following will return the path to the preferences file.
//
//	pth, err := paths.ResourcePath("", "preferences")
//
// For builds with the "release" build tag, the path returned by
// ResourcePath() is rooted in the user's configuration directory. On modern
// Linux systems the full path would be something like:
//
//	/home/user/.config/mdoutput/
//
// For non-"release" builds, the path is rooted in the current working
// directory:
//
//	.mdoutput
//
// In both cases the directories leading to the resource are created as
// required. The resource file itself is never touched.
package paths
