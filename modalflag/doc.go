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

// Package modalflag is a wrapper for the flag package in the Go standard
// library.  It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At it's simplest it can be used as a replacement for the flag package, with
// some differences. Whereas, with flag.FlagSet you call Parse() with the array of
// strings as the only argument, with modalflag you first NewArgs() with the
// array of arguments and then Parse() with no arguments. For example (note
// that no error handling of the Parse() function is shown here):
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// Non-flag arguments can be retrieved with the RemainingArgs() or GetArg()
// function once the arguments have been parsed.
//
// Adding flags is similar to the flag package. Adding a boolean flag:
//
//	pal := md.AddBool("pal", false, "start in PAL mode")
//
// A string flag that must be one of a fixed set of values can be added with
// AddChoice(). The value is checked during Parse():
//
//	display := md.AddChoice("display", "sdl", []string{"sdl", "ebiten", "headless"}, "display backend")
//
// The most important difference between the standard flag package and the
// modalflag package is the ability of the latter to handle "modes". In this
// context, a mode is a special command line argument that when specified, puts
// the program into a different mode of operation, each with its own set of
// flags. Sub-modes are added with the AddSubMode() function, with a summary
// that is shown in the help message:
//
//	md.AddSubMode("run", "run the test card through the presentation layer")
//	md.AddSubMode("filters", "list the available video filters")
//
// The first sub-mode added is the default. All sub-mode comparisons are case
// insensitive. AddSubModes() adds several sub-modes without a summary.
//
// Subsequent calls to Parse() will then process flags in the normal way but
// unlike the regular flag.Parse() function will check to see if the first
// argument after the flags is one of these modes. If it is, then the
// RemainingArgs() function will return all the arguments after the flags AND
// the mode selector.
//
// The selected mode is returned by Mode(). Before parsing the flags for the
// selected mode, NewMode() should be called:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		pal := md.AddBool("pal", false, "start in PAL mode")
//		md.Parse()
//		...
//	}
//
// The Path() function returns the list of modes encountered, separated by a
// slash. It is used in the banner of help messages.
package modalflag
