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

package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"text/tabwriter"

	"github.com/jetsetilly/mdoutput/filters"
	"github.com/jetsetilly/mdoutput/logger"
	"github.com/jetsetilly/mdoutput/modalflag"
	"github.com/jetsetilly/mdoutput/performance"
	"github.com/jetsetilly/mdoutput/prefs"
	"github.com/jetsetilly/mdoutput/screenshot"
	"github.com/jetsetilly/mdoutput/statsview"
	"github.com/jetsetilly/mdoutput/version"
)

// SDL and ebiten both require that window handling occurs on the main thread.
// the presentation loop is run from main() so the main goroutine must stay on
// the main thread
func init() {
	runtime.LockOSThread()
}

// #mainthread
func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubMode("RUN", "run the test card through the presentation layer")
	md.AddSubMode("PREFS", "show or reset the saved preferences")
	md.AddSubMode("FILTERS", "list the available video filters")
	md.AddSubMode("PERFORMANCE", "measure the frame rate of the presentation loop")
	md.AddSubMode("VERSION", "print version information")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "PREFS":
		err = showPrefs(md)

	case "FILTERS":
		err = listFilters(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// flags common to the RUN and PERFORMANCE modes
type sessionFlags struct {
	display      *string
	pal          *bool
	hz           *int
	filters      *string
	scratchLimit *int
	source       *string
	prefs        *string
	log          *bool
}

func addSessionFlags(md *modalflag.Modes, defaultDisplay string) sessionFlags {
	return sessionFlags{
		display:      md.AddChoice("display", defaultDisplay, displayBackends, "display backend"),
		pal:          md.AddBool("pal", false, "start in PAL mode"),
		hz:           md.AddInt("hz", 0, "frame rate. zero means the rate of the region"),
		filters:      md.AddString("filters", "", "comma separated list of filters. overrides the display.filters preference"),
		scratchLimit: md.AddInt("scratchlimit", 0, "maximum number of scratch buffers available to the filters. zero means no limit"),
		source:       md.AddString("source", "", "play a WAV, MP3 or Ogg file instead of the test tone"),
		prefs:        md.AddString("prefs", "", "preferences to override. key::value pairs separated by semicolons"),
		log:          md.AddBool("log", false, "echo debugging log to stdout"),
	}
}

// apply flags that must take effect before the session is created
func (f sessionFlags) apply() {
	if *f.log {
		logger.SetEcho(logger.EchoWriter(os.Stdout), false)
	} else {
		logger.SetEcho(nil, false)
	}

	if *f.prefs != "" {
		prefs.PushCommandLineStack(*f.prefs)
	}
}

func (f sessionFlags) options() options {
	return options{
		display:      *f.display,
		pal:          *f.pal,
		hz:           *f.hz,
		filters:      *f.filters,
		scratchLimit: *f.scratchLimit,
		source:       *f.source,
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	flgs := addSessionFlags(md, displaySDL)
	wav := md.AddString("wav", "", "record audio to wav file")
	frames := md.AddInt("frames", 0, "number of frames to run for. zero means run until quit")
	fpsCap := md.AddBool("fpscap", true, "cap frame rate to the video mode")
	shotFormat := md.AddChoice("screenshot", "png", screenshotFormats(), "format of screenshots")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsAvailable()))
	diagnostics := md.AddBool("diagnostics", false, "print diagnostics on exit")
	dig := md.AddBool("digest", false, "print digest of video and audio output on exit")
	save := md.AddBool("save", false, "save preferences on exit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	flgs.apply()

	if *stats {
		stop := statsview.Launch(os.Stdout)
		defer stop()
	}

	opts := flgs.options()
	opts.wav = *wav
	opts.digest = *dig

	ses, err := newSession(opts)
	if err != nil {
		return err
	}
	defer ses.destroy()

	ses.pm.SetUncapped(!*fpsCap)
	ses.pm.ScreenshotFormat, err = screenshot.ParseFormat(*shotFormat)
	if err != nil {
		return err
	}

	err = ses.run(*frames)
	if err != nil {
		return err
	}

	if *diagnostics {
		fmt.Print(ses.pm.Diagnostics())
	}

	if *dig {
		fmt.Printf("video: %s (%d frames)\n", ses.videoDigest.Hash(), ses.videoDigest.Frames())
		fmt.Printf("audio: %s\n", ses.audioDigest.Hash())
	}

	if *save {
		return ses.save()
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	flgs := addSessionFlags(md, displayHeadless)
	duration := md.AddString("duration", "5s", "run duration (with an additional 2s lead time)")
	profile := md.AddString("profile", "none", "create profiling data: cpu, mem, trace, all, none")
	uncapped := md.AddBool("uncapped", true, "run without the frame limiter")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	flgs.apply()

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	ses, err := newSession(flgs.options())
	if err != nil {
		return err
	}
	defer ses.destroy()

	ses.pm.SetUncapped(*uncapped)

	return performance.Check(os.Stdout, prf, ses.pm, *duration)
}

func showPrefs(md *modalflag.Modes) error {
	md.NewMode()

	defaults := md.AddBool("defaults", false, "revert preferences to default values and save")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	dprefs, sprefs, err := loadPreferences()
	if err != nil {
		return err
	}

	if *defaults {
		dprefs.SetDefaults()
		sprefs.SetDefaults()
		if err := dprefs.Save(); err != nil {
			return err
		}
		if err := sprefs.Save(); err != nil {
			return err
		}
	}

	fmt.Print(dprefs)
	fmt.Print(sprefs)

	return nil
}

func listFilters(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "name\tkind\tsafe\tresize")
	for _, f := range filters.Available {
		fmt.Fprintf(w, "%s\t%s\t%v\t%v\n", f.Name, f.Kind, f.Safe, f.Resize)
	}

	return w.Flush()
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Println(version.ApplicationName, v)
	if *revision {
		fmt.Println(r)
	}

	return nil
}

func screenshotFormats() []string {
	s := make([]string, len(screenshot.Formats))
	for i, f := range screenshot.Formats {
		s[i] = strings.TrimPrefix(string(f), ".")
	}
	return s
}

func statsAvailable() string {
	if statsview.Available() {
		return "available"
	}
	return "not available in this build"
}
