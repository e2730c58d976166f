// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"github.com/jetsetilly/gophernes/archivefs"
	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/debugger"
	"github.com/jetsetilly/gophernes/debugger/govern"
	"github.com/jetsetilly/gophernes/debugger/terminal"
	"github.com/jetsetilly/gophernes/debugger/terminal/colorterm"
	"github.com/jetsetilly/gophernes/debugger/terminal/plainterm"
	"github.com/jetsetilly/gophernes/digest"
	"github.com/jetsetilly/gophernes/gui/sdlplay"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/hardware/clocks"
	"github.com/jetsetilly/gophernes/hardware/cpu"
	"github.com/jetsetilly/gophernes/hardware/input"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/modalflag"
	"github.com/jetsetilly/gophernes/paths"
	"github.com/jetsetilly/gophernes/performance"
	"github.com/jetsetilly/gophernes/prefs"
	"github.com/jetsetilly/gophernes/regression"
	"github.com/jetsetilly/gophernes/screenshot"
	"github.com/jetsetilly/gophernes/scripting"
	"github.com/jetsetilly/gophernes/statsview"
	"github.com/jetsetilly/gophernes/version"
)

const defaultInitScript = "debuggerInit"

// exit values
const (
	exitOK    = 0
	exitParse = 10
	exitError = 20
)

// SDL requires that window events are handled by the main thread
func init() {
	runtime.LockOSThread()
}

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the arguments and runs the selected mode. Returns the exit
// value for the program.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "DEBUG", "SCRIPT", "HEADLESS", "PERFORMANCE", "REGRESS", "INFO", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParse
	}

	var mode govern.Mode

	switch md.Mode() {
	case "RUN":
		mode = govern.ModePlay
		err = play(md, output)
	case "DEBUG":
		mode = govern.ModeDebugger
		err = debug(md, output)
	case "SCRIPT":
		mode = govern.ModeScript
		err = script(md, output)
	case "HEADLESS":
		mode = govern.ModeHeadless
		err = headless(md, output)
	case "PERFORMANCE":
		mode = govern.ModePerformance
		err = perform(md, output)
	case "REGRESS":
		mode = govern.ModeRegress
		err = regress(md, output, os.Stdin)
	case "INFO":
		mode = govern.ModeInfo
		err = info(md, output)
	case "VERSION":
		fmt.Fprintln(output, version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %v\n", mode, err)
		return exitError
	}

	return exitOK
}

// ratioFlag implements the flag.Value interface for clocks.Ratio
type ratioFlag struct {
	ratio clocks.Ratio
}

func (r *ratioFlag) String() string {
	if r.ratio == (clocks.Ratio{}) {
		return "SPEC"
	}
	return r.ratio.String()
}

func (r *ratioFlag) Set(s string) error {
	if strings.ToUpper(s) == "SPEC" {
		r.ratio = clocks.Ratio{}
		return nil
	}
	var err error
	r.ratio, err = clocks.ParseRatio(s)
	return err
}

// flags common to every mode that creates an NES
type nesFlags struct {
	mapping   *string
	spec      *string
	ratio     *ratioFlag
	random    *bool
	seed      *int64
	warmup    *bool
	nmos      *bool
	log       *bool
	statsview *bool
}

func addNESFlags(md *modalflag.Modes) nesFlags {
	f := nesFlags{
		mapping: md.AddString("mapping", "AUTO", "force use of cartridge mapping"),
		spec:    md.AddString("spec", "NTSC", "television specification: NTSC, PAL, DENDY"),
		ratio:   &ratioFlag{},
		random:  md.AddBool("random", false, "randomise hardware state on power on"),
		seed:    md.AddInt64("seed", 0, "seed for the randomised hardware state. zero uses the current time"),
		warmup:  md.AddBool("warmup", false, "ignore PPU register writes until the end of the first vblank"),
		nmos:    md.AddBool("nmos", false, "emulate the NMOS 6502 rather than the 2A03"),
		log:     md.AddBool("log", false, "echo log to output"),
	}
	md.AddVar(f.ratio, "ratio", "ratio of PPU dots to CPU cycles as dots/cycles. SPEC uses the ratio of the specification")
	if statsview.Available() {
		f.statsview = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.DefaultAddress))
	}
	return f
}

// the single cartridge argument of the current mode
func cartridgeArg(md *modalflag.Modes) (string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return "", fmt.Errorf("cartridge required for %s mode", md)
	case 1:
		return md.GetArg(0), nil
	}
	return "", fmt.Errorf("too many arguments for %s mode", md)
}

// create the NES using the flags and attach the named cartridge
func (f nesFlags) create(filename string, output io.Writer) (*hardware.NES, error) {
	if *f.log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	if f.statsview != nil && *f.statsview {
		statsview.Launch(output, statsview.DefaultAddress)
	}

	opts := hardware.NewOptions()
	opts.Spec = strings.ToUpper(*f.spec)
	opts.Ratio = f.ratio.ratio
	opts.RandomState = *f.random
	opts.Seed = *f.seed
	if opts.RandomState && opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	opts.PPUWarmUp = *f.warmup
	if *f.nmos {
		opts.Variant = cpu.NMOS
	}

	cart := cartridge.NewCartridge()
	err := cart.Attach(cartridgeloader.NewLoader(filename, *f.mapping))
	if err != nil {
		return nil, err
	}

	return hardware.NewNES(cart, opts)
}

func play(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	f := addNESFlags(md)
	scale := md.AddInt("scale", 3, "window scaling")
	shots := md.AddString("screenshots", "", "directory to save screenshots to")
	record := md.AddString("record", "", "record joypad input to the named file")
	playback := md.AddString("playback", "", "play joypad input from the named file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cart, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	nes, err := f.create(cart, output)
	if err != nil {
		return err
	}

	end, err := attachInput(nes, *record, *playback)
	if err != nil {
		return err
	}

	scr, err := sdlplay.NewSdlPlay(nes, *scale)
	if err != nil {
		return err
	}
	defer scr.Destroy()

	if *shots != "" {
		scr.SetScreenshotDir(*shots)
	}

	err = scr.Run()
	if err != nil {
		return err
	}

	return end()
}

// attach recording and playback of joypad input. the returned function
// should be called when the emulation has finished
func attachInput(nes *hardware.NES, record string, playback string) (func() error, error) {
	if record != "" && playback != "" {
		return nil, fmt.Errorf("cannot record and playback at the same time")
	}

	if playback != "" {
		f, err := os.Open(playback)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		rec, err := input.ReadRecording(f)
		if err != nil {
			return nil, err
		}
		if err := nes.Input.AttachPlayback(rec); err != nil {
			return nil, err
		}
	}

	if record != "" {
		rec := &input.Recording{}
		if err := nes.Input.AttachRecorder(rec); err != nil {
			return nil, err
		}
		return func() error {
			f, err := os.Create(record)
			if err != nil {
				return err
			}
			if err := rec.Write(f); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		}, nil
	}

	return func() error { return nil }, nil
}

func debug(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	f := addNESFlags(md)
	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	prefsOverride := md.AddString("prefs", "", "preferences that take priority over the preferences file (key::value; key::value)")
	initScript := md.AddString("initscript", "", fmt.Sprintf("script to run on debugger start (default %s if it exists)", paths.ResourcePath(defaultInitScript)))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cart, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	nes, err := f.create(cart, output)
	if err != nil {
		return err
	}

	var term terminal.Terminal
	switch strings.ToUpper(*termType) {
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	case "PLAIN":
		term = plainterm.NewPlainTerminal(nil, nil)
	default:
		return fmt.Errorf("unknown terminal: %s", *termType)
	}

	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				fmt.Fprintf(output, "* unused preferences: %s\n", unused)
			}
		}()
	}

	dbg, err := debugger.NewDebugger(nes, term)
	if err != nil {
		return err
	}

	if *initScript == "" {
		*initScript, _ = paths.ResourceExists(defaultInitScript)
	}

	return dbg.Start(*initScript)
}

func script(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	f := addNESFlags(md)
	md.AdditionalHelp("the first argument is the lua script and the second argument is the cartridge")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 2 {
		return fmt.Errorf("lua script and cartridge required for %s mode", md)
	}

	nes, err := f.create(md.GetArg(1), output)
	if err != nil {
		return err
	}

	scr := scripting.NewScript(nes, output)
	defer scr.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return scr.RunFile(ctx, md.GetArg(0))
}

func headless(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	f := addNESFlags(md)
	frames := md.AddInt("frames", 60, "number of frames to run for")
	shot := md.AddString("screenshot", "", "save the final frame to the named PNG file")
	scale := md.AddInt("scale", 1, "screenshot scaling")
	playback := md.AddString("playback", "", "play joypad input from the named file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *frames < 0 {
		return fmt.Errorf("invalid number of frames: %d", *frames)
	}

	cart, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	nes, err := f.create(cart, output)
	if err != nil {
		return err
	}

	if _, err := attachInput(nes, "", *playback); err != nil {
		return err
	}

	vid := digest.NewVideo()
	nes.PPU.AddFrameTrigger(vid)
	aud := digest.NewAudio()
	nes.Mem.AttachAudio(aud)

	err = nes.RunForFrameCount(*frames, nil)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "frames: %d\n", nes.PPU.FrameNum)
	fmt.Fprintf(output, "%s\n", nes.Clock)
	fmt.Fprintf(output, "video: %s\n", vid.Hash())
	fmt.Fprintf(output, "audio: %s\n", aud.Hash())

	if *shot != "" {
		return screenshot.Save(*shot, nes.PPU.LastFrame(), nes.Spec, *scale)
	}

	return nil
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	f := addNESFlags(md)
	duration := md.AddString("duration", "5s", "run performance check for specified duration")
	profile := md.AddString("profile", "NONE", "create profile reports: CPU, MEM, TRACE, ALL (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	dur, err := time.ParseDuration(*duration)
	if err != nil {
		return err
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	cart, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	nes, err := f.create(cart, output)
	if err != nil {
		return err
	}

	return performance.Check(output, nes, prf, dur)
}

const regressionDB = "regressionDB"

func regress(md *modalflag.Modes, output io.Writer, confirmation io.Reader) error {
	md.NewMode()
	md.AddSubModes("RUN", "LIST", "ADD", "DELETE")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	dbPath := paths.ResourcePath(regressionDB)

	switch md.Mode() {
	case "RUN":
		md.NewMode()
		verbose := md.AddBool("verbose", false, "output more detail about failures")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		res, err := regression.RegressRun(output, *verbose, md.RemainingArgs(), dbPath)
		if err != nil {
			return err
		}
		if res.Fail > 0 || res.Error > 0 {
			return fmt.Errorf("%d regression tests did not succeed", res.Fail+res.Error)
		}

	case "LIST":
		md.NewMode()

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		return regression.RegressList(output, dbPath)

	case "ADD":
		md.NewMode()
		spec := md.AddString("spec", "NTSC", "television specification: NTSC, PAL, DENDY")
		frames := md.AddInt("frames", 10, "number of frames to run")
		playback := md.AddString("playback", "", "play joypad input from the named file")
		notes := md.AddString("notes", "", "additional annotation for the entry")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		if *frames <= 0 {
			return fmt.Errorf("invalid number of frames: %d", *frames)
		}

		cart, err := cartridgeArg(md)
		if err != nil {
			return err
		}

		reg := regression.NewDigestRegression(cartridgeloader.NewLoader(cart, "AUTO"), *spec, *frames)
		reg.Playback = *playback
		reg.Notes = *notes

		return regression.RegressAdd(output, reg, dbPath)

	case "DELETE":
		md.NewMode()

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return fmt.Errorf("database key required for %s mode", md)
		case 1:
			return regression.RegressDelete(output, confirmation, md.GetArg(0), dbPath)
		}
		return fmt.Errorf("only one entry can be deleted at a time")
	}

	return nil
}

func info(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	if archivefs.IsArchive(filename) {
		nodes, err := archivefs.List(filename, cartridgeloader.FileExtensions[:]...)
		if err != nil {
			return err
		}
		for _, n := range nodes {
			if !n.IsDir {
				fmt.Fprintf(output, "%s (%d bytes)\n", n, n.Size)
			}
		}
		return nil
	}

	cartload := cartridgeloader.NewLoader(filename, "AUTO")
	if err := cartload.Load(); err != nil {
		return err
	}

	img, err := cartridge.DecodeINES(cartload.Data)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%s\n", cartload.ShortName())
	fmt.Fprintf(output, "%s\n", img.Header)
	fmt.Fprintf(output, "sha1: %s\n", cartload.Hash)

	return nil
}
