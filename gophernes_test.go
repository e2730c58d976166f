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
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gophernes/test"
	"github.com/jetsetilly/gophernes/test/testrom"
)

// writes the loop ROM (INX; JMP $8000) to a temporary file
func writeROM(t *testing.T) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "loop.nes")
	err := os.WriteFile(filename, testrom.New().At(0x8000, 0xe8, 0x4c, 0x00, 0x80).Bytes(), 0o644)
	test.DemandSuccess(t, err)
	return filename
}

func TestHelp(t *testing.T) {
	var b strings.Builder
	test.ExpectEquality(t, launch([]string{"-help"}, &b), exitOK)
	test.ExpectEquality(t, strings.Contains(b.String(), "HEADLESS"), true)
}

func TestVersion(t *testing.T) {
	var b strings.Builder
	test.ExpectEquality(t, launch([]string{"version"}, &b), exitOK)
	test.ExpectEquality(t, strings.HasPrefix(b.String(), "GopherNES "), true)
}

func TestParseError(t *testing.T) {
	var b strings.Builder
	test.ExpectEquality(t, launch([]string{"-nosuchflag"}, &b), exitParse)
	test.ExpectEquality(t, strings.HasPrefix(b.String(), "* error: "), true)
}

func TestInfo(t *testing.T) {
	rom := writeROM(t)

	var b strings.Builder
	test.ExpectEquality(t, launch([]string{"info", rom}, &b), exitOK)
	test.ExpectEquality(t, strings.Contains(b.String(), "loop\n"), true)
	test.ExpectEquality(t, strings.Contains(b.String(), "mapper 0"), true)
	test.ExpectEquality(t, strings.Contains(b.String(), "sha1: "), true)

	// cartridges in an archive are listed
	archive := filepath.Join(t.TempDir(), "roms.zip")
	f, err := os.Create(archive)
	test.DemandSuccess(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("loop.nes")
	test.DemandSuccess(t, err)
	_, err = w.Write([]byte{0, 1, 2, 3})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, zw.Close())
	test.DemandSuccess(t, f.Close())

	b.Reset()
	test.ExpectEquality(t, launch([]string{"info", archive}, &b), exitOK)
	test.ExpectEquality(t, b.String(), "loop.nes (4 bytes)\n")

	b.Reset()
	test.ExpectEquality(t, launch([]string{"info"}, &b), exitError)
	test.ExpectEquality(t, strings.Contains(b.String(), "cartridge required"), true)
}

func TestRegress(t *testing.T) {
	rom := writeROM(t)

	dir := t.TempDir()
	t.Chdir(dir)
	test.DemandSuccess(t, os.Mkdir(".gophernes", 0o755))

	var b strings.Builder
	test.ExpectEquality(t, launch([]string{"regress", "list"}, &b), exitError)

	b.Reset()
	test.ExpectEquality(t, launch([]string{"regress", "add", "-frames", "2", "-notes", "smoke", rom}, &b), exitOK)
	test.ExpectEquality(t, strings.Contains(b.String(), "added: 000 [NTSC] loop frames=2 [smoke]\n"), true)

	_, err := os.Stat(filepath.Join(".gophernes", "regressionDB"))
	test.ExpectSuccess(t, err == nil)

	b.Reset()
	test.ExpectEquality(t, launch([]string{"regress", "list"}, &b), exitOK)
	test.ExpectEquality(t, b.String(), "000 [NTSC] loop frames=2 [smoke]\nTotal: 1\n")

	// run is the default sub-mode
	b.Reset()
	test.ExpectEquality(t, launch([]string{"regress"}, &b), exitOK)
	test.ExpectEquality(t, strings.HasSuffix(b.String(), "regression tests: 1 succeed, 0 fail\n"), true)

	b.Reset()
	test.ExpectEquality(t, launch([]string{"regress", "add", "-frames", "0", rom}, &b), exitError)

	b.Reset()
	test.ExpectEquality(t, launch([]string{"regress", "delete"}, &b), exitError)
	test.ExpectEquality(t, strings.Contains(b.String(), "database key required"), true)
}

func TestHeadless(t *testing.T) {
	rom := writeROM(t)
	shot := filepath.Join(t.TempDir(), "shot.png")

	var a strings.Builder
	test.ExpectEquality(t, launch([]string{"headless", "-frames", "2", "-screenshot", shot, rom}, &a), exitOK)
	test.ExpectEquality(t, strings.Contains(a.String(), "frames: 2\n"), true)
	test.ExpectEquality(t, strings.Contains(a.String(), "video: "), true)
	test.ExpectEquality(t, strings.Contains(a.String(), "audio: "), true)

	_, err := os.Stat(shot)
	test.ExpectSuccess(t, err)

	// the emulation is deterministic
	var b strings.Builder
	test.ExpectEquality(t, launch([]string{"headless", "-frames", "2", rom}, &b), exitOK)
	test.ExpectEquality(t, b.String(), a.String())

	// a different ratio changes the relationship between cycles and dots
	var c strings.Builder
	test.ExpectEquality(t, launch([]string{"headless", "-frames", "2", "-ratio", "4/1", rom}, &c), exitOK)
	test.ExpectInequality(t, c.String(), a.String())

	c.Reset()
	test.ExpectEquality(t, launch([]string{"headless", "-ratio", "1/2", rom}, &c), exitError)
}

func TestHeadlessBadSpec(t *testing.T) {
	rom := writeROM(t)

	var b strings.Builder
	test.ExpectEquality(t, launch([]string{"headless", "-spec", "SECAM", rom}, &b), exitError)
	test.ExpectEquality(t, strings.Contains(b.String(), "unsupported specification"), true)
}

func TestScript(t *testing.T) {
	rom := writeROM(t)
	lua := filepath.Join(t.TempDir(), "test.lua")
	// the first step completes the reset sequence
	err := os.WriteFile(lua, []byte("nes.step(4)\nprint(nes.reg(\"X\"))\n"), 0o644)
	test.DemandSuccess(t, err)

	var b strings.Builder
	test.ExpectEquality(t, launch([]string{"script", lua, rom}, &b), exitOK)
	test.ExpectEquality(t, b.String(), "2\n")
}
