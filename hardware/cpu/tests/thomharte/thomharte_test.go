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

package thomharte

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gophernes/hardware/cpu"
	"github.com/jetsetilly/gophernes/hardware/cpu/registers"
	"github.com/jetsetilly/gophernes/test"
)

type memEvent string

const (
	read  = memEvent("read")
	write = memEvent("write")
)

type testMem struct {
	internal   []uint8
	addressBus uint16
	dataBus    uint8
	lastEvent  memEvent
}

func newTestMem() *testMem {
	return &testMem{
		// the CPU has a 16bit address bus so the maximum amount of memory is 64k
		internal: make([]uint8, 0x10000),
	}
}

func (mem *testMem) Read(address uint16) uint8 {
	mem.addressBus = address
	mem.dataBus = mem.internal[address]
	mem.lastEvent = read
	return mem.dataBus
}

func (mem *testMem) Write(address uint16, data uint8) {
	mem.addressBus = address
	mem.dataBus = data
	mem.internal[address] = data
	mem.lastEvent = write
}

type RAMEntry struct {
	Address uint16
	Value   uint8
}

func (r *RAMEntry) UnmarshalJSON(data []byte) error {
	var raw [2]uint64
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}
	r.Address = uint16(raw[0])
	r.Value = uint8(raw[1])
	return nil
}

type BusCycle struct {
	Address uint16
	Data    uint8
	Event   memEvent
}

func (b *BusCycle) UnmarshalJSON(data []byte) error {
	var raw [3]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	addr, _ := raw[0].(float64)
	dat, _ := raw[1].(float64)
	ev, _ := raw[2].(string)

	b.Address = uint16(addr)
	b.Data = uint8(dat)
	b.Event = memEvent(ev)

	switch b.Event {
	case read, write:
	default:
		return fmt.Errorf("unexpected memory event: %q", b.Event)
	}

	return nil
}

type State struct {
	PC  uint64     `json:"pc"`
	S   uint64     `json:"s"`
	A   uint64     `json:"a"`
	X   uint64     `json:"x"`
	Y   uint64     `json:"y"`
	P   uint64     `json:"p"`
	RAM []RAMEntry `json:"ram"`
}

type Tests struct {
	Name    string     `json:"name"`
	Initial State      `json:"initial"`
	Final   State      `json:"final"`
	Cycles  []BusCycle `json:"cycles"`
}

func (d *Tests) UnmarshalJSON(data []byte) error {
	// alias type to avoid recursion
	type norecurse Tests

	var tmp norecurse
	if err := json.Unmarshal(data, &tmp); err != nil {
		return fmt.Errorf("error unmarshalling test %q: %w", tmp.Name, err)
	}
	*d = Tests(tmp)
	return nil
}

// opcodes that are not tested. the KIL opcodes halt the CPU and ARR is
// implemented without the decimal mode variation
var skip = map[string]bool{
	"02": true, "12": true, "22": true, "32": true,
	"42": true, "52": true, "62": true, "72": true,
	"92": true, "b2": true, "d2": true, "f2": true,
	"6b": true,
}

func TestThomHarte(t *testing.T) {
	runDirectory(t, filepath.Join("6502", "v1"), cpu.NMOS)
}

func TestThomHarteNES(t *testing.T) {
	runDirectory(t, filepath.Join("nes6502", "v1"), cpu.RP2A03)
}

func runDirectory(t *testing.T, testsPath string, variant cpu.Variant) {
	d, err := os.ReadDir(testsPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			t.Skipf("no tests in %s", testsPath)
		}
		t.Fatal(err)
	}

	for _, e := range d {
		if !e.Type().IsRegular() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		if skip[strings.ToLower(strings.TrimSuffix(e.Name(), ".json"))] {
			continue
		}
		testThomHarte(t, filepath.Join(testsPath, e.Name()), variant)
	}
}

func testThomHarte(t *testing.T, testFile string, variant cpu.Variant) {
	t.Logf("testing %s", testFile)

	f, err := os.Open(testFile)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var tests []Tests
	if err := json.NewDecoder(f).Decode(&tests); err != nil {
		t.Fatalf("%s: %v", testFile, err)
	}

	mem := newTestMem()
	mc := cpu.NewCPU(nil, mem, nil)
	mc.Variant = variant
	mc.PowerOn()
	test.DemandSuccess(t, mc.ExecuteInstruction(nil))

	for i, s := range tests {
		mc.PC.Load(uint16(s.Initial.PC))
		mc.A.Load(uint8(s.Initial.A))
		mc.X.Load(uint8(s.Initial.X))
		mc.Y.Load(uint8(s.Initial.Y))
		mc.SP.Load(uint8(s.Initial.S))
		mc.Status.Load(uint8(s.Initial.P))
		for _, r := range s.Initial.RAM {
			mem.internal[r.Address] = r.Value
		}

		hook := func() error {
			cycle := mc.LastResult.Cycles - 1
			if cycle >= len(s.Cycles) {
				t.Fatalf("%s: too many cycles on line %d", testFile, i)
			}

			var fail bool

			fail = !test.ExpectEquality(t, mem.addressBus, s.Cycles[cycle].Address, testFile, i, "address bus") || fail
			fail = !test.ExpectEquality(t, mem.dataBus, s.Cycles[cycle].Data, testFile, i, "data bus") || fail
			fail = !test.ExpectEquality(t, mem.lastEvent, s.Cycles[cycle].Event, testFile, i, "memory event") || fail

			if fail {
				t.Logf("last instruction: %s", mc.LastResult.Defn.String())
				t.Fatalf("%s: failed on line %d, cycle %d", testFile, i, cycle)
			}

			return nil
		}

		err := mc.ExecuteInstruction(hook)
		if err != nil {
			t.Fatal(err)
		}

		var fail bool

		const mask = ^uint8(registers.FlagBreak)

		fail = !test.ExpectEquality(t, mc.LastResult.Cycles, len(s.Cycles), testFile, i, "cycles") || fail
		fail = !test.ExpectEquality(t, mc.PC.Address(), uint16(s.Final.PC), testFile, i, "PC") || fail
		fail = !test.ExpectEquality(t, mc.A.Value(), uint8(s.Final.A), testFile, i, "A") || fail
		fail = !test.ExpectEquality(t, mc.X.Value(), uint8(s.Final.X), testFile, i, "X") || fail
		fail = !test.ExpectEquality(t, mc.Y.Value(), uint8(s.Final.Y), testFile, i, "Y") || fail
		fail = !test.ExpectEquality(t, mc.SP.Value(), uint8(s.Final.S), testFile, i, "SP") || fail
		fail = !test.ExpectEquality(t, mc.Status.Value()&mask, uint8(s.Final.P)&mask, testFile, i, "Status") || fail
		for _, r := range s.Final.RAM {
			fail = !test.ExpectEquality(t, mem.internal[r.Address], r.Value, testFile, i, fmt.Sprintf("RAM %04x", r.Address)) || fail
		}

		if fail {
			t.Logf("last instruction: %s", mc.LastResult.Defn.String())
			t.Fatalf("%s: failed on line %d", testFile, i)
		}
	}
}
