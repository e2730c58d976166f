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

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Value represents the actual Go preference value.
type Value any

// types supported by the prefs system must implement the pref interface
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	value    atomic.Bool
	def      bool
	hookPre  func(value Value) error
	hookPost func(value Value) error
}

// NewBool returns a Bool with the default value.
func NewBool(def bool) *Bool {
	p := &Bool{def: def}
	p.value.Store(def)
	return p
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.value.Load())
}

// Set new value to Bool type. New value must be of type bool or string. A
// string value of anything other than "true" (case insensitive) will set the
// value to false.
func (p *Bool) Set(v Value) error {
	var nv bool
	switch v := v.(type) {
	case bool:
		nv = v
	case string:
		nv = strings.ToLower(strings.TrimSpace(v)) == "true"
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Bool", v)
	}
	return set(nv, p.hookPre, p.hookPost, func() { p.value.Store(nv) })
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	return p.value.Load()
}

// Reset sets the value to the default.
func (p *Bool) Reset() error {
	return p.Set(p.def)
}

// SetHookPre sets the function called before the value is updated. The value
// is not changed if the function returns an error.
func (p *Bool) SetHookPre(f func(value Value) error) {
	p.hookPre = f
}

// SetHookPost sets the function called after the value is updated.
func (p *Bool) SetHookPost(f func(value Value) error) {
	p.hookPost = f
}

// Int implements an integer type in the prefs system.
type Int struct {
	value    atomic.Int64
	def      int
	hookPre  func(value Value) error
	hookPost func(value Value) error
}

// NewInt returns an Int with the default value.
func NewInt(def int) *Int {
	p := &Int{def: def}
	p.value.Store(int64(def))
	return p
}

func (p *Int) String() string {
	return strconv.FormatInt(p.value.Load(), 10)
}

// Set new value to Int type. New value can be an int or a string that can be
// converted to an int.
func (p *Int) Set(v Value) error {
	var nv int
	switch v := v.(type) {
	case int:
		nv = v
	case string:
		var err error
		nv, err = strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %q to prefs.Int", v)
		}
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Int", v)
	}
	return set(nv, p.hookPre, p.hookPost, func() { p.value.Store(int64(nv)) })
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	return int(p.value.Load())
}

// Reset sets the value to the default.
func (p *Int) Reset() error {
	return p.Set(p.def)
}

// SetHookPre sets the function called before the value is updated. The value
// is not changed if the function returns an error.
func (p *Int) SetHookPre(f func(value Value) error) {
	p.hookPre = f
}

// SetHookPost sets the function called after the value is updated.
func (p *Int) SetHookPost(f func(value Value) error) {
	p.hookPost = f
}

func set(v Value, pre func(Value) error, post func(Value) error, store func()) error {
	if pre != nil {
		if err := pre(v); err != nil {
			return err
		}
	}
	store()
	if post != nil {
		return post(v)
	}
	return nil
}
