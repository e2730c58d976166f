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
	"slices"
	"strings"
)

var commandLineStack []map[string]string

// SizeCommandLineStack returns the number of groups on the stack.
func SizeCommandLineStack() int {
	return len(commandLineStack)
}

// PushCommandLineStack parses a string of key/value pairs and adds it to the
// stack as a new group.
func PushCommandLineStack(prefs string) {
	cl := make(map[string]string)
	for _, p := range strings.Split(prefs, ";") {
		k, v, ok := strings.Cut(p, "::")
		if ok {
			cl[strings.TrimSpace(k)] = strings.TrimSpace(v)
		}
	}
	commandLineStack = append(commandLineStack, cl)
}

// PopCommandLineStack forgets the most recent group. Returns the key/value
// pairs of the group that were never used.
func PopCommandLineStack() string {
	if len(commandLineStack) == 0 {
		return ""
	}

	popped := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]

	keys := make([]string, 0, len(popped))
	for k := range popped {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	s := make([]string, 0, len(keys))
	for _, k := range keys {
		s = append(s, fmt.Sprintf("%s::%s", k, popped[k]))
	}
	return strings.Join(s, "; ")
}

// GetCommandLinePref returns the value for the key from the most recent
// group. The value is removed from the group.
func GetCommandLinePref(key string) (string, bool) {
	if len(commandLineStack) == 0 {
		return "", false
	}
	cl := commandLineStack[len(commandLineStack)-1]
	v, ok := cl[key]
	if ok {
		delete(cl, key)
	}
	return v, ok
}
