// This file is part of Gopher64.
//
// Gopher64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher64.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/gopher64/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file while the emulator is running ***"

// separator between key and value in the preferences file
const separator = " :: "

// Sentinal errors.
const (
	NoPrefsFile      = "prefs: no prefs file (%s)"
	UnrecognisedPref = "prefs: unrecognised preference (%s)"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref

	// values from the command line stack. these take priority over the values
	// loaded from disk
	overrides map[string]Value
}

func (dsk *Disk) String() string {
	keys := dsk.keys()
	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, dsk.entries[k]))
	}
	return s.String()
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:      path,
		entries:   make(map[string]pref),
		overrides: make(map[string]Value),
	}, nil
}

// Add preference value to list of values to store/load from disk. If the key
// is on the command line stack then the value is set immediately.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.ContainsAny(key, " :") {
		return fmt.Errorf("prefs: illegal key (%s)", key)
	}
	dsk.entries[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		dsk.overrides[key] = v
		return p.Set(v)
	}

	return nil
}

// Set the value of a preference by key.
func (dsk *Disk) Set(key string, value Value) error {
	p, ok := dsk.entries[key]
	if !ok {
		return curated.Errorf(UnrecognisedPref, key)
	}
	return p.Set(value)
}

// Reset all preference values to their zero value.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return err
		}
	}
	return nil
}

// Save current preference values to disk. Entries in the file for keys that
// are not in this Disk instance are preserved.
func (dsk *Disk) Save() error {
	data, err := load(dsk.path)
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return err
	}

	for _, k := range dsk.keys() {
		data[k] = dsk.entries[k].String()
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, separator, data[k])
	}

	return w.Flush()
}

// Load preference values from disk. Values from the command line stack take
// priority over the values on disk.
func (dsk *Disk) Load() error {
	data, err := load(dsk.path)
	if err != nil {
		return err
	}

	for k, v := range data {
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}

	for k, v := range dsk.overrides {
		if err := dsk.entries[k].Set(v); err != nil {
			return fmt.Errorf("prefs: %s: %w", k, err)
		}
	}

	return nil
}

// load the key/value pairs from the prefs file
func load(path string) (map[string]string, error) {
	data := make(map[string]string)

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return data, curated.Errorf(NoPrefsFile, path)
		}
		return data, fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// the first line is the boilerplate warning
	scanner.Scan()
	if scanner.Text() != WarningBoilerPlate {
		return data, fmt.Errorf("prefs: not a valid prefs file (%s)", path)
	}

	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), separator, 2)
		if len(kv) == 2 {
			data[kv[0]] = kv[1]
		}
	}

	return data, scanner.Err()
}
