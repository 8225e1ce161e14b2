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

package cartridgeloader

import (
	"path/filepath"
)

// Firmware is the set of ROM images required by the C64. The Cartridge field
// is optional and can be left empty.
type Firmware struct {
	BASIC     Loader
	KERNAL    Loader
	Character Loader
	Cartridge Loader
}

// Conventional filenames for the firmware images.
const (
	BASICFilename     = "basic.901226-01.bin"
	KERNALFilename    = "kernal.901227-03.bin"
	CharacterFilename = "characters.901225-01.bin"
)

// NewFirmware returns a Firmware instance for the images in the directory.
// The images are not loaded until Attach() is called.
//
// The cartridge argument is optional and is not relative to the directory.
func NewFirmware(dir string, cartridge string) Firmware {
	fw := Firmware{
		BASIC:     Loader{Filename: filepath.Join(dir, BASICFilename), Kind: BASIC},
		KERNAL:    Loader{Filename: filepath.Join(dir, KERNALFilename), Kind: KERNAL},
		Character: Loader{Filename: filepath.Join(dir, CharacterFilename), Kind: Character},
	}
	if cartridge != "" {
		fw.Cartridge = Loader{Filename: cartridge, Kind: Cartridge}
	}
	return fw
}

// Attach all firmware images to the target. The first error encountered is
// returned.
func (fw *Firmware) Attach(t Target) error {
	for _, cl := range []*Loader{&fw.BASIC, &fw.KERNAL, &fw.Character} {
		if err := cl.Attach(t); err != nil {
			return err
		}
	}
	if fw.Cartridge.Filename != "" {
		return fw.Cartridge.Attach(t)
	}
	return nil
}
