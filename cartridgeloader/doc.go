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

// Package cartridgeloader is used to load the ROM images that are to be
// attached to the emulated C64. These are the BASIC, KERNAL and character ROM
// firmware images and the optional cartridge image.
//
// When the image is ready to be loaded into the emulator, the Load() function
// should be used. The Load() function handles loading of data from different
// sources. Currently local-file and data over HTTP is supported.
//
// The simplest instance of the Loader type:
//
//	cl := cartridgeloader.Loader{
//		Filename: "roms/kernal.901227-03.bin",
//		Kind:     cartridgeloader.KERNAL,
//	}
//
// Once loaded, the image can be attached to anything that implements the
// Target interface, which is satisfied by the memory.Memory type:
//
//	err := cl.Load()
//	if err != nil {
//		return err
//	}
//	err = cl.Attach(mem)
package cartridgeloader
