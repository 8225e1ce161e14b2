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
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/gopher64/curated"
)

// Sentinal error patterns for the cartridgeloader package.
const (
	LoadError     = "cartridgeloader: %v"
	WrongSize     = "cartridgeloader: %s image is the wrong size (%d bytes, expected %d)"
	UnknownKind   = "cartridgeloader: unknown image kind (%s)"
	UnexpectedSum = "cartridgeloader: unexpected hash value (%s)"
)

// Kind indicates the purpose of the ROM image.
type Kind string

// List of valid Kind values.
const (
	BASIC     Kind = "BASIC"
	KERNAL    Kind = "KERNAL"
	Character Kind = "CHARACTER"
	Cartridge Kind = "CARTRIDGE"
)

// the required size of each image kind. cartridges may be smaller than the
// size given here but must not be empty
var sizes = map[Kind]int{
	BASIC:     8192,
	KERNAL:    8192,
	Character: 4096,
	Cartridge: 8192,
}

// FileExtensions is the list of file extensions that are recognised by the
// cartridgeloader package.
var FileExtensions = [...]string{".BIN", ".ROM"}

// Target is implemented by anything that ROM images can be attached to. The
// memory.Memory type satisfies this interface.
type Target interface {
	LoadBASIC(data []uint8) error
	LoadKERNAL(data []uint8) error
	LoadCharacterROM(data []uint8) error
	AttachCartridge(data []uint8) error
}

// Loader is used to specify the ROM image to use when Attach()ing to the
// C64.
type Loader struct {
	// filename of image to load
	Filename string

	// the purpose of the image
	Kind Kind

	// expected hash of the loaded image. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequence calls to Load() will not reload
	// the data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type. The
// kind argument is case insensitive.
func NewLoader(filename string, kind string) (Loader, error) {
	cl := Loader{
		Filename: filename,
		Kind:     Kind(strings.ToUpper(strings.TrimSpace(kind))),
	}

	if _, ok := sizes[cl.Kind]; !ok {
		return Loader{}, curated.Errorf(UnknownKind, kind)
	}

	return cl, nil
}

// ShortName returns a shortened version of the Loader filename.
func (cl Loader) ShortName() string {
	shortName := path.Base(cl.Filename)
	shortName = strings.TrimSuffix(shortName, path.Ext(cl.Filename))
	return shortName
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the image data. Loader filenames with a valid schema will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
//
// The size of the data is checked against the Kind of the image.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	size, ok := sizes[cl.Kind]
	if !ok {
		return curated.Errorf(UnknownKind, cl.Kind)
	}

	scheme := "file"

	url, err := url.Parse(cl.Filename)
	if err == nil {
		scheme = url.Scheme
	}

	var data []byte

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(LoadError, fmt.Errorf("http status %s", resp.Status))
		}

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	case "file":
		fallthrough

	case "":
		data, err = os.ReadFile(cl.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	default:
		return curated.Errorf(LoadError, fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	if cl.Kind == Cartridge {
		if len(data) == 0 || len(data) > size {
			return curated.Errorf(WrongSize, cl.Kind, len(data), size)
		}
	} else if len(data) != size {
		return curated.Errorf(WrongSize, cl.Kind, len(data), size)
	}

	// generate hash
	hash := fmt.Sprintf("%x", sha1.Sum(data))

	// check for hash consistency
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf(UnexpectedSum, hash)
	}

	cl.Hash = hash
	cl.Data = data

	return nil
}

// Attach the loaded image to the target. The image is loaded first if it has
// not been already.
func (cl *Loader) Attach(t Target) error {
	if err := cl.Load(); err != nil {
		return err
	}

	switch cl.Kind {
	case BASIC:
		return t.LoadBASIC(cl.Data)
	case KERNAL:
		return t.LoadKERNAL(cl.Data)
	case Character:
		return t.LoadCharacterROM(cl.Data)
	case Cartridge:
		return t.AttachCartridge(cl.Data)
	}

	return curated.Errorf(UnknownKind, cl.Kind)
}
