// This file is part of GopherF8.
//
// GopherF8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherF8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherF8.  If not, see <https://www.gnu.org/licenses/>.

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/jetsetilly/gopherf8/archivefs"
	"github.com/jetsetilly/gopherf8/curated"
)

// Sentinel errors.
const (
	NoFilename        = "cartridgeloader: no filename"
	UnexpectedHash    = "cartridgeloader: unexpected hash value"
	UnsupportedScheme = "cartridgeloader: unsupported URL scheme (%s)"
	LoadError         = "cartridgeloader: %v"
)

// FileExtensions is the list of file extensions that are recognised as
// cartridge files.
var FileExtensions = [...]string{".BIN", ".ROM", ".CHF"}

// Loader is used to specify the cartridge to use when attaching to the
// console.
type Loader struct {
	// filename of cartridge to load.
	Filename string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: strings.TrimSpace(filename),
	}
}

// IsCartridgeFile returns true if the filename has one of the recognised
// file extensions.
func IsCartridgeFile(filename string) bool {
	ext := strings.ToUpper(path.Ext(filename))
	for _, e := range FileExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// ShortName returns a shortened version of the CartridgeLoader filename.
func (cl Loader) ShortName() string {
	if cl.Filename == "" {
		return "no cartridge"
	}
	shortCartName := archivefs.TrimArchiveExt(path.Base(cl.Filename))
	shortCartName = strings.TrimSuffix(shortCartName, path.Ext(shortCartName))
	return shortCartName
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the cartridge data. Loader filenames with a valid scheme will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	if cl.Filename == "" {
		return curated.Errorf(NoFilename)
	}

	scheme := "file"

	url, err := url.Parse(cl.Filename)
	if err == nil {
		scheme = url.Scheme
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		defer resp.Body.Close()

		cl.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	case "file":
		fallthrough

	case "":
		cl.Data, err = archivefs.ReadFile(cl.Filename, IsCartridgeFile)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	default:
		return curated.Errorf(UnsupportedScheme, scheme)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))

	if cl.Hash != "" && cl.Hash != hash {
		cl.Data = nil
		return curated.Errorf(UnexpectedHash)
	}

	cl.Hash = hash

	return nil
}
