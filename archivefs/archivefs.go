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

// Package archivefs reads files that may be stored inside a zip archive. An
// archive in a path is treated as though it were a directory. For example:
//
//	carts/channelf.zip/videocart-10.bin
//
// Archives inside archives are not supported.
package archivefs

import (
	"archive/zip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopherf8/curated"
)

// Sentinel errors.
const (
	NotFound   = "archivefs: not found: %v"
	NotAFile   = "archivefs: %s is not a file"
	NoMatch    = "archivefs: %s contains no suitable file"
	ReadFailed = "archivefs: read failed: %v"
)

// Location is the result of resolving a path that may pass through an
// archive.
type Location struct {
	// path to the file on disk. this is the archive file if Archive is true
	Path string

	// whether Path is a zip archive
	Archive bool

	// path of a file inside the archive. can be empty even when Archive is
	// true, in which case the path names the archive itself
	Inner string
}

func (loc Location) String() string {
	if loc.Inner == "" {
		return loc.Path
	}
	return filepath.Join(loc.Path, loc.Inner)
}

// Locate resolves a path, stopping at the first element that is a zip
// archive.
func Locate(filename string) (Location, error) {
	filename = filepath.Clean(filename)
	parts := strings.Split(filename, string(filepath.Separator))

	// strings.Split() removes the leading separator of an absolute path
	if parts[0] == "" {
		parts[0] = string(filepath.Separator)
	}

	var path string
	for i, p := range parts {
		path = filepath.Join(path, p)

		fi, err := os.Stat(path)
		if err != nil {
			return Location{}, curated.Errorf(NotFound, err)
		}
		if fi.IsDir() {
			continue
		}

		zr, err := zip.OpenReader(path)
		if err == nil {
			zr.Close()
			return Location{
				Path:    path,
				Archive: true,
				// paths inside a zip file always use a forward slash
				Inner: strings.Join(parts[i+1:], "/"),
			}, nil
		}
		if !errors.Is(err, zip.ErrFormat) {
			return Location{}, curated.Errorf(ReadFailed, err)
		}

		// a plain file must be the last element of the path
		if i < len(parts)-1 {
			return Location{}, curated.Errorf(NotAFile, path)
		}
	}

	return Location{Path: path}, nil
}

// ReadFile returns the contents of the named file.
//
// If the path names an archive rather than a file inside an archive, the
// first file in the archive accepted by the match function is used. A nil
// match function accepts any file.
func ReadFile(filename string, match func(name string) bool) ([]byte, error) {
	loc, err := Locate(filename)
	if err != nil {
		return nil, err
	}

	if !loc.Archive {
		fi, err := os.Stat(loc.Path)
		if err != nil {
			return nil, curated.Errorf(NotFound, err)
		}
		if fi.IsDir() {
			return nil, curated.Errorf(NotAFile, loc.Path)
		}
		data, err := os.ReadFile(loc.Path)
		if err != nil {
			return nil, curated.Errorf(ReadFailed, err)
		}
		return data, nil
	}

	zr, err := zip.OpenReader(loc.Path)
	if err != nil {
		return nil, curated.Errorf(ReadFailed, err)
	}
	defer zr.Close()

	if loc.Inner != "" {
		return readZipFile(zr, loc.Inner)
	}

	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if match == nil || match(f.Name) {
			return readZipFile(zr, f.Name)
		}
	}

	return nil, curated.Errorf(NoMatch, loc.Path)
}

func readZipFile(zr *zip.ReadCloser, name string) ([]byte, error) {
	f, err := zr.Open(name)
	if err != nil {
		return nil, curated.Errorf(NotFound, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, curated.Errorf(ReadFailed, err)
	}
	if fi.IsDir() {
		return nil, curated.Errorf(NotAFile, name)
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, curated.Errorf(ReadFailed, err)
	}
	return data, nil
}
