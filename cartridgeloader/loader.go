// This file is part of Banks2600.
//
// Banks2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Banks2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Banks2600.  If not, see <https://www.gnu.org/licenses/>.

package cartridgeloader

import (
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/banks2600/curated"
)

// Loader specifies the cartridge to attach to the memory system. It also
// permits the caller to specify the banking format of the cartridge (if
// necessary; fingerprinting is pretty good).
type Loader struct {
	// filename of cartridge to load
	Filename string

	// empty string or "AUTO" indicates automatic fingerprinting
	Format string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated
	Hash string

	// cartridge data supplied directly, rather than through a file. when
	// non-empty, Load() returns a copy of this data and the Filename field
	// is only a label
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// The format argument will be used to set the Format field, unless the
// argument is either "AUTO" or the empty string. In which case the file
// extension is used to set the field.
//
// File extensions should be the same as the ID of the intended format, as
// defined in the cartridge package. File extensions ".BIN", ".ROM" and
// ".A26" will set the Format field to "AUTO".
//
// Alphabetic characters in file extensions can be in upper or lower case or
// a mixture of both.
func NewLoader(filename string, format string) Loader {
	cl := Loader{
		Filename: filename,
		Format:   "AUTO",
	}

	format = strings.TrimSpace(strings.ToUpper(format))
	if format != "AUTO" && format != "" {
		cl.Format = format
	} else {
		switch strings.ToUpper(path.Ext(filename)) {
		case ".BIN", ".ROM", ".A26":
			cl.Format = "AUTO"
		case ".2K":
			cl.Format = "2K"
		case ".4K":
			cl.Format = "4K"
		case ".SB":
			cl.Format = "SB"
		}
	}

	return cl
}

// FileExtensions is the list of file extensions that are recognised by the
// cartridgeloader package.
var FileExtensions = [...]string{".BIN", ".ROM", ".A26", ".2K", ".4K", ".SB"}

// ShortName returns a shortened version of the Loader filename.
func (cl Loader) ShortName() string {
	shortCartName := path.Base(cl.Filename)
	shortCartName = strings.TrimSuffix(shortCartName, path.Ext(cl.Filename))
	return shortCartName
}

// Load the cartridge data and return it as a byte array. Loader filenames
// with a valid schema will use that method to load the data. Currently
// supported schemes are HTTP and local files.
func (cl Loader) Load() ([]byte, error) {
	if len(cl.Data) > 0 {
		data := make([]byte, len(cl.Data))
		copy(data, cl.Data)
		return data, nil
	}

	scheme := "file"

	url, err := url.Parse(cl.Filename)
	if err == nil {
		scheme = url.Scheme
	}

	var data []byte

	switch scheme {
	case "http", "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return nil, curated.Errorf("cartridgeloader: %v", err)
		}
		defer resp.Body.Close()

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, curated.Errorf("cartridgeloader: %v", err)
		}

	case "file", "":
		data, err = os.ReadFile(cl.Filename)
		if err != nil {
			return nil, curated.Errorf("cartridgeloader: %v", err)
		}

	default:
		return nil, curated.Errorf("cartridgeloader: unsupported URL scheme (%s)", scheme)
	}

	return data, nil
}
