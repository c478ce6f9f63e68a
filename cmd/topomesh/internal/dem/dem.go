// Package dem reads an elevation model for the topomesh commands,
// dispatching on an explicit format flag or the file extension.
package dem

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bollig/topomesh/raster"
)

// Read loads a DEM file. format may be "xyz", "esri" or empty, in which
// case .asc files are read as ESRI ASCII grids and anything else as
// delimited XYZ text.
func Read(path, format string) (*raster.Grid, error) {
	if format == "" {
		if strings.EqualFold(filepath.Ext(path), ".asc") {
			format = "esri"
		} else {
			format = "xyz"
		}
	}
	switch format {
	case "xyz":
		return raster.ReadXYZ(path)
	case "esri":
		return raster.ReadEsriASCII(path)
	}
	return nil, fmt.Errorf("unknown DEM format %q", format)
}
