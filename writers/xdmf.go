package writers

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bollig/topomesh/mesh"
)

// XDMF document structure, reduced to what a structured single-grid
// description needs.
type xdmfFile struct {
	XMLName xml.Name   `xml:"Xdmf"`
	Version string     `xml:"Version,attr"`
	Domain  xdmfDomain `xml:"Domain"`
}

type xdmfDomain struct {
	Grid xdmfGrid `xml:"Grid"`
}

type xdmfGrid struct {
	Name     string       `xml:"Name,attr"`
	Type     string       `xml:"GridType,attr"`
	Topology xdmfTopology `xml:"Topology"`
	Geometry xdmfGeometry `xml:"Geometry"`
}

type xdmfTopology struct {
	Type       string `xml:"TopologyType,attr"`
	Dimensions string `xml:"Dimensions,attr"`
}

type xdmfGeometry struct {
	Type  string         `xml:"GeometryType,attr"`
	Items []xdmfDataItem `xml:"DataItem"`
}

type xdmfDataItem struct {
	Format     string `xml:"Format,attr"`
	NumberType string `xml:"NumberType,attr"`
	Precision  int    `xml:"Precision,attr"`
	Endian     string `xml:"Endian,attr"`
	Dimensions string `xml:"Dimensions,attr"`
	Path       string `xml:",chardata"`
}

// WriteXDMF writes the companion XML description for a binary coordinate
// dump produced by WriteBinary with the same prefix. The result opens
// directly in XDMF-aware viewers (ParaView, VisIt).
func WriteXDMF(path, binPrefix string, d mesh.Descriptor) error {
	dims := fmt.Sprintf("%d %d %d", d.Nz, d.Ny, d.Nx)
	item := func(axis string) xdmfDataItem {
		return xdmfDataItem{
			Format:     "Binary",
			NumberType: "Float",
			Precision:  8,
			Endian:     "Little",
			Dimensions: dims,
			Path:       fmt.Sprintf("%s.%s.bin", filepath.Base(binPrefix), axis),
		}
	}
	doc := xdmfFile{
		Version: "2.0",
		Domain: xdmfDomain{
			Grid: xdmfGrid{
				Name: "topography",
				Type: "Uniform",
				Topology: xdmfTopology{
					Type:       "3DSMesh",
					Dimensions: dims,
				},
				Geometry: xdmfGeometry{
					Type:  "X_Y_Z",
					Items: []xdmfDataItem{item("x"), item("y"), item("z")},
				},
			},
		},
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteString(xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(f)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
