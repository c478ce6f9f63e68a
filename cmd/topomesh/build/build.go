// Package build implements a command to build a terrain-following mesh
// from a DEM file and write the node coordinates to disk.
package build

import (
	"fmt"

	"github.com/gosuri/uiprogress"
	"github.com/js-arias/command"

	"github.com/bollig/topomesh/cmd/topomesh/internal/dem"
	"github.com/bollig/topomesh/topo"
	"github.com/bollig/topomesh/writers"
)

var Command = &command.Command{
	Usage: `build [--format <format>] [--layers <value>] [--depth <value>]
	[--cpu <value>] [--vtk <file>]
	[-o|--output <file-prefix>] <dem-file>`,
	Short: "build a terrain-following mesh from a DEM",
	Long: `
Command build reads a digital elevation model, constructs the coordinate
field of a structured hexahedral mesh whose top surface follows the terrain,
and writes the node coordinates to disk.

The argument of the command is the name of the DEM file.

The flag --format selects the DEM encoding, either "xyz" (whitespace
delimited x y z samples on a regular grid, the default) or "esri" (ESRI
ASCII grid). Files ending in .asc are read as ESRI grids when no format is
given.

The flag --layers sets the number of vertical node layers, and must be at
least 2; it defaults to 16. The flag --depth sets the depth of the mesh
floor below the zero datum and defaults to 100 in DEM units. Every
elevation must lie above the floor.

The flag --cpu sets the number of workers used for the per-column mesh
deformation; it defaults to the number of available processors.

By default, the coordinates are written as binary arrays with an XML
description, using the DEM file name as prefix. Use the flag --output, or
-o, to change the prefix. If the flag --vtk is given, a legacy ASCII VTK
structured grid is also written to the named file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var formatFlag string
var outPrefix string
var vtkFile string
var numLayers int
var numCPU int
var floorDepth float64

func setFlags(c *command.Command) {
	c.Flags().StringVar(&formatFlag, "format", "", "")
	c.Flags().StringVar(&outPrefix, "output", "", "")
	c.Flags().StringVar(&outPrefix, "o", "", "")
	c.Flags().StringVar(&vtkFile, "vtk", "", "")
	c.Flags().IntVar(&numLayers, "layers", 16, "")
	c.Flags().IntVar(&numCPU, "cpu", 0, "")
	c.Flags().Float64Var(&floorDepth, "depth", 100, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting DEM file")
	}
	demFile := args[0]
	if outPrefix == "" {
		outPrefix = demFile
	}

	g, err := dem.Read(demFile, formatFlag)
	if err != nil {
		return err
	}

	uiprogress.Start()
	bar := uiprogress.AddBar(g.Nx * g.Ny).AppendCompleted().PrependElapsed()
	cf, err := topo.BuildParallel(g, numLayers, floorDepth, numCPU, func(done, total int) {
		bar.Set(done)
	})
	uiprogress.Stop()
	if err != nil {
		return err
	}

	if err := writers.WriteBinary(outPrefix, cf); err != nil {
		return err
	}
	if err := writers.WriteXDMF(outPrefix+".xdmf", outPrefix, cf.Desc); err != nil {
		return err
	}
	if vtkFile != "" {
		if err := writers.WriteVTK(vtkFile, cf); err != nil {
			return err
		}
	}

	fmt.Fprintf(c.Stdout(), "%s\n", cf.Desc)
	return nil
}
