// Package info implements a command to print a summary of a DEM file and
// the mesh that would be built from it.
package info

import (
	"fmt"

	"github.com/js-arias/command"

	"github.com/bollig/topomesh/cmd/topomesh/internal/dem"
	"github.com/bollig/topomesh/mesh"
)

var Command = &command.Command{
	Usage: `info [--format <format>] [--layers <value>] [--depth <value>]
	<dem-file>`,
	Short: "print a summary of a DEM and its derived mesh",
	Long: `
Command info reads a digital elevation model and prints its dimensions,
spacing and elevation range, along with the dimensions of the mesh that
the build command would produce from it.

The argument of the command is the name of the DEM file. The flags
--format, --layers and --depth have the same meaning as in the build
command.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var formatFlag string
var numLayers int
var floorDepth float64

func setFlags(c *command.Command) {
	c.Flags().StringVar(&formatFlag, "format", "", "")
	c.Flags().IntVar(&numLayers, "layers", 16, "")
	c.Flags().Float64Var(&floorDepth, "depth", 100, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting DEM file")
	}

	g, err := dem.Read(args[0], formatFlag)
	if err != nil {
		return err
	}
	if err := g.Validate(); err != nil {
		return err
	}

	min, max := g.MinMax()
	xdim, ydim := g.Bounds()
	fmt.Fprintf(c.Stdout(), "raster: %d columns x %d rows, spacing (%g, %g), origin (%g, %g)\n",
		g.Nx, g.Ny, g.Dx, g.Dy, g.OriginX, g.OriginY)
	fmt.Fprintf(c.Stdout(), "extent: %g x %g, elevation range [%g, %g]\n", xdim, ydim, min, max)

	d, err := mesh.NewDescriptor(g.Nx, g.Ny, numLayers, g.Dx, g.Dy, floorDepth)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.Stdout(), "%s\n", d)
	return nil
}
