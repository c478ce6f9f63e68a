// Package preview implements a command to render a DEM as a heat map
// image, for a quick look at the terrain before meshing it.
package preview

import (
	"math"

	"github.com/js-arias/command"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/bollig/topomesh/cmd/topomesh/internal/dem"
	"github.com/bollig/topomesh/raster"
)

var Command = &command.Command{
	Usage: `preview [--format <format>] [--width <value>]
	[-o|--output <image-file>] <dem-file>`,
	Short: "render a DEM as a heat map image",
	Long: `
Command preview reads a digital elevation model and renders it as a heat
map PNG image.

The argument of the command is the name of the DEM file. The flag
--format has the same meaning as in the build command.

By default, the image is written to the DEM file name with a .png suffix;
use the flag --output, or -o, to change it. The flag --width sets the
image width in centimeters and defaults to 20; the height follows the grid
aspect ratio.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var formatFlag string
var outFile string
var widthFlag float64

func setFlags(c *command.Command) {
	c.Flags().StringVar(&formatFlag, "format", "", "")
	c.Flags().StringVar(&outFile, "output", "", "")
	c.Flags().StringVar(&outFile, "o", "", "")
	c.Flags().Float64Var(&widthFlag, "width", 20, "")
}

// demGrid adapts a raster grid to the plotter.GridXYZ interface.
type demGrid struct {
	g *raster.Grid
}

func (d demGrid) Dims() (c, r int)   { return d.g.Nx, d.g.Ny }
func (d demGrid) Z(c, r int) float64 { return d.g.At(c, r) }
func (d demGrid) X(c int) float64    { return float64(c) * math.Abs(d.g.Dx) }
func (d demGrid) Y(r int) float64    { return float64(r) * math.Abs(d.g.Dy) }

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting DEM file")
	}
	demFile := args[0]
	if outFile == "" {
		outFile = demFile + ".png"
	}

	g, err := dem.Read(demFile, formatFlag)
	if err != nil {
		return err
	}
	if err := g.Validate(); err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = demFile
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	pal := moreland.SmoothBlueRed().Palette(255)
	p.Add(plotter.NewHeatMap(demGrid{g}, pal))

	xdim, ydim := g.Bounds()
	width := vg.Length(widthFlag) * vg.Centimeter
	height := width * vg.Length(ydim/xdim)
	return p.Save(width, height, outFile)
}
