package raster

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// ReadEsriASCII reads an ESRI ASCII grid (.asc): a small keyword header
// followed by rows of elevation samples ordered north to south. The
// returned grid keeps row 0 as the southernmost row so that increasing j
// means increasing y; Dy is reported positive. NODATA cells are stored as
// NaN and surface as ErrNonFiniteElevation from Validate.
func ReadEsriASCII(filename string) (*Grid, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	var (
		ncols, nrows       int
		xll, yll, cellsize float64
		nodata             = math.NaN()
		hasNodata          bool
		hasCols, hasRows   bool
		hasCell            bool
	)

	// Header: keyword value pairs until the first row of samples.
	var rows [][]float64
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		key := strings.ToLower(fields[0])
		isHeader := len(fields) == 2 && len(rows) == 0
		if isHeader {
			switch key {
			case "ncols":
				ncols, err = strconv.Atoi(fields[1])
				hasCols = true
			case "nrows":
				nrows, err = strconv.Atoi(fields[1])
				hasRows = true
			case "xllcorner", "xllcenter":
				xll, err = strconv.ParseFloat(fields[1], 64)
			case "yllcorner", "yllcenter":
				yll, err = strconv.ParseFloat(fields[1], 64)
			case "cellsize":
				cellsize, err = strconv.ParseFloat(fields[1], 64)
				hasCell = true
			case "nodata_value":
				nodata, err = strconv.ParseFloat(fields[1], 64)
				hasNodata = true
			default:
				isHeader = false
			}
			if err != nil {
				return nil, fmt.Errorf("%s: invalid header line %q: %v", filename, line, err)
			}
		}
		if isHeader {
			continue
		}

		row := make([]float64, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: invalid sample %q: %v", filename, f, err)
			}
			if hasNodata && v == nodata {
				v = math.NaN()
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if !hasCols || !hasRows || !hasCell {
		return nil, fmt.Errorf("%s: incomplete ESRI ASCII header", filename)
	}
	if len(rows) != nrows {
		return nil, fmt.Errorf("%w: header says %d rows, file has %d", ErrInvalidShape, nrows, len(rows))
	}

	g, err := NewGrid(ncols, nrows, cellsize, cellsize)
	if err != nil {
		return nil, err
	}
	g.OriginX, g.OriginY = xll, yll

	// File rows run north to south; flip so row 0 is the south edge.
	for fj, row := range rows {
		if len(row) != ncols {
			return nil, fmt.Errorf("%w: row %d has %d samples, want %d", ErrInvalidShape, fj, len(row), ncols)
		}
		j := nrows - 1 - fj
		copy(g.Z[j*ncols:(j+1)*ncols], row)
	}
	return g, nil
}
