package netfile

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/arrakis-eda/gridrouter/grid"
	"github.com/arrakis-eda/gridrouter/netlist"
)

var tupleRe = regexp.MustCompile(`\((\d+),(\d+),(\d+)\)`)

// Parse reads the line-oriented netlist format from r and returns the
// populated Grid (obstacles applied, pins reserved) and the parsed
// netlist.List in file order. On any malformed line it returns a
// *ParseError identifying the offending line.
func Parse(r io.Reader) (*grid.Grid, netlist.List, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		return nil, nil, parseErrorf(1, ErrMalformedHeader, "missing header line")
	}
	g, err := parseHeader(scanner.Text())
	if err != nil {
		return nil, nil, err
	}

	var nets netlist.List
	lineNo := 1
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "OBS"):
			if err := parseObstacle(g, line, lineNo); err != nil {
				return nil, nil, err
			}
		case len(line) >= 3 && line[:3] == "net":
			n, err := parseNet(g, line, lineNo)
			if err != nil {
				return nil, nil, err
			}
			nets = append(nets, n)
		default:
			// Unrecognised leading token: ignored.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}

	g.ReservePins(nets.PinOwners())

	return g, nets, nil
}

func parseHeader(line string) (*grid.Grid, error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) != 4 {
		return nil, parseErrorf(1, ErrMalformedHeader, "want 4 comma-separated fields, got %d", len(fields))
	}

	nums := make([]int, 4)
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil || v < 0 {
			return nil, parseErrorf(1, ErrMalformedHeader, "field %d (%q) is not a non-negative integer", i+1, f)
		}
		nums[i] = v
	}

	g, err := grid.NewGrid(nums[0], nums[1], grid.Options{BendPenalty: nums[2], ViaPenalty: nums[3]})
	if err != nil {
		return nil, parseErrorf(1, ErrMalformedHeader, "%v", err)
	}

	return g, nil
}

func parseObstacle(g *grid.Grid, line string, lineNo int) error {
	m := tupleRe.FindStringSubmatch(line)
	if m == nil {
		return parseErrorf(lineNo, ErrMalformedCoordinate, "no (layer,x,y) tuple found in %q", line)
	}

	layer, x, y, err := parseTuple(m)
	if err != nil {
		return parseErrorf(lineNo, ErrMalformedCoordinate, "%v", err)
	}
	if layer != 0 && layer != 1 {
		return parseErrorf(lineNo, ErrMalformedCoordinate, "layer %d out of range", layer)
	}

	if err := g.AddObstacle(grid.Layer(layer), x, y); err != nil {
		return parseErrorf(lineNo, ErrMalformedCoordinate, "%v", err)
	}

	return nil
}

func parseNet(g *grid.Grid, line string, lineNo int) (*netlist.Net, error) {
	open := strings.IndexByte(line, '(')
	if open < 0 {
		return nil, parseErrorf(lineNo, ErrEmptyNet, "net line %q has no pin tuples", line)
	}
	name := strings.TrimSpace(line[:open])

	matches := tupleRe.FindAllStringSubmatch(line[open:], -1)
	if len(matches) == 0 {
		return nil, parseErrorf(lineNo, ErrEmptyNet, "net %q has no pin tuples", name)
	}

	pins := make([]netlist.Pin, 0, len(matches))
	for _, m := range matches {
		layer, x, y, err := parseTuple(m)
		if err != nil {
			return nil, parseErrorf(lineNo, ErrMalformedCoordinate, "%v", err)
		}
		if layer != 0 && layer != 1 {
			return nil, parseErrorf(lineNo, ErrMalformedCoordinate, "layer %d out of range", layer)
		}
		if !g.InBounds(x, y) {
			return nil, parseErrorf(lineNo, ErrMalformedCoordinate, "pin (%d,%d,%d) is out of bounds for a %dx%d grid", layer, x, y, g.Width, g.Height)
		}
		pins = append(pins, netlist.Pin{Layer: grid.Layer(layer), X: x, Y: y})
	}

	n, err := netlist.New(name, pins)
	if err != nil {
		return nil, parseErrorf(lineNo, ErrEmptyNet, "%v", err)
	}

	return n, nil
}

func parseTuple(m []string) (layer, x, y int, err error) {
	layer, err = strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, 0, err
	}
	x, err = strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, 0, err
	}
	y, err = strconv.Atoi(m[3])
	if err != nil {
		return 0, 0, 0, err
	}

	return layer, x, y, nil
}
