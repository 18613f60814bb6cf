// Package fileio is the file-format collaborator spec.md §6 describes:
// it is not part of the optimization core and performs no domain
// validation beyond what is needed to parse the file formats themselves
// (Optimize itself rejects fewer than 3 points or non-finite coordinates).
package fileio

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/rlee32/vopt/planar"
)

// ReadPointFile reads a small whitespace-delimited point file: an
// optional "DIMENSION: N" header line, an optional "NODE_COORD_SECTION"
// marker line, then N lines of "id x y". Lines are otherwise free-form;
// any line before the first coordinate line that isn't a recognized
// header is ignored, matching the permissive collaborator role spec.md
// assigns to file I/O.
func ReadPointFile(path string) (planar.Points, error) {
	f, err := os.Open(path)
	if err != nil {
		return planar.Points{}, errors.Wrapf(err, "fileio: opening point file %q", path)
	}
	defer f.Close()

	var dimension int
	var xs, ys []float64
	seenAny := make(map[int]bool)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line == "NODE_COORD_SECTION" || line == "EOF" {
			continue
		}
		if strings.HasPrefix(line, "DIMENSION") {
			fields := strings.FieldsFunc(line, func(r rune) bool { return r == ':' || r == ' ' || r == '\t' })
			if len(fields) < 2 {
				return planar.Points{}, errors.Errorf("fileio: malformed DIMENSION header %q", line)
			}
			n, err := strconv.Atoi(fields[len(fields)-1])
			if err != nil {
				return planar.Points{}, errors.Wrapf(err, "fileio: malformed DIMENSION value in %q", line)
			}
			dimension = n
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			if len(xs) == 0 {
				continue // unrecognized header line before the first coordinate line
			}
			return planar.Points{}, errors.Errorf("fileio: malformed point line %q", line)
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			if len(xs) == 0 {
				continue // unrecognized header line before the first coordinate line
			}
			return planar.Points{}, errors.Wrapf(err, "fileio: malformed point id in %q", line)
		}
		x, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return planar.Points{}, errors.Wrapf(err, "fileio: malformed x coordinate in %q", line)
		}
		y, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return planar.Points{}, errors.Wrapf(err, "fileio: malformed y coordinate in %q", line)
		}

		for id >= len(xs) {
			xs = append(xs, 0)
			ys = append(ys, 0)
		}
		xs[id], ys[id] = x, y
		seenAny[id] = true
	}
	if err := scanner.Err(); err != nil {
		return planar.Points{}, errors.Wrapf(err, "fileio: reading point file %q", path)
	}

	if dimension != 0 && dimension != len(xs) {
		return planar.Points{}, errors.Errorf("fileio: DIMENSION header says %d points, found %d", dimension, len(xs))
	}
	for id := range xs {
		if !seenAny[id] {
			return planar.Points{}, errors.Errorf("fileio: point id %d missing from %q", id, path)
		}
	}

	return planar.Points{X: xs, Y: ys}, nil
}
