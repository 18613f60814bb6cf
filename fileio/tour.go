package fileio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/rlee32/vopt/planar"
)

// ReadTourFile reads a TSPLIB-style tour file: a "DIMENSION: N" header, a
// "TOUR_SECTION" marker, then exactly n lines each holding a 1-indexed
// point id. The returned ordering is 0-indexed, matching the core's
// convention (spec.md §6).
func ReadTourFile(path string, n int) ([]planar.PointID, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "fileio: opening tour file %q", path)
	}
	defer f.Close()

	var dimension int
	var inTourSection bool
	ordered := make([]planar.PointID, 0, n)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !inTourSection {
			if strings.HasPrefix(line, "DIMENSION") {
				fields := strings.FieldsFunc(line, func(r rune) bool { return r == ':' || r == ' ' || r == '\t' })
				if len(fields) < 2 {
					return nil, errors.Errorf("fileio: malformed DIMENSION header %q", line)
				}
				dimension, err = strconv.Atoi(fields[len(fields)-1])
				if err != nil {
					return nil, errors.Wrapf(err, "fileio: malformed DIMENSION value in %q", line)
				}
				continue
			}
			if line == "TOUR_SECTION" {
				inTourSection = true
				continue
			}
			continue
		}

		if line == "-1" || line == "EOF" {
			break
		}
		oneIndexed, err := strconv.Atoi(line)
		if err != nil {
			return nil, errors.Wrapf(err, "fileio: malformed tour id %q", line)
		}
		ordered = append(ordered, oneIndexed-1)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "fileio: reading tour file %q", path)
	}
	if !inTourSection {
		return nil, errors.Errorf("fileio: %q has no TOUR_SECTION", path)
	}
	if dimension != 0 && dimension != len(ordered) {
		return nil, errors.Errorf("fileio: DIMENSION header says %d, TOUR_SECTION has %d entries", dimension, len(ordered))
	}
	if len(ordered) != n {
		return nil, errors.Errorf("fileio: tour file %q has %d entries, want %d", path, len(ordered), n)
	}
	for _, id := range ordered {
		if id < 0 || id >= n {
			return nil, errors.Errorf("fileio: tour file %q contains out-of-range 1-indexed id %d", path, id+1)
		}
	}

	return ordered, nil
}

// WriteTourFile writes ordered (0-indexed) to path in the same
// TSPLIB-style format ReadTourFile consumes, adding one back to every id.
func WriteTourFile(path string, ordered []planar.PointID) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "fileio: creating tour file %q", path)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "DIMENSION: %d\n", len(ordered))
	fmt.Fprintln(w, "TOUR_SECTION")
	for _, id := range ordered {
		fmt.Fprintln(w, id+1)
	}
	fmt.Fprintln(w, "-1")
	fmt.Fprintln(w, "EOF")

	if err := w.Flush(); err != nil {
		return errors.Wrapf(err, "fileio: writing tour file %q", path)
	}
	return nil
}
