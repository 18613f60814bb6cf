package fileio

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}
	return path
}

func TestReadPointFileParsesDimensionAndCoordinates(t *testing.T) {
	path := writeTemp(t, "points.txt", "DIMENSION: 3\nNODE_COORD_SECTION\n0 0 0\n1 10 0\n2 10 10\n")
	pts, err := ReadPointFile(path)
	if err != nil {
		t.Fatalf("ReadPointFile returned an error: %v", err)
	}
	if pts.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", pts.Len())
	}
	if pts.X[1] != 10 || pts.Y[2] != 10 {
		t.Fatalf("unexpected coordinates: %+v", pts)
	}
}

func TestReadPointFileRejectsDimensionMismatch(t *testing.T) {
	path := writeTemp(t, "points.txt", "DIMENSION: 4\n0 0 0\n1 10 0\n")
	if _, err := ReadPointFile(path); err == nil {
		t.Fatal("expected an error for a DIMENSION/point-count mismatch")
	}
}

func TestReadPointFileRejectsMissingPointID(t *testing.T) {
	path := writeTemp(t, "points.txt", "0 0 0\n2 10 10\n")
	if _, err := ReadPointFile(path); err == nil {
		t.Fatal("expected an error for a gap in point ids")
	}
}

func TestTourFileRoundTripConvertsIndexing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tour.txt")
	ordered := []int{2, 0, 1, 3}

	if err := WriteTourFile(path, ordered); err != nil {
		t.Fatalf("WriteTourFile returned an error: %v", err)
	}
	got, err := ReadTourFile(path, len(ordered))
	if err != nil {
		t.Fatalf("ReadTourFile returned an error: %v", err)
	}
	if !reflect.DeepEqual(got, ordered) {
		t.Fatalf("round trip = %v, want %v", got, ordered)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading raw tour file: %v", err)
	}
	if want := "3\n"; !strings.Contains(string(raw), want) {
		t.Fatalf("expected 1-indexed id 3 (for 0-indexed 2) on disk, got:\n%s", raw)
	}
}

func TestReadTourFileRejectsWrongDimension(t *testing.T) {
	path := writeTemp(t, "tour.txt", "DIMENSION: 3\nTOUR_SECTION\n1\n2\n3\n-1\nEOF\n")
	if _, err := ReadTourFile(path, 4); err == nil {
		t.Fatal("expected an error when the tour file's point count does not match n")
	}
}

func TestReadTourFileRejectsMissingTourSection(t *testing.T) {
	path := writeTemp(t, "tour.txt", "DIMENSION: 3\n1\n2\n3\n")
	if _, err := ReadTourFile(path, 3); err == nil {
		t.Fatal("expected an error when TOUR_SECTION is absent")
	}
}
