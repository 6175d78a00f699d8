package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/san-kum/corelab/internal/viz"
)

func TestSeriesToSVG(t *testing.T) {
	samples, err := viz.GrowthTrace(2, 5)
	if err != nil {
		t.Fatal(err)
	}
	svg := SeriesToSVG(GrowthSeries(samples), 400, 200)

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>\n") {
		t.Fatalf("not an svg document:\n%s", svg)
	}
	if n := strings.Count(svg, "<path "); n != 2 {
		t.Errorf("expected 2 paths, got %d", n)
	}
	for _, name := range []string{"<title>capacity</title>", "<title>size</title>"} {
		if !strings.Contains(svg, name) {
			t.Errorf("missing %s", name)
		}
	}
}

func TestSeriesToSVGTooShort(t *testing.T) {
	if got := SeriesToSVG([]Series{{Name: "x", Values: []float64{1}}}, 10, 10); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestWriteGrowthCSV(t *testing.T) {
	samples := []viz.GrowthSample{
		{Op: "new", Size: 0, Capacity: 1},
		{Op: "push", Size: 1, Capacity: 1},
		{Op: "push", Size: 2, Capacity: 2},
	}
	var buf bytes.Buffer
	if err := WriteGrowthCSV(&buf, samples); err != nil {
		t.Fatal(err)
	}
	want := "step,op,size,capacity\n0,new,0,1\n1,push,1,1\n2,push,2,2\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}
