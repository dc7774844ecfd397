// icogen writes the precomputed unit icosphere edge table used for sphere rendering.
package main

import (
	"flag"
	"fmt"
	"go/format"
	"os"
	"strconv"
	"strings"

	"github.com/Faultbox/debugdraw/internal/debugdraw"
	"github.com/Faultbox/debugdraw/pkg/math"
)

func main() {
	out := flag.String("o", "icosphere_table.go", "Output file")
	levels := flag.Int("levels", 1, "Subdivision levels")
	pkg := flag.String("package", "debugdraw", "Package name of the generated file")
	flag.Parse()

	src, err := generate(*pkg, *levels)
	if err != nil {
		fmt.Fprintf(os.Stderr, "icogen: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, src, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "icogen: %v\n", err)
		os.Exit(1)
	}
}

func generate(pkg string, levels int) ([]byte, error) {
	vertices, faces := debugdraw.Icosahedron()
	vertices, faces = debugdraw.SubdivideIcosphere(vertices, faces, levels)
	edges := debugdraw.IcosphereEdges(vertices, faces)

	var b strings.Builder
	b.WriteString("// Code generated by icogen; DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	b.WriteString("import \"github.com/Faultbox/debugdraw/pkg/math\"\n\n")
	fmt.Fprintf(&b, "// unitSphereEdges is a unit icosphere with %d subdivision level:\n", levels)
	fmt.Fprintf(&b, "// %d vertices, %d faces, %d edges.\n", len(vertices), len(faces), len(edges))
	fmt.Fprintf(&b, "var unitSphereEdges = [%d]Segment{\n", len(edges))
	for _, e := range edges {
		fmt.Fprintf(&b, "\t{From: %s, To: %s},\n", vecLiteral(e.From), vecLiteral(e.To))
	}
	b.WriteString("}\n")

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, fmt.Errorf("formatting output: %w", err)
	}
	return src, nil
}

func vecLiteral(v math.Vec3) string {
	return fmt.Sprintf("math.Vec3{X: %s, Y: %s, Z: %s}", float(v.X), float(v.Y), float(v.Z))
}

func float(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
