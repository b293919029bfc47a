package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/toolkit/mesh"
	"github.com/gogpu/toolkit/primitive"
)

// writeGeometryOBJ writes g as a Wavefront OBJ with positions and normals.
func writeGeometryOBJ(w io.Writer, name string, g primitive.Geometry) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "o %s\n", name)
	for _, v := range g.Vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", v.Position.X, v.Position.Y, v.Position.Z)
	}
	for _, v := range g.Vertices {
		fmt.Fprintf(bw, "vn %g %g %g\n", v.Normal.X, v.Normal.Y, v.Normal.Z)
	}
	for i := 0; i+2 < len(g.Indices); i += 3 {
		a, b, c := int(g.Indices[i])+1, int(g.Indices[i+1])+1, int(g.Indices[i+2])+1
		fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
	}
	return bw.Flush()
}

// writeMeshOBJ writes a 2D mesh as a flat OBJ with texture coordinates.
func writeMeshOBJ(w io.Writer, name string, m mesh.Mesh2D) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "o %s\n", name)
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %g %g 0\n", v.Position.X, v.Position.Y)
	}
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "vt %g %g\n", v.TexCoords.X, v.TexCoords.Y)
	}
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i]+1, m.Indices[i+1]+1, m.Indices[i+2]+1
		fmt.Fprintf(bw, "f %d/%d %d/%d %d/%d\n", a, a, b, b, c, c)
	}
	return bw.Flush()
}

func createFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
