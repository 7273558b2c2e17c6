// Package extrude turns a floor plan into triangle meshes using a
// geometry kernel. Rooms become floor slabs, walls and railings become
// prisms with door and window openings cut out, and stair parts are
// unioned into one solid per stair. One mesh is produced per entity.
package extrude

import (
	"fmt"

	"github.com/chazu/joist/pkg/geom"
	"github.com/chazu/joist/pkg/kernel"
	"github.com/chazu/joist/pkg/plan"
)

// cutMargin inflates opening cutouts so the boolean tool faces never
// sit flush with the wall faces.
const cutMargin = 0.05

// Options controls extrusion heights. All values are in the drawing's
// length unit, with defaults assuming meters.
type Options struct {
	WallHeight    float64 // walls run from z=0 to this height
	RailingHeight float64
	SlabThickness float64 // rooms become slabs this thick
	StairHeight   float64
	DoorHeight    float64 // door cutouts run from z=0 to this height
	WindowSill    float64 // bottom of window cutouts
	WindowHeight  float64
}

// DefaultOptions returns extrusion heights for a typical residential floor.
func DefaultOptions() Options {
	return Options{
		WallHeight:    2.7,
		RailingHeight: 1.0,
		SlabThickness: 0.1,
		StairHeight:   1.35,
		DoorHeight:    2.1,
		WindowSill:    0.9,
		WindowHeight:  1.2,
	}
}

// Extrude walks the floor and produces one triangle mesh per room,
// wall, railing, and stair using the provided geometry kernel.
// Entities with degenerate outlines are skipped. The extruder is
// read-only and never mutates the floor.
func Extrude(f *plan.Floor, k kernel.Kernel, opts Options) ([]*kernel.Mesh, error) {
	if f == nil {
		return nil, nil
	}

	var meshes []*kernel.Mesh

	for _, id := range f.Rooms() {
		room := f.MustRoom(id)
		outline := usableOutline(room)
		if outline == nil {
			continue
		}
		mesh, err := emit(k, k.Prism(outline, opts.SlabThickness), fmt.Sprintf("room-%d %s", id, room.SimpleType()))
		if err != nil {
			return nil, err
		}
		meshes = append(meshes, mesh)
	}

	for _, id := range f.Walls() {
		wall := f.MustWall(id)
		outline := usableOutline(wall)
		if outline == nil {
			continue
		}
		mesh, err := emit(k, wallSolid(f, k, wall, outline, opts), fmt.Sprintf("wall-%d", id))
		if err != nil {
			return nil, err
		}
		meshes = append(meshes, mesh)
	}

	for _, id := range f.Railings() {
		railing, ok := f.Railing(id)
		if !ok {
			continue
		}
		outline := usableOutline(railing)
		if outline == nil {
			continue
		}
		mesh, err := emit(k, k.Prism(outline, opts.RailingHeight), fmt.Sprintf("railing-%d", id))
		if err != nil {
			return nil, err
		}
		meshes = append(meshes, mesh)
	}

	for i, stair := range f.Stairs() {
		solid := stairSolid(f, k, stair, opts)
		if solid == nil {
			continue
		}
		mesh, err := emit(k, solid, fmt.Sprintf("stair-%d", i))
		if err != nil {
			return nil, err
		}
		meshes = append(meshes, mesh)
	}

	return meshes, nil
}

// usableOutline returns the entity's outline, or nil if it has too few
// vertices to extrude.
func usableOutline(e plan.Entity) []geom.Point {
	v := e.Polygon().Vertices()
	if len(v) < 3 {
		return nil
	}
	return v
}

// wallSolid extrudes a wall and cuts out its openings. Doors are cut
// from the floor up, windows between sill and head.
func wallSolid(f *plan.Floor, k kernel.Kernel, wall *plan.Wall, outline []geom.Point, opts Options) kernel.Solid {
	solid := k.Prism(outline, opts.WallHeight)

	for _, openingID := range wall.Openings() {
		opening, ok := f.Opening(openingID)
		if !ok || len(opening.Polygon().Vertices()) < 3 {
			continue
		}
		switch opening.Kind() {
		case plan.KindDoor:
			solid = k.Difference(solid, cutout(k, opening, -cutMargin, opts.DoorHeight))
		case plan.KindWindow:
			solid = k.Difference(solid, cutout(k, opening, opts.WindowSill, opts.WindowSill+opts.WindowHeight))
		}
	}

	return solid
}

// cutout builds the boolean tool for an opening. The footprint is the
// opening's bounding box inflated by cutMargin.
func cutout(k kernel.Kernel, opening *plan.Opening, bottom, top float64) kernel.Solid {
	b := opening.Polygon().Bound()
	outline := []geom.Point{
		{X: b.Min.X() - cutMargin, Y: b.Min.Y() - cutMargin},
		{X: b.Max.X() + cutMargin, Y: b.Min.Y() - cutMargin},
		{X: b.Max.X() + cutMargin, Y: b.Max.Y() + cutMargin},
		{X: b.Min.X() - cutMargin, Y: b.Max.Y() + cutMargin},
	}
	s := k.Prism(outline, top-bottom)
	return k.Translate(s, 0, 0, bottom)
}

// stairSolid unions all parts of a stair into one solid. Returns nil
// when no part has a usable outline.
func stairSolid(f *plan.Floor, k kernel.Kernel, stair plan.Stair, opts Options) kernel.Solid {
	var solid kernel.Solid
	for _, partID := range stair.Parts() {
		part := f.Entity(partID)
		if part == nil {
			continue
		}
		outline := usableOutline(part)
		if outline == nil {
			continue
		}
		prism := k.Prism(outline, opts.StairHeight)
		if solid == nil {
			solid = prism
		} else {
			solid = k.Union(solid, prism)
		}
	}
	return solid
}

// emit converts a solid to a named mesh.
func emit(k kernel.Kernel, s kernel.Solid, name string) (*kernel.Mesh, error) {
	mesh, err := k.ToMesh(s)
	if err != nil {
		return nil, fmt.Errorf("extrude: ToMesh failed for %s: %w", name, err)
	}
	mesh.PartName = name
	return mesh, nil
}
