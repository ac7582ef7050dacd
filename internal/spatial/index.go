package spatial

import (
	"github.com/dhconnelly/rtreego"
)

// pointTolerance sizes the degenerate rectangle stored per pump.
// The index only needs distinct locations to stay distinct.
const pointTolerance = 1e-9

// pumpSite is one indexed pump location
type pumpSite struct {
	Index int // 1-based, matches the map labels
	Lat   float64
	Lon   float64
	rect  rtreego.Rect
}

// Bounds implements rtreego.Spatial interface.
func (s *pumpSite) Bounds() rtreego.Rect {
	return s.rect
}

// PumpIndex is an R-tree over pump locations for nearest-pump lookups
type PumpIndex struct {
	tree *rtreego.Rtree
	size int
}

// NewPumpIndex builds the index from pump coordinates, in input order
func NewPumpIndex(points []Point) *PumpIndex {
	tree := rtreego.NewTree(2, 25, 50)
	for i, p := range points {
		tree.Insert(&pumpSite{
			Index: i + 1,
			Lat:   p.Lat,
			Lon:   p.Lon,
			rect:  rtreego.Point{p.Lon, p.Lat}.ToRect(pointTolerance),
		})
	}
	return &PumpIndex{tree: tree, size: len(points)}
}

// Size returns the number of indexed pumps
func (ix *PumpIndex) Size() int {
	return ix.size
}

// Nearest returns the 1-based index of the pump closest to the given
// location and the great-circle distance to it in meters.
// ok is false when the index is empty.
func (ix *PumpIndex) Nearest(lat, lon float64) (index int, meters float64, ok bool) {
	if ix.size == 0 {
		return 0, 0, false
	}

	obj := ix.tree.NearestNeighbor(rtreego.Point{lon, lat})
	site, valid := obj.(*pumpSite)
	if !valid {
		return 0, 0, false
	}

	return site.Index, HaversineDistance(lat, lon, site.Lat, site.Lon), true
}
