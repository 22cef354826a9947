package spatial

import "egress/pkg/geom"

// Side names one lateral side of a bounding box. West/east are the min-x/
// max-x sides, south/north the min-y/max-y sides.
type Side int

const (
	SideWest Side = iota
	SideEast
	SideSouth
	SideNorth
)

func (s Side) String() string {
	switch s {
	case SideWest:
		return "west"
	case SideEast:
		return "east"
	case SideSouth:
		return "south"
	case SideNorth:
		return "north"
	default:
		return "unknown"
	}
}

// Strip is a thin probe rectangle just outside one side of a box.
type Strip struct {
	Side Side
	Box  geom.Box2
}

// ProbeStrips builds the four directional probe strips for b. Each strip's
// long axis runs along its side, overhanging by searchExpand at both ends;
// its short axis reaches searchExpand outward and sideMargin into the box,
// so walls nominally flush with the side still register.
func ProbeStrips(b geom.Box2, sideMargin, searchExpand float64) [4]Strip {
	x1, y1 := b.Min.X, b.Min.Y
	x2, y2 := b.Max.X, b.Max.Y
	return [4]Strip{
		{SideWest, geom.NewBox2(x1-searchExpand, y1-searchExpand, x1+sideMargin, y2+searchExpand)},
		{SideEast, geom.NewBox2(x2-sideMargin, y1-searchExpand, x2+searchExpand, y2+searchExpand)},
		{SideSouth, geom.NewBox2(x1-searchExpand, y1-searchExpand, x2+searchExpand, y1+sideMargin)},
		{SideNorth, geom.NewBox2(x1-searchExpand, y2-sideMargin, x2+searchExpand, y2+searchExpand)},
	}
}
