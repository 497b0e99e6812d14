package curve

// Kind classifies a point of an extremity set.
type Kind int

const (
	KindNone Kind = iota
	KindStart
	KindEnd
	KindMinimum
	KindMaximum
)

func (k Kind) String() string {
	switch k {
	case KindStart:
		return "start"
	case KindEnd:
		return "end"
	case KindMinimum:
		return "min"
	case KindMaximum:
		return "max"
	default:
		return "none"
	}
}

// Classify reports the extremity kind of points[i]. Endpoints win over local
// shape; a single point is reported as a start.
func Classify(points Series, i int) Kind {
	switch {
	case i < 0 || i >= len(points):
		return KindNone
	case i == 0:
		return KindStart
	case i == len(points)-1:
		return KindEnd
	}
	prev, cur, next := points[i-1].Y, points[i].Y, points[i+1].Y
	switch {
	case cur < prev && cur < next:
		return KindMinimum
	case cur > prev && cur > next:
		return KindMaximum
	default:
		return KindNone
	}
}

// Extremities returns the endpoints of points plus every interior strict local
// minimum or maximum, in input order. Points keep their original indices.
//
// Callers are expected to pass at least two points; shorter inputs are
// returned as a copy.
func Extremities(points Series) Series {
	if len(points) < 2 {
		return points.Clone()
	}
	out := make(Series, 0, len(points))
	for i := range points {
		if Classify(points, i) != KindNone {
			out = append(out, points[i])
		}
	}
	return out
}
