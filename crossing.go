package vecbool

import "sort"

// EdgeCrossing is a mutable marker attached to an edge at a parameter,
// paired with its counterpart crossing on the other curve at the same
// geometric location. The pairing is symmetric: X.Counterpart.Counterpart
// is always X while both crossings remain live.
type EdgeCrossing struct {
	Intersection Intersection
	Edge         *Edge
	Counterpart  *EdgeCrossing

	Entry        bool
	Processed    bool
	SelfCrossing bool
	FromOverlap  bool
}

// Parameter returns the crossing's position on its own edge (T1 if this
// crossing's Intersection was built with Edge's curve as curve1, else T2 --
// callers always construct crossings with their own edge as Curve1, so this
// is simply T1).
func (x *EdgeCrossing) Parameter() float64 {
	return x.Intersection.T1
}

// insertCrossing adds x to e's parameter-ordered crossing list.
func (e *Edge) insertCrossing(x *EdgeCrossing) {
	x.Edge = e
	i := sort.Search(len(e.crossings), func(i int) bool {
		return e.crossings[i].Parameter() >= x.Parameter()
	})
	e.crossings = append(e.crossings, nil)
	copy(e.crossings[i+1:], e.crossings[i:])
	e.crossings[i] = x
}

// removeCrossing removes x from its edge's list. The counterpart is left
// untouched: the caller must remove it explicitly to preserve the pairing
// invariant.
func (e *Edge) removeCrossing(x *EdgeCrossing) {
	for i, c := range e.crossings {
		if c == x {
			e.crossings = append(e.crossings[:i], e.crossings[i+1:]...)
			return
		}
	}
}

func (e *Edge) firstCrossing() *EdgeCrossing {
	if len(e.crossings) == 0 {
		return nil
	}
	return e.crossings[0]
}

func (e *Edge) lastCrossing() *EdgeCrossing {
	if len(e.crossings) == 0 {
		return nil
	}
	return e.crossings[len(e.crossings)-1]
}

func (e *Edge) firstNonSelfCrossing() *EdgeCrossing {
	for _, c := range e.crossings {
		if !c.SelfCrossing {
			return c
		}
	}
	return nil
}

func (e *Edge) lastNonSelfCrossing() *EdgeCrossing {
	for i := len(e.crossings) - 1; i >= 0; i-- {
		if !e.crossings[i].SelfCrossing {
			return e.crossings[i]
		}
	}
	return nil
}

// nextCrossing yields the crossing following x on the same edge, wrapping
// to the first crossing of the next edge in the contour when x is last on
// its edge; a crossing that is alone in its contour wraps back to itself.
// Returns nil only when x has no edge or no crossing is found on the
// following edges.
func nextCrossing(x *EdgeCrossing) *EdgeCrossing {
	e := x.Edge
	if e == nil {
		return nil
	}
	for i, c := range e.crossings {
		if c == x {
			if i+1 < len(e.crossings) {
				return e.crossings[i+1]
			}
			break
		}
	}
	return firstCrossingFrom(e.next())
}

func previousCrossing(x *EdgeCrossing) *EdgeCrossing {
	e := x.Edge
	if e == nil {
		return nil
	}
	for i, c := range e.crossings {
		if c == x {
			if i > 0 {
				return e.crossings[i-1]
			}
			break
		}
	}
	return lastCrossingFrom(e.previous())
}

// firstCrossingFrom walks forward from e (inclusive) until it finds an edge
// with at least one crossing, wrapping around the contour at most once.
func firstCrossingFrom(e *Edge) *EdgeCrossing {
	if e == nil {
		return nil
	}
	start := e
	for {
		if c := e.firstCrossing(); c != nil {
			return c
		}
		e = e.next()
		if e == start || e == nil {
			return nil
		}
	}
}

func lastCrossingFrom(e *Edge) *EdgeCrossing {
	if e == nil {
		return nil
	}
	start := e
	for {
		if c := e.lastCrossing(); c != nil {
			return c
		}
		e = e.previous()
		if e == start || e == nil {
			return nil
		}
	}
}

// maxCrossingWalk bounds the self-crossing skip loops below. A contour can
// only ever hold finitely many crossings, so a walk that exceeds this many
// steps without finding a non-self crossing means every crossing in the
// contour is a self-crossing; returning nil then is correct (there is
// nothing else to find), not a truncation of real results.
const maxCrossingWalk = 1 << 20

func nextNonSelfCrossing(x *EdgeCrossing) *EdgeCrossing {
	c := nextCrossing(x)
	for i := 0; c != nil && c.SelfCrossing; i++ {
		if i >= maxCrossingWalk {
			return nil
		}
		c = nextCrossing(c)
	}
	return c
}

func previousNonSelfCrossing(x *EdgeCrossing) *EdgeCrossing {
	c := previousCrossing(x)
	for i := 0; c != nil && c.SelfCrossing; i++ {
		if i >= maxCrossingWalk {
			return nil
		}
		c = previousCrossing(c)
	}
	return c
}
