package carousel

// Tier is the visual treatment bucket a renderer applies to an item
type Tier int

const (
	// TierCenter is the active item: full opacity, no blur, on top
	TierCenter Tier = iota
	// TierAdjacent is one step either side: reduced opacity and blurred
	TierAdjacent
	// TierHidden is everything further away: culled
	TierHidden
)

// String returns the tier name used in logs and CSS classes
func (t Tier) String() string {
	switch t {
	case TierCenter:
		return "center"
	case TierAdjacent:
		return "adjacent"
	default:
		return "hidden"
	}
}

// Placement is what a renderer needs to draw one item
type Placement struct {
	Index    int
	Position int
	Active   bool
	Tier     Tier
}

// Side returns -1 for items left of center, 1 for items right of it and 0 for the center
func (p Placement) Side() int {
	switch {
	case p.Position < 0:
		return -1
	case p.Position > 0:
		return 1
	default:
		return 0
	}
}

// TierFor maps a relative position to its tier
func TierFor(position int) Tier {
	switch position {
	case 0:
		return TierCenter
	case -1, 1:
		return TierAdjacent
	default:
		return TierHidden
	}
}

// Placement returns the placement of a single item
func (c *Controller) Placement(index int) Placement {
	pos := c.RelativePosition(index)
	return Placement{
		Index:    index,
		Position: pos,
		Active:   pos == 0,
		Tier:     TierFor(pos),
	}
}

// Placements returns one placement per item, in item order
func (c *Controller) Placements() []Placement {
	out := make([]Placement, c.n)
	for i := range out {
		out[i] = c.Placement(i)
	}
	return out
}

// Visible returns the placements that are not culled, ordered left to right
func (c *Controller) Visible() []Placement {
	var left, center, right []Placement
	for _, p := range c.Placements() {
		if p.Tier == TierHidden {
			continue
		}
		switch p.Side() {
		case -1:
			left = append(left, p)
		case 1:
			right = append(right, p)
		default:
			center = append(center, p)
		}
	}
	out := append(left, center...)
	return append(out, right...)
}
