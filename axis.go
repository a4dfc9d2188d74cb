package flex

// resolveDirection implements spec.md §4.5.1: Inherit takes the parent's
// resolved direction, defaulting to LTR at the root.
func resolveDirection(node *Node, parentDirection Direction) Direction {
	if node.style.Direction != DirectionInherit {
		return node.style.Direction
	}
	if parentDirection != DirectionInherit {
		return parentDirection
	}
	return LTR
}

func baseAxis(flexDir FlexDirectionKind) Axis {
	switch flexDir {
	case FlexDirectionColumn:
		return AxisColumn
	case FlexDirectionColumnReverse:
		return AxisColumnReverse
	case FlexDirectionRow:
		return AxisRow
	case FlexDirectionRowReverse:
		return AxisRowReverse
	}
	return AxisColumn
}

// resolveMainAxis implements spec.md §4.5.1 resolveAxis: RTL swaps ROW and
// ROW_REVERSE; columns are unaffected.
func resolveMainAxis(direction Direction, flexDir FlexDirectionKind) Axis {
	axis := baseAxis(flexDir)
	if direction != RTL {
		return axis
	}
	switch axis {
	case AxisRow:
		return AxisRowReverse
	case AxisRowReverse:
		return AxisRow
	default:
		return axis
	}
}

// crossAxisFor implements crossOf: columns cross to the resolved row axis;
// rows cross to plain (never reversed) columns.
func crossAxisFor(mainAxis Axis, direction Direction) Axis {
	if isColumnAxis(mainAxis) {
		if direction == RTL {
			return AxisRowReverse
		}
		return AxisRow
	}
	return AxisColumn
}

func dimOf(axis Axis) Dimension {
	if isColumnAxis(axis) {
		return DimensionHeight
	}
	return DimensionWidth
}

// mainPositions returns the physical Position indices (posTop/posBottom/
// posLeft/posRight) that are the leading and trailing edge of axis.
func mainPositions(axis Axis) (leading, trailing int) {
	switch axis {
	case AxisColumn:
		return posTop, posBottom
	case AxisColumnReverse:
		return posBottom, posTop
	case AxisRow:
		return posLeft, posRight
	case AxisRowReverse:
		return posRight, posLeft
	}
	return posTop, posBottom
}

func physicalPosIndex(e Edge) int {
	switch e {
	case EdgeTop:
		return posTop
	case EdgeBottom:
		return posBottom
	case EdgeLeft:
		return posLeft
	case EdgeRight:
		return posRight
	}
	panic("flex: not a physical edge")
}

// paddingBorderSum is the combined padding+border on both sides of dim.
// The sum is invariant under direction/reverse (leading+trailing just swap
// which physical side is which), so a single canonical (non-reversed) axis
// per dimension is enough.
func paddingBorderSum(node *Node, dim Dimension, direction Direction) float64 {
	axis := AxisRow
	if dim == DimensionHeight {
		axis = AxisColumn
	}
	return node.paddingBorderLeading(axis, direction) + node.paddingBorderTrailing(axis, direction)
}

func marginSum(node *Node, dim Dimension, direction Direction) float64 {
	axis := AxisRow
	if dim == DimensionHeight {
		axis = AxisColumn
	}
	return node.marginLeading(axis, direction) + node.marginTrailing(axis, direction)
}

// borderSum is like paddingBorderSum but border-only; Loop G's absolute
// dimension resolution (spec.md §4.5.13) subtracts only the parent's
// border, not its padding, unlike Loop A's equivalent pre-size step.
func borderSum(node *Node, dim Dimension, direction Direction) float64 {
	axis := AxisRow
	if dim == DimensionHeight {
		axis = AxisColumn
	}
	return node.style.Border.leading(axis, direction) + node.style.Border.trailing(axis, direction)
}

func edgeForPos(idx int) Edge {
	switch idx {
	case posTop:
		return EdgeTop
	case posBottom:
		return EdgeBottom
	case posLeft:
		return EdgeLeft
	default:
		return EdgeRight
	}
}

func oppositeEdge(e Edge) Edge {
	switch e {
	case EdgeTop:
		return EdgeBottom
	case EdgeBottom:
		return EdgeTop
	case EdgeLeft:
		return EdgeRight
	default:
		return EdgeLeft
	}
}

func (n *Node) paddingBorderLeading(axis Axis, direction Direction) float64 {
	return n.style.Padding.leading(axis, direction) + n.style.Border.leading(axis, direction)
}

func (n *Node) paddingBorderTrailing(axis Axis, direction Direction) float64 {
	return n.style.Padding.trailing(axis, direction) + n.style.Border.trailing(axis, direction)
}

func (n *Node) marginLeading(axis Axis, direction Direction) float64 {
	return n.style.Margin.leading(axis, direction)
}

func (n *Node) marginTrailing(axis Axis, direction Direction) float64 {
	return n.style.Margin.trailing(axis, direction)
}

// boundAxis clamps v into node's min/max for dim (spec.md §4.5.14).
func boundAxis(node *Node, dim Dimension, v float64) float64 {
	return bound(node.style.MinDimensions[dim], node.style.MaxDimensions[dim], v)
}

// isRowLike reports whether axis runs horizontally (ROW or ROW_REVERSE).
func isRowLike(axis Axis) bool {
	return axis == AxisRow || axis == AxisRowReverse
}
