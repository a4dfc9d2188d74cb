package flex

// Style setters. Each is idempotent on an equal value (float comparisons
// use the solver's tolerance) and otherwise dirties the node and its
// ancestors, per spec.md §4.2.

func (n *Node) SetDirection(v Direction) {
	if n.style.Direction == v {
		return
	}
	n.style.Direction = v
	n.markDirtyOrPanic()
}

func (n *Node) SetFlexDirection(v FlexDirectionKind) {
	if n.style.FlexDirection == v {
		return
	}
	n.style.FlexDirection = v
	n.markDirtyOrPanic()
}

func (n *Node) SetJustifyContent(v Justify) {
	if n.style.JustifyContent == v {
		return
	}
	n.style.JustifyContent = v
	n.markDirtyOrPanic()
}

func (n *Node) SetAlignItems(v Align) {
	if n.style.AlignItems == v {
		return
	}
	n.style.AlignItems = v
	n.markDirtyOrPanic()
}

func (n *Node) SetAlignSelf(v Align) {
	if n.style.AlignSelf == v {
		return
	}
	n.style.AlignSelf = v
	n.markDirtyOrPanic()
}

func (n *Node) SetAlignContent(v Align) {
	if n.style.AlignContent == v {
		return
	}
	n.style.AlignContent = v
	n.markDirtyOrPanic()
}

func (n *Node) SetPositionType(v PositionType) {
	if n.style.PositionType == v {
		return
	}
	n.style.PositionType = v
	n.markDirtyOrPanic()
}

func (n *Node) SetFlexWrap(v Wrap) {
	if n.style.FlexWrap == v {
		return
	}
	n.style.FlexWrap = v
	n.markDirtyOrPanic()
}

func (n *Node) SetFlex(v float64) {
	if eq(n.style.Flex, v) {
		return
	}
	n.style.Flex = v
	n.markDirtyOrPanic()
}

func (n *Node) SetDimension(dim Dimension, v float64) {
	if eq(n.style.Dimensions[dim], v) {
		return
	}
	n.style.Dimensions[dim] = v
	n.markDirtyOrPanic()
}

func (n *Node) SetMinDimension(dim Dimension, v float64) {
	if eq(n.style.MinDimensions[dim], v) {
		return
	}
	n.style.MinDimensions[dim] = v
	n.markDirtyOrPanic()
}

func (n *Node) SetMaxDimension(dim Dimension, v float64) {
	if eq(n.style.MaxDimensions[dim], v) {
		return
	}
	n.style.MaxDimensions[dim] = v
	n.markDirtyOrPanic()
}

// SetPosition sets one of the four position offsets (top, bottom, left,
// right — index with posTop etc.).
func (n *Node) SetPosition(edge int, v float64) {
	if eq(n.style.Position[edge], v) {
		return
	}
	n.style.Position[edge] = v
	n.markDirtyOrPanic()
}

func (n *Node) SetMargin(edge Edge, v float64) {
	if eq(n.style.Margin.Get(edge), v) {
		return
	}
	n.style.Margin.Set(edge, v)
	n.markDirtyOrPanic()
}

func (n *Node) SetPadding(edge Edge, v float64) {
	if eq(n.style.Padding.Get(edge), v) {
		return
	}
	n.style.Padding.Set(edge, v)
	n.markDirtyOrPanic()
}

func (n *Node) SetBorder(edge Edge, v float64) {
	if eq(n.style.Border.Get(edge), v) {
		return
	}
	n.style.Border.Set(edge, v)
	n.markDirtyOrPanic()
}
