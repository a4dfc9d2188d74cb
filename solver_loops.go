package flex

// lineA is the per-line result of Loop A: which children belong to this
// line, the line's content-only main-axis extent, and the absolute/flex
// children discovered while classifying it.
type lineA struct {
	endLine        int
	mainContentDim float64
	flexChildren   []*Node
	absoluteChildren []*Node
	count          int
}

// layoutLineA implements spec.md §4.5.4: it classifies children starting at
// startLine, pre-sizing stretch and absolute children and recursing into
// non-flexible relative ones, until flexWrap breaks the line or the
// children run out. The simple-stack fast path described in the spec is a
// pure positioning optimization (Loops C/D already produce the identical
// result when firstComplexMain/Cross == startLine) and is intentionally
// not implemented.
func layoutLineA(
	node *Node, startLine, n, lineIdx int,
	mainAxis, crossAxis Axis, mainDim, crossDim Dimension,
	mainDimDefined bool, definedMainDim float64,
	direction Direction, parentMaxWidth float64, ctx *layoutContext,
) lineA {
	mainContentDim := 0.0
	var flexChildren []*Node
	var absoluteChildren []*Node
	flexibleCount := 0
	nonFlexibleCount := 0
	endLine := startLine

	for i := startLine; i < n; i++ {
		child := node.Child(i)
		child.layout.lineIndex = lineIdx

		if child.style.PositionType == PositionAbsolute {
			presizeAbsoluteChild(node, child, direction)
			maxWidth := contentWidthConstraint(node, parentMaxWidth, direction)
			layoutNode(ctx, child, maxWidth, direction)
			absoluteChildren = append(absoluteChildren, child)
			endLine = i + 1
			continue
		}

		effAlign := effectiveAlignItem(child.style.AlignSelf, node.style.AlignItems)
		if effAlign == AlignStretch && IsUndefined(child.style.Dimensions[crossDim]) {
			parentCross := node.layout.Dimensions[crossDim]
			crossPadBorder := paddingBorderSum(node, crossDim, direction)
			childMargin := marginSum(child, crossDim, direction)
			v := maxf(boundAxis(child, crossDim, parentCross-crossPadBorder-childMargin), paddingBorderSum(child, crossDim, direction))
			child.layout.Dimensions[crossDim] = v
		}

		isFlexible := child.style.Flex > 0 && mainDimDefined
		var nextContentDim float64
		if isFlexible {
			nextContentDim = paddingBorderSum(child, mainDim, direction) + marginSum(child, mainDim, direction)
		} else {
			maxWidth := contentWidthConstraint(node, parentMaxWidth, direction)
			layoutNode(ctx, child, maxWidth, direction)
			nextContentDim = orZero(child.layout.Dimensions[mainDim]) + marginSum(child, mainDim, direction)
		}

		if node.style.FlexWrap == WrapWrap && mainDimDefined && (mainContentDim+nextContentDim) > definedMainDim && i != startLine {
			endLine = i
			break
		}

		if isFlexible {
			flexChildren = append(flexChildren, child)
			flexibleCount++
		} else {
			nonFlexibleCount++
		}
		mainContentDim += nextContentDim
		endLine = i + 1
	}

	return lineA{
		endLine:          endLine,
		mainContentDim:   mainContentDim,
		flexChildren:     flexChildren,
		absoluteChildren: absoluteChildren,
		count:            flexibleCount + nonFlexibleCount,
	}
}

// presizeAbsoluteChild implements the absolute-child bullet of spec.md
// §4.5.4: when the parent's dimension is known, the child's own dimension
// is unstyled, and both offsets on that axis are set, the child's size on
// that axis is fully determined without waiting for the parent's final
// size.
func presizeAbsoluteChild(node, child *Node, direction Direction) {
	for _, d := range [...]Dimension{DimensionWidth, DimensionHeight} {
		leadIdx, trailIdx := posLeft, posRight
		if d == DimensionHeight {
			leadIdx, trailIdx = posTop, posBottom
		}
		leadOff := child.style.Position[leadIdx]
		trailOff := child.style.Position[trailIdx]
		if IsDefined(node.layout.Dimensions[d]) && IsUndefined(child.style.Dimensions[d]) && isSet(leadOff) && isSet(trailOff) {
			v := node.layout.Dimensions[d] - paddingBorderSum(node, d, direction) - marginSum(child, d, direction) - leadOff - trailOff
			child.layout.Dimensions[d] = maxf(boundAxis(child, d, v), paddingBorderSum(child, d, direction))
		}
	}
}

// resolveFlexChildren implements Loop B (spec.md §4.5.5): a two-phase
// min/max clamp followed by the final dimension assignment and recursive
// layout of every flexible child on this line.
func resolveFlexChildren(flexChildren []*Node, remainingMainDim float64, mainDim Dimension, node *Node, parentMaxWidth float64, direction Direction, ctx *layoutContext) {
	if len(flexChildren) == 0 {
		return
	}
	totalFlex := 0.0
	for _, c := range flexChildren {
		totalFlex += c.style.Flex
	}

	flexibleMainDim := remainingMainDim / totalFlex
	clamped := make(map[*Node]float64, len(flexChildren))
	for _, c := range flexChildren {
		base := flexibleMainDim*c.style.Flex + paddingBorderSum(c, mainDim, direction)
		b := boundAxis(c, mainDim, base)
		if !eq(base, b) {
			remainingMainDim -= b
			totalFlex -= c.style.Flex
			clamped[c] = b
		}
	}
	flexibleMainDim = 0
	if totalFlex > 0 {
		flexibleMainDim = maxf(remainingMainDim/totalFlex, 0)
	}

	for _, c := range flexChildren {
		dim, ok := clamped[c]
		if !ok {
			dim = boundAxis(c, mainDim, flexibleMainDim*c.style.Flex+paddingBorderSum(c, mainDim, direction))
		}
		c.layout.Dimensions[mainDim] = dim
		maxWidth := contentWidthConstraint(node, parentMaxWidth, direction)
		layoutNode(ctx, c, maxWidth, direction)
	}
}

// justifyOffsets implements spec.md §4.5.6: justify-content only
// redistributes space when the line has no flex children, since flex
// growth already consumed it.
func justifyOffsets(justify Justify, remainingMainDim float64, flexChildren []*Node, count int) (leadingMainDim, betweenMainDim float64) {
	if len(flexChildren) > 0 {
		return 0, 0
	}
	switch justify {
	case JustifyCenter:
		return remainingMainDim / 2, 0
	case JustifyFlexEnd:
		return remainingMainDim, 0
	case JustifySpaceBetween:
		if count > 1 {
			return 0, maxf(remainingMainDim, 0) / float64(count-1)
		}
		return 0, 0
	case JustifySpaceAround:
		between := 0.0
		if count > 0 {
			between = remainingMainDim / float64(count)
		}
		return between / 2, between
	default:
		return 0, 0
	}
}

// positionAbsoluteOnAxis overrides the accumulated flow position of an
// absolutely positioned child on one axis, per Loops C/D (spec.md
// §4.5.7/§4.5.8): only the parent's border (not padding) and the child's
// own margin participate.
func positionAbsoluteOnAxis(node, child *Node, axis Axis, direction Direction, posLeadIdx int) {
	off := child.style.Position[posLeadIdx]
	if !isSet(off) {
		return
	}
	child.layout.Position[posLeadIdx] = off + node.style.Border.leading(axis, direction) + child.marginLeading(axis, direction)
}

// marginAndRelBaseline recomputes the margin+relative-position baseline
// spec.md §4.5.2 seeds into a node's own layout.Position slot. Loop E must
// re-derive it because by the time it runs, Loop D has already folded the
// line's flow offset into the same slot.
func marginAndRelBaseline(node *Node, posIdx int, direction Direction) float64 {
	edge := edgeForPos(posIdx)
	rel := relativePositionFor(node, edge, oppositeEdge(edge))
	axis := AxisRow
	if posIdx == posTop || posIdx == posBottom {
		axis = AxisColumn
	}
	if posIdx == physicalPosIndex(leadingFallback(axis, direction)) {
		return node.marginLeading(axis, direction) + rel
	}
	return node.marginTrailing(axis, direction) + rel
}

// backfillTrailing implements Loop F (spec.md §4.5.12): once an axis's
// intrinsic dimension becomes known, every relative child's trailing
// position on that axis — left unset while the dimension was undefined —
// can finally be computed.
func backfillTrailing(node *Node, dim Dimension, posLead, posTrail int) {
	for i := 0; i < node.ChildCount(); i++ {
		c := node.Child(i)
		if c.style.PositionType == PositionAbsolute {
			continue
		}
		if IsDefined(c.layout.Dimensions[dim]) {
			c.layout.Position[posTrail] = node.layout.Dimensions[dim] - c.layout.Dimensions[dim] - c.layout.Position[posLead]
		}
	}
}

// alignContentAcrossLines implements Loop E (spec.md §4.5.10): only
// meaningful with more than one wrapped line, it distributes align-content
// space between lines and re-positions every relative child against its
// own line's actual height rather than the whole container's.
func alignContentAcrossLines(
	node *Node, linesCount int, crossDim Dimension, crossPosLead, crossPosTrail int,
	direction Direction, leadingPadBorderCross, trailingPadBorderCross, totalLinesCrossDim float64,
) {
	remainingAlignContentDim := node.layout.Dimensions[crossDim] - totalLinesCrossDim - leadingPadBorderCross - trailingPadBorderCross
	currentLead := leadingPadBorderCross
	crossDimLeadPerLine := 0.0
	switch node.style.AlignContent {
	case AlignFlexEnd:
		currentLead += remainingAlignContentDim
	case AlignCenter:
		currentLead += remainingAlignContentDim / 2
	case AlignStretch:
		if remainingAlignContentDim > 0 {
			crossDimLeadPerLine = remainingAlignContentDim / float64(linesCount)
		}
	}

	n := node.ChildCount()
	for line := 0; line < linesCount; line++ {
		lineHeight := 0.0
		for i := 0; i < n; i++ {
			c := node.Child(i)
			if c.style.PositionType == PositionAbsolute || c.layout.lineIndex != line {
				continue
			}
			if IsDefined(c.layout.Dimensions[crossDim]) {
				lineHeight = maxf(lineHeight, boundAxis(c, crossDim, c.layout.Dimensions[crossDim]+marginSum(c, crossDim, direction)))
			}
		}
		lineHeight += crossDimLeadPerLine

		for i := 0; i < n; i++ {
			c := node.Child(i)
			if c.style.PositionType == PositionAbsolute || c.layout.lineIndex != line {
				continue
			}
			effAlign := effectiveAlignItem(c.style.AlignSelf, node.style.AlignItems)
			if effAlign == AlignStretch && IsUndefined(c.style.Dimensions[crossDim]) {
				v := maxf(boundAxis(c, crossDim, lineHeight-marginSum(c, crossDim, direction)), paddingBorderSum(c, crossDim, direction))
				c.layout.Dimensions[crossDim] = v
			}
			footprint := 0.0
			if IsDefined(c.layout.Dimensions[crossDim]) {
				footprint = c.layout.Dimensions[crossDim] + marginSum(c, crossDim, direction)
			}
			remaining := lineHeight - footprint
			leadingCrossDim := 0.0
			switch effAlign {
			case AlignCenter:
				leadingCrossDim = remaining / 2
			case AlignFlexEnd:
				leadingCrossDim = remaining
			}
			c.layout.Position[crossPosLead] = marginAndRelBaseline(c, crossPosLead, direction) + currentLead + leadingCrossDim
			if IsDefined(c.layout.Dimensions[crossDim]) {
				c.layout.Position[crossPosTrail] = node.layout.Dimensions[crossDim] - c.layout.Dimensions[crossDim] - c.layout.Position[crossPosLead]
			}
		}
		currentLead += lineHeight
	}
}

// finalizeAbsoluteChildren implements Loop G (spec.md §4.5.13). Unlike Loop
// A's absolute pre-size, this step subtracts only the parent's border, not
// its padding — the asymmetry is carried over verbatim.
func finalizeAbsoluteChildren(node *Node, absoluteChildren []*Node, direction Direction) {
	for _, child := range absoluteChildren {
		for _, d := range [...]Dimension{DimensionWidth, DimensionHeight} {
			leadIdx, trailIdx := posLeft, posRight
			if d == DimensionHeight {
				leadIdx, trailIdx = posTop, posBottom
			}
			leadOff := child.style.Position[leadIdx]
			trailOff := child.style.Position[trailIdx]
			if IsDefined(node.layout.Dimensions[d]) && IsUndefined(child.style.Dimensions[d]) && isSet(leadOff) && isSet(trailOff) {
				v := node.layout.Dimensions[d] - borderSum(node, d, direction) - marginSum(child, d, direction) - leadOff - trailOff
				child.layout.Dimensions[d] = maxf(boundAxis(child, d, v), paddingBorderSum(child, d, direction))
			}
			if isSet(trailOff) && !isSet(leadOff) && IsDefined(child.layout.Dimensions[d]) {
				child.layout.Position[leadIdx] = node.layout.Dimensions[d] - child.layout.Dimensions[d] - trailOff
			}
		}
		child.layout.nextAbsoluteChild = nil
	}
}
