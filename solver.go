package flex

// CalculateLayout resolves concrete (x, y, width, height) rectangles for
// root and its whole subtree, given the width available to root from its
// (possibly nonexistent) owner. It is the sole public entry point into the
// solver; callers typically invoke it on a root node, but any node may be
// laid out standalone.
func CalculateLayout(root *Node, parentWidth float64, opts ...Option) error {
	ctx := newLayoutContext(nil)
	for _, opt := range opts {
		opt(ctx)
	}
	ctx.logger.Debug("calculate-layout", "parentWidth", parentWidth)
	layoutNode(ctx, root, parentWidth, LTR)
	return nil
}

// layoutNode is the memoizing recursion entry described in spec.md §4.4: it
// decides whether node needs recomputing, and if so delegates to
// layoutNodeImpl and refreshes the cache; otherwise it reuses the cached
// result, keeping the line index the parent has just assigned to node.
func layoutNode(ctx *layoutContext, node *Node, parentMaxWidth float64, parentDirection Direction) {
	needsRelayout := node.IsDirty() ||
		!eq(node.layout.Dimensions[DimensionWidth], node.cache.RequestedWidth) ||
		!eq(node.layout.Dimensions[DimensionHeight], node.cache.RequestedHeight) ||
		!eq(parentMaxWidth, node.cache.ParentMaxWidth)

	if !needsRelayout && node.cache.valid {
		ctx.logger.Trace("layout-cache-hit", "requestedWidth", node.cache.RequestedWidth)
		// lineIndex is the parent's scratch for the pass in progress, not
		// part of node's own result; a cached copy may name a stale line.
		lineIndex := node.layout.lineIndex
		node.layout = node.cache.Result
		node.layout.lineIndex = lineIndex
		return
	}

	node.cache.ParentMaxWidth = parentMaxWidth

	layoutNodeImpl(ctx, node, parentMaxWidth, parentDirection)

	// Recorded after layoutNodeImpl, not before: the node's own dimensions
	// slot doubles as both a caller-writable pre-size constraint (flex/
	// absolute pre-sizing, a measured leaf's style dims) and the resolved
	// output, so the cache key must reflect what this call settled on —
	// comparing against the pre-resolution snapshot would never match a
	// stable node's own leftover output on a later idempotent call.
	node.cache.RequestedWidth = node.layout.Dimensions[DimensionWidth]
	node.cache.RequestedHeight = node.layout.Dimensions[DimensionHeight]
	node.cache.Result = node.layout
	node.cache.valid = true
	node.state = StateHasNewLayout
	ctx.logger.Trace("layout-recomputed", "width", node.layout.Dimensions[DimensionWidth], "height", node.layout.Dimensions[DimensionHeight])
}

// contentWidthConstraint resolves the available width for node's own
// content: its styled width if set, else its currently laid-out width if
// already known, else ownerMaxWidth minus node's own width margin — in
// every case minus node's own width padding+border. Used both as
// the measure-function's availableWidth (spec.md §4.5.3) and as the
// maxWidth handed to a container's children (spec.md §4.5.4).
func contentWidthConstraint(node *Node, ownerMaxWidth float64, direction Direction) float64 {
	var avail float64
	switch {
	case IsDefined(node.style.Dimensions[DimensionWidth]):
		avail = node.style.Dimensions[DimensionWidth]
	case IsDefined(node.layout.Dimensions[DimensionWidth]):
		avail = node.layout.Dimensions[DimensionWidth]
	default:
		avail = ownerMaxWidth - marginSum(node, DimensionWidth, direction)
	}
	return avail - paddingBorderSum(node, DimensionWidth, direction)
}

func relativePositionFor(node *Node, edge, opposite Edge) float64 {
	if v := node.style.Position[physicalPosIndex(edge)]; IsUndefined(v) == false {
		return v
	}
	if v := node.style.Position[physicalPosIndex(opposite)]; IsUndefined(v) == false {
		return -v
	}
	return 0
}

// seedMarginAndRelativePosition implements the tail of spec.md §4.5.2: it
// writes node's own margin plus any relative-position offset into all four
// slots of its layout.Position, the baseline its parent's main/cross
// positioning passes will accumulate on top of.
func seedMarginAndRelativePosition(node *Node, direction Direction) {
	relLeft := relativePositionFor(node, EdgeLeft, EdgeRight)
	relRight := relativePositionFor(node, EdgeRight, EdgeLeft)
	relTop := relativePositionFor(node, EdgeTop, EdgeBottom)
	relBottom := relativePositionFor(node, EdgeBottom, EdgeTop)

	relFor := func(e Edge) float64 {
		switch e {
		case EdgeLeft:
			return relLeft
		case EdgeRight:
			return relRight
		case EdgeTop:
			return relTop
		default:
			return relBottom
		}
	}

	for _, axis := range [...]Axis{AxisRow, AxisColumn} {
		leadEdge := leadingFallback(axis, direction)
		trailEdge := trailingFallback(axis, direction)
		node.layout.Position[physicalPosIndex(leadEdge)] = node.marginLeading(axis, direction) + relFor(leadEdge)
		node.layout.Position[physicalPosIndex(trailEdge)] = node.marginTrailing(axis, direction) + relFor(trailEdge)
	}
}

func resetChildLayoutForPass(c *Node) {
	c.layout.Position = [4]float64{Undefined, Undefined, Undefined, Undefined}
	c.layout.lineIndex = 0
	c.layout.nextFlexChild = nil
	c.layout.nextAbsoluteChild = nil
}

// layoutNodeImpl runs the six-pass algorithm of spec.md §4.5 once, assuming
// the caller (layoutNode) has already decided a recompute is necessary.
func layoutNodeImpl(ctx *layoutContext, node *Node, parentMaxWidth float64, parentDirection Direction) {
	direction := resolveDirection(node, parentDirection)
	node.layout.Direction = direction

	mainAxis := resolveMainAxis(direction, node.style.FlexDirection)
	crossAxis := crossAxisFor(mainAxis, direction)
	mainDim := dimOf(mainAxis)
	crossDim := dimOf(crossAxis)

	for i := 0; i < node.ChildCount(); i++ {
		resetChildLayoutForPass(node.Child(i))
	}

	for _, d := range [...]Dimension{DimensionWidth, DimensionHeight} {
		if IsDefined(node.style.Dimensions[d]) && IsUndefined(node.layout.Dimensions[d]) {
			node.layout.Dimensions[d] = node.style.Dimensions[d]
		}
		if IsDefined(node.layout.Dimensions[d]) {
			if floor := paddingBorderSum(node, d, direction); node.layout.Dimensions[d] < floor {
				node.layout.Dimensions[d] = floor
			}
		}
	}

	seedMarginAndRelativePosition(node, direction)

	if node.IsMeasureDefined() {
		width := contentWidthConstraint(node, parentMaxWidth, direction)
		if IsUndefined(node.layout.Dimensions[DimensionWidth]) || IsUndefined(node.layout.Dimensions[DimensionHeight]) {
			out := ctx.measure(node, width)
			if IsUndefined(node.layout.Dimensions[DimensionWidth]) {
				node.layout.Dimensions[DimensionWidth] = boundAxis(node, DimensionWidth, out.Width+paddingBorderSum(node, DimensionWidth, direction))
			}
			if IsUndefined(node.layout.Dimensions[DimensionHeight]) {
				node.layout.Dimensions[DimensionHeight] = boundAxis(node, DimensionHeight, out.Height+paddingBorderSum(node, DimensionHeight, direction))
			}
		}
		if node.ChildCount() == 0 {
			return
		}
	}

	n := node.ChildCount()
	mainDimDefined := IsDefined(node.layout.Dimensions[mainDim])

	leadingPadBorderMain := node.paddingBorderLeading(mainAxis, direction)
	trailingPadBorderMain := node.paddingBorderTrailing(mainAxis, direction)
	leadingPadBorderCross := node.paddingBorderLeading(crossAxis, direction)
	trailingPadBorderCross := node.paddingBorderTrailing(crossAxis, direction)

	// definedMainDim is the main axis's content box (own padding+border
	// already excluded): Loop A's wrap-break check and Loop B's flexible
	// distribution both compare child footprints against this, not the
	// raw outer dimension.
	definedMainDim := node.layout.Dimensions[mainDim] - leadingPadBorderMain - trailingPadBorderMain
	crossDimDefinedOuter := IsDefined(node.layout.Dimensions[crossDim])

	mainPosLead, mainPosTrail := mainPositions(mainAxis)
	crossPosLead, crossPosTrail := mainPositions(crossAxis)

	var linesCrossDim []float64
	var linesCrossDimAccum float64
	var lineMainDimMax float64
	var absoluteChildren []*Node
	var lastAbsoluteChild *Node
	lineIdx := 0

	startLine := 0
	for startLine < n {
		line := layoutLineA(node, startLine, n, lineIdx, mainAxis, crossAxis, mainDim, crossDim,
			mainDimDefined, definedMainDim, direction, parentMaxWidth, ctx)
		endLine := line.endLine

		for _, c := range line.absoluteChildren {
			if lastAbsoluteChild == nil {
				absoluteChildren = append(absoluteChildren, c)
			} else {
				lastAbsoluteChild.layout.nextAbsoluteChild = c
				absoluteChildren = append(absoluteChildren, c)
			}
			lastAbsoluteChild = c
		}

		remainingMainDim := 0.0
		if mainDimDefined {
			remainingMainDim = definedMainDim - line.mainContentDim
		}

		resolveFlexChildren(line.flexChildren, remainingMainDim, mainDim, node, parentMaxWidth, direction, ctx)

		leadingMainDim, betweenMainDim := justifyOffsets(node.style.JustifyContent, remainingMainDim, line.flexChildren, line.count)

		runningMain := leadingPadBorderMain + leadingMainDim
		crossDimLine := 0.0
		for i := startLine; i < endLine; i++ {
			child := node.Child(i)
			if child.style.PositionType == PositionAbsolute {
				positionAbsoluteOnAxis(node, child, mainAxis, direction, mainPosLead)
				continue
			}
			child.layout.Position[mainPosLead] += runningMain
			if mainDimDefined && IsDefined(child.layout.Dimensions[mainDim]) {
				child.layout.Position[mainPosTrail] = node.layout.Dimensions[mainDim] - child.layout.Dimensions[mainDim] - child.layout.Position[mainPosLead]
			}
			runningMain += betweenMainDim + orZero(child.layout.Dimensions[mainDim]) + marginSum(child, mainDim, direction)
			if IsDefined(child.layout.Dimensions[crossDim]) {
				crossDimLine = maxf(crossDimLine, boundAxis(child, crossDim, child.layout.Dimensions[crossDim]+marginSum(child, crossDim, direction)))
			}
		}

		containerCrossAxis := node.layout.Dimensions[crossDim]
		if IsUndefined(containerCrossAxis) {
			containerCrossAxis = maxf(boundAxis(node, crossDim, crossDimLine+leadingPadBorderCross+trailingPadBorderCross), leadingPadBorderCross+trailingPadBorderCross)
		}
		remainingCrossDim := containerCrossAxis - crossDimLine - leadingPadBorderCross - trailingPadBorderCross

		for i := startLine; i < endLine; i++ {
			child := node.Child(i)
			if child.style.PositionType == PositionAbsolute {
				positionAbsoluteOnAxis(node, child, crossAxis, direction, crossPosLead)
				continue
			}
			effAlign := effectiveAlignItem(child.style.AlignSelf, node.style.AlignItems)
			leadingCrossDim := leadingPadBorderCross
			switch {
			case effAlign == AlignStretch && IsUndefined(child.style.Dimensions[crossDim]):
				v := maxf(boundAxis(child, crossDim, containerCrossAxis-leadingPadBorderCross-trailingPadBorderCross-marginSum(child, crossDim, direction)), paddingBorderSum(child, crossDim, direction))
				child.layout.Dimensions[crossDim] = v
			case effAlign == AlignCenter:
				leadingCrossDim += remainingCrossDim / 2
			case effAlign == AlignFlexEnd:
				leadingCrossDim += remainingCrossDim
			}
			child.layout.Position[crossPosLead] += linesCrossDimAccum + leadingCrossDim
			if crossDimDefinedOuter && IsDefined(child.layout.Dimensions[crossDim]) {
				child.layout.Position[crossPosTrail] = node.layout.Dimensions[crossDim] - child.layout.Dimensions[crossDim] - child.layout.Position[crossPosLead]
			}
		}

		linesCrossDim = append(linesCrossDim, crossDimLine)
		linesCrossDimAccum += crossDimLine
		lineMainDimMax = maxf(lineMainDimMax, runningMain)

		lineIdx++
		startLine = endLine
	}
	linesCount := lineIdx

	var needsMainTrailingPos, needsCrossTrailingPos bool
	if IsUndefined(node.layout.Dimensions[mainDim]) {
		node.layout.Dimensions[mainDim] = maxf(boundAxis(node, mainDim, lineMainDimMax+trailingPadBorderMain), paddingBorderSum(node, mainDim, direction))
		needsMainTrailingPos = true
	}
	if IsUndefined(node.layout.Dimensions[crossDim]) {
		node.layout.Dimensions[crossDim] = maxf(boundAxis(node, crossDim, linesCrossDimAccum+leadingPadBorderCross+trailingPadBorderCross), paddingBorderSum(node, crossDim, direction))
		needsCrossTrailingPos = true
		crossDimDefinedOuter = true
	}

	if linesCount > 1 && crossDimDefinedOuter {
		alignContentAcrossLines(node, linesCount, crossDim, crossPosLead, crossPosTrail, direction, leadingPadBorderCross, trailingPadBorderCross, linesCrossDimAccum)
	}

	if needsMainTrailingPos {
		backfillTrailing(node, mainDim, mainPosLead, mainPosTrail)
	}
	if needsCrossTrailingPos {
		backfillTrailing(node, crossDim, crossPosLead, crossPosTrail)
	}

	finalizeAbsoluteChildren(node, absoluteChildren, direction)
}
