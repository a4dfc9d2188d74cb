package flex

// Direction is the writing direction a node's layout resolves against.
type Direction int

const (
	DirectionInherit Direction = iota
	LTR
	RTL
)

// FlexDirectionKind is the flex-direction of a container; it selects the
// main axis and, combined with Direction, its leading/trailing edges.
type FlexDirectionKind int

const (
	FlexDirectionColumn FlexDirectionKind = iota
	FlexDirectionColumnReverse
	FlexDirectionRow
	FlexDirectionRowReverse
)

// Justify is justify-content: distribution of children along the main axis.
type Justify int

const (
	JustifyFlexStart Justify = iota
	JustifyCenter
	JustifyFlexEnd
	JustifySpaceBetween
	JustifySpaceAround
)

// Align is align-items / align-self / align-content: distribution across
// the cross axis (or, for align-content, across wrapped lines).
type Align int

const (
	AlignAuto Align = iota
	AlignFlexStart
	AlignCenter
	AlignFlexEnd
	AlignStretch
)

// PositionType selects whether a child participates in flex flow.
type PositionType int

const (
	PositionRelative PositionType = iota
	PositionAbsolute
)

// Wrap is flex-wrap.
type Wrap int

const (
	NoWrap Wrap = iota
	WrapWrap
)

// Axis is a resolved layout axis: which pair of physical edges/dimension a
// quantity is measured along.
type Axis int

const (
	AxisColumn Axis = iota
	AxisColumnReverse
	AxisRow
	AxisRowReverse
)

// Dimension selects which of the two measured dimensions (width or height)
// is being referenced.
type Dimension int

const (
	DimensionWidth Dimension = iota
	DimensionHeight
)

// Style holds every per-node input attribute the solver consults. All
// numeric fields default to Undefined; enum fields default to their zero
// value per the table in spec.md §3.
type Style struct {
	Direction      Direction
	FlexDirection  FlexDirectionKind
	JustifyContent Justify
	AlignItems     Align
	AlignSelf      Align
	AlignContent   Align
	PositionType   PositionType
	FlexWrap       Wrap

	// Flex is a non-negative grow weight; > 0 marks the child flexible.
	Flex float64

	// Dimensions, MinDimensions and MaxDimensions are indexed by Dimension.
	Dimensions    [2]float64
	MinDimensions [2]float64
	MaxDimensions [2]float64

	// Position holds the four offsets (top, bottom, left, right), indexed
	// by posTop/posBottom/posLeft/posRight (not by Edge).
	Position [4]float64

	Margin  Spacing
	Padding Spacing
	Border  Spacing
}

// NewStyle returns a Style with spec.md §3's defaults: every numeric slot
// Undefined, AlignItems Stretch, AlignContent FlexStart, AlignSelf Auto.
func NewStyle() Style {
	s := Style{
		AlignItems:   AlignStretch,
		AlignSelf:    AlignAuto,
		AlignContent: AlignFlexStart,
		Flex:         0,
		Margin:       NewSpacing(),
		Padding:      NewSpacing(),
		Border:       NewSpacing(),
	}
	for i := range s.Dimensions {
		s.Dimensions[i] = Undefined
		s.MinDimensions[i] = Undefined
		s.MaxDimensions[i] = Undefined
	}
	for i := range s.Position {
		s.Position[i] = Undefined
	}
	return s
}

// effectiveAlignItem resolves a child's alignSelf against its parent's
// alignItems, honoring the Auto "inherit" default from spec.md §3.
func effectiveAlignItem(child, parentAlignItems Align) Align {
	if child == AlignAuto {
		return parentAlignItems
	}
	return child
}

// Indices into Style.Position and LayoutResult.Position. Only Top/Bottom/
// Left/Right are addressable; the order differs from Edge's, so
// physicalPosIndex converts an Edge to one of these.
const (
	posTop = iota
	posBottom
	posLeft
	posRight
)
