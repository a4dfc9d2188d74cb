package flex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireNoErr(t *testing.T, err error) {
	t.Helper()
	require.NoError(t, err)
}

// Seed scenario 1: single row, two equal flex children.
func TestSeedTwoEqualFlexChildren(t *testing.T) {
	root := New()
	root.SetFlexDirection(FlexDirectionRow)
	root.SetDimension(DimensionWidth, 200)
	root.SetDimension(DimensionHeight, 50)
	a, b := New(), New()
	a.SetFlex(1)
	b.SetFlex(1)
	requireNoErr(t, root.AddChild(a))
	requireNoErr(t, root.AddChild(b))

	require.NoError(t, CalculateLayout(root, 200))

	assert.Equal(t, 0.0, a.Layout().X())
	assert.Equal(t, 100.0, a.Layout().Width())
	assert.Equal(t, 100.0, b.Layout().X())
	assert.Equal(t, 100.0, b.Layout().Width())
}

// Seed scenario 2: padding + flex.
func TestSeedPaddingAndFlex(t *testing.T) {
	root := New()
	root.SetFlexDirection(FlexDirectionColumn)
	root.SetDimension(DimensionWidth, 100)
	root.SetDimension(DimensionHeight, 100)
	root.SetPadding(EdgeAll, 10)
	child := New()
	child.SetFlex(1)
	requireNoErr(t, root.AddChild(child))

	require.NoError(t, CalculateLayout(root, 100))

	assert.InDelta(t, 10, child.Layout().X(), tolerance)
	assert.InDelta(t, 10, child.Layout().Y(), tolerance)
	assert.InDelta(t, 80, child.Layout().Width(), tolerance)
	assert.InDelta(t, 80, child.Layout().Height(), tolerance)
}

// Seed scenario 3: justify-content SpaceBetween.
func TestSeedJustifySpaceBetween(t *testing.T) {
	root := New()
	root.SetFlexDirection(FlexDirectionRow)
	root.SetDimension(DimensionWidth, 300)
	root.SetDimension(DimensionHeight, 50)
	root.SetJustifyContent(JustifySpaceBetween)
	var cs []*Node
	for i := 0; i < 3; i++ {
		c := New()
		c.SetDimension(DimensionWidth, 50)
		requireNoErr(t, root.AddChild(c))
		cs = append(cs, c)
	}

	require.NoError(t, CalculateLayout(root, 300))

	assert.InDelta(t, 0, cs[0].Layout().X(), tolerance)
	assert.InDelta(t, 125, cs[1].Layout().X(), tolerance)
	assert.InDelta(t, 250, cs[2].Layout().X(), tolerance)
}

// Seed scenario 4: wrap. Container width fits exactly two 60-wide children
// per line (120), so the third child starts a new line.
func TestSeedFlexWrap(t *testing.T) {
	root := New()
	root.SetFlexDirection(FlexDirectionRow)
	root.SetFlexWrap(WrapWrap)
	root.SetDimension(DimensionWidth, 120)
	root.SetDimension(DimensionHeight, 200)
	var cs []*Node
	for i := 0; i < 4; i++ {
		c := New()
		c.SetDimension(DimensionWidth, 60)
		c.SetDimension(DimensionHeight, 20)
		requireNoErr(t, root.AddChild(c))
		cs = append(cs, c)
	}

	require.NoError(t, CalculateLayout(root, 120))

	wantX := []float64{0, 60, 0, 60}
	wantY := []float64{0, 0, 20, 20}
	for i, c := range cs {
		assert.InDelta(t, wantX[i], c.Layout().X(), tolerance, "child %d x", i)
		assert.InDelta(t, wantY[i], c.Layout().Y(), tolerance, "child %d y", i)
	}
}

// Seed scenario 5: absolute positioning with both offsets, no styled width.
func TestSeedAbsoluteBothOffsets(t *testing.T) {
	root := New()
	root.SetDimension(DimensionWidth, 200)
	root.SetDimension(DimensionHeight, 200)
	child := New()
	child.SetPositionType(PositionAbsolute)
	child.SetPosition(posLeft, 10)
	child.SetPosition(posRight, 20)
	requireNoErr(t, root.AddChild(child))

	require.NoError(t, CalculateLayout(root, 200))

	assert.InDelta(t, 10, child.Layout().X(), tolerance)
	assert.InDelta(t, 170, child.Layout().Width(), tolerance)
}

// Seed scenario 6: RTL row.
func TestSeedRTLRow(t *testing.T) {
	root := New()
	root.SetFlexDirection(FlexDirectionRow)
	root.SetDirection(RTL)
	root.SetDimension(DimensionWidth, 200)
	root.SetDimension(DimensionHeight, 50)
	a, b := New(), New()
	a.SetDimension(DimensionWidth, 50)
	b.SetDimension(DimensionWidth, 50)
	requireNoErr(t, root.AddChild(a))
	requireNoErr(t, root.AddChild(b))

	require.NoError(t, CalculateLayout(root, 200))

	assert.InDelta(t, 150, a.Layout().X(), tolerance)
	assert.InDelta(t, 100, b.Layout().X(), tolerance)
}

// Invariant 1: every node ends up with finite, non-negative width/height.
func TestInvariantFiniteNonNegativeDimensions(t *testing.T) {
	root := New()
	root.SetFlexDirection(FlexDirectionColumn)
	child := New()
	grandchild := New()
	requireNoErr(t, root.AddChild(child))
	requireNoErr(t, child.AddChild(grandchild))

	require.NoError(t, CalculateLayout(root, 50))

	for _, n := range []*Node{root, child, grandchild} {
		assert.True(t, IsDefined(n.Layout().Width()))
		assert.True(t, IsDefined(n.Layout().Height()))
	}
}

// Invariant 2: no styled dims, no measure -> size equals padding+border.
func TestInvariantSizeEqualsPaddingBorderWhenEmpty(t *testing.T) {
	root := New()
	root.SetPadding(EdgeAll, 3)
	root.SetBorder(EdgeAll, 2)

	require.NoError(t, CalculateLayout(root, 100))

	assert.InDelta(t, 10, root.Layout().Width(), tolerance)
	assert.InDelta(t, 10, root.Layout().Height(), tolerance)
}

// Invariant 3: leading + dim + trailing == parent's dim on a resolved axis.
func TestInvariantPositionsSumToParentDim(t *testing.T) {
	root := New()
	root.SetFlexDirection(FlexDirectionRow)
	root.SetDimension(DimensionWidth, 200)
	root.SetDimension(DimensionHeight, 50)
	a, b := New(), New()
	a.SetFlex(1)
	b.SetDimension(DimensionWidth, 40)
	requireNoErr(t, root.AddChild(a))
	requireNoErr(t, root.AddChild(b))

	require.NoError(t, CalculateLayout(root, 200))

	for _, c := range []*Node{a, b} {
		sum := c.layout.Position[posLeft] + c.Layout().Width() + c.layout.Position[posRight]
		assert.InDelta(t, 200, sum, tolerance)
	}
}

// Invariant 5: idempotence — a second CalculateLayout call with no
// mutations is a pure cache hit and does not flip HasNewLayout -> Dirty.
func TestInvariantIdempotentSecondCall(t *testing.T) {
	root := New()
	root.SetDimension(DimensionWidth, 40)
	root.SetDimension(DimensionHeight, 40)

	require.NoError(t, CalculateLayout(root, 100))
	first := root.Layout()
	require.True(t, root.HasNewLayout())
	require.NoError(t, root.MarkLayoutSeen())

	require.NoError(t, CalculateLayout(root, 100))
	second := root.Layout()

	assert.Equal(t, first, second)
	assert.False(t, root.IsDirty())
}

// Invariant 7: laying out a row in LTR and then the same tree in RTL
// produces x_rtl = parent.width - x_ltr - width for each child.
func TestInvariantDirectionReversalSymmetry(t *testing.T) {
	build := func(dir Direction) (*Node, []*Node) {
		root := New()
		root.SetFlexDirection(FlexDirectionRow)
		root.SetDirection(dir)
		root.SetDimension(DimensionWidth, 200)
		root.SetDimension(DimensionHeight, 50)
		var cs []*Node
		for _, w := range []float64{30, 70, 40} {
			c := New()
			c.SetDimension(DimensionWidth, w)
			requireNoErr(t, root.AddChild(c))
			cs = append(cs, c)
		}
		return root, cs
	}

	ltrRoot, ltrChildren := build(LTR)
	require.NoError(t, CalculateLayout(ltrRoot, 200))

	rtlRoot, rtlChildren := build(RTL)
	require.NoError(t, CalculateLayout(rtlRoot, 200))

	parentWidth := ltrRoot.Layout().Width()
	for i := range ltrChildren {
		want := parentWidth - ltrChildren[i].Layout().X() - ltrChildren[i].Layout().Width()
		assert.InDelta(t, want, rtlChildren[i].Layout().X(), tolerance, "child %d", i)
	}
}

// Boundary: single flex:1 child in a fixed parent fills parent minus
// padding/border.
func TestBoundarySingleFlexChildFillsParent(t *testing.T) {
	root := New()
	root.SetDimension(DimensionWidth, 100)
	root.SetDimension(DimensionHeight, 60)
	root.SetPadding(EdgeAll, 5)
	root.SetBorder(EdgeAll, 1)
	child := New()
	child.SetFlex(1)
	requireNoErr(t, root.AddChild(child))

	require.NoError(t, CalculateLayout(root, 100))

	assert.InDelta(t, 88, child.Layout().Width(), tolerance)
	assert.InDelta(t, 48, child.Layout().Height(), tolerance)
}

// Boundary: justify SpaceAround with a single child centers it.
func TestBoundaryJustifySpaceAroundSingleChild(t *testing.T) {
	root := New()
	root.SetFlexDirection(FlexDirectionRow)
	root.SetDimension(DimensionWidth, 100)
	root.SetDimension(DimensionHeight, 20)
	root.SetJustifyContent(JustifySpaceAround)
	child := New()
	child.SetDimension(DimensionWidth, 20)
	requireNoErr(t, root.AddChild(child))

	require.NoError(t, CalculateLayout(root, 100))

	assert.InDelta(t, 40, child.Layout().X(), tolerance)
}

// Boundary: alignItems Stretch leaves a styled cross dim untouched.
func TestBoundaryStretchDoesNotOverrideStyledDim(t *testing.T) {
	root := New()
	root.SetFlexDirection(FlexDirectionRow)
	root.SetDimension(DimensionWidth, 100)
	root.SetDimension(DimensionHeight, 60)
	child := New()
	child.SetDimension(DimensionWidth, 10)
	child.SetDimension(DimensionHeight, 20)
	requireNoErr(t, root.AddChild(child))

	require.NoError(t, CalculateLayout(root, 100))

	assert.InDelta(t, 20, child.Layout().Height(), tolerance)
}

// Boundary: min/max clamp redistributes remaining space among the other
// flex children.
func TestBoundaryFlexClampRedistributes(t *testing.T) {
	root := New()
	root.SetFlexDirection(FlexDirectionRow)
	root.SetDimension(DimensionWidth, 300)
	root.SetDimension(DimensionHeight, 20)
	a, b := New(), New()
	a.SetFlex(1)
	a.SetMaxDimension(DimensionWidth, 50)
	b.SetFlex(1)
	requireNoErr(t, root.AddChild(a))
	requireNoErr(t, root.AddChild(b))

	require.NoError(t, CalculateLayout(root, 300))

	assert.InDelta(t, 50, a.Layout().Width(), tolerance)
	assert.InDelta(t, 250, b.Layout().Width(), tolerance)
}

func TestMeasureFunctionSizesLeaf(t *testing.T) {
	root := New()
	root.SetDimension(DimensionWidth, 200)
	// non-stretch alignment so the leaf's cross dim isn't pre-filled before
	// measure runs, letting the measured width through untouched.
	root.SetAlignItems(AlignFlexStart)
	leaf := New()
	leaf.SetMeasureFunction(func(n *Node, availableWidth float64) (float64, float64) {
		return 37, 9
	})
	requireNoErr(t, root.AddChild(leaf))

	require.NoError(t, CalculateLayout(root, 200))

	assert.InDelta(t, 37, leaf.Layout().Width(), tolerance)
	assert.InDelta(t, 9, leaf.Layout().Height(), tolerance)
}

func TestValidateDetectsMismatchedParent(t *testing.T) {
	root := New()
	child := New()
	requireNoErr(t, root.AddChild(child))
	require.NoError(t, Validate(root))

	child.parent = nil
	err := Validate(root)
	require.Error(t, err)
}
