package flex

// LayoutState is the three-state dirty/consumed machine from spec.md §3/§9:
// DIRTY means some input changed since the cached layout was valid;
// HasNewLayout means a fresh layout was computed and not yet read by the
// host; UpToDate means the cached layout matches the node's current inputs
// and has already been consumed.
type LayoutState int

const (
	StateDirty LayoutState = iota
	StateHasNewLayout
	StateUpToDate
)

// MeasureFunction is the external leaf sizer described in spec.md §4.3. It
// must be synchronous, must not mutate the tree, and is invoked at most
// once per layout pass per leaf.
type MeasureFunction func(node *Node, availableWidth float64) (width, height float64)

// Node is one element of the style tree: it owns its Style, its
// LayoutResult, a layout cache, and an ordered list of children. Nodes are
// created detached; a node is either root or appears in exactly one
// parent's child list at exactly one index.
type Node struct {
	style   Style
	layout  LayoutResult
	cache   CachedLayout
	parent  *Node
	children []*Node
	measure MeasureFunction
	state   LayoutState
}

// New returns a detached node with default style and an empty layout.
func New() *Node {
	return &Node{
		style:  NewStyle(),
		layout: newLayoutResult(),
		cache:  newCachedLayout(),
		state:  StateDirty,
	}
}

// Style returns the node's style for read access. Mutate it only through
// the Set* methods below so dirtiness is tracked correctly.
func (n *Node) Style() *Style { return &n.style }

// Layout returns the most recently computed layout result.
func (n *Node) Layout() LayoutResult { return n.layout }

// Parent returns the node's parent, or nil for a root/detached node.
func (n *Node) Parent() *Node { return n.parent }

// ChildCount returns the number of children.
func (n *Node) ChildCount() int { return len(n.children) }

// Child returns the child at index i.
func (n *Node) Child(i int) *Node { return n.children[i] }

// IndexOf returns the index of child within this node's children, or -1.
func (n *Node) IndexOf(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// InsertChild attaches child at index, shifting [index..) right by one. It
// errors if child already has a parent.
func (n *Node) InsertChild(index int, child *Node) error {
	if child.parent != nil {
		return newTreeStructureViolation("flex: cannot insert child that already has a parent")
	}
	if index < 0 || index > len(n.children) {
		return newTreeStructureViolation("flex: insert index %d out of range [0,%d]", index, len(n.children))
	}
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	child.parent = n
	n.markDirtyOrPanic()
	return nil
}

// AddChild appends child as the last child.
func (n *Node) AddChild(child *Node) error {
	return n.InsertChild(len(n.children), child)
}

// RemoveChildAt detaches and returns the child at index.
func (n *Node) RemoveChildAt(index int) (*Node, error) {
	if index < 0 || index >= len(n.children) {
		return nil, newTreeStructureViolation("flex: remove index %d out of range [0,%d)", index, len(n.children))
	}
	child := n.children[index]
	copy(n.children[index:], n.children[index+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
	child.parent = nil
	n.markDirtyOrPanic()
	return child, nil
}

// RemoveSelf detaches this node from its parent. It errors if the node has
// no parent, or if the parent's child list does not actually list it (a
// broken invariant that should never occur in a correctly used tree).
func (n *Node) RemoveSelf() error {
	if n.parent == nil {
		return newTreeStructureViolation("flex: removeSelf called on a node with no parent")
	}
	idx := n.parent.IndexOf(n)
	if idx < 0 {
		return newTreeStructureViolation("flex: node's recorded parent does not list it as a child")
	}
	_, err := n.parent.RemoveChildAt(idx)
	return err
}

// IsDirty reports whether the node's inputs have changed since its cached
// layout was last valid.
func (n *Node) IsDirty() bool { return n.state == StateDirty }

// HasNewLayout reports whether a layout was computed and not yet consumed.
func (n *Node) HasNewLayout() bool { return n.state == StateHasNewLayout }

// MarkLayoutSeen transitions HasNewLayout -> UpToDate. It errors if the
// node is not currently in HasNewLayout.
func (n *Node) MarkLayoutSeen() error {
	if n.state != StateHasNewLayout {
		return newProtocolMisuse("flex: markLayoutSeen called outside HasNewLayout")
	}
	n.state = StateUpToDate
	return nil
}

// MarkDirty explicitly dirties the node and propagates to ancestors. It
// errors if the node currently holds an unconsumed layout (HasNewLayout),
// since that would silently discard a result the host never read.
func (n *Node) MarkDirty() error {
	return n.setDirty()
}

func (n *Node) setDirty() error {
	if n.state == StateDirty {
		return nil
	}
	if n.state == StateHasNewLayout {
		return newProtocolMisuse("flex: node dirtied while a computed layout has not been marked seen")
	}
	n.state = StateDirty
	if n.parent != nil {
		return n.parent.setDirty()
	}
	return nil
}

// markDirtyOrPanic is used by the internal style setters and tree mutators,
// which present a fluent, error-free surface to callers; a protocol misuse
// here means the host mutated a node whose previous layout it never
// consumed, which is a programming error rather than a recoverable
// condition.
func (n *Node) markDirtyOrPanic() {
	if err := n.setDirty(); err != nil {
		panic(err)
	}
}

// SetMeasureFunction installs or clears the leaf measure callback.
func (n *Node) SetMeasureFunction(fn MeasureFunction) {
	if (n.measure == nil) != (fn == nil) {
		n.markDirtyOrPanic()
	}
	n.measure = fn
}

// IsMeasureDefined reports whether a MeasureFunction is installed.
func (n *Node) IsMeasureDefined() bool { return n.measure != nil }

// Measure invokes the node's MeasureFunction directly, for hosts that want
// to probe a leaf's intrinsic size outside of CalculateLayout. It errors if
// no MeasureFunction is configured.
func (n *Node) Measure(availableWidth float64) (width, height float64, err error) {
	if n.measure == nil {
		return 0, 0, newMeasureNotDefined("flex: measure invoked on node with no MeasureFunction")
	}
	w, h := n.measure(n, availableWidth)
	return w, h, nil
}
