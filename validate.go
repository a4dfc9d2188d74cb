package flex

// Validate walks root's subtree and returns the first structural invariant
// violation it finds: a child whose recorded parent is not the node that
// actually holds it, or a node listed more than once anywhere in the tree.
// It is additive test/host tooling (SPEC_FULL.md §4.8), not part of the
// recursive solver.
func Validate(root *Node) error {
	seen := make(map[*Node]bool)
	return validateNode(root, nil, seen)
}

func validateNode(node, expectedParent *Node, seen map[*Node]bool) error {
	if seen[node] {
		return newTreeStructureViolation("flex: node appears more than once in the tree")
	}
	seen[node] = true

	if node.parent != expectedParent {
		return newTreeStructureViolation("flex: node's recorded parent does not match its actual position in the tree")
	}

	for i := 0; i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child.parent != node {
			return newTreeStructureViolation("flex: child at index %d does not point back to its parent", i)
		}
		if err := validateNode(child, node, seen); err != nil {
			return err
		}
	}
	return nil
}
