package flex

import "github.com/pkg/errors"

// TreeStructureViolation reports a broken parent/child invariant: inserting
// a child that already has a parent, or removing a child whose recorded
// parent does not actually list it.
type TreeStructureViolation struct {
	cause error
}

func (e *TreeStructureViolation) Error() string { return e.cause.Error() }
func (e *TreeStructureViolation) Unwrap() error { return e.cause }

func newTreeStructureViolation(format string, args ...interface{}) error {
	return &TreeStructureViolation{cause: errors.Errorf(format, args...)}
}

// ProtocolMisuse reports a violation of the dirty -> HAS_NEW_LAYOUT ->
// UP_TO_DATE state machine: dirtying a node that has an unconsumed layout,
// or consuming a layout that was never produced.
type ProtocolMisuse struct {
	cause error
}

func (e *ProtocolMisuse) Error() string { return e.cause.Error() }
func (e *ProtocolMisuse) Unwrap() error { return e.cause }

func newProtocolMisuse(format string, args ...interface{}) error {
	return &ProtocolMisuse{cause: errors.Errorf(format, args...)}
}

// MeasureNotDefined reports that Measure was invoked on a node with no
// MeasureFunction configured.
type MeasureNotDefined struct {
	cause error
}

func (e *MeasureNotDefined) Error() string { return e.cause.Error() }
func (e *MeasureNotDefined) Unwrap() error { return e.cause }

func newMeasureNotDefined(format string, args ...interface{}) error {
	return &MeasureNotDefined{cause: errors.Errorf(format, args...)}
}
