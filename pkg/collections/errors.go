package collections

import "fmt"

// MalformedRecordError is a listing row missing required fields. It
// fails the offending record only; the directory build continues
// unless every record is malformed.
type MalformedRecordError struct {
	Raw    map[string]interface{}
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed collection record (%s): %v", e.Reason, e.Raw)
}

// DuplicateSegmentIdentifierError is returned when two new segments of
// one path normalize to the same working identifier.
type DuplicateSegmentIdentifierError struct {
	Path      string
	Segment   string
	WorkingID string
}

func (e *DuplicateSegmentIdentifierError) Error() string {
	return fmt.Sprintf("path %q: segment %q normalizes to identifier %q, which is already used by an earlier new segment",
		e.Path, e.Segment, e.WorkingID)
}

// StartCollectionNotFoundError is returned when the starting collection
// of a creation request matches no existing id or friendly name.
type StartCollectionNotFoundError struct {
	Value string
}

func (e *StartCollectionNotFoundError) Error() string {
	return fmt.Sprintf("collection %q either doesn't exist or you don't have permission to start on it; "+
		"you need to be a collection admin on that collection if it exists", e.Value)
}

// PathError is a failed creation call. It names the segment whose
// create-or-update request failed; earlier segments of the path remain
// created, later segments are not attempted.
type PathError struct {
	Path      string
	SegmentID string
	Err       error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("path %q: failed to create collection %q: %v", e.Path, e.SegmentID, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}
