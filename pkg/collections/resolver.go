package collections

import "strings"

// Resolved is one path segment resolved against a directory snapshot.
type Resolved struct {
	// ID is the canonical internal name: the matched collection's id
	// for existing segments, or the working id derived from the
	// friendly name for new ones.
	ID string

	// FriendlyName is the display label the collection has, or will be
	// created with.
	FriendlyName string

	// ParentID is the previous segment's resolved id, or the starting
	// collection for the first segment.
	ParentID string

	// Exists reports whether the segment matched an existing
	// collection. Existing collections are never recreated.
	Exists bool
}

// splitPath splits a slash-delimited path into trimmed, non-empty
// segments.
func splitPath(path string) []string {
	var segments []string
	for _, seg := range strings.Split(path, "/") {
		seg = strings.TrimSpace(seg)
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}

// workingID derives the internal name for a new collection from its
// friendly name by stripping spaces.
func workingID(name string) string {
	return strings.ReplaceAll(name, " ", "")
}

// ResolvePath resolves each segment of path against dir, chaining
// parents from startID. Each segment matches an existing collection by
// id first, then by friendly name; an id match always beats a friendly
// name match so a literal id is never misread as an unrelated label.
// Unmatched segments become new collections whose working id is the
// segment with spaces stripped.
//
// Two new segments normalizing to the same working id fail the whole
// path with *DuplicateSegmentIdentifierError.
func ResolvePath(dir *Directory, startID, path string) ([]Resolved, error) {
	segments := splitPath(path)
	if len(segments) == 0 {
		return nil, nil
	}

	resolved := make([]Resolved, 0, len(segments))
	newIDs := make(map[string]bool, len(segments))

	parentID := startID
	for _, seg := range segments {
		var r Resolved
		if rec, ok := dir.Resolve(seg); ok {
			r = Resolved{
				ID:           rec.ID,
				FriendlyName: rec.FriendlyName,
				ParentID:     parentID,
				Exists:       true,
			}
		} else {
			id := workingID(seg)
			if newIDs[id] {
				return nil, &DuplicateSegmentIdentifierError{
					Path:      path,
					Segment:   seg,
					WorkingID: id,
				}
			}
			newIDs[id] = true
			r = Resolved{
				ID:           id,
				FriendlyName: seg,
				ParentID:     parentID,
			}
		}

		resolved = append(resolved, r)
		parentID = r.ID
	}

	return resolved, nil
}
