// Package collections implements the Purview collection APIs: listing,
// hierarchy rendering, and nested collection creation from
// slash-delimited path strings.
package collections

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Record is one collection as returned by the listing API.
type Record struct {
	// ID is the stable internal name of the collection, typically a
	// 6-letter pseudo-random string such as "xcgw8s". Unique within
	// an account.
	ID string

	// FriendlyName is the display label. Not guaranteed unique.
	FriendlyName string

	// ParentID is the internal name of the parent collection, or ""
	// for a root collection.
	ParentID string
}

// rawRecord matches the listing API response row shape.
type rawRecord struct {
	Name             string `mapstructure:"name"`
	FriendlyName     string `mapstructure:"friendlyName"`
	ParentCollection struct {
		ReferenceName string `mapstructure:"referenceName"`
	} `mapstructure:"parentCollection"`
}

// DecodeRecord converts a raw listing row into a Record. Rows missing
// the required name or friendlyName fields return *MalformedRecordError.
func DecodeRecord(raw map[string]interface{}) (Record, error) {
	var row rawRecord
	if err := mapstructure.Decode(raw, &row); err != nil {
		return Record{}, &MalformedRecordError{Raw: raw, Reason: err.Error()}
	}
	if row.Name == "" {
		return Record{}, &MalformedRecordError{Raw: raw, Reason: "missing name"}
	}
	if row.FriendlyName == "" {
		return Record{}, &MalformedRecordError{Raw: raw, Reason: "missing friendlyName"}
	}

	return Record{
		ID:           row.Name,
		FriendlyName: row.FriendlyName,
		ParentID:     row.ParentCollection.ReferenceName,
	}, nil
}

// WarningKind classifies structural anomalies found while building a
// collection hierarchy.
type WarningKind string

const (
	// WarnDanglingParent marks a collection whose parent is not in the
	// directory snapshot; the collection is kept as a root.
	WarnDanglingParent WarningKind = "dangling_parent"

	// WarnCycle marks a collection whose parent edge closed a cycle;
	// the edge is cut and the collection becomes a root.
	WarnCycle WarningKind = "cycle_detected"
)

// Warning is a recoverable structural anomaly. Warnings are surfaced to
// callers instead of being printed or turned into fatal errors.
type Warning struct {
	Kind         WarningKind
	CollectionID string
	Detail       string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: collection %q: %s", w.Kind, w.CollectionID, w.Detail)
}
