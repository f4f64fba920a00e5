package collections

import (
	"github.com/hashicorp/go-multierror"
)

// Directory is an insertion-ordered snapshot of the account's
// collections, keyed by internal id. It is built fresh per top-level
// operation and never cached across calls.
type Directory struct {
	records   map[string]Record
	order     []string
	malformed []error
}

// BuildDirectory builds a directory from raw listing rows. Malformed
// rows are skipped and recorded; the build fails only when every row
// is malformed.
func BuildDirectory(rows []map[string]interface{}) (*Directory, error) {
	dir := &Directory{
		records: make(map[string]Record, len(rows)),
	}

	var merr *multierror.Error
	for _, raw := range rows {
		rec, err := DecodeRecord(raw)
		if err != nil {
			merr = multierror.Append(merr, err)
			continue
		}
		dir.add(rec)
	}

	if len(rows) > 0 && len(dir.order) == 0 {
		return nil, merr.ErrorOrNil()
	}

	if merr != nil {
		dir.malformed = merr.Errors
	}
	return dir, nil
}

// NewDirectory builds a directory from already-decoded records.
// Intended for tests and callers that materialize records themselves.
func NewDirectory(records []Record) *Directory {
	dir := &Directory{
		records: make(map[string]Record, len(records)),
	}
	for _, rec := range records {
		dir.add(rec)
	}
	return dir
}

// add inserts a record. Duplicate ids keep their original position
// with the later value winning.
func (d *Directory) add(rec Record) {
	if _, ok := d.records[rec.ID]; !ok {
		d.order = append(d.order, rec.ID)
	}
	d.records[rec.ID] = rec
}

// Len returns the number of distinct collection ids.
func (d *Directory) Len() int {
	return len(d.order)
}

// IDs returns the collection ids in insertion order.
func (d *Directory) IDs() []string {
	ids := make([]string, len(d.order))
	copy(ids, d.order)
	return ids
}

// Get looks up a record by its internal id.
func (d *Directory) Get(id string) (Record, bool) {
	rec, ok := d.records[id]
	return rec, ok
}

// ByName returns the first record (in insertion order) whose friendly
// name equals name. Friendly names are not unique; insertion order
// makes the match deterministic.
func (d *Directory) ByName(name string) (Record, bool) {
	for _, id := range d.order {
		if d.records[id].FriendlyName == name {
			return d.records[id], true
		}
	}
	return Record{}, false
}

// Resolve looks up value as an id first, then as a friendly name. The
// id match takes precedence so a literal id is never shadowed by an
// unrelated collection whose friendly name happens to equal it.
func (d *Directory) Resolve(value string) (Record, bool) {
	if rec, ok := d.Get(value); ok {
		return rec, true
	}
	return d.ByName(value)
}

// Malformed returns the per-record errors collected during the build.
func (d *Directory) Malformed() []error {
	return d.malformed
}
