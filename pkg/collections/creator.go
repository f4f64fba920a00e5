package collections

import (
	"context"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
)

// Writer issues collection create-or-update calls. Implemented by
// *Client; tests substitute fakes.
type Writer interface {
	CreateOrUpdate(ctx context.Context, id, friendlyName, parentID string) error
}

// Result reports the outcome of ensuring one path.
type Result struct {
	// Path is the original path string.
	Path string

	// Created lists the ids of collections created, in creation order.
	Created []string

	// Skipped lists the ids of segments that already existed.
	Skipped []string
}

// EnsurePath makes every segment of path exist under start, creating
// missing collections strictly parent before child. start may be an
// internal id or a friendly name; if it matches nothing,
// *StartCollectionNotFoundError is returned.
//
// Existing segments are skipped, so re-running the same path after a
// partial failure only issues the remaining creations. A failed
// creation aborts the rest of the path and is returned as *PathError;
// already-created segments stay created.
func EnsurePath(ctx context.Context, w Writer, dir *Directory, start, path string, logger hclog.Logger) (*Result, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	startRec, ok := dir.Resolve(strings.TrimSpace(start))
	if !ok {
		return nil, &StartCollectionNotFoundError{Value: start}
	}

	resolved, err := ResolvePath(dir, startRec.ID, path)
	if err != nil {
		return nil, err
	}

	result := &Result{Path: path}
	for _, r := range resolved {
		if r.Exists {
			logger.Debug("collection already exists, skipping",
				"id", r.ID,
				"friendly_name", r.FriendlyName,
			)
			result.Skipped = append(result.Skipped, r.ID)
			continue
		}

		if err := w.CreateOrUpdate(ctx, r.ID, r.FriendlyName, r.ParentID); err != nil {
			return result, &PathError{Path: path, SegmentID: r.ID, Err: err}
		}
		logger.Info("created collection",
			"id", r.ID,
			"friendly_name", r.FriendlyName,
			"parent", r.ParentID,
		)
		result.Created = append(result.Created, r.ID)
	}

	return result, nil
}

// EnsurePaths ensures several independent paths under the same start.
// Paths run sequentially; one path's failure does not block the
// others. Failures are aggregated and returned alongside the per-path
// results, which include partial outcomes of failed paths.
//
// All paths resolve against the same directory snapshot. A new parent
// shared between two paths is create-or-updated by each, which the
// remote API treats as idempotent, and sequential execution keeps
// parent-before-child ordering across paths.
func EnsurePaths(ctx context.Context, w Writer, dir *Directory, start string, paths []string, logger hclog.Logger) ([]*Result, error) {
	var results []*Result
	var merr *multierror.Error

	for _, path := range paths {
		res, err := EnsurePath(ctx, w, dir, start, path, logger)
		if res != nil {
			results = append(results, res)
		}
		if err != nil {
			merr = multierror.Append(merr, err)
		}
	}

	return results, merr.ErrorOrNil()
}
