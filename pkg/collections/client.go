package collections

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/hashicorp/go-hclog"

	"github.com/catalogkit/purview-go/pkg/atlas"
	"github.com/catalogkit/purview-go/pkg/entity"
)

const (
	// accountAPIVersion is used by the account-plane collection
	// endpoints (listing, create-or-update).
	accountAPIVersion = "2019-11-01-preview"

	// catalogAPIVersion is used by the catalog data-plane entity
	// endpoints.
	catalogAPIVersion = "2022-03-01-preview"
)

// Client exposes the Purview collection APIs.
type Client struct {
	atlas  *atlas.Client
	logger hclog.Logger
}

var _ Writer = (*Client)(nil)

// NewClient creates a collections client on top of an atlas client.
func NewClient(ac *atlas.Client, logger hclog.Logger) *Client {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Client{
		atlas:  ac,
		logger: logger.Named("collections"),
	}
}

// listPage is one page of the listing response.
type listPage struct {
	Value    []map[string]interface{} `json:"value"`
	NextLink string                   `json:"nextLink"`
}

// ListOptions customizes a listing call.
type ListOptions struct {
	// SkipToken resumes a listing from a continuation token.
	SkipToken string
}

// List returns every collection in the account, following nextLink
// pages until exhausted.
func (c *Client) List(ctx context.Context, opts *ListOptions) ([]map[string]interface{}, error) {
	query := map[string]string{"api-version": accountAPIVersion}
	if opts != nil && opts.SkipToken != "" {
		query["$skipToken"] = opts.SkipToken
	}

	var rows []map[string]interface{}

	var page listPage
	if err := c.atlas.Do(ctx, http.MethodGet, "/collections", query, nil, &page); err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	rows = append(rows, page.Value...)

	for page.NextLink != "" {
		next := page.NextLink
		page = listPage{}
		if err := c.atlas.DoURL(ctx, http.MethodGet, next, &page); err != nil {
			return nil, fmt.Errorf("failed to list collections: %w", err)
		}
		rows = append(rows, page.Value...)
	}

	return rows, nil
}

// ListNames returns the friendly names of every collection.
func (c *Client) ListNames(ctx context.Context) ([]string, error) {
	dir, err := c.Directory(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, dir.Len())
	for _, id := range dir.IDs() {
		rec, _ := dir.Get(id)
		names = append(names, rec.FriendlyName)
	}
	return names, nil
}

// Directory fetches a fresh directory snapshot of the account's
// collections. Malformed listing rows are logged and skipped.
func (c *Client) Directory(ctx context.Context) (*Directory, error) {
	rows, err := c.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	dir, err := BuildDirectory(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to build collection directory: %w", err)
	}
	for _, recErr := range dir.Malformed() {
		c.logger.Warn("skipped malformed collection record", "error", recErr)
	}
	return dir, nil
}

// Hierarchy fetches the collections and renders them as an ASCII tree,
// one line per collection. Structural anomalies (dangling parents,
// cycles) are returned as warnings, not errors.
func (c *Client) Hierarchy(ctx context.Context) ([]string, []Warning, error) {
	dir, err := c.Directory(ctx)
	if err != nil {
		return nil, nil, err
	}

	roots, warnings := BuildForest(dir)
	for _, w := range warnings {
		c.logger.Warn("collection hierarchy anomaly",
			"kind", string(w.Kind),
			"collection", w.CollectionID,
			"detail", w.Detail,
		)
	}

	return Render(roots), warnings, nil
}

// CreateOrUpdate issues a create-or-update for a single collection.
// The request body shape is fixed by the remote API and must not
// change.
func (c *Client) CreateOrUpdate(ctx context.Context, id, friendlyName, parentID string) error {
	body := map[string]interface{}{
		"parentCollection": map[string]string{
			"referenceName": parentID,
		},
		"friendlyName": friendlyName,
	}

	path := "/account/collections/" + url.PathEscape(id)
	query := map[string]string{"api-version": accountAPIVersion}

	if err := c.atlas.Do(ctx, http.MethodPut, path, query, body, nil); err != nil {
		return err
	}
	return nil
}

// EnsurePaths fetches a fresh directory snapshot and ensures every
// path exists under start, creating missing collections parent before
// child. See EnsurePath for per-path semantics.
func (c *Client) EnsurePaths(ctx context.Context, start string, paths []string) ([]*Result, error) {
	dir, err := c.Directory(ctx)
	if err != nil {
		return nil, err
	}
	return EnsurePaths(ctx, c, dir, start, paths, c.logger)
}

// UploadEntity creates or updates a single entity in a collection and
// returns the entity mutation response.
func (c *Client) UploadEntity(ctx context.Context, collection string, e *entity.Entity) (map[string]interface{}, error) {
	payload, err := entity.SinglePayload(e)
	if err != nil {
		return nil, err
	}

	path := "/catalog/api/collections/" + url.PathEscape(collection) + "/entity"
	query := map[string]string{"api-version": catalogAPIVersion}

	var result map[string]interface{}
	if err := c.atlas.Do(ctx, http.MethodPost, path, query, payload, &result); err != nil {
		return nil, fmt.Errorf("failed to upload entity to collection %q: %w", collection, err)
	}
	return result, nil
}

// UploadEntities creates or updates a batch of entities in a
// collection and returns the entity mutation response.
func (c *Client) UploadEntities(ctx context.Context, collection string, batch []*entity.Entity) (map[string]interface{}, error) {
	payload, err := entity.BulkPayload(batch)
	if err != nil {
		return nil, err
	}

	path := "/catalog/api/collections/" + url.PathEscape(collection) + "/entity/bulk"
	query := map[string]string{"api-version": catalogAPIVersion}

	var result map[string]interface{}
	if err := c.atlas.Do(ctx, http.MethodPost, path, query, payload, &result); err != nil {
		return nil, fmt.Errorf("failed to upload entities to collection %q: %w", collection, err)
	}
	return result, nil
}

// MoveEntities moves entities, by guid, into a collection and returns
// the entity mutation response.
func (c *Client) MoveEntities(ctx context.Context, collection string, guids []string) (map[string]interface{}, error) {
	if len(guids) == 0 {
		return nil, fmt.Errorf("no entity guids provided")
	}

	body := map[string]interface{}{"entityGuids": guids}
	path := "/catalog/api/collections/" + url.PathEscape(collection) + "/entity/moveHere"
	query := map[string]string{"api-version": catalogAPIVersion}

	var result map[string]interface{}
	if err := c.atlas.Do(ctx, http.MethodPost, path, query, body, &result); err != nil {
		return nil, fmt.Errorf("failed to move entities to collection %q: %w", collection, err)
	}
	return result, nil
}
