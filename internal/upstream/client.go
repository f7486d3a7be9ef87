package upstream

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// Client is the interface internal/noteops depends on, so tests can
// substitute a fake without standing up an HTTP server (grounded on the
// teacher's internal/client.HTTPClient interface).
type Client interface {
	Search(ctx context.Context, dsl string, fastSearch, includeArchivedNotes bool) ([]NoteMeta, error)
	Get(ctx context.Context, noteID string) (NoteMeta, error)
	GetFresh(ctx context.Context, noteID string) (NoteMeta, error)
	GetContent(ctx context.Context, noteID string) (body string, blobID string, err error)
	Create(ctx context.Context, params CreateNoteParams) (NoteMeta, error)
	CreateAttribute(ctx context.Context, attr Attribute) error
	PutContent(ctx context.Context, noteID, body string) (newBlobID string, err error)
	Patch(ctx context.Context, noteID string, fields map[string]any) error
	Delete(ctx context.Context, noteID string) error
	Revision(ctx context.Context, noteID string) error
}

// ETAPIClient is the production Client, wrapping resty with a short-TTL
// cache for idempotent lookups (grounded on the teacher's
// internal/client/httpclient.go).
type ETAPIClient struct {
	http   *resty.Client
	cache  *cache.Cache
	logger *zap.Logger
}

// Config configures an ETAPIClient.
type Config struct {
	BaseURL  string
	Token    string
	Timeout  time.Duration
	CacheTTL time.Duration
}

// NewClient builds an ETAPIClient. A nil logger disables logging.
func NewClient(cfg Config, logger *zap.Logger) *ETAPIClient {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 5 * time.Second
	}

	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Authorization", cfg.Token)

	return &ETAPIClient{
		http:   httpClient,
		cache:  cache.New(cfg.CacheTTL, cfg.CacheTTL*2),
		logger: logger,
	}
}

func (c *ETAPIClient) logError(op string, err error, fields ...zap.Field) {
	if c.logger == nil {
		return
	}
	c.logger.Error(op+" failed", append(fields, zap.Error(err))...)
}

// classify turns a resty outcome into the spec.md §7 taxonomy: a
// TransportError for network/timeout failures, a StatusError (or
// NotFoundError for 404) for decoded upstream errors, or nil.
func classify(op string, resp *resty.Response, err error) error {
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	if resp.IsSuccess() {
		return nil
	}
	if resp.StatusCode() == http.StatusNotFound {
		return &NotFoundError{}
	}
	return &StatusError{Op: op, Status: resp.StatusCode(), Body: resp.String()}
}

// Search issues GET /notes with the compiled DSL (spec.md §6).
func (c *ETAPIClient) Search(ctx context.Context, dsl string, fastSearch, includeArchivedNotes bool) ([]NoteMeta, error) {
	var out struct {
		Results []NoteMeta `json:"results"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"search":               dsl,
			"fastSearch":           boolString(fastSearch),
			"includeArchivedNotes": boolString(includeArchivedNotes),
		}).
		SetResult(&out).
		Get("/notes")
	if cerr := classify("search", resp, err); cerr != nil {
		c.logError("search", cerr, zap.String("dsl", dsl))
		return nil, cerr
	}
	return out.Results, nil
}

// Get fetches a note's metadata, using a short-TTL cache for repeated
// lookups within a single burst of calls.
// Callers that need the current blobId for an optimistic-concurrency
// comparison must use GetFresh instead (spec.md §5, §9: "do not compute
// local hashes — they will diverge").
func (c *ETAPIClient) Get(ctx context.Context, noteID string) (NoteMeta, error) {
	if cached, ok := c.cache.Get("meta:" + noteID); ok {
		return cached.(NoteMeta), nil
	}
	return c.GetFresh(ctx, noteID)
}

// GetFresh always hits the upstream for a note's metadata, bypassing the
// cache, and refreshes the cache entry for subsequent cached reads. Use
// this wherever the caller compares the returned blobId against an
// expectedHash or reports it back to the caller as a content hash.
func (c *ETAPIClient) GetFresh(ctx context.Context, noteID string) (NoteMeta, error) {
	var meta NoteMeta
	resp, err := c.http.R().SetContext(ctx).SetResult(&meta).Get("/notes/" + noteID)
	if cerr := classify("get", resp, err); cerr != nil {
		if nf, ok := cerr.(*NotFoundError); ok {
			nf.NoteID = noteID
		}
		c.logError("get", cerr, zap.String("noteId", noteID))
		return NoteMeta{}, cerr
	}

	c.cache.SetDefault("meta:"+noteID, meta)
	return meta, nil
}

// GetContent fetches a note's raw body, and the blobId token the caller
// must echo back to update_note/append_note. The blobId is always a
// fresh read so it actually corresponds to the body just fetched.
func (c *ETAPIClient) GetContent(ctx context.Context, noteID string) (string, string, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/notes/" + noteID + "/content")
	if cerr := classify("getContent", resp, err); cerr != nil {
		if nf, ok := cerr.(*NotFoundError); ok {
			nf.NoteID = noteID
		}
		c.logError("getContent", cerr, zap.String("noteId", noteID))
		return "", "", cerr
	}

	meta, err := c.GetFresh(ctx, noteID)
	if err != nil {
		return "", "", err
	}
	return resp.String(), meta.BlobID, nil
}

// Create issues POST /create-note.
func (c *ETAPIClient) Create(ctx context.Context, params CreateNoteParams) (NoteMeta, error) {
	var out createNoteResponse
	resp, err := c.http.R().SetContext(ctx).SetBody(params).SetResult(&out).Post("/create-note")
	if cerr := classify("create", resp, err); cerr != nil {
		c.logError("create", cerr, zap.String("parentNoteId", params.ParentNoteID), zap.String("title", params.Title))
		return NoteMeta{}, cerr
	}
	c.cache.Delete("meta:" + out.Note.NoteID)
	return out.Note, nil
}

// CreateAttribute issues POST /attributes.
func (c *ETAPIClient) CreateAttribute(ctx context.Context, attr Attribute) error {
	resp, err := c.http.R().SetContext(ctx).SetBody(attr).Post("/attributes")
	if cerr := classify("createAttribute", resp, err); cerr != nil {
		c.logError("createAttribute", cerr, zap.String("noteId", attr.NoteID), zap.String("name", attr.Name))
		return cerr
	}
	return nil
}

// PutContent issues PUT /notes/{id}/content with a plain-text body
// (spec.md §4.5 and §6: content-type text/plain), then re-fetches
// metadata for the new blobId since ETAPI's PUT does not echo it back.
func (c *ETAPIClient) PutContent(ctx context.Context, noteID, body string) (string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "text/plain").
		SetBody(body).
		Put("/notes/" + noteID + "/content")
	if cerr := classify("putContent", resp, err); cerr != nil {
		if nf, ok := cerr.(*NotFoundError); ok {
			nf.NoteID = noteID
		}
		c.logError("putContent", cerr, zap.String("noteId", noteID))
		return "", cerr
	}

	meta, err := c.GetFresh(ctx, noteID)
	if err != nil {
		return "", err
	}
	return meta.BlobID, nil
}

// Patch issues PATCH /notes/{id} with a partial metadata update (e.g.
// title, mime).
func (c *ETAPIClient) Patch(ctx context.Context, noteID string, fields map[string]any) error {
	resp, err := c.http.R().SetContext(ctx).SetBody(fields).Patch("/notes/" + noteID)
	if cerr := classify("patch", resp, err); cerr != nil {
		if nf, ok := cerr.(*NotFoundError); ok {
			nf.NoteID = noteID
		}
		c.logError("patch", cerr, zap.String("noteId", noteID))
		return cerr
	}
	c.cache.Delete("meta:" + noteID)
	return nil
}

// Delete issues DELETE /notes/{id}. Irreversible; no soft-delete
// (spec.md §4.6.5).
func (c *ETAPIClient) Delete(ctx context.Context, noteID string) error {
	resp, err := c.http.R().SetContext(ctx).Delete("/notes/" + noteID)
	if cerr := classify("delete", resp, err); cerr != nil {
		c.logError("delete", cerr, zap.String("noteId", noteID))
		return cerr
	}
	c.cache.Delete("meta:" + noteID)
	return nil
}

// Revision issues the upstream snapshot-before-overwrite call (resolved
// Open Question, see SPEC_FULL.md §4 and DESIGN.md).
func (c *ETAPIClient) Revision(ctx context.Context, noteID string) error {
	resp, err := c.http.R().SetContext(ctx).Post("/notes/" + noteID + "/revision")
	if cerr := classify("revision", resp, err); cerr != nil {
		c.logError("revision", cerr, zap.String("noteId", noteID))
		return cerr
	}
	return nil
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
