// Package content loads the site's articles from the content API, falling back
// to bundled JSON snapshots, and holds them read-only for the process lifetime.
package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Zachkp/portfolio/internal/logger"
)

// Source names where a resource's articles came from.
type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
	SourceEmpty    Source = "empty"
)

// maxBodyBytes caps how much of a content response is read.
const maxBodyBytes = 8 << 20

// wrapperFields are object keys checked, in order, for the article array when
// a response is an object rather than a bare array.
var wrapperFields = []string{"data", "items", "articles", "results"}

// Result is the outcome of loading one resource. Articles is never nil.
type Result struct {
	Resource string
	Articles []Article
	Source   Source
	// Err joins the remote and fallback errors; nil when the remote load worked.
	Err error
}

// Recorder observes load outcomes. Metrics implement it.
type Recorder interface {
	RecordContentLoad(resource string, source Source, count int, took time.Duration)
}

// Loader fetches a resource from the content API with a local fallback.
type Loader struct {
	baseURL     string
	fallbackDir string
	httpClient  *http.Client
	logger      logger.Logger
	recorder    Recorder

	// remoteBudget bounds the API attempt for one resource. Zero leaves only
	// the client timeout.
	remoteBudget time.Duration
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) LoaderOption {
	return func(l *Loader) { l.httpClient = c }
}

// WithRecorder attaches a load outcome recorder.
func WithRecorder(r Recorder) LoaderOption {
	return func(l *Loader) { l.recorder = r }
}

// WithRemoteBudget caps how long Load waits on the API for each resource
// before moving on to the fallback file.
func WithRemoteBudget(d time.Duration) LoaderOption {
	return func(l *Loader) { l.remoteBudget = d }
}

// NewLoader creates a Loader. timeout bounds each remote request.
func NewLoader(baseURL, fallbackDir string, timeout time.Duration, log logger.Logger, opts ...LoaderOption) *Loader {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	l := &Loader{
		baseURL:     strings.TrimRight(baseURL, "/"),
		fallbackDir: fallbackDir,
		httpClient:  &http.Client{Timeout: timeout},
		logger:      log,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load returns the articles for resource. It tries the API, then the fallback
// file, and finally yields an empty slice; failures are logged, not returned.
func (l *Loader) Load(ctx context.Context, resource string) Result {
	start := time.Now()
	log := l.logger.With(logger.String("resource", resource))

	articles, remoteErr := l.loadRemote(ctx, resource)
	if remoteErr == nil {
		log.Info("Content loaded", logger.String("source", string(SourceRemote)), logger.Int("count", len(articles)))
		return l.finish(Result{Resource: resource, Articles: articles, Source: SourceRemote}, start)
	}
	log.Warn("Content API unavailable, using fallback", logger.Error(remoteErr))

	articles, fallbackErr := l.readFallback(resource)
	if fallbackErr == nil {
		log.Info("Content loaded", logger.String("source", string(SourceFallback)), logger.Int("count", len(articles)))
		return l.finish(Result{Resource: resource, Articles: articles, Source: SourceFallback, Err: remoteErr}, start)
	}

	err := errors.Join(remoteErr, fallbackErr)
	log.Error("Content unavailable, serving empty list", logger.Error(err))
	return l.finish(Result{Resource: resource, Articles: []Article{}, Source: SourceEmpty, Err: err}, start)
}

func (l *Loader) finish(r Result, start time.Time) Result {
	if l.recorder != nil {
		l.recorder.RecordContentLoad(r.Resource, r.Source, len(r.Articles), time.Since(start))
	}
	return r
}

// loadRemote applies the remote budget. Only the API call is bounded by it,
// so running out of budget still leaves time to read the fallback.
func (l *Loader) loadRemote(ctx context.Context, resource string) ([]Article, error) {
	if l.remoteBudget <= 0 {
		return l.fetchRemote(ctx, resource)
	}
	ctx, cancel := context.WithTimeout(ctx, l.remoteBudget)
	defer cancel()
	return l.fetchRemote(ctx, resource)
}

func (l *Loader) fetchRemote(ctx context.Context, resource string) ([]Article, error) {
	if l.baseURL == "" {
		return nil, errors.New("no content base url configured")
	}
	url := l.baseURL + "/api/" + resource

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request %s: %w", url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}

	articles, err := Decode(body, resource)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}
	return articles, nil
}

func (l *Loader) readFallback(resource string) ([]Article, error) {
	if l.fallbackDir == "" {
		return nil, errors.New("no fallback directory configured")
	}
	path := filepath.Join(l.fallbackDir, resource+".json")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fallback %s: %w", path, err)
	}

	articles, err := Decode(data, resource)
	if err != nil {
		return nil, fmt.Errorf("decode fallback %s: %w", path, err)
	}
	return articles, nil
}

// Decode parses a JSON array of articles, or an object wrapping that array
// under the resource name, a common wrapper key, or failing those its only
// array-valued field. The result is never nil.
func Decode(data []byte, resource string) ([]Article, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil, errors.New("empty document")
	}

	if trimmed[0] == '[' {
		return decodeArray([]byte(trimmed))
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &wrapper); err != nil {
		return nil, fmt.Errorf("unrecognised document: %w", err)
	}

	keys := append([]string{resource}, wrapperFields...)
	for _, key := range keys {
		if raw, ok := wrapper[key]; ok && isArray(raw) {
			return decodeArray(raw)
		}
	}

	var arrays []json.RawMessage
	for _, raw := range wrapper {
		if isArray(raw) {
			arrays = append(arrays, raw)
		}
	}
	if len(arrays) == 1 {
		return decodeArray(arrays[0])
	}
	return nil, fmt.Errorf("no %s array in document", resource)
}

// decodeArray decodes element by element so one malformed record does not
// discard the rest. Records with mistyped fields keep their well-typed fields;
// elements that are not objects at all are dropped.
func decodeArray(data []byte) ([]Article, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}
	articles := make([]Article, 0, len(raws))
	for _, raw := range raws {
		if !isObject(raw) {
			continue
		}
		var a Article
		if err := json.Unmarshal(raw, &a); err != nil {
			var typeErr *json.UnmarshalTypeError
			if !errors.As(err, &typeErr) {
				continue
			}
		}
		articles = append(articles, a)
	}
	return articles, nil
}

func isObject(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s != "" && s[0] == '{'
}

func isArray(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s != "" && s[0] == '['
}
