package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"
)

// Article is a unit of publishable content: a blog post or a project.
type Article struct {
	ID        string    `json:"id"`
	AltID     string    `json:"_id,omitempty"`
	Slug      string    `json:"slug,omitempty"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	Tags      []string  `json:"tags,omitempty"`
	Category  string    `json:"category,omitempty"`
	CreatedAt Timestamp `json:"createdAt"`
	Published *bool     `json:"published,omitempty"`

	Content      string        `json:"content,omitempty"`
	CodeExamples []CodeExample `json:"codeExamples,omitempty"`
	References   []Reference   `json:"references,omitempty"`
	Technologies []string      `json:"technologies,omitempty"`
	Image        string        `json:"image,omitempty"`
	Link         string        `json:"link,omitempty"`
	GitHub       string        `json:"github,omitempty"`
}

// CodeExample is a titled snippet shown on the detail page.
type CodeExample struct {
	Title    string `json:"title,omitempty"`
	Language string `json:"language,omitempty"`
	Code     string `json:"code"`
}

// Reference is an external link cited by an article.
type Reference struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Key returns the identifier used in routes: ID, else AltID, else Slug.
func (a Article) Key() string {
	switch {
	case a.ID != "":
		return a.ID
	case a.AltID != "":
		return a.AltID
	default:
		return a.Slug
	}
}

// IsPublished reports the published flag, which defaults to true when absent.
func (a Article) IsPublished() bool {
	return a.Published == nil || *a.Published
}

// Date returns the creation time, or now when the record carries none.
func (a Article) Date(now time.Time) time.Time {
	if a.CreatedAt.IsZero() {
		return now
	}
	return a.CreatedAt.Time
}

// UnmarshalJSON tolerates records that use "description" in place of "summary".
// On a field type mismatch the well-typed fields are still populated and the
// *json.UnmarshalTypeError is returned.
func (a *Article) UnmarshalJSON(data []byte) error {
	type plain Article
	var raw struct {
		plain
		Description string `json:"description"`
	}
	err := json.Unmarshal(data, &raw)
	var typeErr *json.UnmarshalTypeError
	if err != nil && !errors.As(err, &typeErr) {
		return err
	}
	*a = Article(raw.plain)
	if a.Summary == "" {
		a.Summary = raw.Description
	}
	return err
}

// Timestamp accepts ISO-8601 strings, date-only strings, and epoch numbers in
// seconds or milliseconds. Unparseable values decode to the zero time.
type Timestamp struct {
	time.Time
}

// epochMillisThreshold separates second- from millisecond-precision epochs.
const epochMillisThreshold = 1e11

// maxEpochMillis is 9999-12-31T23:59:59.999Z. Larger epochs are treated as invalid.
const maxEpochMillis = 253402300799999

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		t.Time = parseTimestamp(strings.TrimSpace(s))
		return nil
	}

	n, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		t.Time = time.Time{}
		return nil
	}
	t.Time = fromEpoch(n)
	return nil
}

// MarshalJSON writes RFC 3339, or null for the zero time.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339))
}

func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed
		}
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return fromEpoch(n)
	}
	return time.Time{}
}

func fromEpoch(n float64) time.Time {
	// Also rejects NaN.
	if !(n > 0 && n <= maxEpochMillis) {
		return time.Time{}
	}
	if n >= epochMillisThreshold {
		return time.UnixMilli(int64(n)).UTC()
	}
	return time.Unix(int64(n), 0).UTC()
}
