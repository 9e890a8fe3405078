package content

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampFormats(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{`"2024-03-01T10:00:00Z"`, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		{`"2024-03-01T10:00:00.250Z"`, time.Date(2024, 3, 1, 10, 0, 0, 250e6, time.UTC)},
		{`"2024-03-01"`, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{`1717200000`, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		{`1717200000000`, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		{`"1717200000"`, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(tt.input), &ts), tt.input)
		assert.True(t, tt.want.Equal(ts.Time), "input %s: got %v, want %v", tt.input, ts.Time, tt.want)
	}
}

func TestTimestampUnparseableIsZero(t *testing.T) {
	for _, input := range []string{`null`, `""`, `"last tuesday"`, `-5`, `1e30`, `"1e30"`, `"NaN"`, `"+Inf"`, `253402300800000`} {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(input), &ts), input)
		assert.True(t, ts.IsZero(), input)
	}
}

func TestTimestampMarshal(t *testing.T) {
	data, err := json.Marshal(Timestamp{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	data, err = json.Marshal(Timestamp{time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-01T10:00:00Z"`, string(data))
}

func TestArticleDescriptionAlias(t *testing.T) {
	var a Article
	require.NoError(t, json.Unmarshal([]byte(`{"id":"x","title":"T","description":"from description"}`), &a))
	assert.Equal(t, "from description", a.Summary)

	require.NoError(t, json.Unmarshal([]byte(`{"id":"y","summary":"kept","description":"ignored"}`), &a))
	assert.Equal(t, "kept", a.Summary)
}

func TestArticleMistypedFieldKeepsRest(t *testing.T) {
	var a Article
	err := json.Unmarshal([]byte(`{"id":"x","title":"Kept","tags":"not-a-list"}`), &a)
	require.Error(t, err)
	assert.Equal(t, "x", a.ID)
	assert.Equal(t, "Kept", a.Title)
	assert.Empty(t, a.Tags)
}

func TestArticleKey(t *testing.T) {
	assert.Equal(t, "primary", Article{ID: "primary", AltID: "alt"}.Key())
	assert.Equal(t, "alt", Article{AltID: "alt", Slug: "slug"}.Key())
	assert.Equal(t, "slug", Article{Slug: "slug"}.Key())
}

func TestArticlePublishedDefault(t *testing.T) {
	assert.True(t, Article{}.IsPublished())

	no := false
	assert.False(t, Article{Published: &no}.IsPublished())
}

func TestArticleDateFallsBackToNow(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	assert.Equal(t, now, Article{}.Date(now))

	created := time.Date(2023, 5, 6, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, created, Article{CreatedAt: Timestamp{created}}.Date(now))
}
