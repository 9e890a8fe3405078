package navstate

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromURLDeepLink(t *testing.T) {
	s := New("/blogs")

	values, err := url.ParseQuery("category=Cloud%20Computing")
	require.NoError(t, err)

	next, scroll := s.FromURL(values, State{})

	assert.Equal(t, "Cloud Computing", next.Category)
	assert.True(t, scroll)
}

func TestFromURLAbsentKeepsCurrent(t *testing.T) {
	s := New("/blogs")
	current := State{Query: "go", Category: "AI"}

	next, scroll := s.FromURL(url.Values{}, current)
	assert.Equal(t, current, next)
	assert.False(t, scroll)

	next, scroll = s.FromURL(url.Values{"category": {""}}, current)
	assert.Equal(t, current, next)
	assert.False(t, scroll)
}

func TestFromURLCustomParam(t *testing.T) {
	s := Synchronizer{BasePath: "/projects", Param: "tag"}

	next, scroll := s.FromURL(url.Values{"tag": {"Go"}, "category": {"AI"}}, State{})
	assert.Equal(t, "Go", next.Category)
	assert.True(t, scroll)
	assert.Equal(t, "/projects?tag=Go", s.URL(next))
}

func TestActivateToggleOff(t *testing.T) {
	s := New("/blogs")

	state := Activate(State{Query: "llm"}, "AI")
	assert.Equal(t, State{Query: "llm", Category: "AI"}, state)
	assert.Equal(t, "/blogs?category=AI", s.URL(state))

	state = Activate(state, "AI")
	assert.True(t, state.IsZero(), "second press clears category and query")
	assert.Equal(t, "/blogs", s.URL(state))
}

func TestActivateSwitchesCategory(t *testing.T) {
	state := Activate(State{Query: "x", Category: "AI"}, "DevOps")
	assert.Equal(t, State{Query: "x", Category: "DevOps"}, state)
}

func TestClear(t *testing.T) {
	assert.Equal(t, State{}, Clear())
	assert.Equal(t, "/blogs", New("/blogs").URL(Clear()))
}

func TestURLEscaping(t *testing.T) {
	s := New("/blogs")

	tests := []struct {
		category string
		want     string
	}{
		{"", "/blogs"},
		{"AI", "/blogs?category=AI"},
		{"Cloud Computing", "/blogs?category=Cloud%20Computing"},
		{"R&D", "/blogs?category=R%26D"},
		{"C++", "/blogs?category=C%2B%2B"},
	}
	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			got := s.URL(State{Category: tt.category})
			assert.Equal(t, tt.want, got)

			if tt.category == "" {
				return
			}
			u, err := url.Parse(got)
			require.NoError(t, err)
			back, scroll := s.FromURL(u.Query(), State{})
			assert.Equal(t, tt.category, back.Category)
			assert.True(t, scroll)
		})
	}
}

func TestURLPathsConverge(t *testing.T) {
	s := New("/blogs")

	// A button press and the resulting history entry read back must agree.
	pressed := Activate(State{}, "Cloud Computing")
	u, err := url.Parse(s.URL(pressed))
	require.NoError(t, err)

	pulled, _ := s.FromURL(u.Query(), State{})
	assert.Equal(t, pressed.Category, pulled.Category)
}

func TestReturnURL(t *testing.T) {
	s := New("/blogs")

	assert.Equal(t, "/blogs", s.ReturnURL(Return{}))
	assert.Equal(t, "/blogs?scroll=640", s.ReturnURL(Return{ScrollY: 640}))
	assert.Equal(t, "/blogs?category=Cloud%20Computing&scroll=640",
		s.ReturnURL(Return{ScrollY: 640, Category: "Cloud Computing"}))
	assert.Equal(t, "/blogs?category=AI", s.ReturnURL(Return{ScrollY: -3, Category: "AI"}))
}

func TestPageURLCarriesQuery(t *testing.T) {
	s := New("/blogs")

	assert.Equal(t, "/blogs", s.PageURL(State{}))
	assert.Equal(t, "/blogs?q=vector%20search", s.PageURL(State{Query: "vector search"}))
	assert.Equal(t, "/blogs?category=AI&q=llm", s.PageURL(State{Query: "llm", Category: "AI"}))
	assert.Equal(t, "/blogs?category=AI", s.URL(State{Query: "llm", Category: "AI"}), "pushed URL omits the query")
}
