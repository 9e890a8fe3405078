package navstate

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReturnRoundTrip(t *testing.T) {
	s := New("/blogs")
	r := Return{ScrollY: 1200, Category: "Cloud Computing"}
	assert.Equal(t, r, s.DecodeReturn(s.EncodeReturn(r)))

	assert.Equal(t, "", s.EncodeReturn(Return{}))
	assert.True(t, s.DecodeReturn("").IsZero())
}

func TestDecodeReturnTolerance(t *testing.T) {
	s := New("/blogs")
	assert.Equal(t, Return{Category: "AI"}, s.DecodeReturn("scroll=abc&category=AI"))
	assert.Equal(t, Return{}, s.DecodeReturn("%zz"))
	assert.Equal(t, Return{}, s.DecodeReturn("scroll=-5"))
}

func TestReturnFromQuery(t *testing.T) {
	s := New("/blogs")
	r := s.ReturnFromQuery(url.Values{"scroll": {"300"}, "category": {"AI"}})
	assert.Equal(t, Return{ScrollY: 300, Category: "AI"}, r)
	assert.False(t, r.IsZero())
	assert.True(t, s.ReturnFromQuery(url.Values{}).IsZero())
}

func TestReturnUsesCustomParam(t *testing.T) {
	s := Synchronizer{BasePath: "/projects", Param: "tag"}
	r := Return{ScrollY: 80, Category: "Go"}

	assert.Equal(t, url.Values{"tag": {"Go"}, "scroll": {"80"}}, s.ReturnValues(r))
	assert.Equal(t, r, s.DecodeReturn(s.EncodeReturn(r)))
	assert.Equal(t, Return{Category: "Go"}, s.ReturnFromQuery(url.Values{"tag": {"Go"}, "category": {"AI"}}))
	assert.Equal(t, "/projects?tag=Go&scroll=80", s.ReturnURL(r))
}
