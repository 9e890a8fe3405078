package navstate

import (
	"net/url"
	"strconv"
)

// ReturnCookie names the one-shot cookie holding a Return.
const ReturnCookie = "nav_return"

// ReturnMaxAge bounds how long a Return survives if never read, in seconds.
const ReturnMaxAge = 60

// Return is the context a listing hands to a detail view so the trip back
// restores the scroll offset and category. It is read once and discarded.
type Return struct {
	ScrollY  int
	Category string
}

// IsZero reports whether r carries nothing worth restoring.
func (r Return) IsZero() bool {
	return r.ScrollY <= 0 && r.Category == ""
}

// ReturnValues renders r as query parameters, the category under s's
// parameter name. Empty fields are left out.
func (s Synchronizer) ReturnValues(r Return) url.Values {
	v := url.Values{}
	if r.ScrollY > 0 {
		v.Set(ScrollParam, itoa(r.ScrollY))
	}
	if r.Category != "" {
		v.Set(s.param(), r.Category)
	}
	return v
}

// ReturnFromQuery reads a Return from the scroll and category parameters.
// A missing or malformed scroll offset is treated as zero.
func (s Synchronizer) ReturnFromQuery(values url.Values) Return {
	r := Return{Category: values.Get(s.param())}
	if n, err := strconv.Atoi(values.Get(ScrollParam)); err == nil && n > 0 {
		r.ScrollY = n
	}
	return r
}

// EncodeReturn serializes r for storage in a cookie.
func (s Synchronizer) EncodeReturn(r Return) string {
	return s.ReturnValues(r).Encode()
}

// DecodeReturn parses a value produced by EncodeReturn. Garbage yields a zero Return.
func (s Synchronizer) DecodeReturn(raw string) Return {
	values, err := url.ParseQuery(raw)
	if err != nil {
		return Return{}
	}
	return s.ReturnFromQuery(values)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
