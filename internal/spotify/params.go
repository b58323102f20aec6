package spotify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Pagination defaults documented by the Spotify API for every
// limit/offset pair.
const (
	DefaultLimit  = 20
	DefaultOffset = 0
)

// Params is an insertion-ordered set of wire parameters.
//
// Values are strings, integers, booleans, or string slices. Entries left
// unset by the caller are never added, so they cannot appear on the wire.
type Params struct {
	keys   []string
	values map[string]any
}

// NewParams creates an empty parameter set.
func NewParams() *Params {
	return &Params{values: make(map[string]any)}
}

func (p *Params) add(key string, value any) {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Set adds a string parameter. Empty values are dropped rather than sent.
func (p *Params) Set(key, value string) {
	if value == "" {
		return
	}
	p.add(key, value)
}

// SetInt adds an integer parameter.
func (p *Params) SetInt(key string, value int) {
	p.add(key, value)
}

// SetInt64 adds a 64-bit integer parameter (millisecond timestamps).
func (p *Params) SetInt64(key string, value int64) {
	p.add(key, value)
}

// SetBool adds a boolean parameter.
func (p *Params) SetBool(key string, value bool) {
	p.add(key, value)
}

// SetStrings adds a string-slice parameter. Empty slices are dropped.
func (p *Params) SetStrings(key string, values []string) {
	if len(values) == 0 {
		return
	}
	p.add(key, values)
}

// SetList adds a multi-value parameter in its canonical comma-separated
// wire form. Zero lists are dropped.
func (p *Params) SetList(key string, list List) {
	if list.IsZero() {
		return
	}
	p.add(key, list.String())
}

// SetPage adds the limit/offset pair, applying the documented defaults
// when the caller left them unset. Paged operations always carry both.
func (p *Params) SetPage(limit, offset int) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if offset < 0 {
		offset = DefaultOffset
	}
	p.SetInt("limit", limit)
	p.SetInt("offset", offset)
}

// Get returns the value recorded for key.
func (p *Params) Get(key string) (any, bool) {
	if p == nil {
		return nil, false
	}
	v, ok := p.values[key]
	return v, ok
}

// Has reports whether key was recorded.
func (p *Params) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// Len returns the number of recorded parameters.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Keys returns the parameter names in insertion order.
func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.keys...)
}

// Encode renders the parameters as a query string in insertion order.
func (p *Params) Encode() string {
	if p.Len() == 0 {
		return ""
	}

	var sb strings.Builder
	for i, key := range p.keys {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(stringValue(p.values[key])))
	}
	return sb.String()
}

// MarshalJSON renders the parameters as a JSON object preserving
// insertion order, for verbs that carry a body.
func (p *Params) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(p.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// stringValue renders a parameter value for the query string. Slices use
// the comma-separated wire form.
func stringValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	case []string:
		return strings.Join(t, ",")
	default:
		return fmt.Sprintf("%v", t)
	}
}
