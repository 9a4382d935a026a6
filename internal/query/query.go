package query

import (
	"net/url"
	"strconv"
	"strings"
)

// Field describes one filter-form input for a view.
type Field struct {
	Key     string
	Label   string
	Default string
}

// DefaultLimit is applied to search requests when the form leaves limit
// blank or non-numeric.
const DefaultLimit = 200

// Collect trims the raw form values and keeps only the non-empty ones, so
// downstream defaulting can tell "unspecified" from "explicitly empty".
func Collect(raw map[string]string) map[string]string {
	out := map[string]string{}
	for k, v := range raw {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out[k] = v
	}
	return out
}

// Build serializes collected fields as-is for the non-paged views.
func Build(fields map[string]string) url.Values {
	v := url.Values{}
	for k, val := range fields {
		v.Set(k, val)
	}
	return v
}

// BuildSearch merges persisted search params (lowest priority) with freshly
// collected fields, then applies defaults: limit falls back to DefaultLimit
// when absent or non-numeric, offset is always the caller's value (0 for a
// fresh run, a computed one for pagination).
//
// The second return value is the merged parameter set, retained by the
// session so pagination re-issues the same filters.
func BuildSearch(persisted, fresh map[string]string, offset int) (url.Values, map[string]string) {
	merged := map[string]string{}
	for k, v := range persisted {
		merged[k] = v
	}
	for k, v := range fresh {
		merged[k] = v
	}
	v := url.Values{}
	for k, val := range merged {
		if k == "offset" {
			continue
		}
		v.Set(k, val)
	}
	v.Set("limit", strconv.Itoa(Limit(merged)))
	v.Set("offset", strconv.Itoa(offset))
	return v, merged
}

// Limit extracts the effective limit from a parameter set.
func Limit(params map[string]string) int {
	n, err := strconv.Atoi(params["limit"])
	if err != nil || n <= 0 {
		return DefaultLimit
	}
	return n
}

// Encode renders values as the canonical key-sorted, URL-escaped query
// string. url.Values.Encode sorts by key already.
func Encode(v url.Values) string {
	return v.Encode()
}
