package cache

import "net/url"

// Key is the lookup key for a request URL: its path plus query. Scheme and
// host are dropped since buckets only hold same-origin entries.
func Key(u *url.URL) string {
	p := u.EscapedPath()
	if p == "" {
		p = "/"
	}
	if u.RawQuery != "" {
		p += "?" + u.RawQuery
	}
	return p
}
