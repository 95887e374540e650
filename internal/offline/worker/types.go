package worker

import (
	"net/http"
	"net/url"
	"strings"
)

// State is a worker's lifecycle position.
type State int

const (
	StateParsed State = iota
	StateInstalling
	StateInstalled
	StateActivating
	StateActivated
	StateRedundant
)

var stateNames = [...]string{
	StateParsed:     "parsed",
	StateInstalling: "installing",
	StateInstalled:  "installed",
	StateActivating: "activating",
	StateActivated:  "activated",
	StateRedundant:  "redundant",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Class is how a request is routed to a caching strategy.
type Class string

const (
	ClassNavigation  Class = "navigation"
	ClassAsset       Class = "asset"
	ClassOther       Class = "other"
	ClassPassthrough Class = "passthrough"
)

// Source says where a served response came from.
type Source string

const (
	SourceNetwork  Source = "network"
	SourceCache    Source = "cache"
	SourceFallback Source = "fallback"
	SourceNone     Source = "none"
)

// HeaderSource is set on every proxied response.
const HeaderSource = "X-Offline-Source"

// Config describes one worker version. Origin is the URL of the site the
// worker caches; absolute request URLs naming any other host are
// cross-origin.
type Config struct {
	Origin      string
	Prefix      string
	Version     string
	Assets      []string
	ShellPath   string
	SkipWaiting bool
}

// CacheName is the versioned bucket name, "{prefix}-{version}".
func (c Config) CacheName() string {
	return c.Prefix + "-" + c.Version
}

// Event types published by a Registration.
const (
	EventStateChange      = "statechange"
	EventControllerChange = "controllerchange"
	EventInstallError     = "installerror"
)

// Event is a lifecycle message from the worker side to page-side listeners.
type Event struct {
	Type    string `json:"type"`
	Version string `json:"version"`
	State   string `json:"state"`
	Error   string `json:"error,omitempty"`
}

// isNavigation follows the request mode when the browser sends it, and
// otherwise treats an HTML-accepting GET as a page load.
func isNavigation(r *http.Request) bool {
	if mode := r.Header.Get("Sec-Fetch-Mode"); mode != "" {
		return mode == "navigate"
	}
	return r.Method == http.MethodGet && strings.Contains(r.Header.Get("Accept"), "text/html")
}

// isCrossOrigin reports an absolute-form request URL naming a host other
// than originHost. The request's Host header is not consulted: for
// absolute-form requests the server copies it from the URL.
func isCrossOrigin(r *http.Request, originHost string) bool {
	return r.URL.Host != "" && (originHost == "" || !strings.EqualFold(r.URL.Host, originHost))
}

// originHost returns the host of an origin URL, or "" when it has none.
func originHost(origin string) string {
	u, err := url.Parse(origin)
	if err != nil {
		return ""
	}
	return u.Host
}
