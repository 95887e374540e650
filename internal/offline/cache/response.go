package cache

import (
	"io"
	"net/http"
)

// Response is a fully buffered HTTP response that can be stored and served
// more than once.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Clone returns a deep copy so stored entries never share buffers with
// callers.
func (r *Response) Clone() *Response {
	if r == nil {
		return nil
	}
	body := make([]byte, len(r.Body))
	copy(body, r.Body)
	return &Response{
		StatusCode: r.StatusCode,
		Header:     r.Header.Clone(),
		Body:       body,
	}
}

// OK reports a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// ReadResponse buffers resp's body and closes it.
func ReadResponse(resp *http.Response) (*Response, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header.Clone(),
		Body:       body,
	}, nil
}

// Write sends the response to w. Extra headers are set after the stored
// ones so callers can annotate the reply.
func (r *Response) Write(w http.ResponseWriter, extra http.Header) error {
	dst := w.Header()
	for k, vv := range r.Header {
		if hopHeaders[http.CanonicalHeaderKey(k)] {
			continue
		}
		dst[k] = append([]string(nil), vv...)
	}
	for k, vv := range extra {
		dst[k] = vv
	}
	w.WriteHeader(r.StatusCode)
	_, err := w.Write(r.Body)
	return err
}

// hopHeaders are connection-scoped and never replayed from storage.
var hopHeaders = map[string]bool{
	"Connection":          true,
	"Keep-Alive":          true,
	"Proxy-Authenticate":  true,
	"Proxy-Authorization": true,
	"Te":                  true,
	"Trailer":             true,
	"Transfer-Encoding":   true,
	"Upgrade":             true,
}

// IsHopHeader reports whether name is a hop-by-hop header.
func IsHopHeader(name string) bool {
	return hopHeaders[http.CanonicalHeaderKey(name)]
}
