// pkg/core/message.go
package core

import "context"

// Request is the transport-neutral description of an incoming call.
// Query and Headers keep only the first value per key. A nil Query means the
// caller sent no parameter set at all.
type Request struct {
	Method  string
	Path    string
	Query   map[string]string
	Headers map[string]string
	Body    []byte
}

// Param returns the named query parameter and whether it was present.
func (r Request) Param(name string) (string, bool) {
	v, ok := r.Query[name]
	return v, ok
}

// Response is written verbatim by every edge.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
}

// InprocHandler is the signature for in-process handlers referenced by name
// from manifest.toml. A returned error is an edge-level failure; handlers that
// produce their own error payloads return them as a Response.
type InprocHandler func(ctx context.Context, req Request) (Response, error)
