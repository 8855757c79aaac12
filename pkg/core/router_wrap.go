package core

import (
	"io"
	"net/http"

	manifest "github.com/joeydtaylor/armory/pkg/manifest"
)

// maxBodyBytes caps what an in-process handler gets to see of the request body.
const maxBodyBytes = 1 << 20

func wrapRoute(rt manifest.Route) http.HandlerFunc {
	switch rt.Handler.Type {
	case manifest.HandlerInproc:
		h, ok := Lookup(rt.Handler.Name)
		if !ok {
			return func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "handler not found", http.StatusInternalServerError)
			}
		}
		return func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
			resp, err := h(r.Context(), RequestFromHTTP(r, body))
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			writeResponse(w, resp)
		}

	default:
		return func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "unknown handler type", http.StatusInternalServerError)
		}
	}
}

// RequestFromHTTP flattens r into a Request. A request without a query string
// yields a nil Query, matching an absent parameter set.
func RequestFromHTTP(r *http.Request, body []byte) Request {
	req := Request{
		Method:  r.Method,
		Path:    r.URL.Path,
		Headers: firstValues(r.Header),
		Body:    body,
	}
	if r.URL.RawQuery != "" {
		req.Query = firstValues(r.URL.Query())
	}
	return req
}
