package core

import (
	"net/http"

	"github.com/joeydtaylor/armory/pkg/codec"
)

func writeResponse(w http.ResponseWriter, resp Response) {
	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", codec.ContentTypeJSON)
	}
	w.WriteHeader(statusIf(resp.StatusCode, http.StatusOK))
	if len(resp.Body) > 0 {
		_, _ = w.Write(resp.Body)
		return
	}
	_, _ = w.Write([]byte(`{}`))
}

func jsonError(status int, msg string) http.HandlerFunc {
	body, _ := codec.JSONStrict.Marshal(map[string]string{"error": msg})
	return func(w http.ResponseWriter, _ *http.Request) {
		writeResponse(w, Response{StatusCode: status, Body: body})
	}
}

func statusIf(s, def int) int {
	if s > 0 {
		return s
	}
	return def
}

func firstValues(m map[string][]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, vs := range m {
		if len(vs) > 0 {
			out[k] = vs[0]
		} else {
			out[k] = ""
		}
	}
	return out
}
