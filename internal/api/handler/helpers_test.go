package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// withURLParams attaches chi URL params given as key/value pairs.
func withURLParams(req *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
