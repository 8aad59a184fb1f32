package web

import (
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/KevinMolina1996/realestate-front/internal/contextkeys"
	"github.com/KevinMolina1996/realestate-front/internal/core/port"
)

// CreateProxy - обратный прокси на properties API.
// Путь после mountPrefix приклеивается к пути базового адреса: /api/properties/1 -> {base}/properties/1.
func CreateProxy(target *url.URL, mountPrefix string, logger port.LoggerPort) http.Handler {
	proxy := httputil.NewSingleHostReverseProxy(target)

	proxy.Director = func(req *http.Request) {
		req.URL.Scheme = target.Scheme
		req.URL.Host = target.Host
		req.Host = target.Host

		// query остается в req.URL.RawQuery
		rest := strings.TrimPrefix(req.URL.Path, mountPrefix)
		req.URL.Path = target.JoinPath(rest).Path
		req.URL.RawPath = ""

		if traceID := contextkeys.TraceIDFromContext(req.Context()); traceID != "" {
			req.Header.Set(contextkeys.TraceHeader, traceID)
		}
	}

	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		logger.Error("Properties API proxy request failed", err, port.Fields{
			"http_method": r.Method,
			"http_path":   r.URL.Path,
			"trace_id":    contextkeys.TraceIDFromContext(r.Context()),
		})
		w.WriteHeader(http.StatusBadGateway)
	}

	return proxy
}
