// Package upstream forwards requests that pass the edge middleware to the
// YT HTTP proxy backend.
package upstream

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"

	"go.uber.org/zap"

	"github.com/zenGate-Global/yt-http-gateway/platform/go/cors"
	platformlogging "github.com/zenGate-Global/yt-http-gateway/platform/go/logging"
)

// edgeOwned lists response headers the edge sets itself for methods the CORS
// filter handles; upstream copies are discarded only for those methods.
var edgeOwned = []string{
	cors.HeaderAllowCredentials,
	cors.HeaderAllowOrigin,
	cors.HeaderAllowMethods,
	cors.HeaderAllowHeaders,
	cors.HeaderMaxAge,
}

// ParseTarget validates the upstream base URL.
func ParseTarget(raw string) (*url.URL, error) {
	target, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse upstream url: %w", err)
	}
	if target.Scheme != "http" && target.Scheme != "https" {
		return nil, fmt.Errorf("upstream url %q: scheme must be http or https", raw)
	}
	if target.Host == "" {
		return nil, errors.New("upstream url: host is required")
	}
	return target, nil
}

// New builds a reverse proxy to target. The fallback logger is used when the
// request carries none.
func New(target *url.URL, fallback *zap.Logger) http.Handler {
	if target == nil {
		panic("upstream: target is required")
	}
	if fallback == nil {
		fallback = zap.NewNop()
	}

	proxy := &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.SetXForwarded()
		},
		ModifyResponse: func(resp *http.Response) error {
			if resp.Request == nil || cors.ParseMethod(resp.Request.Method) == cors.MethodOther {
				return nil
			}
			for _, name := range edgeOwned {
				resp.Header.Del(name)
			}
			return nil
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			logger := platformlogging.FromRequest(r, fallback)
			logger.Error("upstream request failed",
				zap.String("upstream", target.Host),
				zap.Error(err),
			)
			http.Error(w, "bad gateway", http.StatusBadGateway)
		},
	}

	return proxy
}
