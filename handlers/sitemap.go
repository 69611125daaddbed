package handlers

import (
	"net/http"
	"regexp"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// paramPattern matches "{name:regexp}" route segments.
var paramPattern = regexp.MustCompile(`\{([^}:]+):[^}]*\}`)

type RouteInfo struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// ListRoutes walks the router and returns every registered route, sorted
// by path then method. HEAD and OPTIONS entries are skipped.
func ListRoutes(routes chi.Routes) ([]RouteInfo, error) {
	var out []RouteInfo
	err := chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if method == http.MethodHead || method == http.MethodOptions {
			return nil
		}
		route = paramPattern.ReplaceAllString(route, "{$1}")
		if len(route) > 1 {
			route = strings.TrimSuffix(route, "/")
		}
		out = append(out, RouteInfo{Method: method, Path: route})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Method < out[j].Method
	})
	return out, nil
}

// Sitemap serves GET / with the list of endpoints the router exposes.
// The router is walked per request so late registrations show up.
func Sitemap(routes chi.Routes, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := ListRoutes(routes)
		if err != nil {
			writeInternalError(w, r, logger, "failed to walk routes", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"msg":     "available endpoints",
			"results": list,
		})
	}
}
