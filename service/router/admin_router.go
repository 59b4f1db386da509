// Package router is the admin http surface of the histogram tools
package router

import (
	"encoding/json"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/histkit/histogram-go-lib/service/info"
)

// AdminRouter router for administration functions
type AdminRouter struct {
	appinfo *info.Info
	mux     *http.ServeMux
}

// NewAdminRouter create router with health, info and prometheus
// metrics endpoints
func NewAdminRouter(appinfo *info.Info) *AdminRouter {

	a := &AdminRouter{
		appinfo: appinfo,
	}

	a.mux = http.NewServeMux()
	a.mux.HandleFunc("/health", a.health)
	a.mux.HandleFunc("/info", a.info)
	a.mux.Handle("/metrics", promhttp.Handler())

	return a
}

// Handle registers the handler for the given pattern
func (a *AdminRouter) Handle(path string, handler http.Handler) {
	a.mux.Handle(path, handler)
}

// ServeHTTP dispatches the request (http.Handler implementation)
func (a *AdminRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	a.mux.ServeHTTP(w, req)
}

// handler function for liveness and readiness probes
func (a *AdminRouter) health(w http.ResponseWriter, req *http.Request) {

	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *AdminRouter) info(w http.ResponseWriter, req *http.Request) {

	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if err := json.NewEncoder(w).Encode(a.appinfo); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}
