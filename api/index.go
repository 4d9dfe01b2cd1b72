// Package api is the entrypoint for request-per-invocation hosts: the
// host dispatches every HTTP request to Handler instead of the process
// binding a socket.
package api

import (
	"net/http"
	"sync"

	"github.com/sojibulislamrana/social-events-vercel/internal/app"
	"github.com/sojibulislamrana/social-events-vercel/internal/config"
)

var (
	initOnce sync.Once
	instance *app.App
	initErr  error
)

// Handler serves a single request. The application is constructed once per
// cold start; if that construction fails (store unreachable, bad config)
// the gate fails closed and every request is rejected uniformly rather
// than served against an unready connection.
func Handler(w http.ResponseWriter, r *http.Request) {
	initOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}
		instance, initErr = app.New(cfg)
	})

	if initErr != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"ok":false,"error":"service not ready"}`))
		return
	}

	instance.Handler().ServeHTTP(w, r)
}
