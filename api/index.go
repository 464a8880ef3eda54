package handler

import (
	"net/http"
	"sync"

	"campusvisit/config"
	"campusvisit/di"
	"campusvisit/shared/logger"
	transport "campusvisit/transport/http"
)

var (
	portal     *transport.HTTP
	portalOnce sync.Once
)

// Handler serves the portal from a serverless function; the app is built once per instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	portalOnce.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		portal = di.InitializeService()
	})

	portal.ServeHTTP(w, r)
}
