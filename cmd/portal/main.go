package main

import (
	"campusvisit/config"
	"campusvisit/di"
	"campusvisit/shared/logger"
)

// @title Campus Visit Portal API
// @version 1.0
// @description JSON endpoints used by the portal's pages. Requests carry the portal session cookie.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
