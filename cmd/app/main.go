package main

import (
	"tasklist/config"
	"tasklist/di"
	"tasklist/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
