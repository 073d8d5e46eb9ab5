package main

import (
	"sorabora/config"
	"sorabora/di"
	"sorabora/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
