package main

import (
	"github.com/elizhang33/room-reservations-api/config"
	"github.com/elizhang33/room-reservations-api/di"
	"github.com/elizhang33/room-reservations-api/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
