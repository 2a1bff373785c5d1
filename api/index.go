package handler

import (
	"net/http"
	"os"

	"hotelboard/config"
	"hotelboard/di"
	"hotelboard/shared/logger"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()
	logger.SetOutput(cfg, os.Stdout)

	logger.SetLogLevel(cfg)

	handler := di.InitializeService()
	handler.ServeHTTP(w, r)
}
