package handler

import (
	"net/http"
	"sync"
	"tripdesk/config"
	"tripdesk/di"
	"tripdesk/shared/logger"
	"tripdesk/transport/http/response"

	tripdeskHTTP "tripdesk/transport/http"
)

var (
	once    sync.Once
	server  *tripdeskHTTP.HTTP
	initErr error
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		server, initErr = di.InitializeService()
	})

	if initErr != nil {
		logger.ErrorWithStack(initErr)
		response.WithUnhealthy(w)

		return
	}

	server.ServeHTTP(w, r)
}
