package core

import (
	"net/http"

	"github.com/joeydtaylor/armory/pkg/middleware/logger"
	httpx "github.com/joeydtaylor/armory/pkg/transport/httpx"
)

type BuildDeps struct {
	LogMW   *logger.Middleware
	Metrics http.Handler
	Router  httpx.Router
}
