package httpapi

import (
	"net/http"

	"github.com/riskibarqy/big5-league-stats/internal/platform/logging"
)

type RouterOptions struct {
	ServiceName        string
	CORSAllowedOrigins []string
}

func NewRouter(handler *Handler, logger *logging.Logger, opts RouterOptions) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerCatalogRoutes(mux, handler)
	registerSeasonRoutes(mux, handler)

	return RequestTracing(opts.ServiceName, RequestLogging(logger, CORS(opts.CORSAllowedOrigins, recoverPanic(logger, mux))))
}
