package obs

import (
	"context"
	"errors"
	"log"
	"logistichub-console/internal/ports"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// Time logs the duration of an outbound operation, tagged with the request ID
// chi assigned to the inbound request. Callers defer the returned func with a
// pointer to their named error result.
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID := middleware.GetReqID(ctx)
	if reqID == "" {
		reqID = "-"
	}

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("req_id=%s op=%s dur=%dms err=%v kind=%s", reqID, name, dur.Milliseconds(), *errp, errorKind(*errp))
			return
		}
		log.Printf("req_id=%s op=%s dur=%dms", reqID, name, dur.Milliseconds())
	}
}

func errorKind(err error) string {
	var (
		te *ports.TransportError
		ae *ports.APIError
		be *ports.BlockedError
	)
	switch {
	case errors.Is(err, ports.ErrNotFound):
		return "not_found"
	case errors.As(err, &be):
		return "blocked"
	case errors.As(err, &ae):
		return "api"
	case errors.As(err, &te):
		return "transport"
	}
	return "internal"
}
