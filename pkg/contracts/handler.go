package contracts

import (
	"context"

	"github.com/julienschmidt/httprouter"
)

// Handler is implemented by every HTTP surface mounted by pkg/app.
type Handler interface {
	RegisterRoutes(*httprouter.Router)
}

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
