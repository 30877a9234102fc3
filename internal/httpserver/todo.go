package httpserver

import (
	"context"

	"todo-web/internal/middleware"
	todoHTTP "todo-web/internal/todo/delivery/http"
	todoUC "todo-web/internal/todo/usecase"
)

// setupTodoDomain wires use case and handler for the todo pages and
// registers them at the root of the router.
func (srv *HTTPServer) setupTodoDomain(ctx context.Context, mw middleware.Middleware) error {
	// 1. UseCase
	uc := todoUC.New(srv.todoRepo, srv.l)

	// 2. HTTP Handler
	h := todoHTTP.New(srv.l, uc)

	// 3. Routes: GET /, GET /todo/:filename, POST /todo/:filename
	todoHTTP.RegisterRoutes(srv.gin, h, mw)

	srv.l.Infof(ctx, "Todo domain registered")
	return nil
}
