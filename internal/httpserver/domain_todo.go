package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"oneday-todo/internal/middleware"
	todoHTTP "oneday-todo/internal/todo/delivery/http"
	todoRepo "oneday-todo/internal/todo/repository/sqlite"
	todoUC "oneday-todo/internal/todo/usecase"
)

// setupTodoDomain initializes the todo domain and registers its routes.
//
//  1. Schema:     todoRepo.Migrate(ctx, srv.db)
//  2. Repository: repo := todoRepo.New(srv.db, srv.l)
//  3. UseCase:    uc := todoUC.New(srv.l, repo, key); uc.Reload(ctx)
//  4. Handler:    h := todoHTTP.New(srv.l, uc)
//  5. Routes:     /api/v1/todos, /api/v1/view
func (srv HTTPServer) setupTodoDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	if err := todoRepo.Migrate(ctx, srv.db); err != nil {
		return err
	}

	repo := todoRepo.New(srv.db, srv.l)

	key := srv.snapshotKey
	if key == "" {
		key = todoUC.DefaultSnapshotKey
	}
	uc := todoUC.New(srv.l, repo, key)
	st := uc.Reload(ctx)

	h := todoHTTP.New(srv.l, uc)
	todoHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Todo domain registered with %d todos", len(st.Todos))
	return nil
}
