package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"dashboard/internal/config"
	"dashboard/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Newはミドルウェアとルートを登録したechoを返す
func New(cfg config.Config, log *slog.Logger, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(log))
	// 操作者の特定だけ（認可はしない）
	e.Use(middleware.ActorJWT(cfg.JWTSecret))

	RegisterRoutes(e, h)
	return e
}

// Startはctxがキャンセルされるまでサーバーを動かし、終わったらShutdownする
func Start(ctx context.Context, addr string, e *echo.Echo, log *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info("http_listen", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("http_shutdown")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
