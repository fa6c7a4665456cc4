// Package app assembles the catalog from its configuration: database,
// repositories, cover lookup, catalog service and the HTTP router.
package app

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/snnyvrz/library/internal/config"
	"github.com/snnyvrz/library/internal/cover"
	"github.com/snnyvrz/library/internal/docs"
	"github.com/snnyvrz/library/internal/handler"
	"github.com/snnyvrz/library/internal/middleware"
	"github.com/snnyvrz/library/internal/repository"
	"github.com/snnyvrz/library/internal/service"
	"github.com/snnyvrz/library/internal/web"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const Version = "0.1.0"

const shutdownTimeout = 10 * time.Second

type App struct {
	Config  *config.Config
	Log     *zap.Logger
	DB      *gorm.DB
	Authors repository.AuthorRepository
	Books   repository.BookRepository
	UoW     repository.UnitOfWork
	Covers  cover.Lookup
	Catalog *service.Catalog

	startTime time.Time
}

func New(cfg *config.Config, log *zap.Logger, db *gorm.DB) *App {
	var covers cover.Lookup = cover.Noop{}
	if cfg.CoverEnabled {
		covers = cover.NewOpenLibraryClient(cfg.CoverBaseURL, cfg.CoverUserAgent, cfg.CoverRPS, cfg.CoverTimeout)
	}

	a := &App{
		Config:    cfg,
		Log:       log,
		DB:        db,
		Authors:   repository.NewAuthorRepository(db),
		Books:     repository.NewGormBookRepository(db),
		UoW:       repository.NewUnitOfWork(db),
		Covers:    covers,
		startTime: time.Now(),
	}
	a.Catalog = service.NewCatalog(a.Authors, a.Books, a.UoW, a.Covers, log.Named("catalog"))
	return a
}

func (a *App) Router() (*gin.Engine, error) {
	gin.SetMode(a.Config.GinMode)

	e := gin.New()
	e.Use(middleware.RequestID(), middleware.AccessLog(a.Log.Named("http")), middleware.Recovery(a.Log))

	if err := e.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
		return nil, errors.Wrap(err, "set trusted proxies")
	}

	e.SetHTMLTemplate(web.Templates())
	e.StaticFS("/static", web.Static())

	sqlDB, err := a.DB.DB()
	if err != nil {
		return nil, errors.Wrap(err, "get sql.DB from gorm")
	}
	handler.NewHealthHandler(sqlDB, a.startTime, Version).RegisterRoutes(e)

	root := e.Group("")
	handler.NewCatalogHandler(a.Catalog, a.Log).RegisterRoutes(root)
	handler.NewAuthorHandler(a.Catalog, a.Log).RegisterRoutes(root)
	handler.NewBookHandler(a.Catalog, a.Log).RegisterRoutes(root)

	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Version = Version
	e.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return e, nil
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down
// gracefully.
func (a *App) Serve(ctx context.Context) error {
	router, err := a.Router()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              a.Config.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.Log.Info("listening", zap.String("addr", srv.Addr), zap.String("version", Version))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "listen")
	case <-ctx.Done():
	}

	a.Log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	return nil
}
