package bootstrap

import (
	"context"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-faster/errors"

	"resume-page/internal/page"
	"resume-page/internal/services/health"
	"resume-page/internal/shared/config"
	"resume-page/internal/shared/server"
	"resume-page/internal/shared/storage/object"
	"resume-page/internal/shared/storage/object/httpsrc"
	localstore "resume-page/internal/shared/storage/object/local"
	s3store "resume-page/internal/shared/storage/object/s3"
	"resume-page/internal/shared/telemetry"
	"resume-page/resume/loader"
	"resume-page/resume/render"
)

// App holds shared dependencies.
type App struct {
	Config      config.Config
	Router      *gin.Engine
	Store       object.ObjectStore
	Loader      *loader.Loader
	Renderer    *render.Renderer
	PageService *page.Service
	PageHandler *page.Handler
	Health      *health.Service
}

// Build prepares every dependency and wires the routes.
func Build(cfg config.Config) (*App, error) {
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config")
	}
	ctx := context.Background()

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	location := DataLocation(cfg)
	ld := loader.New(store, cfg.ResumeKey, loader.WithLocation(location))
	renderer := render.NewRenderer(render.Options{AccordionExclusive: cfg.AccordionExclusive})
	pageSvc := page.NewService(ld, renderer)

	app := &App{
		Config:      cfg,
		Store:       store,
		Loader:      ld,
		Renderer:    renderer,
		PageService: pageSvc,
		PageHandler: page.NewHandler(pageSvc),
		Health:      health.NewService(cfg.ResumeSource, location),
	}
	app.Router = server.NewRouter(server.RouterDeps{
		Config:      app.Config,
		PageHandler: app.PageHandler,
		Health:      app.Health,
		Assets:      render.Assets(),
	})

	telemetry.Info("bootstrap.ready", map[string]any{
		"source":   cfg.ResumeSource,
		"location": location,
		"env":      cfg.Env,
	})
	return app, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ResumeSource {
	case config.SourceS3:
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	case config.SourceHTTP:
		return httpsrc.New(cfg.ResumeURL, nil)
	default:
		return localstore.New(cfg.LocalDataDir), nil
	}
}

// DataLocation describes where the document is read from, as shown in the
// error view and the health payload.
func DataLocation(cfg config.Config) string {
	switch cfg.ResumeSource {
	case config.SourceS3:
		return "s3://" + cfg.S3Bucket + "/" + path.Join(strings.Trim(cfg.S3Prefix, "/"), cfg.ResumeKey)
	case config.SourceHTTP:
		return strings.TrimRight(cfg.ResumeURL, "/") + "/" + strings.TrimLeft(cfg.ResumeKey, "/")
	default:
		return path.Join(filepath.ToSlash(cfg.LocalDataDir), cfg.ResumeKey)
	}
}
