package ui

import (
	"embed"
	"fmt"
	"html/template"
	"sync"

	"github.com/gin-gonic/gin"

	"tablematch/adapters/excel"
	"tablematch/internal"
	"tablematch/internal/config"
)

//go:embed templates/*
var embeddedFiles embed.FS

// App represents the web application: the gin router plus the session state
// holding the imported datasets. All dataset mutation happens here behind
// the lock; the parsing and filtering core stays pure.
type App struct {
	router    *gin.Engine
	cfg       *config.Config
	workbooks *excel.WorkbookReader
	templates *template.Template
	logger    *internal.Logger

	mu         sync.RWMutex
	datasets   map[Role]*StoredDataset
	lastFilter *filterResult
}

// NewApp creates a new web application
func NewApp(cfg *config.Config) (*App, error) {
	gin.SetMode(cfg.Server.GinMode)

	templates, err := template.ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	app := &App{
		router:    gin.Default(),
		cfg:       cfg,
		workbooks: excel.NewWorkbookReader(),
		templates: templates,
		logger:    internal.NewDefaultLogger(),
		datasets:  make(map[Role]*StoredDataset),
	}
	app.setupRoutes()
	return app, nil
}

func (a *App) setupRoutes() {
	a.router.SetHTMLTemplate(a.templates)
	a.router.MaxMultipartMemory = a.cfg.Upload.MaxUploadMB << 20

	a.router.GET("/", a.handleIndex)

	api := a.router.Group("/api")
	api.POST("/datasets/:role", a.handleDatasetUpload)
	api.GET("/datasets/:role", a.handleDatasetGet)
	api.GET("/keywords", a.handleKeywords)
	api.POST("/filter", a.handleFilter)
	api.GET("/filter/export", a.handleFilterExport)
}

// Start runs the HTTP server until it fails
func (a *App) Start() error {
	a.logger.Info("Listening on :%s", a.cfg.Server.Port)
	return a.router.Run(":" + a.cfg.Server.Port)
}

// Router exposes the underlying handler, used by tests
func (a *App) Router() *gin.Engine {
	return a.router
}
