package app

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/godigest/internal/digest/entity"
	"github.com/shandysiswandi/godigest/internal/pkg/config"
	"github.com/shandysiswandi/godigest/internal/pkg/hash"
	"github.com/shandysiswandi/godigest/internal/pkg/instrument"
	"github.com/shandysiswandi/godigest/internal/pkg/router"
	"github.com/shandysiswandi/godigest/internal/pkg/salt"
	"github.com/shandysiswandi/godigest/internal/pkg/uid"
	"github.com/shandysiswandi/godigest/internal/pkg/validator"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	validator validator.Validator
	uuid      uid.StringID
	salt      *salt.Generator
	hashers   map[entity.Algorithm]hash.Hash

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
