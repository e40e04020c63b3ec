package handler

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/aijournal/internal/config"
	"github.com/aijournal/internal/service"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db      *gorm.DB
	cfg     config.AppConfig
	entries *service.EntryService
	tags    *service.TagService
	posts   *service.PostService
	logger  zerolog.Logger
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, cfg config.AppConfig) *API {
	return &API{
		db:      gdb,
		cfg:     cfg,
		entries: service.NewEntryService(gdb),
		tags:    service.NewTagService(gdb),
		posts:   service.NewPostService(gdb),
		logger:  log.With().Str("handlerName", "api").Logger(),
	}
}

// DB exposes the underlying gorm instance for test setup.
func (a *API) DB() *gorm.DB {
	return a.db
}
