// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

package analytics

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/markrahimi/folio/internal/platform/middleware"
	requestutil "github.com/markrahimi/folio/internal/platform/request"
	"github.com/markrahimi/folio/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ViewRoutes serves /api/views: public tracking and the public totals read.
func (handler *Handler) ViewRoutes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.track)
	router.Get("/", handler.summary)

	return router
}

// StatsRoutes serves /api/stats, admin only.
func (handler *Handler) StatsRoutes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAdmin)

	router.Get("/", handler.stats)

	return router
}

func (handler *Handler) track(writer http.ResponseWriter, request *http.Request) {
	var input ViewInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	view, err := handler.service.Track(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, view)
}

func (handler *Handler) summary(writer http.ResponseWriter, request *http.Request) {
	summary, err := handler.service.Summary(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, summary)
}

func (handler *Handler) stats(writer http.ResponseWriter, request *http.Request) {
	stats, err := handler.service.Collect(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, stats)
}
