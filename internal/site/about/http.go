// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

package about

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/markrahimi/folio/internal/platform/middleware"
	requestutil "github.com/markrahimi/folio/internal/platform/request"
	"github.com/markrahimi/folio/internal/platform/respond"
	"github.com/markrahimi/folio/pkg/i18n"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes serves /api/about.
//
// GET is public and bilingual by default; the admin editor and the site's
// language switcher both want the whole document, so projection only happens
// when ?lang= is present.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.get)
	router.With(middleware.RequireAdmin).Put("/", handler.update)

	return router
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	if i18n.Requested(request) {
		a, err := handler.service.GetLocalized(request.Context(), i18n.FromRequest(request))
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, a)
		return
	}

	a, err := handler.service.Get(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, a)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	a, err := handler.service.Update(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, a)
}
