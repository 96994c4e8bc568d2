// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

package education

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

// Routes serves /api/education.
//
// The collection read is public; the single read returns the full bilingual
// document and therefore sits behind the admin gate along with mutations.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listPublished)

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireAdmin)
		admin.Get("/{id}", handler.get)
		admin.Post("/", handler.create)
		admin.Put("/{id}", handler.update)
		admin.Delete("/{id}", handler.delete)
	})

	return router
}

// AdminRoutes serves /api/admin/education.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAdmin)

	router.Get("/", handler.listAll)

	return router
}

func (handler *Handler) listPublished(writer http.ResponseWriter, request *http.Request) {
	entries, err := handler.service.ListPublished(request.Context(), i18n.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, entries)
}

func (handler *Handler) listAll(writer http.ResponseWriter, request *http.Request) {
	entries, err := handler.service.ListAll(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, entries)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	e, err := handler.service.Get(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, e)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	e, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, e)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	e, err := handler.service.Update(request.Context(), requestutil.ID(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, e)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]string{"message": "Education deleted successfully"})
}
