// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

package certificate

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

// Routes serves /api/certificates.
//
// There is no separate admin listing: the public list already contains every
// active certificate, and inactive ones are reachable by id. The list stays
// bilingual unless the client explicitly asks for a projection.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listActive)

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireAdmin)
		admin.Get("/{id}", handler.get)
		admin.Post("/", handler.create)
		admin.Put("/{id}", handler.update)
		admin.Delete("/{id}", handler.delete)
	})

	return router
}

func (handler *Handler) listActive(writer http.ResponseWriter, request *http.Request) {
	if i18n.Requested(request) {
		certificates, err := handler.service.ListActiveLocalized(request.Context(), i18n.FromRequest(request))
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, certificates)
		return
	}

	certificates, err := handler.service.ListActive(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, certificates)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	c, err := handler.service.Get(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, c)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	c, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, c)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	c, err := handler.service.Update(request.Context(), requestutil.ID(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, c)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]string{"message": "Certificate deleted successfully"})
}
