// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

package blog

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/markrahimi/folio/internal/platform/apperr"
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

// Routes serves /api/blogs.
//
// Reads are public and language-projected; mutations sit behind the admin gate.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listPublished)
	router.Get("/{id}", handler.getPublished)

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireAdmin)
		admin.Post("/", handler.create)
		admin.Put("/{id}", handler.update)
		admin.Delete("/{id}", handler.delete)
	})

	return router
}

// AdminRoutes serves /api/admin/blogs: full bilingual documents, drafts included.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAdmin)

	router.Get("/", handler.listAll)
	router.Get("/{id}", handler.get)

	return router
}

func (handler *Handler) listPublished(writer http.ResponseWriter, request *http.Request) {
	posts, err := handler.service.ListPublished(request.Context(), i18n.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, posts)
}

func (handler *Handler) getPublished(writer http.ResponseWriter, request *http.Request) {
	id, err := parseID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	post, err := handler.service.GetPublished(request.Context(), id, i18n.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, post)
}

func (handler *Handler) listAll(writer http.ResponseWriter, request *http.Request) {
	posts, err := handler.service.ListAll(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, posts)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id, err := parseID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	post, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, post)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	post, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, post)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	id, err := parseID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	post, err := handler.service.Update(request.Context(), id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, post)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	id, err := parseID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]string{"message": "Blog deleted successfully"})
}

// parseID reads the numeric public id from the URL. A non-numeric id can never
// match a post, so it maps to 404 rather than a validation error.
func parseID(request *http.Request) (int64, error) {
	id, err := strconv.ParseInt(requestutil.ID(request, "id"), 10, 64)
	if err != nil {
		return 0, apperr.NotFound("Blog")
	}
	return id, nil
}
