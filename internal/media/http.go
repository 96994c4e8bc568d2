// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

package media

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/markrahimi/folio/internal/platform/apperr"
	"github.com/markrahimi/folio/internal/platform/middleware"
	"github.com/markrahimi/folio/internal/platform/respond"
)

// maxUploadBytes bounds the multipart form we are willing to buffer.
const maxUploadBytes = 10 << 20

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes serves /api/upload, admin only.
//
// Public IDs contain slashes, so deletion takes the id as a query parameter
// rather than a path segment.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAdmin)

	router.Post("/", handler.upload)
	router.Delete("/", handler.remove)

	return router
}

func (handler *Handler) upload(writer http.ResponseWriter, request *http.Request) {
	request.Body = http.MaxBytesReader(writer, request.Body, maxUploadBytes)

	file, header, err := request.FormFile("file")
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("A file field is required"))
		return
	}
	defer file.Close()

	upload, err := handler.service.Store(request.Context(), file, header.Filename)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, upload)
}

func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	publicID := request.URL.Query().Get("publicId")

	if err := handler.service.Remove(request.Context(), publicID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]string{"message": "Image deleted successfully"})
}
