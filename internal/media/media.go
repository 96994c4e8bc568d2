// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

// Package media implements admin image uploads backed by Cloudinary.
//
// The API never stores image bytes itself: the admin panel uploads a file
// here, gets back a hosted URL, and saves that URL on the content document.
package media

import (
	"context"
	"io"
	"log/slog"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/markrahimi/folio/internal/platform/apperr"
)

// Upload is the result handed back to the admin panel.
type Upload struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

type Service struct {
	client *cloudinary.Cloudinary
	logger *slog.Logger
}

// NewService builds the upload service. An empty cloudinaryURL disables
// uploads rather than failing startup, so the rest of the API still serves.
func NewService(cloudinaryURL string, logger *slog.Logger) (*Service, error) {
	if cloudinaryURL == "" {
		logger.Warn("media uploads disabled, CLOUDINARY_URL not configured")
		return &Service{logger: logger}, nil
	}

	client, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, err
	}

	return &Service{client: client, logger: logger}, nil
}

// Store pushes an image to Cloudinary and returns its hosted location.
func (service *Service) Store(context context.Context, file io.Reader, filename string) (*Upload, error) {
	if service.client == nil {
		return nil, apperr.ServiceUnavailable("Uploads are not configured")
	}

	result, err := service.client.Upload.Upload(context, file, uploader.UploadParams{
		Folder: "folio",
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}

	service.logger.Info("media_uploaded",
		slog.String("public_id", result.PublicID), slog.String("filename", filename))

	return &Upload{URL: result.SecureURL, PublicID: result.PublicID}, nil
}

// Remove deletes a previously uploaded image.
func (service *Service) Remove(context context.Context, publicID string) error {
	if service.client == nil {
		return apperr.ServiceUnavailable("Uploads are not configured")
	}
	if publicID == "" {
		return apperr.ValidationError("publicId is required")
	}

	_, err := service.client.Upload.Destroy(context, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return apperr.Internal(err)
	}

	service.logger.Info("media_deleted", slog.String("public_id", publicID))
	return nil
}
