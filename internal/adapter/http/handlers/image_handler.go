package handlers

import (
	"net/http"
	"strings"

	response "serviciosjt/internal/adapter/http/dto/response"
	"serviciosjt/internal/usecase/interfaces"
	"serviciosjt/pkg"

	"github.com/gin-gonic/gin"
)

const maxImageSize = 5 << 20 // 5 MB

var (
	errMissingImage   = pkg.NewDomainErrorSimple("INVALID_IMAGE", "Missing image file", http.StatusBadRequest)
	errImageTooLarge  = pkg.NewDomainErrorSimple("IMAGE_TOO_LARGE", "Image exceeds the 5 MB limit", http.StatusBadRequest)
	errNotAnImage     = pkg.NewDomainErrorSimple("INVALID_IMAGE", "Only image files are accepted", http.StatusBadRequest)
	errInvalidFolder  = pkg.NewDomainErrorSimple("INVALID_FOLDER", "Unknown upload folder", http.StatusBadRequest)
	errUploadInternal = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
)

var allowedImageFolders = map[string]bool{
	"publications": true,
	"proposals":    true,
	"profiles":     true,
}

// ImageHandler handles image uploads to object storage.

type ImageHandler struct {
	storage interfaces.IImageStorage
}

func NewImageHandler(storage interfaces.IImageStorage) *ImageHandler {
	return &ImageHandler{storage: storage}
}

// UploadImage accepts a multipart image (field "image") for one of the
// known folders (form value "folder") and returns its URL.
func (h *ImageHandler) UploadImage(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	folder := c.PostForm("folder")
	if !allowedImageFolders[folder] {
		respondError(c, errInvalidFolder)
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		respondError(c, errMissingImage)
		return
	}
	if fileHeader.Size > maxImageSize {
		respondError(c, errImageTooLarge)
		return
	}
	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		respondError(c, errNotAnImage)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, errUploadInternal)
		return
	}
	defer file.Close()

	url, err := h.storage.Upload(c.Request.Context(), folder, caller.ID, fileHeader.Filename, contentType, file, fileHeader.Size)
	if err != nil {
		respondError(c, pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError))
		return
	}
	c.JSON(http.StatusCreated, response.ImageUploadResponse{URL: url})
}
