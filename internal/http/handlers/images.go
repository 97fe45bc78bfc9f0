package handlers

import (
	"github.com/espritmobile/hackhub/internal/upload"
	"github.com/gin-gonic/gin"
)

type ImagesHandler struct {
	uploads *upload.Store
}

func NewImagesHandler(uploads *upload.Store) *ImagesHandler {
	return &ImagesHandler{uploads: uploads}
}

// ServeImage streams a stored hackathon image. A missing or out-of-tree
// filename is indistinguishable from a file that never existed.
func (h *ImagesHandler) ServeImage(ctx *gin.Context) {
	path, err := h.uploads.Resolve(ctx.Param("filename"))

	if err != nil {
		RespondNotFound(ctx, "Image not found")
		return
	}

	ctx.File(path)
}
