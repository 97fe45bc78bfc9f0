package handlers

import (
	"context"
	"errors"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/espritmobile/hackhub/internal/config"
	"github.com/espritmobile/hackhub/internal/domain/hackathon"
	"github.com/espritmobile/hackhub/internal/observability"
	"github.com/espritmobile/hackhub/internal/upload"
	"github.com/espritmobile/hackhub/internal/utils"
	"github.com/gin-gonic/gin"
)

type HackathonsStore interface {
	Create(ctx context.Context, req hackathon.CreateHackathonRequest) (hackathon.Hackathon, error)
	List(ctx context.Context) ([]hackathon.Hackathon, error)
	GetByID(ctx context.Context, id string) (hackathon.Hackathon, error)
	UpdatePartial(ctx context.Context, id string, req hackathon.UpdateHackathonRequest) (hackathon.Hackathon, error)
	Delete(ctx context.Context, id string) (hackathon.Hackathon, error)
	AddParticipant(ctx context.Context, id, userID string) (hackathon.Hackathon, error)
}

type HackathonsHandler struct {
	repo    HackathonsStore
	uploads *upload.Store
	baseURL string
	prom    *observability.Prom
}

func NewHackathonsHandler(repo HackathonsStore, uploads *upload.Store, baseURL string, prom *observability.Prom) *HackathonsHandler {
	return &HackathonsHandler{
		repo:    repo,
		uploads: uploads,
		baseURL: strings.TrimRight(baseURL, "/"),
		prom:    prom,
	}
}

// HackathonResponse is the wire shape of a hackathon. The stored image value
// stays a relative path; imageUrl is derived per response and explicitly null
// when no image is attached.
type HackathonResponse struct {
	hackathon.Hackathon
	ImageURL *string `json:"imageUrl"`
}

func (h *HackathonsHandler) toResponse(e hackathon.Hackathon) HackathonResponse {
	resp := HackathonResponse{Hackathon: e}

	if e.Image != "" {
		url := h.baseURL + "/hackathon/image/" + path.Base(e.Image)
		resp.ImageURL = &url
	}

	return resp
}

func (h *HackathonsHandler) countUpload(result string) {
	if h.prom != nil {
		h.prom.UploadsTotal.WithLabelValues(result).Inc()
	}
}

func (h *HackathonsHandler) CreateHackathon(ctx *gin.Context) {
	var req hackathon.CreateHackathonRequest

	if !BindForm(ctx, &req) {
		return
	}

	if strings.HasPrefix(ctx.ContentType(), "multipart/form-data") {
		fh, err := ctx.FormFile("image")

		switch {
		case err == nil:
			stored, serr := h.uploads.Save(fh)

			if serr != nil {
				if errors.Is(serr, upload.ErrUnsupportedType) {
					h.countUpload("rejected")
					RespondBadRequest(ctx, "Only image files are allowed (jpg, jpeg, png, gif, webp)", nil)
					return
				}

				h.countUpload("failed")
				RespondInternal(ctx, "Could not store image")
				return
			}

			h.countUpload("saved")
			req.Image = stored

		case errors.Is(err, http.ErrMissingFile):
			// image is optional

		default:
			RespondBadRequest(ctx, "Invalid image upload", nil)
			return
		}
	}

	cctx, cancel := config.WithTimeout(2 * time.Second)

	defer cancel()

	created, err := h.repo.Create(cctx, req)

	if err != nil {
		RespondInternal(ctx, "Could not create hackathon")
		return
	}

	ctx.JSON(http.StatusCreated, h.toResponse(created))
}

func (h *HackathonsHandler) Participate(ctx *gin.Context) {
	id := ctx.Param("id")

	if !utils.IsUUID(id) {
		RespondBadRequest(ctx, "hackathon id must be a valid UUID", nil)
		return
	}

	var req hackathon.ParticipateRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(2 * time.Second)

	defer cancel()

	updated, err := h.repo.AddParticipant(cctx, id, req.UserID)

	if err != nil {
		switch {
		case errors.Is(err, hackathon.ErrNotFound):
			RespondNotFound(ctx, "Hackathon not found")
		case errors.Is(err, hackathon.ErrNotOpen):
			RespondBadRequest(ctx, "Hackathon is not open for participation", nil)
		case errors.Is(err, hackathon.ErrAlreadyParticipating):
			RespondBadRequest(ctx, "User is already participating in this hackathon", nil)
		default:
			RespondInternal(ctx, "Could not join hackathon")
		}
		return
	}

	ctx.JSON(http.StatusOK, h.toResponse(updated))
}

func (h *HackathonsHandler) ListHackathons(ctx *gin.Context) {
	cctx, cancel := config.WithTimeout(2 * time.Second)

	defer cancel()

	hackathons, err := h.repo.List(cctx)

	if err != nil {
		RespondInternal(ctx, "Could not list hackathons")

		return
	}

	items := make([]HackathonResponse, 0, len(hackathons))

	for _, e := range hackathons {
		items = append(items, h.toResponse(e))
	}

	RespondJSONWithETag(ctx, http.StatusOK, gin.H{
		"items": items,
		"count": len(items),
	})
}

func (h *HackathonsHandler) GetHackathonById(ctx *gin.Context) {
	id := ctx.Param("id")

	if !utils.IsUUID(id) {
		RespondBadRequest(ctx, "hackathon id must be a valid UUID", nil)
		return
	}

	cctx, cancel := config.WithTimeout(2 * time.Second)

	defer cancel()

	e, err := h.repo.GetByID(cctx, id)

	if err != nil {
		if errors.Is(err, hackathon.ErrNotFound) {
			RespondNotFound(ctx, "Hackathon not found")
			return
		}
		RespondInternal(ctx, "Could not fetch hackathon")
		return
	}

	RespondJSONWithETag(ctx, http.StatusOK, h.toResponse(e))
}

func (h *HackathonsHandler) UpdateHackathon(ctx *gin.Context) {
	id := ctx.Param("id")

	if !utils.IsUUID(id) {
		RespondBadRequest(ctx, "hackathon id must be a valid UUID", nil)
		return
	}

	var req hackathon.UpdateHackathonRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(2 * time.Second)

	defer cancel()

	updated, err := h.repo.UpdatePartial(cctx, id, req)

	if err != nil {
		if errors.Is(err, hackathon.ErrNotFound) {
			RespondNotFound(ctx, "Hackathon not found")
			return
		}
		RespondInternal(ctx, "Could not update hackathon")
		return
	}

	ctx.JSON(http.StatusOK, h.toResponse(updated))
}

func (h *HackathonsHandler) DeleteHackathon(ctx *gin.Context) {
	id := ctx.Param("id")

	if !utils.IsUUID(id) {
		RespondBadRequest(ctx, "hackathon id must be a valid UUID", nil)
		return
	}

	cctx, cancel := config.WithTimeout(2 * time.Second)

	defer cancel()

	deleted, err := h.repo.Delete(cctx, id)

	if err != nil {
		if errors.Is(err, hackathon.ErrNotFound) {
			RespondNotFound(ctx, "Hackathon not found")
			return
		}
		RespondInternal(ctx, "Could not delete hackathon")
		return
	}

	// the deleted document is returned, matching the other write paths
	ctx.JSON(http.StatusOK, h.toResponse(deleted))
}
