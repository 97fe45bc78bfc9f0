package hackathon

import (
	"time"

	"github.com/google/uuid"
)

// A factory to build a Hackathon from the incoming DTO.

func NewFromCreateRequest(req CreateHackathonRequest) Hackathon {
	now := time.Now().UTC()

	status := StatusUpcoming

	if req.Status != "" {
		status = Status(req.Status)
	}

	return Hackathon{
		ID:           uuid.NewString(),
		Title:        req.Title,
		Description:  req.Description,
		Image:        req.Image,
		Status:       status,
		Participants: []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
