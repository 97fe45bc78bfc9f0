package hackathon

import (
	"errors"
	"time"
)

type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Open reports whether the hackathon still accepts participants.
func (s Status) Open() bool {
	return s == StatusUpcoming || s == StatusOngoing
}

type Hackathon struct {
	ID           string    `json:"id" bson:"_id"`
	Title        string    `json:"title" bson:"title"`
	Description  string    `json:"description" bson:"description"`
	Image        string    `json:"image,omitempty" bson:"image,omitempty"`
	Status       Status    `json:"status" bson:"status"`
	Participants []string  `json:"participants" bson:"participants"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}

var ErrNotFound = errors.New("hackathon not found")

// participation rule violations
var ErrNotOpen = errors.New("hackathon is not open for participation")
var ErrAlreadyParticipating = errors.New("user is already participating in this hackathon")

// Create comes in as multipart form data so the image file can ride along;
// the stored image path is filled in by the handler after the upload is saved.
type CreateHackathonRequest struct {
	Title       string `form:"title" json:"title" binding:"required"`
	Description string `form:"description" json:"description" binding:"required"`
	Status      string `form:"status" json:"status" binding:"omitempty,oneof=upcoming ongoing completed cancelled"`
	Image       string `form:"-" json:"-"`
}

// Partial patch: nil pointers leave the stored field untouched.
type UpdateHackathonRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1"`
	Description *string `json:"description" binding:"omitempty,min=1"`
	Image       *string `json:"image"`
	Status      *string `json:"status" binding:"omitempty,oneof=upcoming ongoing completed cancelled"`
}

type ParticipateRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// CanParticipate returns the rule that blocks userID from joining h,
// or nil when the user is eligible.
func (h Hackathon) CanParticipate(userID string) error {
	if !h.Status.Open() {
		return ErrNotOpen
	}

	for _, p := range h.Participants {
		if p == userID {
			return ErrAlreadyParticipating
		}
	}

	return nil
}
