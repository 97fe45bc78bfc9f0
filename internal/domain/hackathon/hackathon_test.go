package hackathon

import (
	"errors"
	"testing"
)

func TestStatusOpen(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusUpcoming, true},
		{StatusOngoing, true},
		{StatusCompleted, false},
		{StatusCancelled, false},
	}

	for _, tt := range tests {
		if got := tt.status.Open(); got != tt.want {
			t.Fatalf("Status(%q).Open() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestCanParticipate(t *testing.T) {
	tests := []struct {
		name    string
		h       Hackathon
		userID  string
		wantErr error
	}{
		{
			name:    "eligible",
			h:       Hackathon{Status: StatusUpcoming},
			userID:  "u1",
			wantErr: nil,
		},
		{
			name:    "eligible_ongoing",
			h:       Hackathon{Status: StatusOngoing, Participants: []string{"u2"}},
			userID:  "u1",
			wantErr: nil,
		},
		{
			name:    "completed",
			h:       Hackathon{Status: StatusCompleted},
			userID:  "u1",
			wantErr: ErrNotOpen,
		},
		{
			name:    "cancelled",
			h:       Hackathon{Status: StatusCancelled},
			userID:  "u1",
			wantErr: ErrNotOpen,
		},
		{
			name:    "already_participating",
			h:       Hackathon{Status: StatusUpcoming, Participants: []string{"u1"}},
			userID:  "u1",
			wantErr: ErrAlreadyParticipating,
		},
		{
			// closed status wins over membership: the event is simply closed
			name:    "closed_and_member",
			h:       Hackathon{Status: StatusCompleted, Participants: []string{"u1"}},
			userID:  "u1",
			wantErr: ErrNotOpen,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			err := tt.h.CanParticipate(tt.userID)

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewFromCreateRequestDefaults(t *testing.T) {
	h := NewFromCreateRequest(CreateHackathonRequest{
		Title:       "A",
		Description: "B",
	})

	if h.ID == "" {
		t.Fatalf("expected generated id")
	}

	if h.Status != StatusUpcoming {
		t.Fatalf("status = %q, want %q", h.Status, StatusUpcoming)
	}

	if h.Participants == nil || len(h.Participants) != 0 {
		t.Fatalf("participants = %v, want empty slice", h.Participants)
	}

	if h.CreatedAt.IsZero() || h.UpdatedAt.IsZero() {
		t.Fatalf("timestamps not set: %+v", h)
	}
}

func TestNewFromCreateRequestExplicitStatus(t *testing.T) {
	h := NewFromCreateRequest(CreateHackathonRequest{
		Title:       "A",
		Description: "B",
		Status:      "ongoing",
	})

	if h.Status != StatusOngoing {
		t.Fatalf("status = %q, want %q", h.Status, StatusOngoing)
	}
}
