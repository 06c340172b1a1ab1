package usecase

import (
	"context"

	"crosspath/internal/domain/entity"

	"github.com/google/uuid"
)

// MatchUsecase defines the interface for the match decision use cases
type MatchUsecase interface {
	// Connect acts on an active proximity event: the event transitions to
	// matched and a durable match is created, or reactivated when the pair
	// matched before. The event transition and the match write commit in
	// one transaction.
	Connect(ctx context.Context, userID, eventID uuid.UUID) (*entity.Match, error)

	// Skip dismisses an active proximity event without creating a match.
	Skip(ctx context.Context, userID, eventID uuid.UUID) error

	// GetMatch retrieves a single match the user participates in.
	GetMatch(ctx context.Context, userID, matchID uuid.UUID) (*entity.Match, error)

	// ListMatches retrieves the user's active matches, most recently
	// interacted first.
	ListMatches(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Match, error)

	// ShareInstagram records the user's consent to reveal their Instagram
	// handle on the match. The handle becomes visible only once both sides
	// have consented.
	ShareInstagram(ctx context.Context, userID, matchID uuid.UUID, shared bool) (*entity.Match, error)

	// RecordLastMessage refreshes the denormalized chat preview on behalf
	// of the messaging collaborator.
	RecordLastMessage(ctx context.Context, matchID uuid.UUID, preview *entity.MessagePreview) error

	// Unmatch soft-deletes a match for the requesting user.
	Unmatch(ctx context.Context, userID, matchID uuid.UUID) error
}
