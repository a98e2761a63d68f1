package ports

import (
	"context"

	"go.trai.ch/iconpick/internal/core/domain"
)

// PickResult is the outcome of an interactive picking session.
type PickResult struct {
	// Selection is the emitted selection, the zero value when cleared.
	Selection domain.Selection
	// Changed is false when the session closed without selecting or clearing.
	Changed bool
}

// InteractivePicker runs a picking session against a user.
//
//go:generate mockgen -source=picker.go -destination=mocks/mock_picker.go -package=mocks
type InteractivePicker interface {
	// Pick blocks until the user selects, clears or closes the picker.
	Pick(ctx context.Context, current domain.Selection) (PickResult, error)
}
