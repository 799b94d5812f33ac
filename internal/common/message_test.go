package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not found", ErrNotFound, "Game not found. Please check the code and try again."},
		{"wrapped not found", fmt.Errorf("lookup: %w", ErrNotFound), "Game not found. Please check the code and try again."},
		{"ended", ErrSessionEnded, "This game has ended."},
		{"not authorized", ErrNotAuthorized, "You are not allowed to do that."},
		{"precondition", ErrPrecondition, "Not ready yet: set a location first."},
		{"validation", ErrValidation, "Invalid game settings."},
		{"decryption", ErrDecryptionFailed, "Could not decrypt location data."},
		{"unknown", errors.New("pq: connection refused"), "Temporary failure, please try again."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}
