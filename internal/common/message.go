package common

import "errors"

// UserMessage maps an error to a short human-readable string suitable for
// direct display. Unknown errors map to a generic transient-failure message
// so raw internals never leak to the user.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "Game not found. Please check the code and try again."
	case errors.Is(err, ErrSessionEnded):
		return "This game has ended."
	case errors.Is(err, ErrNotAuthorized):
		return "You are not allowed to do that."
	case errors.Is(err, ErrPrecondition):
		return "Not ready yet: set a location first."
	case errors.Is(err, ErrValidation):
		return "Invalid game settings."
	case errors.Is(err, ErrDecryptionFailed):
		return "Could not decrypt location data."
	default:
		return "Temporary failure, please try again."
	}
}
