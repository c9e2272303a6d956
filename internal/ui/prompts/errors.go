package prompts

import "errors"

// ErrAborted is returned when the user backs out of a confirmation.
var ErrAborted = errors.New("aborted")
