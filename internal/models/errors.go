package models

import (
	"errors"
)

// ErrGeneral is returned for database errors where no more helpful
// message can be given to the user. The underlying error is logged.
var ErrGeneral = errors.New("an error occurred on the server during your request")
