package exception

import "github.com/yanun0323/errors"

var (
	ErrInvalidOrderRequest     = errors.New("order: invalid request")
	ErrInvalidTransition       = errors.New("order: invalid state transition")
	ErrInvalidFill             = errors.New("order: invalid fill quantity")
	ErrInvalidFieldMutation    = errors.New("order: field is fixed after construction")
	ErrUnrecognizedVenueStatus = errors.New("order: unrecognized venue status")
)
