package domain

import "errors"

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomUnavailable  = errors.New("room is not available for the requested dates")
)
