package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert reservation")
	ErrFailedToList   = errors.New("failed to list reservations")
	ErrFailedToDelete = errors.New("failed to delete reservations")
)
