package repository

import "errors"

var (
	ErrFailedToList  = errors.New("failed to list todo files")
	ErrFailedToRead  = errors.New("failed to read todo file")
	ErrFailedToWrite = errors.New("failed to write todo file")
)
