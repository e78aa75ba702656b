package utils

import (
	"strconv"

	"github.com/google/uuid"
)

// ParseID converts a path parameter to a positive int64 id
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, err
	}
	if id < 1 {
		return 0, strconv.ErrRange
	}
	return id, nil
}

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}
