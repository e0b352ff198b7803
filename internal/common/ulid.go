package common

import (
	crand "crypto/rand"

	"github.com/oklog/ulid/v2"
)

func NewULID() (string, error) {
	id, err := ulid.New(ulid.Now(), crand.Reader)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
