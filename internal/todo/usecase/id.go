package usecase

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// newID returns a random UUID, or a timestamp-plus-random fragment when the
// system randomness source fails.
func newID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return fallbackID(time.Now())
	}
	return id.String()
}

func fallbackID(now time.Time) string {
	return fmt.Sprintf("%d-%x", now.UnixMilli(), rand.Uint64())
}
