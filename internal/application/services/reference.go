package services

import (
	"fmt"
	"time"
)

// newReference builds a time-based payment reference under a namespace
// prefix. Uniqueness is per-call at demo scale; collisions are accepted
// risk, not guaranteed impossible.
func newReference(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, time.Now().UnixMilli())
}
