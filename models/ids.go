package models

import (
	"fmt"
	"math/rand/v2"
	"time"
)

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// NewID generates a collection-local identifier of the form
// <prefix>_<unix-milli>_<random 9 chars>, e.g. "source_1724999123456_k3f9x2mqa".
func NewID(prefix string) string {
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), randomSuffix(9))
}

func randomSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = idAlphabet[rand.IntN(len(idAlphabet))]
	}
	return string(b)
}
