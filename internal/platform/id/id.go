package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Generator creates opaque identifiers, used to correlate log records of a
// single deployment run.
type Generator interface {
	New() string
}

type RandomHex struct{}

func (RandomHex) New() string {
	buf := make([]byte, 8)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

// Sequential hands out predictable ids. Test helper.
type Sequential struct {
	n int
}

func (s *Sequential) New() string {
	s.n++
	return fmt.Sprintf("run-%d", s.n)
}
