// Package tracking generates order tracking identifiers.
//
// Identifier has form PKG-<YYYYMMDD>-<XXXXXXXX>, where date is UTC generation date and
// XXXXXXXX is 4 random bytes in uppercase hex. Random part gives 2^32 space per day,
// storage keeps unique index on tracking id anyway.
package tracking

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"
)

const (
	prefix     = "PKG"
	dateLayout = "20060102"
)

var idPattern = regexp.MustCompile(`^PKG-\d{8}-[0-9A-F]{8}$`)

// Generator makes tracking identifiers
type Generator struct {
	rand io.Reader
	now  func() time.Time
}

// NewGenerator creates generator with crypto random source and wall clock
func NewGenerator() *Generator {
	return &Generator{
		rand: rand.Reader,
		now:  time.Now,
	}
}

// NewID returns new tracking identifier
func (g *Generator) NewID() (string, error) {
	return newID(g.rand, g.now())
}

// NewID returns tracking identifier for date of now
func NewID(now time.Time) (string, error) {
	return newID(rand.Reader, now)
}

func newID(r io.Reader, now time.Time) (string, error) {
	buf := make([]byte, 4)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return fmt.Sprintf("%s-%s-%s", prefix, now.UTC().Format(dateLayout), strings.ToUpper(hex.EncodeToString(buf))), nil
}

// Valid reports whether id is well-formed tracking identifier
func Valid(id string) bool {
	if !idPattern.MatchString(id) {
		return false
	}
	_, err := time.Parse(dateLayout, id[len(prefix)+1:len(prefix)+1+len(dateLayout)])
	return err == nil
}
