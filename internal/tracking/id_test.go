package tracking

import (
	"bytes"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var idRe = regexp.MustCompile(`^PKG-(\d{8})-[0-9A-F]{8}$`)

func TestNewID(t *testing.T) {
	now := time.Now()
	for i := 0; i < 100; i++ {
		id, err := NewID(now)
		require.NoError(t, err)

		m := idRe.FindStringSubmatch(id)
		require.NotNil(t, m, "unexpected id %q", id)
		assert.Equal(t, now.UTC().Format("20060102"), m[1])
		assert.True(t, Valid(id))
	}
}

func TestNewID_UsesUTCDate(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	// 2025-03-01 05:00 local is still February 28 in UTC
	now := time.Date(2025, 3, 1, 5, 0, 0, 0, loc)

	id, err := newID(bytes.NewReader([]byte{0xde, 0xad, 0xbe, 0xef}), now)
	require.NoError(t, err)
	assert.Equal(t, "PKG-20250228-DEADBEEF", id)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}

func TestNewID_RandomFailure(t *testing.T) {
	_, err := newID(failingReader{}, time.Now())
	assert.Error(t, err)
}

func TestGenerator_NewID(t *testing.T) {
	g := &Generator{
		rand: bytes.NewReader([]byte{0x00, 0x01, 0x0a, 0xff}),
		now: func() time.Time {
			return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
		},
	}

	id, err := g.NewID()
	require.NoError(t, err)
	assert.Equal(t, "PKG-20261019-00010AFF", id)
}

func TestNewID_Distinct(t *testing.T) {
	seen := make(map[string]struct{})
	g := NewGenerator()
	for i := 0; i < 1000; i++ {
		id, err := g.NewID()
		require.NoError(t, err)
		seen[id] = struct{}{}
	}
	// 1000 draws from 2^32 collide with negligible probability
	assert.Len(t, seen, 1000)
}

func TestValid(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{id: "PKG-20250101-0A1B2C3D", want: true},
		{id: "PKG-20250101-0a1b2c3d", want: false},
		{id: "PKG-20251301-0A1B2C3D", want: false},
		{id: "PKG-2025011-0A1B2C3D", want: false},
		{id: "ORD-20250101-0A1B2C3D", want: false},
		{id: "", want: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Valid(tt.id), tt.id)
	}
}
