package token

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeToken(t *testing.T, payload string) string {
	t.Helper()
	return "header." + base64.RawURLEncoding.EncodeToString([]byte(payload)) + ".sig"
}

func TestDecode_ValidToken(t *testing.T) {
	raw := makeToken(t, `{"sub":"a@b.com","userId":1,"username":"u","exp":9999999999}`)

	claims, err := Decode(raw)
	require.NoError(t, err)

	assert.Equal(t, "a@b.com", claims.Subject)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, "u", claims.Username)
	assert.False(t, claims.IsExpired(time.Now()))

	u := claims.User()
	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, "u", u.Username)
	assert.Equal(t, "a@b.com", u.Email)
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"one segment", "abc"},
		{"two segments", "abc.def"},
		{"four segments", "a.b.c.d"},
		{"invalid base64 payload", "header.%%%.sig"},
		{"payload not json", makeToken(t, "not json at all")},
		{"payload json array", makeToken(t, `[1,2,3]`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := Decode(tt.raw)
			require.ErrorIs(t, err, ErrMalformed)
			require.Nil(t, claims)
		})
	}
}

func TestDecode_PaddedSegmentAccepted(t *testing.T) {
	padded := base64.URLEncoding.EncodeToString([]byte(`{"sub":"x@y.z","userId":7,"username":"x","exp":9999999999}`))
	claims, err := Decode("header." + padded + ".sig")
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
}

func TestIsExpired(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	tests := []struct {
		name    string
		payload string
		want    bool
	}{
		{"future exp", `{"exp":1700000001}`, false},
		{"past exp", `{"exp":1699999999}`, true},
		{"exp exactly now", `{"exp":1700000000}`, true},
		{"missing exp is fail-closed", `{"sub":"a@b.com"}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := Decode(makeToken(t, tt.payload))
			require.NoError(t, err)
			assert.Equal(t, tt.want, claims.IsExpired(now))
		})
	}
}
