package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndExtractMemberID(t *testing.T) {
	token, err := GenerateToken("member-123", "member@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	memberID, err := ExtractMemberIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "member-123", memberID)
}

func TestExtractMemberID_ExpiredToken(t *testing.T) {
	token, err := GenerateToken("member-123", "member@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractMemberIDFromToken(token)
	assert.Error(t, err)
}

func TestExtractMemberID_GarbageToken(t *testing.T) {
	_, err := ExtractMemberIDFromToken("not-a-jwt")
	assert.Error(t, err)
}

func TestHashToken_Deterministic(t *testing.T) {
	first := HashToken("some-token")
	second := HashToken("some-token")

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, HashToken("another-token"))
	assert.Len(t, first, 64)
}
