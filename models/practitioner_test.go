package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinimumBookableMinutes(t *testing.T) {
	p := Practitioner{
		Products: []BookableProduct{
			{ID: "p1", DurationMinutes: 45, Active: true},
			{ID: "p2", DurationMinutes: 30, Active: true},
			{ID: "p3", DurationMinutes: 15, Active: false},
		},
	}

	assert.Equal(t, 30, p.MinimumBookableMinutes(),
		"inactive products do not count toward the minimum")
}

func TestMinimumBookableMinutes_NoActiveProducts(t *testing.T) {
	p := Practitioner{
		Products: []BookableProduct{
			{ID: "p1", DurationMinutes: 45, Active: false},
		},
	}
	assert.Zero(t, p.MinimumBookableMinutes())

	assert.Zero(t, Practitioner{}.MinimumBookableMinutes())
}

func TestIsSearchable(t *testing.T) {
	assert.True(t, Practitioner{Status: "active"}.IsSearchable())
	assert.False(t, Practitioner{Status: "paused"}.IsSearchable())
	assert.False(t, Practitioner{Status: "offboarded"}.IsSearchable())
}
