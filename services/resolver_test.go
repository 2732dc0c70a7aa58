package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "fluted jointer", NormalizeName("  Fluted   Jointer "))
	assert.Equal(t, "jointer", NormalizeName("JOINTER"))
	assert.Equal(t, "", NormalizeName("   "))
}

func TestNamesEqual(t *testing.T) {
	assert.True(t, NamesEqual("Fluted Jointer", " fluted  JOINTER "))
	assert.False(t, NamesEqual("Jointer", "Fluted Jointer"))
}

func TestCleanName(t *testing.T) {
	assert.Equal(t, "Fluted Jointer", CleanName("  Fluted   Jointer "))
}
