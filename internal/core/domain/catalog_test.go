package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalog_WithDefaults(t *testing.T) {
	def := DefaultCatalog()
	assert.NotEmpty(t, def.Resources)
	assert.NotEmpty(t, def.Shares)

	assert.Equal(t, def, Catalog{}.WithDefaults())

	shares := Catalog{Shares: []string{"cdn"}}.WithDefaults()
	assert.Equal(t, []string{"cdn"}, shares.Shares)
	assert.Equal(t, def.Resources, shares.Resources)

	resources := Catalog{Resources: []string{"q3.png"}}.WithDefaults()
	assert.Equal(t, []string{"q3.png"}, resources.Resources)
	assert.Equal(t, def.Shares, resources.Shares)
}
