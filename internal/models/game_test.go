package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameRoster(t *testing.T) {
	g := &Game{PlayerIDs: []string{"a", "b", "c"}}

	assert.True(t, g.HasPlayer("b"))

	g.RemovePlayer("b")
	g.RemovePlayer("zz")

	assert.False(t, g.HasPlayer("b"))
	assert.Equal(t, []string{"a", "c"}, g.PlayerIDs)
}
