package payroll

import (
	"testing"

	"go-erp/internal/shared/period"

	"github.com/stretchr/testify/assert"
)

func TestSelection_LastWriteWins(t *testing.T) {
	s := NewSelection()
	key := SelectionKey("c1", "u1", CategoryESIPF)

	march := s.Begin(key, period.New(3, 2024))
	assert.True(t, s.IsCurrent(march))

	april := s.Begin(key, period.New(4, 2024))
	assert.False(t, s.IsCurrent(march))
	assert.True(t, s.IsCurrent(april))

	again := s.Begin(key, period.New(4, 2024))
	assert.True(t, s.IsCurrent(april))
	assert.True(t, s.IsCurrent(again))
}

func TestSelection_KeysAreIndependent(t *testing.T) {
	s := NewSelection()

	esi := s.Begin(SelectionKey("c1", "u1", CategoryESIPF), period.New(3, 2024))
	s.Begin(SelectionKey("c1", "u1", CategoryNoESIPF), period.New(5, 2024))
	s.Begin(SelectionKey("c1", "u2", CategoryESIPF), period.New(6, 2024))

	assert.True(t, s.IsCurrent(esi))
}
