package pf2e_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthforge/pf2-builder/internal/domain/rulebook/pf2e"
	apperrs "github.com/hearthforge/pf2-builder/internal/errors"
)

func TestStaticClient_Lookups(t *testing.T) {
	client := pf2e.NewStaticClient()

	class, err := client.GetClass("fighter")
	require.NoError(t, err)
	assert.Equal(t, "Fighter", class.Name)

	ancestry, err := client.GetAncestry("dwarf")
	require.NoError(t, err)
	assert.Equal(t, 10, ancestry.HP)

	feat, err := client.GetFeat("wizard-dedication")
	require.NoError(t, err)
	assert.True(t, feat.IsDedication())
}

func TestStaticClient_NotFound(t *testing.T) {
	client := pf2e.NewStaticClient()

	_, err := client.GetFeat("nonexistent")
	assert.True(t, apperrs.IsNotFound(err))

	_, err = client.GetItem("nonexistent")
	assert.True(t, apperrs.IsNotFound(err))

	_, err = client.GetSpell("nonexistent")
	assert.True(t, apperrs.IsNotFound(err))
}

func TestStaticClient_SpellGrantingSpellIDs(t *testing.T) {
	client := pf2e.NewStaticClient()

	ids := client.SpellGrantingSpellIDs()
	assert.Contains(t, ids, "guidance")
	assert.Contains(t, ids, "shield")
	assert.NotContains(t, ids, "stabilize")
}
