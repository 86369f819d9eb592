package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalwire/signalwire-agents-sdk-claude-skill/content"
	"github.com/signalwire/signalwire-agents-sdk-claude-skill/core/activation"
	"github.com/signalwire/signalwire-agents-sdk-claude-skill/core/store"
	"github.com/signalwire/signalwire-agents-sdk-claude-skill/skills"
)

func TestEmbeddedBundleLoads(t *testing.T) {
	s, err := store.LoadFS(content.FS)
	require.NoError(t, err)

	for _, name := range s.ListAll() {
		doc, err := s.Get(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, doc.Body, name)
	}

	roots, err := s.List(store.CategorySkillRoot)
	require.NoError(t, err)
	assert.Equal(t, []string{"SKILL.md"}, roots)

	for _, category := range []store.Category{
		store.CategoryReference,
		store.CategoryPattern,
		store.CategoryExample,
		store.CategoryTroubleshooting,
	} {
		names, err := s.List(category)
		require.NoError(t, err)
		assert.NotEmpty(t, names, category)
	}
}

func TestEmbeddedSkillMetadata(t *testing.T) {
	skill, body, err := skills.ReadFS(content.FS)
	require.NoError(t, err)

	assert.Equal(t, "signalwire-agents-sdk", skill.Name)
	assert.NotEmpty(t, body)
	require.NoError(t, skills.ValidateSkill(skill, skill.Name))

	assert.Contains(t, skill.Triggers, "AgentBase")
	assert.Contains(t, skill.Triggers, "SWAIG")
	assert.Contains(t, skill.Triggers, "SWML")
}

func TestEmbeddedTriggersActivate(t *testing.T) {
	skill, _, err := skills.ReadFS(content.FS)
	require.NoError(t, err)

	matcher, err := activation.NewMatcher(activation.Config{Terms: skill.Triggers})
	require.NoError(t, err)

	assert.True(t, matcher.Match("why does my SWAIG function never get called").Activated)
	assert.True(t, matcher.Match("subclassing AgentBase for a support line").Activated)
	assert.False(t, matcher.Match("how do I bake bread").Activated)
}
