// internal/agents/registry_test.go
package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_OrderIsStable(t *testing.T) {
	first := NewRegistry().Names()
	second := NewRegistry().Names()
	assert.Equal(t, first, second)
	assert.Len(t, first, 6)
	assert.Equal(t, NameUserInteraction, first[0])
}

func TestRegistry_Get(t *testing.T) {
	r := NewRegistry()

	agent, err := r.Get(NameTravelSearcher)
	require.NoError(t, err)
	assert.Equal(t, "Travel Research Specialist", agent.Role)
	assert.True(t, agent.HasTool(ToolWebSearch))
	assert.False(t, agent.HasTool(ToolEmail))

	_, err = r.Get("route_wizard")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "AGENT_NOT_FOUND")
}

func TestInterpolate(t *testing.T) {
	inputs := map[string]string{
		"destination": "Panama City, Panama",
		"budget":      "5K USD per person",
	}

	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "single placeholder",
			text:     "Research {destination} thoroughly",
			expected: "Research Panama City, Panama thoroughly",
		},
		{
			name:     "multiple placeholders",
			text:     "Stay in {destination} within {budget}",
			expected: "Stay in Panama City, Panama within 5K USD per person",
		},
		{
			name:     "unknown placeholder left untouched",
			text:     "Plan for {travelers} travelers",
			expected: "Plan for {travelers} travelers",
		},
		{
			name:     "no placeholders",
			text:     "plain text",
			expected: "plain text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Interpolate(tt.text, inputs))
		})
	}
}

func TestAgent_Persona(t *testing.T) {
	agent := BudgetManager()
	persona := agent.Persona(map[string]string{
		"budget":    "3K EUR",
		"travelers": "2",
	})

	assert.Contains(t, persona, "You are Travel Budget Analyst.")
	assert.Contains(t, persona, "3K EUR")
	assert.Contains(t, persona, "2 travelers")
	assert.NotContains(t, persona, "{budget}")
}
