// internal/agents/registry.go
package agents

import (
	"strings"

	"trip-planner/internal/common/errors"
)

// Registry holds the agents in their declared order and resolves them by name.
type Registry struct {
	order  []string
	byName map[string]Agent
}

// NewRegistry builds the registry from the fixed builder list. Order is stable
// across calls.
func NewRegistry() *Registry {
	agents := []Agent{
		UserInteraction(),
		TravelSearcher(),
		BudgetManager(),
		ItineraryPlanner(),
		RecommendationEngine(),
		QualityAssurance(),
	}

	r := &Registry{byName: make(map[string]Agent, len(agents))}
	for _, a := range agents {
		r.order = append(r.order, a.Name)
		r.byName[a.Name] = a
	}
	return r
}

// Get resolves an agent by name.
func (r *Registry) Get(name string) (Agent, error) {
	a, ok := r.byName[name]
	if !ok {
		return Agent{}, errors.NewAgentNotFoundError(name)
	}
	return a, nil
}

// Names returns the agent names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Interpolate replaces {field} placeholders with values from the input map.
// Unknown placeholders are left untouched.
func Interpolate(text string, inputs map[string]string) string {
	if len(inputs) == 0 || !strings.Contains(text, "{") {
		return text
	}
	oldnew := make([]string, 0, len(inputs)*2)
	for k, v := range inputs {
		oldnew = append(oldnew, "{"+k+"}", v)
	}
	return strings.NewReplacer(oldnew...).Replace(text)
}

// Persona renders the agent's role, goal and backstory with the run inputs
// applied, ready to lead an LLM prompt.
func (a Agent) Persona(inputs map[string]string) string {
	var b strings.Builder
	b.WriteString("You are " + Interpolate(a.Role, inputs) + ".\n")
	b.WriteString("Goal: " + Interpolate(a.Goal, inputs) + "\n")
	b.WriteString("Background: " + Interpolate(a.Backstory, inputs) + "\n")
	return b.String()
}

// HasTool reports whether the agent declares the named tool.
func (a Agent) HasTool(name string) bool {
	for _, t := range a.Tools {
		if t == name {
			return true
		}
	}
	return false
}
