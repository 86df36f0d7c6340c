// internal/models/destination.go
package models

// DestinationInvestigation is the destination research report produced by
// the destination search task: weather, entry requirements, safety, culture
// and practical tips for the specific travel dates.
type DestinationInvestigation struct {
	Overview             string   `json:"overview"`
	Weather              []string `json:"weather"`
	Events               []string `json:"events"`
	EntryRequirements    []string `json:"entry_requirements"`
	SafetyTips           []string `json:"safety_tips"`
	CulturalNorms        []string `json:"cultural_norms"`
	BestTimesToVisit     []string `json:"best_times_to_visit"`
	LocalTransportation  []string `json:"local_transportation"`
	MoneyAndConnectivity []string `json:"money_and_connectivity"`
	InsiderTips          []string `json:"insider_tips"`
	RecentDevelopments   []string `json:"recent_developments"`
}

func (d *DestinationInvestigation) EnsureDefaults() {
	if d.Weather == nil {
		d.Weather = []string{}
	}
	if d.Events == nil {
		d.Events = []string{}
	}
	if d.EntryRequirements == nil {
		d.EntryRequirements = []string{}
	}
	if d.SafetyTips == nil {
		d.SafetyTips = []string{}
	}
	if d.CulturalNorms == nil {
		d.CulturalNorms = []string{}
	}
	if d.BestTimesToVisit == nil {
		d.BestTimesToVisit = []string{}
	}
	if d.LocalTransportation == nil {
		d.LocalTransportation = []string{}
	}
	if d.MoneyAndConnectivity == nil {
		d.MoneyAndConnectivity = []string{}
	}
	if d.InsiderTips == nil {
		d.InsiderTips = []string{}
	}
	if d.RecentDevelopments == nil {
		d.RecentDevelopments = []string{}
	}
}
