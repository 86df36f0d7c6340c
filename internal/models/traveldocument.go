// internal/models/traveldocument.go
package models

// ComprehensiveTravelDocument is the consolidated trip document produced by the
// delivery stage, combining research, planning and budget results into one text.
type ComprehensiveTravelDocument struct {
	TripTitle string   `json:"trip_title"`
	Content   string   `json:"content"`
	Resources []string `json:"resources"`
}

func (c *ComprehensiveTravelDocument) EnsureDefaults() {
	if c.Resources == nil {
		c.Resources = []string{}
	}
}
