// internal/models/email.go
package models

// Email delivery statuses reported in TravelEmailResponse.
const (
	EmailStatusSent    = "sent"
	EmailStatusFailed  = "failed"
	EmailStatusPending = "pending"
)

// SendEmailInput carries the fields handed to the email tool.
type SendEmailInput struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

// TravelEmailResponse is the itinerary email task output. Subject and Body are
// rendered in the selected language; Status reflects the actual send outcome
// and Message carries the failure reason when sending did not succeed.
type TravelEmailResponse struct {
	Status   string `json:"status"`
	Subject  string `json:"subject"`
	Body     string `json:"body"`
	Language string `json:"language"`
	Message  string `json:"message,omitempty"`
}

func (t *TravelEmailResponse) EnsureDefaults() {
	if t.Status == "" {
		t.Status = EmailStatusPending
	}
}
