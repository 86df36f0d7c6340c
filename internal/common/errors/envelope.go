// internal/common/errors/envelope.go
package errors

// Envelope is the outermost error shape surfaced by every entry point.
// Any failure inside a pipeline run folds into {status:"error", message}.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ToEnvelope normalizes any error into the entry-point envelope.
func ToEnvelope(err error) Envelope {
	if err == nil {
		return Envelope{Status: "success"}
	}

	msg := err.Error()
	if stdErr, ok := err.(*StandardError); ok {
		msg = stdErr.Message
		if stdErr.Details != "" {
			msg = msg + ": " + stdErr.Details
		}
	}
	if msg == "" {
		msg = "unknown error"
	}

	return Envelope{Status: "error", Message: msg}
}
