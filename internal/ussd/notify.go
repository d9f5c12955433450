package ussd

type Kind string

const (
	KindSuccess Kind = "success"
	KindWarning Kind = "warning"
	KindDanger  Kind = "danger"
	KindInfo    Kind = "info"
	KindNone    Kind = ""
)

// Notification is an ephemeral user-facing message surfaced after a
// transition. It is not part of session state and expires on its own.
type Notification struct {
	Message string `json:"message"`
	Kind    Kind   `json:"kind"`
}

func notify(message string, kind Kind) *Notification {
	return &Notification{Message: message, Kind: kind}
}
