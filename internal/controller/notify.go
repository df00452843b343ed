package controller

// Severity classifies a user-facing notification.
type Severity int

const (
	// SeverityInfo acknowledges a successful action.
	SeverityInfo Severity = iota
	// SeverityError reports a rejected action.
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Notifier shows a message the user has to acknowledge.
// The desktop surface renders it as a modal dialog; the command line prints it.
type Notifier interface {
	Notify(severity Severity, message string)
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(severity Severity, message string)

// Notify calls f(severity, message).
func (f NotifierFunc) Notify(severity Severity, message string) {
	f(severity, message)
}

// User-facing confirmations.
const (
	msgPersonAdded   = "person added successfully"
	msgPersonUpdated = "person updated successfully"
	msgPersonDeleted = "person deleted successfully"
)
