package services

// AlertServiceContract surfaces user-visible error messages that clear
// themselves after a fixed delay. A message arriving while another is
// displayed replaces it and restarts the delay.
type AlertServiceContract interface {
	// Show displays a message and schedules its expiry.
	Show(message string)
	// Message returns the currently displayed message, or "" when none.
	Message() string
	// Clear removes the current message immediately.
	Clear()
	// Stop cancels any outstanding expiry timer. Called on view teardown.
	Stop()
}
