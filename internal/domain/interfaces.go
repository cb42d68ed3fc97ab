package domain

// Notification is a fire-and-forget user-facing message. Action, when set,
// is invokable for the lifetime of the notification (e.g. undo a removal).
type Notification struct {
	Title       string
	Description string
	ActionLabel string
	Action      func()
}

// Notifier is the presentation-layer notification sink.
type Notifier interface {
	Notify(Notification)
}

// Confirmer presents a yes/cancel choice and calls onConfirm only if the
// user accepts.
type Confirmer interface {
	Confirm(title, description string, onConfirm func())
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteText(text string) error
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Notify(Notification) {}

// AutoConfirmer accepts every confirmation immediately. Useful for
// programmatic callers that have no prompt to show.
type AutoConfirmer struct{}

func (AutoConfirmer) Confirm(_, _ string, onConfirm func()) {
	if onConfirm != nil {
		onConfirm()
	}
}
