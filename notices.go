package eventtix

// Notice is a short user-facing message produced by client operations, the
// kind a UI would surface as a toast.
type Notice struct {
	Text  string
	Error bool
}

// Notifier receives notices as operations produce them.
type Notifier interface {
	Notify(Notice)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(Notice)

// Notify implements the Notifier interface for NotifierFunc.
func (f NotifierFunc) Notify(n Notice) {
	f(n)
}

type nopNotifier struct{}

func (nopNotifier) Notify(Notice) {}

// Fixed notice texts.
const (
	noticeSignedOut       = "Successfully signed out"
	noticeSignOutFallback = "Failed to sign out. Please try again."
	noticeEventNotFound   = "Event not found"
)
