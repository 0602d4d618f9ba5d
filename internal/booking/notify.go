package booking

import "time"

// Level classifies a notice for presentation.
type Level int

const (
	LevelInfo Level = iota
	LevelError
)

func (l Level) String() string {
	if l == LevelError {
		return "error"
	}
	return "info"
}

// Notice is a blocking message for the user.
type Notice struct {
	Level Level
	Title string
	Body  string
	At    time.Time
}

// NotificationSink receives notices raised by the form logic. The UI shows
// them as a modal; other sinks log or print them.
type NotificationSink interface {
	Notify(Notice)
}

// SinkFunc adapts a function to NotificationSink.
type SinkFunc func(Notice)

func (f SinkFunc) Notify(n Notice) {
	f(n)
}

// MultiSink fans a notice out to every non-nil sink in order.
type MultiSink []NotificationSink

func (m MultiSink) Notify(n Notice) {
	for _, sink := range m {
		if sink != nil {
			sink.Notify(n)
		}
	}
}

// Search validates the form and reports the outcome to sink. Validation
// failures are notified and returned; they are never fatal.
func Search(s FormState, sink NotificationSink) (Query, error) {
	q, err := Validate(s)
	notice := Notice{At: time.Now()}
	if err != nil {
		notice.Level = LevelError
		notice.Title = "Missing information"
		notice.Body = MissingFieldsMessage
	} else {
		notice.Level = LevelInfo
		notice.Title = "Search"
		notice.Body = q.Summary()
	}
	if sink != nil {
		sink.Notify(notice)
	}
	return q, err
}
