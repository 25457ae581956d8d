package bollywood

// Started is the first message every actor receives.
type Started struct{}

// Stopping is delivered once when an actor is asked to stop. No user
// messages follow it.
type Stopping struct{}

// Stopped is the last message an actor receives before its goroutine exits.
type Stopped struct{}

type messageEnvelope struct {
	Sender  *PID
	Message interface{}
}

func isSystemMessage(message interface{}) bool {
	switch message.(type) {
	case Started, Stopping, Stopped:
		return true
	}
	return false
}
