package bollywood

// Actor processes messages from its mailbox one at a time.
type Actor interface {
	Receive(ctx Context)
}

// Producer creates a fresh Actor instance.
type Producer func() Actor

// Props describes how to create an actor.
type Props struct {
	producer    Producer
	mailboxSize int
}

// NewProps creates Props with the default mailbox size.
func NewProps(producer Producer) *Props {
	if producer == nil {
		panic("bollywood: producer cannot be nil")
	}
	return &Props{producer: producer, mailboxSize: defaultMailboxSize}
}

// WithMailboxSize overrides the mailbox capacity. Messages sent to a full
// mailbox are dropped.
func (p *Props) WithMailboxSize(size int) *Props {
	if size > 0 {
		p.mailboxSize = size
	}
	return p
}

func (p *Props) Produce() Actor {
	return p.producer()
}

// PID identifies a running actor.
type PID struct {
	ID string
}

func (pid *PID) String() string {
	if pid == nil {
		return "<nil>"
	}
	return pid.ID
}

// Context gives an Actor access to the engine and the message being handled.
type Context interface {
	Engine() *Engine
	Self() *PID
	Sender() *PID
	Message() interface{}
}

type context struct {
	engine  *Engine
	self    *PID
	sender  *PID
	message interface{}
}

func (c *context) Engine() *Engine      { return c.engine }
func (c *context) Self() *PID           { return c.self }
func (c *context) Sender() *PID         { return c.sender }
func (c *context) Message() interface{} { return c.message }
