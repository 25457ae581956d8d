package bollywood

import (
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

const defaultMailboxSize = 1024

// process is the running instance of an actor.
type process struct {
	engine   *Engine
	pid      *PID
	actor    Actor
	mailbox  chan *messageEnvelope
	props    *Props
	stopCh   chan struct{}
	stopOnce sync.Once
	stopped  atomic.Bool
}

func newProcess(engine *Engine, pid *PID, props *Props) *process {
	return &process{
		engine:  engine,
		pid:     pid,
		props:   props,
		mailbox: make(chan *messageEnvelope, props.mailboxSize),
		stopCh:  make(chan struct{}),
	}
}

func (p *process) sendMessage(message interface{}, sender *PID) {
	if p.stopped.Load() {
		return
	}
	select {
	case p.mailbox <- &messageEnvelope{Sender: sender, Message: message}:
	default:
		fmt.Printf("Actor %s mailbox full, dropping message type %T\n", p.pid, message)
	}
}

func (p *process) requestStop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
}

func (p *process) run() {
	defer p.engine.remove(p.pid)

	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Actor %s panicked: %v\nStack trace:\n%s\n", p.pid, r, string(debug.Stack()))
		}
		p.stopped.Store(true)
		if p.actor != nil {
			p.invokeReceive(Stopped{}, nil)
		}
	}()

	p.actor = p.props.Produce()
	if p.actor == nil {
		panic(fmt.Sprintf("Actor %s producer returned nil actor", p.pid))
	}
	p.invokeReceive(Started{}, nil)

	for {
		select {
		case <-p.stopCh:
			p.stopped.Store(true)
			p.invokeReceive(Stopping{}, nil)
			return
		case envelope := <-p.mailbox:
			if isSystemMessage(envelope.Message) {
				// Lifecycle messages are only produced by the process itself.
				continue
			}
			p.invokeReceive(envelope.Message, envelope.Sender)
		}
	}
}

// invokeReceive calls the actor's Receive, recovering from panics in it so a
// single bad message does not kill the actor.
func (p *process) invokeReceive(msg interface{}, sender *PID) {
	ctx := &context{
		engine:  p.engine,
		self:    p.pid,
		sender:  sender,
		message: msg,
	}

	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Actor %s panicked during Receive(%T): %v\nStack trace:\n%s\n", p.pid, msg, r, string(debug.Stack()))
		}
	}()
	p.actor.Receive(ctx)
}
