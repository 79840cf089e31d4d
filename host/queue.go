package host

import (
	"slices"
	"sync"
)

// Command is one call pushed onto a global queue, e.g. ["_trackEvent", "All", "Signed Up"].
type Command []any

// Name returns the first element when it is a string.
func (c Command) Name() string {
	if len(c) == 0 {
		return ""
	}
	s, _ := c[0].(string)
	return s
}

// Queue is a provider's global command queue. The remote script replays it
// once loaded; until then it only accumulates.
type Queue struct {
	mu       sync.Mutex
	name     string
	commands []Command
}

// Name returns the global variable name of the queue.
func (q *Queue) Name() string { return q.name }

// Push appends a command.
func (q *Queue) Push(args ...any) {
	q.mu.Lock()
	q.commands = append(q.commands, Command(args))
	q.mu.Unlock()
}

// Commands returns a copy of the queued commands.
func (q *Queue) Commands() []Command {
	q.mu.Lock()
	defer q.mu.Unlock()
	return slices.Clone(q.commands)
}

// Len returns the number of queued commands.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.commands)
}
