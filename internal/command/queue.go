package command

// Queue is a FIFO of pending commands. It is owned by one engine goroutine
// and is not safe for concurrent use.
type Queue struct {
	items []Command
	head  int
}

// Push appends c at the tail.
func (q *Queue) Push(c Command) {
	q.items = append(q.items, c)
}

// Pop removes and returns the oldest command.
func (q *Queue) Pop() (Command, bool) {
	if q.head >= len(q.items) {
		return Command{}, false
	}
	c := q.items[q.head]
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	return c, true
}

// Peek returns the oldest command without removing it.
func (q *Queue) Peek() (Command, bool) {
	if q.head >= len(q.items) {
		return Command{}, false
	}
	return q.items[q.head], true
}

// Len returns the number of pending commands.
func (q *Queue) Len() int {
	return len(q.items) - q.head
}

// Empty reports whether no command is pending.
func (q *Queue) Empty() bool {
	return q.Len() == 0
}

// Clear drops every pending command.
func (q *Queue) Clear() {
	q.items = q.items[:0]
	q.head = 0
}

// Pending returns a copy of the pending commands, oldest first.
func (q *Queue) Pending() []Command {
	out := make([]Command, q.Len())
	copy(out, q.items[q.head:])
	return out
}
