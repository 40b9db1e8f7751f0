// Package notify provides the in-process notification queue. Producers
// enqueue synchronously; a single consumer drains one item per step, driven
// by whatever scheduler the surface uses (a Bubble Tea tick in the TUI, an
// immediate loop in the CLI).
package notify

// Kind tags a notification for presentation.
type Kind string

const (
	KindInfo        Kind = "info"
	KindAchievement Kind = "achievement"
	KindLevelUp     Kind = "level-up"
	KindDecay       Kind = "decay"
)

// Notification is a single queued message.
type Notification struct {
	Kind  Kind
	Title string
	Body  string
}

// Queue is a FIFO notification queue. It is not safe for concurrent use;
// the application is single-consumer by design.
type Queue struct {
	items []Notification
}

func NewQueue() *Queue {
	return &Queue{}
}

// Enqueue appends a notification. Display order is insertion order.
func (q *Queue) Enqueue(n Notification) {
	q.items = append(q.items, n)
}

// Next pops the oldest notification. The second return is false when the
// queue is empty. This is the cooperative drain step; the consumer's timer
// decides when it runs.
func (q *Queue) Next() (Notification, bool) {
	if len(q.items) == 0 {
		return Notification{}, false
	}
	n := q.items[0]
	q.items = q.items[1:]
	return n, true
}

// Len reports how many notifications are waiting.
func (q *Queue) Len() int {
	return len(q.items)
}

// Drain pops every queued notification in order.
func (q *Queue) Drain() []Notification {
	out := q.items
	q.items = nil
	return out
}
