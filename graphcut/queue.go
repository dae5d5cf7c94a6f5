package graphcut

// nodeQueue is a FIFO of node ids. Popped slots are reclaimed when the queue
// drains or once they make up more than half of the backing slice, so its
// length stays proportional to the live entries.
type nodeQueue struct {
	items []int
	head  int
}

func (q *nodeQueue) push(id int) {
	q.items = append(q.items, id)
}

func (q *nodeQueue) pop() (int, bool) {
	if q.head >= len(q.items) {
		q.reset()
		return 0, false
	}
	id := q.items[q.head]
	q.head++
	switch {
	case q.head == len(q.items):
		q.reset()
	case q.head > len(q.items)/2:
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}
	return id, true
}

func (q *nodeQueue) len() int { return len(q.items) - q.head }

func (q *nodeQueue) reset() {
	q.items = q.items[:0]
	q.head = 0
}
