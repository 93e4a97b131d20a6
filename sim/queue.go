// Implements the TierQueue, which holds the jobs of one priority tier.
// Jobs are appended on admission or demotion

package sim

// TierQueue is an ordered collection of jobs belonging to one tier.
// For foreground and background it is the round-robin scan order; for FCFS
// it is a strict FIFO.
type TierQueue struct {
	queue []*Job
}

// Enqueue adds a job to the back of the queue.
func (tq *TierQueue) Enqueue(j *Job) {
	if j == nil {
		panic("Enqueue: job must not be nil")
	}
	tq.queue = append(tq.queue, j)
}

// Dequeue removes the job at the front of the queue.
// Returns nil if the queue is empty.
func (tq *TierQueue) Dequeue() *Job {
	if len(tq.queue) == 0 {
		return nil
	}
	j := tq.queue[0]
	tq.queue[0] = nil
	tq.queue = tq.queue[1:]
	return j
}

// Drain empties the queue and returns its former contents in order.
// A tick takes the whole tier this way, serves every member, and re-enqueues
// the survivors.
func (tq *TierQueue) Drain() []*Job {
	jobs := tq.queue
	tq.queue = nil
	return jobs
}

// Len returns the number of jobs in the queue.
func (tq *TierQueue) Len() int {
	return len(tq.queue)
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage -- callers within the
// sim package may iterate over it but MUST NOT append to or reslice it.
func (tq *TierQueue) Items() []*Job {
	return tq.queue
}
