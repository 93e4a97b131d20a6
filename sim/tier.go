package sim

// Tier names one of the three priority classes a job occupies.
type Tier string

const (
	TierNone       Tier = ""     // idle tick, nothing served
	TierForeground Tier = "fg"   // preemptive round-robin, highest priority
	TierBackground Tier = "bg"   // round-robin, served only when foreground is empty
	TierFCFS       Tier = "fcfs" // non-preemptive once a job starts executing
)

// Tiers lists the tiers in priority order.
var Tiers = []Tier{TierForeground, TierBackground, TierFCFS}

// TierCounts is a point-in-time population of every location a job can be in.
type TierCounts struct {
	Foreground  int
	Background  int
	FCFSQueued  int
	FCFSRunning int // 0 or 1
	Completed   int
}

// Active returns the number of admitted, unfinished jobs.
func (c TierCounts) Active() int {
	return c.Foreground + c.Background + c.FCFSQueued + c.FCFSRunning
}
