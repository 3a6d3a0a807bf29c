package event

// Counter tallies handled events per type. Handlers synchronize
// around it themselves.
type Counter struct {
	counts map[Type]uint64
}

func NewCounter() *Counter {
	return &Counter{counts: make(map[Type]uint64)}
}

func (c *Counter) Increment(t Type) {
	c.counts[t]++
}

func (c *Counter) Get(t Type) uint64 {
	return c.counts[t]
}
