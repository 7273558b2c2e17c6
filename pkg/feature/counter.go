package feature

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Counter tallies labels while remembering first-seen order, so
// summaries read in the order the floor was walked rather than sorted.
// The zero value is ready to use.
type Counter struct {
	order  []string
	counts map[string]int
}

// Add increments the label's tally.
func (c *Counter) Add(label string) {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	if _, seen := c.counts[label]; !seen {
		c.order = append(c.order, label)
	}
	c.counts[label]++
}

// Count returns the label's tally.
func (c Counter) Count(label string) int {
	return c.counts[label]
}

// Total returns the sum of every tally.
func (c Counter) Total() int {
	total := 0
	for _, n := range c.counts {
		total += n
	}
	return total
}

// Labels returns the labels in first-seen order.
func (c Counter) Labels() []string {
	return c.order
}

// Summary renders the tallies as "Kitchen, Bedroom (2x)" style text,
// one entry per label in first-seen order.
func (c Counter) Summary() string {
	parts := make([]string, 0, len(c.order))
	for _, label := range c.order {
		if n := c.counts[label]; n == 1 {
			parts = append(parts, label)
		} else {
			parts = append(parts, fmt.Sprintf("%s (%dx)", label, n))
		}
	}
	return strings.Join(parts, ", ")
}

// MarshalJSON renders the counter as a plain label-to-count object.
func (c Counter) MarshalJSON() ([]byte, error) {
	if c.counts == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(c.counts)
}
