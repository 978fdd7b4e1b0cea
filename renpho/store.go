package renpho

import (
	"sync"
	"time"
)

// cached holds the latest parsed value for one resource kind together with
// the time it was fetched. Mutated only by the corresponding fetcher; read
// concurrently by the metric accessor and the host.
type cached[T any] struct {
	mu        sync.RWMutex
	value     T
	updatedAt time.Time
	valid     bool
}

func (c *cached[T]) set(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = v
	c.updatedAt = time.Now()
	c.valid = true
}

// get returns the cached value and whether one has ever been stored.
func (c *cached[T]) get() (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value, c.valid
}

func (c *cached[T]) at() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.updatedAt
}

// Snapshot is an immutable view of every cache at a point in time, for hosts
// that render the latest data on their own schedule.
type Snapshot struct {
	Weight        Measurement
	HasWeight     bool
	WeightHistory []Measurement
	Devices       []DeviceBind
	Girths        []Girth
	GirthGoals    []GirthGoal
	LastWeighed   time.Time
	LastUpdated   time.Time
}

// Snapshot returns defensive copies of the cached resources.
func (c *Client) Snapshot() Snapshot {
	var snap Snapshot
	snap.Weight, snap.HasWeight = c.weight.get()
	if history, ok := c.weightHistory.get(); ok {
		snap.WeightHistory = cloneSlice(history)
	}
	if devices, ok := c.devices.get(); ok {
		snap.Devices = cloneSlice(devices)
	}
	if girths, ok := c.girths.get(); ok {
		snap.Girths = cloneSlice(girths)
	}
	if goals, ok := c.girthGoals.get(); ok {
		snap.GirthGoals = cloneSlice(goals)
	}
	if snap.HasWeight {
		snap.LastWeighed = snap.Weight.Time()
	}
	snap.LastUpdated = latestTime(
		c.weight.at(), c.devices.at(), c.girths.at(), c.girthGoals.at(),
	)
	return snap
}

func cloneSlice[T any](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	dup := make([]T, len(items))
	copy(dup, items)
	return dup
}

func latestTime(times ...time.Time) time.Time {
	var latest time.Time
	for _, t := range times {
		if t.After(latest) {
			latest = t
		}
	}
	return latest
}
