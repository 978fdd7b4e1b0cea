package renpho

import (
	"context"
	"log"
	"time"
)

// StartPolling launches the background loop that refreshes the weight,
// girth, and girth-goal caches at the configured interval. Starting an
// active poller is a warning-level no-op. The loop stops when ctx is
// cancelled or StopPolling is called.
func (c *Client) StartPolling(ctx context.Context) {
	c.pollMu.Lock()
	defer c.pollMu.Unlock()

	if c.pollActive {
		log.Printf("renpho: polling is already active")
		return
	}

	pollCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	c.pollActive = true
	c.pollStop = cancel
	c.pollDone = done

	go c.pollLoop(pollCtx, done)
}

// StopPolling cancels the poll loop and waits for it to exit. Stopping an
// idle poller is a warning-level no-op.
func (c *Client) StopPolling() {
	c.pollMu.Lock()
	if !c.pollActive {
		c.pollMu.Unlock()
		log.Printf("renpho: polling is not active")
		return
	}
	stop := c.pollStop
	done := c.pollDone
	c.pollActive = false
	c.pollStop = nil
	c.pollDone = nil
	c.pollMu.Unlock()

	stop()
	<-done
}

// pollLoop runs cycles until cancelled. Every exit path closes done so
// StopPolling never blocks.
func (c *Client) pollLoop(ctx context.Context, done chan<- struct{}) {
	defer close(done)
	defer log.Printf("renpho: poll loop exited")

	ticker := time.NewTicker(c.refresh)
	defer ticker.Stop()

	for {
		c.pollOnce(ctx)
		select {
		case <-ctx.Done():
			log.Printf("renpho: polling cancelled")
			return
		case <-ticker.C:
		}
	}
}

// pollOnce runs one refresh cycle. Fetchers swallow their own errors; the
// recover guard keeps an unexpected panic from killing the loop.
func (c *Client) pollOnce(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("renpho: poll cycle panicked: %v", r)
		}
	}()

	c.FetchMeasurements(ctx)
	c.FetchGirths(ctx)
	c.FetchGirthGoals(ctx)
}

// IsPolling reports whether the background loop is active.
func (c *Client) IsPolling() bool {
	c.pollMu.Lock()
	defer c.pollMu.Unlock()
	return c.pollActive
}
