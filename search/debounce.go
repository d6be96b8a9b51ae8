package search

import (
	"context"
	"sync"
	"time"

	"wayfare/models"
)

// Debouncer coalesces rapid-fire queries. Issuing a new query cancels the
// pending one's context and supersedes its sequence number, so only the
// latest-issued query ever delivers results: last issued wins, not last
// arrived.
type Debouncer struct {
	client *Client
	delay  time.Duration

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

func NewDebouncer(client *Client, delay time.Duration) *Debouncer {
	return &Debouncer{client: client, delay: delay}
}

// Search schedules query after the debounce delay. deliver runs only when
// the query is still the latest one at completion time.
func (d *Debouncer) Search(query string, deliver func([]models.Location, error)) {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
	}
	d.seq++
	seq := d.seq
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.mu.Unlock()

	go func() {
		defer cancel()

		timer := time.NewTimer(d.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		results, err := d.client.Search(ctx, query)

		d.mu.Lock()
		superseded := d.seq != seq
		d.mu.Unlock()
		if superseded || ctx.Err() != nil {
			return
		}
		deliver(results, err)
	}()
}
