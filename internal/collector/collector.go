// Package collector polls the camera backend on a fixed cadence and
// publishes snapshots for the UI.
package collector

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/starwell/focustop/internal/model"
)

// Backend is the slice of the API client the collector needs.
type Backend interface {
	Status(ctx context.Context) (model.CameraStatus, error)
	FWHMData(ctx context.Context) (model.FWHMData, error)
}

const (
	// smoothingAlpha keeps the displayed FWHM readable at fast poll
	// rates without hiding real focus changes.
	smoothingAlpha = 0.3

	// maxDriftPoints caps the derived drift history.
	maxDriftPoints = 300

	minPollBudget = time.Second
)

// Collector polls the backend and delivers one Snapshot per cycle over
// the channel returned by Start. Sends block until the UI receives, so
// buffer replacement and rendering stay serialized on the UI loop.
type Collector struct {
	backend Backend
	log     *logrus.Entry

	mu       sync.Mutex
	interval time.Duration
	origin   *model.StarPos
	drift    []model.DriftPoint

	ema     *EMA
	latency *RingBuffer

	snapCh   chan model.Snapshot
	stopCh   chan struct{}
	stopOnce sync.Once
}

// New creates a collector polling backend every interval.
func New(backend Backend, interval time.Duration, log *logrus.Entry) *Collector {
	return &Collector{
		backend:  backend,
		log:      log,
		interval: interval,
		ema:      NewEMA(smoothingAlpha),
		latency:  NewRingBuffer(latencyRingLen),
		snapCh:   make(chan model.Snapshot),
		stopCh:   make(chan struct{}),
	}
}

// Start launches the poll loop and returns the snapshot channel. The
// channel is closed when the collector stops.
func (c *Collector) Start() <-chan model.Snapshot {
	go c.loop()
	return c.snapCh
}

// Stop terminates the poll loop. Safe to call more than once.
func (c *Collector) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
	})
}

// SetInterval changes the poll cadence, taking effect on the next tick.
func (c *Collector) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	c.mu.Lock()
	c.interval = d
	c.mu.Unlock()
}

// ResetDrift clears the drift origin and history. The UI calls this
// after a new star is selected.
func (c *Collector) ResetDrift() {
	c.mu.Lock()
	c.origin = nil
	c.drift = nil
	c.mu.Unlock()
	c.ema.Reset()
}

func (c *Collector) currentInterval() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.interval
}

func (c *Collector) loop() {
	defer close(c.snapCh)

	// First poll immediately so the UI has data before the first tick.
	if !c.publish(c.sampleOnce()) {
		return
	}

	interval := c.currentInterval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if iv := c.currentInterval(); iv != interval {
				interval = iv
				ticker.Reset(interval)
			}
			if !c.publish(c.sampleOnce()) {
				return
			}
		case <-c.stopCh:
			return
		}
	}
}

func (c *Collector) publish(snap model.Snapshot) bool {
	select {
	case c.snapCh <- snap:
		return true
	case <-c.stopCh:
		return false
	}
}

func (c *Collector) sampleOnce() model.Snapshot {
	budget := c.currentInterval()
	if budget < minPollBudget {
		budget = minPollBudget
	}
	ctx, cancel := context.WithTimeout(context.Background(), budget)
	defer cancel()

	start := time.Now()
	snap := model.Snapshot{Time: start}

	status, err := c.backend.Status(ctx)
	if err != nil {
		c.log.WithError(err).Warn("status poll failed")
		snap.Err = err.Error()
		c.recordLatency(&snap, start)
		return snap
	}
	snap.Running = status.Running

	data, err := c.backend.FWHMData(ctx)
	if err != nil {
		c.log.WithError(err).Warn("fwhm poll failed")
		snap.Err = err.Error()
		c.recordLatency(&snap, start)
		return snap
	}

	snap.Tracking = data.Tracking
	snap.History = data.History
	snap.FrameWidth = data.FrameWidth
	snap.FrameHeight = data.FrameHeight
	if data.Tracking {
		snap.Current = data.Current
		snap.Smoothed = c.ema.Update(data.Current)
	}
	if data.Star != nil {
		snap.Star = *data.Star
		snap.Drift = c.updateDrift(*data.Star)
	} else {
		// Star deselected: the next selection starts a fresh drift run.
		c.ResetDrift()
	}

	c.recordLatency(&snap, start)
	return snap
}

// updateDrift appends the star's displacement from the first tracked
// position and returns a copy of the history.
func (c *Collector) updateDrift(star model.StarPos) []model.DriftPoint {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.origin == nil {
		origin := star
		c.origin = &origin
	}
	c.drift = append(c.drift, model.DriftPoint{
		DX: float64(star.X - c.origin.X),
		DY: float64(star.Y - c.origin.Y),
	})
	if len(c.drift) > maxDriftPoints {
		c.drift = c.drift[len(c.drift)-maxDriftPoints:]
	}

	out := make([]model.DriftPoint, len(c.drift))
	copy(out, c.drift)
	return out
}

func (c *Collector) recordLatency(snap *model.Snapshot, start time.Time) {
	snap.Latency = time.Since(start)
	c.latency.Push(float64(snap.Latency.Microseconds()) / 1000.0)
	snap.Latencies = c.latency.Samples()
}
