package collector

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/starwell/focustop/internal/model"
)

type fakeBackend struct {
	status    model.CameraStatus
	statusErr error
	data      model.FWHMData
	dataErr   error
}

func (f *fakeBackend) Status(ctx context.Context) (model.CameraStatus, error) {
	return f.status, f.statusErr
}

func (f *fakeBackend) FWHMData(ctx context.Context) (model.FWHMData, error) {
	return f.data, f.dataErr
}

func testLog() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger.WithField("component", "collector")
}

func TestSampleOnce(t *testing.T) {
	backend := &fakeBackend{
		status: model.CameraStatus{Running: true},
		data: model.FWHMData{
			Current:  3.2,
			Tracking: true,
			History:  []float64{3.6, 3.4, 3.2},
			Star:     &model.StarPos{X: 100, Y: 120},
		},
	}
	c := New(backend, time.Second, testLog())

	snap := c.sampleOnce()
	if snap.Err != "" {
		t.Fatalf("Err = %q, want empty", snap.Err)
	}
	if !snap.Running || !snap.Tracking {
		t.Errorf("Running=%v Tracking=%v, want both true", snap.Running, snap.Tracking)
	}
	if len(snap.History) != 3 {
		t.Errorf("History = %v, want 3 samples", snap.History)
	}
	if snap.Smoothed != 3.2 {
		t.Errorf("first Smoothed = %v, want 3.2 (EMA primes on first sample)", snap.Smoothed)
	}
	if len(snap.Latencies) != 1 {
		t.Errorf("Latencies = %v, want one entry", snap.Latencies)
	}
}

func TestSampleOnceBackendDown(t *testing.T) {
	backend := &fakeBackend{statusErr: errors.New("connection refused")}
	c := New(backend, time.Second, testLog())

	snap := c.sampleOnce()
	if snap.Err == "" {
		t.Error("Err empty, want failure recorded")
	}
	if snap.Running {
		t.Error("Running = true on failed poll")
	}
	if len(snap.Latencies) != 1 {
		t.Error("failed polls must still record latency")
	}
}

func TestDriftAccumulates(t *testing.T) {
	backend := &fakeBackend{
		status: model.CameraStatus{Running: true},
		data: model.FWHMData{
			Tracking: true,
			Current:  3.0,
			History:  []float64{3.0},
			Star:     &model.StarPos{X: 100, Y: 100},
		},
	}
	c := New(backend, time.Second, testLog())

	snap := c.sampleOnce()
	if len(snap.Drift) != 1 || snap.Drift[0] != (model.DriftPoint{}) {
		t.Fatalf("first drift = %v, want single zero point", snap.Drift)
	}

	backend.data.Star = &model.StarPos{X: 103, Y: 98}
	snap = c.sampleOnce()
	if len(snap.Drift) != 2 {
		t.Fatalf("drift len = %d, want 2", len(snap.Drift))
	}
	if snap.Drift[1].DX != 3 || snap.Drift[1].DY != -2 {
		t.Errorf("drift[1] = %+v, want dx=3 dy=-2", snap.Drift[1])
	}
}

func TestDriftResetsWhenStarDeselected(t *testing.T) {
	backend := &fakeBackend{
		status: model.CameraStatus{Running: true},
		data: model.FWHMData{
			Tracking: true,
			Current:  3.0,
			Star:     &model.StarPos{X: 50, Y: 50},
		},
	}
	c := New(backend, time.Second, testLog())
	c.sampleOnce()

	backend.data = model.FWHMData{}
	c.sampleOnce()

	backend.data = model.FWHMData{
		Tracking: true,
		Current:  2.0,
		Star:     &model.StarPos{X: 200, Y: 200},
	}
	snap := c.sampleOnce()
	if len(snap.Drift) != 1 {
		t.Fatalf("drift len = %d after reselect, want 1", len(snap.Drift))
	}
	if snap.Drift[0] != (model.DriftPoint{}) {
		t.Errorf("drift origin not reset: %+v", snap.Drift[0])
	}
	if snap.Smoothed != 2.0 {
		t.Errorf("Smoothed = %v after EMA reset, want 2.0", snap.Smoothed)
	}
}

func TestStartStop(t *testing.T) {
	backend := &fakeBackend{status: model.CameraStatus{Running: false}}
	c := New(backend, 10*time.Millisecond, testLog())

	ch := c.Start()
	select {
	case snap, ok := <-ch:
		if !ok {
			t.Fatal("channel closed before first snapshot")
		}
		if snap.Running {
			t.Error("Running = true, want false")
		}
	case <-time.After(time.Second):
		t.Fatal("no snapshot within 1s")
	}

	c.Stop()
	c.Stop() // idempotent

	// Channel must close once the loop exits.
	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel not closed after Stop")
		}
	}
}

func TestSetInterval(t *testing.T) {
	c := New(&fakeBackend{}, time.Second, testLog())
	c.SetInterval(250 * time.Millisecond)
	if got := c.currentInterval(); got != 250*time.Millisecond {
		t.Errorf("interval = %v, want 250ms", got)
	}
	c.SetInterval(0) // ignored
	if got := c.currentInterval(); got != 250*time.Millisecond {
		t.Errorf("interval = %v after zero set, want unchanged", got)
	}
}
