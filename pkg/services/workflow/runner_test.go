package workflow

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/de-tools/store-briefing/pkg/models/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var kst = time.FixedZone("KST", 9*60*60)

type fakeDispatcher struct {
	mu    sync.Mutex
	calls []time.Time
}

func (f *fakeDispatcher) RunAll(_ context.Context, now time.Time) domain.RunReport {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, now)
	weekday := domain.WeekdayOf(now.In(kst))
	return domain.RunReport{Weekday: weekday, Hour: now.In(kst).Hour()}
}

// fakeTimer hands out channels the test fires by hand and records requested waits.
type fakeTimer struct {
	waits chan time.Duration
	fire  chan time.Time
}

func newFakeTimer() *fakeTimer {
	return &fakeTimer{waits: make(chan time.Duration, 10), fire: make(chan time.Time)}
}

func (f *fakeTimer) After(d time.Duration) <-chan time.Time {
	f.waits <- d
	return f.fire
}

func TestUntilNextHour(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 45, 0, 0, kst)
	assert.Equal(t, 15*time.Minute, untilNextHour(now))
	assert.Equal(t, time.Hour, untilNextHour(time.Date(2025, 3, 14, 13, 0, 0, 0, kst)))
}

func TestRunner_DispatchesEachHour(t *testing.T) {
	now := time.Date(2025, 3, 14, 11, 59, 0, 0, kst)
	timer := newFakeTimer()
	d := &fakeDispatcher{}

	r := NewRunner(d, RunnerConfig{
		Offset: 5 * time.Second,
		Clock:  func() time.Time { return now },
		After:  timer.After,
	})

	ctx, cancel := context.WithCancel(context.Background())
	go r.Run(ctx)

	assert.Equal(t, time.Minute+5*time.Second, <-timer.waits)

	now = time.Date(2025, 3, 14, 12, 0, 5, 0, kst)
	timer.fire <- now

	report := <-r.Progress()
	assert.Equal(t, domain.Weekday(4), report.Weekday)
	assert.Equal(t, 12, report.Hour)

	<-timer.waits
	cancel()
	<-r.Done()

	d.mu.Lock()
	defer d.mu.Unlock()
	require.Len(t, d.calls, 1)
}

func TestController_StartCancel(t *testing.T) {
	timer := newFakeTimer()
	ctrl := NewController(&fakeDispatcher{}, RunnerConfig{After: timer.After})
	ctx := context.Background()

	require.NoError(t, ctrl.Start(ctx))
	assert.Error(t, ctrl.Start(ctx), "a second start is rejected")
	assert.NotNil(t, ctrl.Progress())

	<-timer.waits
	require.NoError(t, ctrl.Cancel(ctx))
	assert.Error(t, ctrl.Cancel(ctx))
	assert.Nil(t, ctrl.Progress())
}

func TestLogReports_DrainsEveryReport(t *testing.T) {
	var buf bytes.Buffer
	ctx, cancel := context.WithCancel(zerolog.New(zerolog.SyncWriter(&buf)).WithContext(context.Background()))

	timer := newFakeTimer()
	r := NewRunner(&fakeDispatcher{}, RunnerConfig{
		Clock: func() time.Time { return time.Date(2025, 3, 14, 12, 0, 5, 0, kst) },
		After: timer.After,
	})
	drained := make(chan struct{})
	go func() {
		LogReports(ctx, r.Progress())
		close(drained)
	}()
	go r.Run(ctx)

	// more hours than the progress buffer holds
	const hours = 48
	for range hours {
		<-timer.waits
		timer.fire <- time.Time{}
	}
	<-timer.waits
	cancel()
	<-r.Done()
	<-drained

	logs := buf.String()
	assert.Equal(t, hours, strings.Count(logs, "scheduled dispatch"))
	assert.NotContains(t, logs, "progress buffer full")
}
