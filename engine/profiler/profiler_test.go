package profiler

import (
	"bytes"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickLogsAfterInterval(t *testing.T) {
	var buf bytes.Buffer
	now := time.Unix(0, 0)
	p := NewProfiler(
		WithLogger(log.New(&buf, "", 0)),
		WithInterval(time.Second),
		WithStatus(func() string { return "mode=orbit" }),
		withClock(func() time.Time { return now }),
	)

	for i := 0; i < 29; i++ {
		now = now.Add(10 * time.Millisecond)
		assert.False(t, p.Tick())
	}
	assert.Empty(t, buf.String())

	now = now.Add(710 * time.Millisecond)
	assert.True(t, p.Tick())
	assert.Contains(t, buf.String(), "FPS: 30.00")
	assert.Contains(t, buf.String(), "[Profiler] mode=orbit")

	buf.Reset()
	now = now.Add(10 * time.Millisecond)
	assert.False(t, p.Tick())
	assert.Empty(t, buf.String())
}
