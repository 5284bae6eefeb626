package engine

import (
	"bytes"
	"errors"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-cam/common"
	"github.com/Carmen-Shannon/oxy-cam/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWindow runs a fixed number of frames and records what the engine does to it.
type fakeWindow struct {
	width, height int
	frames        int
	beforeFrame   func(i int)

	onUpdate      func()
	onResize      func(width, height int)
	onScroll      func(delta float32)
	onKeyDown     func(key common.Key)
	onKeyUp       func(key common.Key)
	onMouseButton func(button common.MouseButton, pressed bool, x, y float32, mods common.Modifiers)
	onMouseMove   func(x, y float32)

	captured   bool
	closed     bool
	closeCalls int
}

var _ Window = &fakeWindow{}

func (w *fakeWindow) SetUpdateCallback(cb func()) { w.onUpdate = cb }
func (w *fakeWindow) SetResizeCallback(cb func(width, height int)) { w.onResize = cb }
func (w *fakeWindow) SetScrollCallback(cb func(delta float32)) { w.onScroll = cb }
func (w *fakeWindow) SetKeyDownCallback(cb func(key common.Key)) { w.onKeyDown = cb }
func (w *fakeWindow) SetKeyUpCallback(cb func(key common.Key)) { w.onKeyUp = cb }
func (w *fakeWindow) SetMouseMoveCallback(cb func(x, y float32)) { w.onMouseMove = cb }
func (w *fakeWindow) SetCursorCaptured(captured bool) { w.captured = captured }
func (w *fakeWindow) Width() int { return w.width }
func (w *fakeWindow) Height() int { return w.height }
func (w *fakeWindow) SetMouseButtonCallback(cb func(button common.MouseButton, pressed bool, x, y float32, mods common.Modifiers)) {
	w.onMouseButton = cb
}

func (w *fakeWindow) ProcessMessages() {
	for i := 0; i < w.frames && !w.closed; i++ {
		if w.beforeFrame != nil {
			w.beforeFrame(i)
		}
		if w.onUpdate != nil {
			w.onUpdate()
		}
	}
}

func (w *fakeWindow) Close() error {
	w.closeCalls++
	if w.closed {
		return errors.New("window is not initialized")
	}
	w.closed = true
	return nil
}

// stepClock returns a clock that only moves when advanced.
func stepClock() (now func() time.Time, advance func(time.Duration)) {
	t := time.Unix(0, 0)
	return func() time.Time { return t }, func(d time.Duration) { t = t.Add(d) }
}

func writeConfig(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func quietLogger() *log.Logger {
	return log.New(&bytes.Buffer{}, "", 0)
}

func TestNewEngineRequiresWindow(t *testing.T) {
	_, err := NewEngine()
	assert.ErrorIs(t, err, ErrNoWindow)
}

func TestReloadConfigWithoutPath(t *testing.T) {
	eng, err := NewEngine(WithWindow(&fakeWindow{width: 800, height: 600}), WithLogger(quietLogger()))
	require.NoError(t, err)
	assert.ErrorIs(t, eng.ReloadConfig(), ErrNoConfigPath)
}

func TestNewEngineMissingConfig(t *testing.T) {
	_, err := NewEngine(
		WithWindow(&fakeWindow{width: 800, height: 600}),
		WithConfigPath(filepath.Join(t.TempDir(), "missing.yaml"), false),
	)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReloadKeepsWindowAspect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "camera.yaml")
	writeConfig(t, path, "projection:\n  fovy_degrees: 60\n  aspect: 1\n")

	eng, err := NewEngine(
		WithWindow(&fakeWindow{width: 1600, height: 900}),
		WithConfigPath(path, false),
		WithLogger(quietLogger()),
	)
	require.NoError(t, err)
	cam := eng.Camera()
	assert.InDelta(t, 1600.0/900.0, cam.Aspect(), 1e-6)
	assert.InDelta(t, mgl32.DegToRad(60), cam.Fovy(), 1e-6)

	writeConfig(t, path, "projection:\n  fovy_degrees: 30\n  aspect: 1\n")
	require.NoError(t, eng.ReloadConfig())
	assert.InDelta(t, mgl32.DegToRad(30), cam.Fovy(), 1e-6)
	assert.InDelta(t, 1600.0/900.0, cam.Aspect(), 1e-6)
}

func TestConfigAppliedToSuppliedCamera(t *testing.T) {
	path := filepath.Join(t.TempDir(), "camera.yaml")
	writeConfig(t, path, "mode: free_look\nfree_look:\n  position: [1, 2, 3]\n")

	w := &fakeWindow{width: 800, height: 400}
	cam := camera.NewCamera(camera.WithMoveSpeed(7))
	eng, err := NewEngine(
		WithWindow(w),
		WithCamera(cam),
		WithConfigPath(path, false),
		WithLogger(quietLogger()),
	)
	require.NoError(t, err)

	assert.Same(t, cam, eng.Camera())
	assert.Equal(t, camera.ModeFreeLook, cam.Mode())
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, cam.Position())
	assert.InDelta(t, 7, cam.MoveSpeed(), 1e-6)
	assert.InDelta(t, 2, cam.Aspect(), 1e-6)
	assert.True(t, w.captured)
}

func TestWindowEventsReachCamera(t *testing.T) {
	w := &fakeWindow{width: 800, height: 600}
	eng, err := NewEngine(WithWindow(w), WithLogger(quietLogger()))
	require.NoError(t, err)
	cam := eng.Camera()

	w.onResize(1000, 500)
	assert.InDelta(t, 2, cam.Aspect(), 1e-6)

	w.onMouseButton(common.MouseButtonLeft, true, 0, 0, common.Modifiers{})
	w.onMouseMove(10, 0)
	assert.InDelta(t, 10*cam.RotationFactor(), cam.Rotation().X(), 1e-6)

	fovy := cam.Fovy()
	w.onScroll(1)
	assert.Less(t, cam.Fovy(), fovy)

	w.onKeyDown(common.KeyTab)
	assert.Equal(t, camera.ModeFreeLook, cam.Mode())
	assert.True(t, w.captured)
	w.onKeyUp(common.KeyTab)
	w.onKeyDown(common.KeyTab)
	assert.Equal(t, camera.ModeOrbit, cam.Mode())
	assert.False(t, w.captured)
}

func TestFrameDeltaIsCapped(t *testing.T) {
	now, advance := stepClock()
	w := &fakeWindow{width: 800, height: 600, frames: 3}
	w.beforeFrame = func(int) { advance(2 * time.Second) }

	cam := camera.NewCamera(camera.WithMode(camera.ModeFreeLook))
	eng, err := NewEngine(WithWindow(w), WithCamera(cam), WithLogger(quietLogger()), withClock(now))
	require.NoError(t, err)

	var dts []float32
	var last []byte
	eng.SetFrameCallback(func(dt float32, uniform []byte) {
		dts = append(dts, dt)
		last = append(last[:0], uniform...)
	})

	start := cam.Position()
	eng.Router().OnKeyDown(common.KeyW)
	require.NoError(t, eng.Run())

	assert.Equal(t, []float32{maxFrameDelta, maxFrameDelta, maxFrameDelta}, dts)
	assert.InDelta(t, cam.MoveSpeed()*3*maxFrameDelta, cam.Position().Sub(start).Len(), 1e-4)

	u := cam.Uniform()
	assert.Equal(t, u.Marshal(), last)
	assert.Equal(t, 1, w.closeCalls)
}

func TestFrameDeltaFollowsClock(t *testing.T) {
	now, advance := stepClock()
	w := &fakeWindow{width: 800, height: 600, frames: 2}
	w.beforeFrame = func(int) { advance(16 * time.Millisecond) }

	eng, err := NewEngine(WithWindow(w), WithLogger(quietLogger()), withClock(now))
	require.NoError(t, err)

	var dts []float32
	eng.SetFrameCallback(func(dt float32, _ []byte) { dts = append(dts, dt) })
	require.NoError(t, eng.Run())

	require.Len(t, dts, 2)
	for _, dt := range dts {
		assert.InDelta(t, 0.016, dt, 1e-6)
	}
}

func TestQuitClosesWindowOnce(t *testing.T) {
	w := &fakeWindow{width: 800, height: 600, frames: 5}
	eng, err := NewEngine(WithWindow(w), WithLogger(quietLogger()))
	require.NoError(t, err)

	frames := 0
	eng.SetFrameCallback(func(float32, []byte) { frames++ })
	w.beforeFrame = func(i int) {
		if i == 1 {
			eng.Quit()
			eng.Quit()
		}
	}

	require.NoError(t, eng.Run())
	assert.Equal(t, 1, frames)
	assert.Equal(t, 1, w.closeCalls)
}

func TestStatusDescribesCamera(t *testing.T) {
	eng, err := NewEngine(WithWindow(&fakeWindow{width: 800, height: 600}), WithLogger(quietLogger()), WithProfiling(true))
	require.NoError(t, err)

	e := eng.(*engine)
	assert.Contains(t, e.status(), "mode=orbit")
	assert.Contains(t, e.status(), "eye=(0.00, 0.00, 5.00)")
	assert.Contains(t, e.status(), "fovy=45.0°")
}

func TestWatchedConfigIsReloaded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "camera.yaml")
	writeConfig(t, path, "projection:\n  fovy_degrees: 60\n")

	eng, err := NewEngine(
		WithWindow(&fakeWindow{width: 1600, height: 900}),
		WithConfigPath(path, true),
		WithLogger(quietLogger()),
	)
	require.NoError(t, err)
	e := eng.(*engine)
	require.NotNil(t, e.watcher)
	t.Cleanup(func() { _ = e.watcher.Close() })

	writeConfig(t, path, "projection:\n  fovy_degrees: 30\n  aspect: 1\n")

	want := mgl32.DegToRad(30)
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		e.pollConfig()
		if d := e.camera.Fovy() - want; d < 1e-6 && d > -1e-6 {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	assert.InDelta(t, want, e.camera.Fovy(), 1e-6)
	assert.InDelta(t, 1600.0/900.0, e.camera.Aspect(), 1e-6)
}
