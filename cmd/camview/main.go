// Command camview opens a window and drives an orbit/free-look camera from
// mouse and keyboard input.
//
// Controls:
//
//	Left drag          rotate (orbit)
//	Shift + left drag  pan (orbit), also middle drag
//	Ctrl/Alt + drag    dolly (orbit), also right drag
//	Scroll             zoom
//	Tab                toggle orbit / free-look
//	WASD, E/Space, Q/LeftShift  move (free-look)
//	Esc                quit
package main

import (
	"flag"
	"log"
	"os"

	"github.com/Carmen-Shannon/oxy-cam/engine"
	"github.com/Carmen-Shannon/oxy-cam/engine/window"
)

func main() {
	var (
		configPath = flag.String("config", "", "camera YAML config file")
		watch      = flag.Bool("watch", true, "reload the config file when it changes")
		title      = flag.String("title", "oxy-cam", "window title")
		width      = flag.Int("width", 1280, "window width in pixels")
		height     = flag.Int("height", 720, "window height in pixels")
		profile    = flag.Bool("profile", false, "log frame rate and camera pose every second")
	)
	flag.Parse()

	logger := log.New(os.Stderr, "", log.LstdFlags)

	w, err := window.NewWindow(
		window.WithTitle(*title),
		window.WithWidth(*width),
		window.WithHeight(*height),
	)
	if err != nil {
		logger.Fatalf("[camview] %v", err)
	}

	options := []engine.EngineBuilderOption{
		engine.WithWindow(w),
		engine.WithLogger(logger),
		engine.WithProfiling(*profile),
	}
	if *configPath != "" {
		options = append(options, engine.WithConfigPath(*configPath, *watch))
	}

	eng, err := engine.NewEngine(options...)
	if err != nil {
		_ = w.Close()
		logger.Fatalf("[camview] %v", err)
	}

	logger.Printf("[camview] camera mode: %s (Tab to toggle, Esc to quit)", eng.Camera().Mode())
	if err := eng.Run(); err != nil {
		logger.Fatalf("[camview] %v", err)
	}
}
