package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-tunnel/audio"
	"github.com/lixenwraith/vi-tunnel/engine"
	"github.com/lixenwraith/vi-tunnel/input"
	"github.com/lixenwraith/vi-tunnel/parameter"
	"github.com/lixenwraith/vi-tunnel/render"
	"github.com/lixenwraith/vi-tunnel/scene"
)

var (
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/vi-tunnel.log")
	fpsFlag    = flag.Int("fps", parameter.DefaultFPS, "Frame rate")
	boxesFlag  = flag.Int("boxes", parameter.BoxCount, "Number of target boxes")
	seedFlag   = flag.Int64("seed", 0, "Layout seed, 0 uses the current time")
	speedFlag  = flag.Float64("speed", parameter.ProjectileSpeed, "Projectile travel per tick")
	spreadFlag = flag.Float64("spread", parameter.ProjectileSpread, "Aim jitter per axis")
	muteFlag   = flag.Bool("mute", false, "Start with sound muted")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	fps := *fpsFlag
	if fps <= 0 {
		fps = parameter.DefaultFPS
	}

	cfg := scene.DefaultConfig()
	cfg.Boxes = *boxesFlag
	cfg.Seed = seed
	cfg.ProjectileSpeed = *speedFlag
	cfg.Spread = *spreadFlag

	sc, err := scene.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build scene: %v\n", err)
		os.Exit(1)
	}
	log.Printf("scene ready: seed=%d boxes=%d speed=%.2f spread=%.2f fps=%d",
		seed, cfg.Boxes, cfg.ProjectileSpeed, cfg.Spread, fps)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: the deferred Fini below runs first and restores the terminal
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-TUNNEL CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))

	sound := audio.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		// Non-fatal, flythrough runs without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sound.Cleanup()
	sound.SetMuted(*muteFlag)

	buf := input.NewBuffer()
	sys := make(chan input.Intent, parameter.InputBufferSize)
	go pollEvents(screen, buf, sys)

	run(screen, sc, sound, buf, sys, fps)
}

// pollEvents translates terminal events until the screen closes
func pollEvents(screen tcell.Screen, buf *input.Buffer, sys chan<- input.Intent) {
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	var tr input.Translator
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		w, h := screen.Size()
		dispatch(tr.Translate(ev), buf, w, h, sys)
	}
}

// run is the frame loop; it returns on quit
func run(screen tcell.Screen, sc *scene.Scene, sound *audio.SoundManager, buf *input.Buffer, sys <-chan input.Intent, fps int) {
	renderer := render.NewRenderer(screen)
	clock := engine.NewPausableClock(engine.NewMonotonicTimeProvider())

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	frame := sc.Tick(clock.ElapsedMs(), buf.Drain(), renderer.Lens())

	for range ticker.C {
	drainSystem:
		for {
			select {
			case intent := <-sys:
				switch intent {
				case input.IntentQuit:
					log.Printf("quit: %+v", sc.Stats())
					return
				case input.IntentPause:
					paused := clock.Toggle()
					log.Printf("paused=%v at %.0fms", paused, clock.ElapsedMs())
				case input.IntentToggleMute:
					sound.SetMuted(!sound.IsMuted())
				case input.IntentResize:
					screen.Sync()
				}
			default:
				break drainSystem
			}
		}

		snap := buf.Drain()
		if !clock.IsPaused() {
			frame = sc.Tick(clock.ElapsedMs(), snap, renderer.Lens())
			playCues(sound, frame)
			for _, id := range frame.Collapsed {
				log.Printf("box %d collapsed", id)
			}
		}

		renderer.Draw(sc, frame, render.Status{
			Stats:  sc.Stats(),
			Paused: clock.IsPaused(),
			Muted:  sound.IsMuted(),
		})
	}
}

func playCues(sound *audio.SoundManager, f scene.Frame) {
	if len(f.Fired) > 0 {
		sound.PlayShot()
	}
	for _, imp := range f.Impacts {
		if imp.Target != nil {
			sound.PlayImpact(imp.Target.Kind)
		}
	}
}
