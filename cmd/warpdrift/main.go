package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/warpdrift/audio"
	"github.com/lixenwraith/warpdrift/config"
	"github.com/lixenwraith/warpdrift/core"
	"github.com/lixenwraith/warpdrift/game"
	"github.com/lixenwraith/warpdrift/parameter"
	"github.com/lixenwraith/warpdrift/terminal"
)

var (
	configFlag = flag.String("config", "", "TOML file overriding the default tuning")
	seedFlag   = flag.Uint64("seed", 0, "World seed, 0 uses the config seed or the clock")
	debugFlag  = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	muteFlag   = flag.Bool("mute", false, "Start with audio disabled")
	colorFlag  = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
	statsFlag  = flag.Bool("stats", false, "Collect diagnostics telemetry and log it on exit")
)

// errQuit ends the loop on a user quit
var errQuit = errors.New("quit")

func main() {
	// Panic recovery for the main goroutine, the screen may not be up yet
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	session := uuid.NewString()
	log.Printf("session %s starting", session)

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// Audio is optional, the game runs silent when the device is unavailable
	audioCfg := audio.LoadConfig()
	if *muteFlag {
		audioCfg.Enabled = false
	}
	player := audio.NewPlayer(audioCfg)
	if err := player.Start(); err != nil {
		log.Printf("audio start failed: %v (continuing without audio)", err)
	} else {
		defer player.Stop()
	}

	opts := []game.Option{game.WithCuePlayer(player), game.WithDiagnostics(*statsFlag)}
	if *seedFlag != 0 {
		opts = append(opts, game.WithSeed(*seedFlag))
	}
	g, err := game.New(cfg, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create game: %v\n", err)
		os.Exit(1)
	}
	g.World().Resources.Status.Strings.Get("session.id").Store(session)
	log.Printf("session %s seed %d", session, g.Seed())

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	var finiOnce sync.Once
	fini := func() { finiOnce.Do(screen.Fini) }
	defer fini()

	core.SetCrashCleanup(func() {
		fini()
		terminal.EmergencyReset(os.Stdout)
	})

	renderer := terminal.NewRenderer(screen, terminal.ParseColorMode(*colorFlag))
	renderer.Footer = session[:8]

	err = run(context.Background(), screen, fini, g, renderer, player)
	fini()

	if *statsFlag {
		log.Printf("session %s stats: %s", session, g.World().Resources.Status.Summary())
	}
	log.Printf("session %s ended after %d frames", session, g.World().Frame())

	if err != nil {
		fmt.Fprintf(os.Stderr, "warpdrift: %v\n", err)
		os.Exit(1)
	}
}

// run drives the game at parameter.FrameUpdateInterval until quit
// The world is confined to the loop goroutine, the poller only forwards screen events
func run(ctx context.Context, screen tcell.Screen, fini func(), g *game.Game, renderer *terminal.Renderer, player *audio.Player) error {
	group, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 256)

	group.Go(core.Guard(func() error {
		for {
			// PollEvent returns nil once the screen is finalised
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	}))

	group.Go(core.Guard(func() error {
		// Finalising the screen releases the poller
		defer fini()

		keys := terminal.DefaultKeyMap()
		input := terminal.NewInputState(parameter.InputHoldDuration)

		ticker := time.NewTicker(parameter.FrameUpdateInterval)
		defer ticker.Stop()
		last := time.Now()

		for {
			select {
			case <-ctx.Done():
				return ctx.Err()

			case ev := <-events:
				switch ev := ev.(type) {
				case *tcell.EventKey:
					switch a := keys.Lookup(ev); a {
					case terminal.ActionQuit:
						return errQuit
					case terminal.ActionMute:
						log.Printf("audio enabled: %v", player.ToggleMute())
					case terminal.ActionRestart:
						input.Release()
						g.Reset()
						log.Printf("restarted")
					default:
						input.Press(a, time.Now())
					}
				case *tcell.EventResize:
					screen.Sync()
				}

			case now := <-ticker.C:
				g.Tick(now.Sub(last), input.Intent(now))
				last = now
				renderer.Draw(g.Snapshot(), g.HUD())
			}
		}
	}))

	if err := group.Wait(); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return nil
}
