package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/pkg/profile"

	"github.com/lixenwraith/brickbreaker/audio"
	"github.com/lixenwraith/brickbreaker/config"
	"github.com/lixenwraith/brickbreaker/core"
	"github.com/lixenwraith/brickbreaker/game"
	"github.com/lixenwraith/brickbreaker/input"
	"github.com/lixenwraith/brickbreaker/level"
	"github.com/lixenwraith/brickbreaker/parameter"
	"github.com/lixenwraith/brickbreaker/scoreboard"
	"github.com/lixenwraith/brickbreaker/service"
	"github.com/lixenwraith/brickbreaker/status"
	"github.com/lixenwraith/brickbreaker/terminal"
)

var (
	configFlag  = flag.String("config", "", "Config file (yaml, toml or json)")
	debugFlag   = flag.Bool("debug", false, "Write logs to logs/brickbreaker.log")
	profileFlag = flag.String("profile", "", "Profile mode: cpu, mem or trace")
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	// Panic Recovery: restore the terminal before printing the crash
	core.SetCrashCleanup(func() { terminal.EmergencyReset(os.Stdout) })
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if f := setupLogging(*debugFlag); f != nil {
		defer f.Close()
	}
	if p := startProfile(*profileFlag); p != nil {
		defer p.Stop()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	return 0
}

func startProfile(mode string) interface{ Stop() } {
	opts := []func(*profile.Profile){profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet}
	switch mode {
	case "cpu":
		return profile.Start(append(opts, profile.CPUProfile)...)
	case "mem":
		return profile.Start(append(opts, profile.MemProfile)...)
	case "trace":
		return profile.Start(append(opts, profile.TraceProfile)...)
	default:
		return nil
	}
}

// session holds everything the frame loop touches besides the game itself
type session struct {
	cfg        *config.Config
	game       *game.Game
	sound      *audio.SoundManager
	recorder   *scoreboard.Recorder
	liveScores bool
	runID      uuid.UUID
	paused     bool
}

func run(cfg *config.Config) error {
	levels, err := level.LoadDB(cfg.Game.LevelsDir)
	if err != nil {
		return fmt.Errorf("load levels: %w", err)
	}

	acfg := audio.DefaultAudioConfig()
	acfg.Enabled = cfg.Audio.Enabled
	acfg.MasterVolume = cfg.Audio.Volume
	acfg.SampleRate = cfg.Audio.SampleRate
	sound := audio.NewService(acfg)
	scores := scoreboard.NewService(cfg.Scoreboard)

	hub := service.NewHub()
	for _, svc := range []service.Service{sound, scores} {
		if err := hub.Register(svc); err != nil {
			return err
		}
	}
	if err := hub.InitAll(context.Background()); err != nil {
		return err
	}
	if err := hub.StartAll(); err != nil {
		return err
	}
	defer hub.StopAll()

	s := &session{
		cfg:        cfg,
		sound:      sound.Manager(),
		recorder:   scores.Recorder(),
		liveScores: scores.Live(),
		runID:      uuid.New(),
	}

	screen, err := terminal.NewScreen()
	if err != nil {
		return err
	}
	defer screen.Fini()
	core.SetCrashCleanup(screen.Fini)

	s.game = game.New(game.Options{
		Width:      cfg.Game.Width,
		Height:     cfg.Game.Height,
		TickRate:   cfg.Game.TickRate,
		Lives:      cfg.Game.Lives,
		StartLevel: cfg.Game.StartLevel,
		Loader:     level.NewBuilder(levels),
		Audio:      sound.Player(),
		Status:     status.NewRegistry(),
	})
	s.game.OnRunEnd = s.recordRun

	renderer := terminal.NewRenderer(screen, cfg.Game.Width, cfg.Game.Height,
		cfg.Display.CellWidth, cfg.Display.CellHeight)
	keys := terminal.NewKeyMapper(s.game.Input)

	log.Printf("[GAME] session %s started", s.runID)
	return s.loop(screen, renderer, keys)
}

// loop runs the fixed-step simulation from a frame ticker
// Up to MaxTicksPerFrame steps run per frame; a larger backlog is dropped
func (s *session) loop(screen *terminal.Screen, renderer *terminal.Renderer, keys *terminal.KeyMapper) error {
	events := screen.Events()
	frame := time.NewTicker(parameter.FrameInterval)
	defer frame.Stop()

	step := s.game.StepDuration()
	var acc time.Duration
	last := time.Now()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !s.handleKey(keys, ev) {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-frame.C:
			keys.Expire(now)
			elapsed := now.Sub(last)
			last = now

			if s.paused {
				s.game.Input.EndTick()
				acc = 0
			} else {
				acc += elapsed
				ticks := 0
				for acc >= step && ticks < parameter.MaxTicksPerFrame {
					s.game.Tick()
					acc -= step
					ticks++
				}
				if ticks == parameter.MaxTicksPerFrame {
					acc = 0
				}
			}

			cmds := s.game.Draw(float64(acc) / float64(step))
			renderer.Frame(cmds, s.hud())
		}
	}
}

// handleKey applies session keys directly and forwards the rest to the game input
// Returns false on quit
func (s *session) handleKey(keys *terminal.KeyMapper, ev *tcell.EventKey) bool {
	key, _ := terminal.Translate(ev.Key(), ev.Rune())
	switch key {
	case input.KeyQ, input.KeyEscape:
		return false
	case input.KeyM:
		if s.sound != nil {
			log.Printf("[AUDIO] muted=%v", s.sound.ToggleMute())
		}
	case input.KeyP:
		s.paused = !s.paused
		keys.ReleaseAll()
	default:
		keys.HandleKey(ev.Key(), ev.Rune(), ev.When())
	}
	return true
}

// recordRun hands finished attempts to the recorder; a game over starts a new run id
func (s *session) recordRun(end game.RunEnd) {
	reason := scoreboard.ReasonLevelClear
	if end.GameOver {
		reason = scoreboard.ReasonGameOver
	}
	s.recorder.Submit(scoreboard.Record{
		RunID:  s.runID,
		Level:  end.Level,
		Score:  end.Score,
		Reason: reason,
		At:     time.Now(),
	})
	if end.GameOver {
		s.runID = uuid.New()
	}
}

func (s *session) hud() terminal.HUD {
	run := s.game.Run
	hud := terminal.HUD{
		Level:    run.Level,
		Score:    run.Score,
		Lives:    run.Lives,
		Paused:   s.paused,
		Muted:    s.sound != nil && s.sound.Muted(),
		GameOver: run.GameOver,
	}
	if run.GameOver && s.liveScores {
		for _, e := range s.recorder.Leaders() {
			hud.Leaders = append(hud.Leaders, fmt.Sprintf("%2d. %8d  level %d  %s",
				e.Rank, e.Score, e.Level, e.RunID.String()[:8]))
		}
	}
	if s.cfg.Display.ShowStats {
		hud.Stats = s.game.Status.Lines()
	}
	return hud
}
