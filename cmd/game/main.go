// cmd/game/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"tank-arena/internal/app"
	"tank-arena/internal/audio"
	"tank-arena/internal/config"
	"tank-arena/internal/defs"
	"tank-arena/internal/history"
	"tank-arena/internal/logging"
	"tank-arena/internal/spectator"
	"tank-arena/internal/state"
	"tank-arena/internal/telemetry"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		log := logging.New("info", nil)
		log.Error().Err(err).Msg("tank arena")
		os.Exit(1)
	}
}

// run возвращает ошибку; os.Exit вызывается только в main, после отложенных Close и Shutdown.
func run(args []string) error {
	flags := flag.NewFlagSet("tank-arena", flag.ContinueOnError)
	configDir := flags.String("config", ".", "directory containing "+config.ConfigFileName)
	skipMenu := flags.Bool("play", false, "start the match immediately")
	if err := flags.Parse(args); err != nil {
		return err
	}

	tuning, err := config.Load(*configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logging.New(tuning.LogLevel, nil)

	catalog := defs.DefaultCatalog()
	if tuning.PowerUpsFile != "" {
		catalog, err = defs.LoadPowerUpDefinitions(tuning.PowerUpsFile)
		if err != nil {
			return fmt.Errorf("load power-ups: %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	// фоновые наблюдатели стартуют после всей настройки и не отменяют друг друга
	var workers []func(context.Context) error

	opts := app.Options{Tuning: tuning, Catalog: catalog, Log: log}

	var records state.Records
	if tuning.History.Enabled {
		store, err := history.Open(tuning.History.Path, log)
		if err != nil {
			return err
		}
		defer store.Close()
		records = store
		rec := history.NewRecorder(store, log)
		opts.Listeners = append(opts.Listeners, rec)
		workers = append(workers, rec.Run)
	}

	metricsOut, err := openMetricsOutput(tuning.Telemetry)
	if err != nil {
		return err
	}
	defer metricsOut.Close()
	provider, err := telemetry.NewProvider(telemetry.Config{
		Enabled:  tuning.Telemetry.Enabled,
		Interval: time.Duration(tuning.Telemetry.Interval * float64(time.Second)),
		Writer:   metricsOut,
	})
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("telemetry shutdown")
		}
	}()
	metrics, err := telemetry.NewRecorder(provider.Meter())
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	opts.Listeners = append(opts.Listeners, metrics)

	if tuning.Spectator.Enabled {
		hub := spectator.NewHub(log)
		opts.Listeners = append(opts.Listeners, hub)
		workers = append(workers, func(ctx context.Context) error {
			return hub.Serve(ctx, tuning.Spectator.Addr)
		})
	}

	if tuning.Audio.Enabled {
		if player, err := audio.NewPlayer(tuning.Audio.Volume, log); err != nil {
			log.Warn().Err(err).Msg("audio disabled")
		} else {
			opts.Sound = player
		}
	}

	sm := state.NewStateMachine()
	if *skipMenu {
		sm.SetState(state.NewGameState(sm, app.NewGame(opts)))
	} else {
		sm.SetState(state.NewMenuState(sm, opts, records))
	}

	var eg errgroup.Group
	for _, work := range workers {
		eg.Go(func() error { return work(ctx) })
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Tank Arena")
	runErr := ebiten.RunGame(&AppGame{stateMachine: sm, lastUpdateTime: time.Now()})

	stop()
	if err := eg.Wait(); err != nil {
		log.Error().Err(err).Msg("background worker")
	}
	if runErr != nil {
		return fmt.Errorf("game loop: %w", runErr)
	}
	log.Info().Msg("bye")
	return nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openMetricsOutput returns the file the exporter appends to, stdout when no path is set.
func openMetricsOutput(cfg config.TelemetryConfig) (io.WriteCloser, error) {
	if !cfg.Enabled || cfg.Path == "" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("telemetry: %w", err)
	}
	return f, nil
}
