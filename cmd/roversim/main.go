package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/roversim/server/internal/config"
	"github.com/roversim/server/internal/core/event"
	coresys "github.com/roversim/server/internal/core/system"
	"github.com/roversim/server/internal/data"
	"github.com/roversim/server/internal/object"
	"github.com/roversim/server/internal/scripting"
	"github.com/roversim/server/internal/sim"
	"github.com/roversim/server/internal/system"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config
	cfgPath := "config/server.toml"
	if p := os.Getenv("ROVERSIM_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	// 3. Load data tables
	templates, err := data.LoadTemplateTable(cfg.Sim.TemplatesPath)
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}
	log.Info("object templates loaded", zap.Int("count", templates.Count()))

	spawns, err := data.LoadScene(cfg.Sim.ScenePath)
	if err != nil {
		return fmt.Errorf("load scene: %w", err)
	}

	// 4. Build registry and event bus
	bus := event.NewBus()
	factory := sim.NewTemplateFactory(templates, log)
	reg := object.NewRegistry(factory, cfg.Sim.UnitScale, log)

	event.Subscribe(bus, func(ev event.ObjectCreated) {
		log.Debug("object created", zap.Int("id", ev.ID), zap.Stringer("type", ev.Type))
	})
	event.Subscribe(bus, func(ev event.ObjectDestroyed) {
		log.Info("object destroyed", zap.Int("id", ev.ID), zap.Stringer("type", ev.Type), zap.Int("team", ev.Team))
	})
	event.Subscribe(bus, func(ev event.ExplosionStarted) {
		log.Info("explosion started", zap.Int("id", ev.ID))
	})

	spawned, err := spawnScene(reg, bus, spawns)
	if err != nil {
		return fmt.Errorf("spawn scene: %w", err)
	}
	log.Info("scene spawned", zap.Int("objects", spawned))

	// 5. Initialize Lua scripting engine
	engine, err := scripting.NewEngine(cfg.Sim.ScriptsDir, reg, log)
	if err != nil {
		return fmt.Errorf("lua engine: %w", err)
	}
	defer engine.Close()

	// 6. Create systems and register with runner
	runner := coresys.NewRunner()
	runner.Register(system.NewEventDispatchSystem(bus))
	runner.Register(system.NewBehaviorSystem(reg, engine, bus))
	runner.Register(system.NewDemolitionSystem(reg, bus))
	runner.Register(system.NewCleanupSystem(reg))

	// 7. Game loop
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Sim.TickRate)
	defer ticker.Stop()

	log.Info("simulation started",
		zap.Duration("tick", cfg.Sim.TickRate),
		zap.Float64("unit_scale", cfg.Sim.UnitScale))

	for {
		select {
		case <-ticker.C:
			runner.Tick(cfg.Sim.TickRate)
		case sig := <-shutdownCh:
			log.Info("shutdown signal received", zap.String("signal", sig.String()))
			reg.DeleteAll()
			log.Info("simulation stopped")
			return nil
		}
	}
}

// spawnScene creates all scene objects and emits creation events.
func spawnScene(reg *object.Registry, bus *event.Bus, spawns []data.SpawnEntry) (int, error) {
	total := 0
	for _, sp := range spawns {
		params := object.DefaultCreateParams(sp.Type)
		params.Pos = mgl64.Vec3{sp.X, 0, sp.Z}
		params.Heading = sp.Heading
		params.Team = sp.Team
		params.Power = sp.Power
		obj, err := reg.Create(params)
		if err != nil {
			return total, err
		}
		event.Emit(bus, event.ObjectCreated{ID: obj.ID(), Type: obj.Type(), Team: obj.Team()})
		total++
	}
	return total, nil
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
