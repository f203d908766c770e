package main

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/GGPrompts/pixeloot/internal/config"
	"github.com/GGPrompts/pixeloot/internal/data"
	"github.com/GGPrompts/pixeloot/internal/game/stats"
	"github.com/GGPrompts/pixeloot/internal/model"
)

const ConfigPath = "config/simulator.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("PIXELOOT_SIM_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadSimulator(cfgPath)
	if err != nil {
		return fmt.Errorf("loading simulator config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	slog.Info("pixeloot simulator starting",
		"log_level", cfg.LogLevel,
		"tick_rate", cfg.TickRate,
		"duration_s", cfg.DurationSeconds)

	if err := data.LoadAffixes(); err != nil {
		return fmt.Errorf("loading affix definitions: %w", err)
	}
	if err := stats.VerifyRouting(); err != nil {
		return fmt.Errorf("verifying bonus routing: %w", err)
	}

	player, err := model.NewPlayer("Simulant", model.Attributes{
		Dexterity:    cfg.Scenario.Dexterity,
		Intelligence: cfg.Scenario.Intelligence,
		Vitality:     cfg.Scenario.Vitality,
		Focus:        cfg.Scenario.Focus,
	})
	if err != nil {
		return fmt.Errorf("creating player: %w", err)
	}

	enemies := stats.EnemySlice{
		model.NewEnemy(60, 0),
		model.NewEnemy(300, 120),
	}
	enemies[0].AddStatus("slowed")

	engine := stats.NewEngine(player, buildEquipment(), enemies)
	engine.MarkStatsDirty()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return simulate(gctx, engine, player, cfg)
	})
	return g.Wait()
}

// simulate drives the fixed-timestep loop: scripted event hooks first, then
// Advance, then the stats read — the same per-tick contract gameplay code
// follows.
func simulate(ctx context.Context, engine *stats.Engine, player *model.Player, cfg config.Simulator) error {
	dt := 1.0 / float64(cfg.TickRate)
	ticker := time.NewTicker(time.Duration(float64(time.Second) * dt))
	defer ticker.Stop()

	var elapsed, lastKill, lastSkill, lastReport float64

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		sc := cfg.Scenario

		// Event hooks fire before Advance.
		moving := math.Mod(elapsed, 2*sc.MovePhaseSeconds) < sc.MovePhaseSeconds
		if moving {
			engine.TrackMovement(1)
		} else {
			engine.TrackMovement(0)
		}
		if sc.KillInterval > 0 && elapsed-lastKill >= sc.KillInterval {
			engine.TrackKill()
			lastKill = elapsed
		}
		if sc.SkillInterval > 0 && elapsed-lastSkill >= sc.SkillInterval {
			engine.TrackSkillUsed()
			lastSkill = elapsed
		}

		engine.Advance(dt)
		elapsed += dt

		snap := engine.ComputedStats()
		player.SetMaxHP(snap.MaxHP)

		if sc.ReportInterval > 0 && elapsed-lastReport >= sc.ReportInterval {
			lastReport = elapsed
			slog.Info("stat snapshot",
				"t", fmt.Sprintf("%.1fs", elapsed),
				"damage", snap.Damage,
				"attack_speed", fmt.Sprintf("%.2f", snap.AttackSpeed),
				"move_speed", fmt.Sprintf("%.1f", snap.MoveSpeed),
				"armor", snap.Armor,
				"dr", fmt.Sprintf("%.2f", snap.DamageReduction),
				"cdr", fmt.Sprintf("%.2f", snap.CooldownReduction),
				"buffs", engine.ActiveBuffCount())
		}

		if cfg.DurationSeconds > 0 && elapsed >= cfg.DurationSeconds {
			slog.Info("simulation complete", "ticks", int(elapsed/dt), "recomputes", engine.Recomputes())
			return nil
		}
	}
}

// buildEquipment assembles a fixed demo loadout: a weapon with a kill-streak
// affix, armor pieces with passives, and a ring with a stationary-damage
// conditional.
func buildEquipment() *model.Equipment {
	eq := model.NewEquipment()

	weapon, _ := model.NewItem(1, "Ember Shortbow", data.SlotWeapon, 10, 0)
	weapon.AddAffix(model.Affix{ID: 1002, StatKey: data.StatPercentDamage, Category: data.CategoryOffensive, RolledValue: 20, MinValue: 5, MaxValue: 25})
	weapon.AddAffix(model.Affix{ID: 2010, StatKey: data.CondKillStreakSpeed, Category: data.CategoryConditional, RolledValue: 15, MinValue: 10, MaxValue: 20})
	weapon.SocketGem(&model.Gem{StatKey: data.StatFlatDamage, Value: 3})

	chest, _ := model.NewItem(2, "Riveted Cuirass", data.SlotChest, 0, 40)
	chest.AddAffix(model.Affix{ID: 1102, StatKey: data.StatFlatHP, Category: data.CategoryDefensive, RolledValue: 30, MinValue: 10, MaxValue: 50})

	boots, _ := model.NewItem(3, "Wayfarer Boots", data.SlotBoots, 0, 10)
	boots.AddAffix(model.Affix{ID: 1201, StatKey: data.StatPercentMoveSpeed, Category: data.CategoryUtility, RolledValue: 8, MinValue: 3, MaxValue: 12})
	boots.AddAffix(model.Affix{ID: 2002, StatKey: data.CondMovingSpeed, Category: data.CategoryConditional, RolledValue: 10, MinValue: 5, MaxValue: 15})

	ring, _ := model.NewItem(4, "Band of Roots", data.SlotRingLeft, 0, 0)
	ring.AddAffix(model.Affix{ID: 2001, StatKey: data.CondStationaryDamage, Category: data.CategoryConditional, RolledValue: 25, MinValue: 10, MaxValue: 30})

	for _, item := range []*model.Item{weapon, chest, boots, ring} {
		if _, err := eq.Equip(item); err != nil {
			slog.Error("equip failed", "item", item.Name(), "err", err)
		}
	}
	return eq
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
