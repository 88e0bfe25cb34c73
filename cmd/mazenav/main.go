// Command mazenav loads a scene, discretises it and searches for a path from
// the agent's start pose to a goal.
//
//	mazenav -scene scenes.yaml -name Test1 -granularity 5 -render
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/mazenav/maze"
	"github.com/katalvlaran/mazenav/scene"
	"github.com/katalvlaran/mazenav/search"
)

type config struct {
	scenePath     string
	name          string
	granularity   float64
	partial       bool
	method        string
	maxExpansions int
	workers       int
	render        bool
	jsonLogs      bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.scenePath, "scene", "", "path to the scene YAML file (required)")
	flag.StringVar(&cfg.name, "name", "", "scene to run (default: the only scene, or the first by name)")
	flag.Float64Var(&cfg.granularity, "granularity", 0, "grid step; 0 uses the scene's value")
	flag.BoolVar(&cfg.partial, "partial", false, "ignore the shape axis for moves and goal tests")
	flag.StringVar(&cfg.method, "method", string(search.MethodBFS), "search method: bfs or dfs")
	flag.IntVar(&cfg.maxExpansions, "max-expansions", 0, "stop after this many expansions (0 = unlimited)")
	flag.IntVar(&cfg.workers, "workers", 0, "goroutines used to classify cells (0 = GOMAXPROCS)")
	flag.BoolVar(&cfg.render, "render", false, "print every layer of the grid")
	flag.BoolVar(&cfg.jsonLogs, "json", false, "emit JSON logs")
	flag.Parse()

	logger, err := newLogger(cfg.jsonLogs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mazenav: logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("run failed", zap.Error(err))
		stop()
		os.Exit(1)
	}
}

func newLogger(jsonLogs bool) (*zap.Logger, error) {
	if jsonLogs {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	if cfg.scenePath == "" {
		return errors.New("-scene is required")
	}
	file, err := scene.Load(cfg.scenePath)
	if err != nil {
		return err
	}
	name := cfg.name
	if name == "" {
		name = file.Names()[0]
	}
	sc, err := file.Scene(name)
	if err != nil {
		return err
	}
	g := sc.Granularity
	if cfg.granularity > 0 {
		g = cfg.granularity
	}

	var mopts []maze.Option
	if cfg.workers > 0 {
		mopts = append(mopts, maze.WithWorkers(cfg.workers))
	}
	m, err := sc.BuildAt(g, mopts...)
	if err != nil {
		return err
	}
	free, wall, objective := m.Counts()
	logger.Info("maze built",
		zap.String("scene", name),
		zap.Float64("granularity", g),
		zap.Int("cols", m.Cols),
		zap.Int("rows", m.Rows),
		zap.Int("layers", m.Layers),
		zap.Int("free", free),
		zap.Int("wall", wall),
		zap.Int("objective", objective),
	)
	if cfg.render {
		for k := 0; k < m.Layers; k++ {
			fmt.Printf("layer %d:\n%s\n", k, m.Render(k))
		}
	}
	if !m.HasObjective() {
		logger.Warn("no goal is reachable at this granularity")
	}

	opts := []search.Option{
		search.WithContext(ctx),
		search.WithPartialRules(cfg.partial),
	}
	if cfg.maxExpansions > 0 {
		opts = append(opts, search.WithMaxExpansions(cfg.maxExpansions))
	}
	res, err := search.Run(m, search.Method(cfg.method), opts...)
	if err != nil {
		return err
	}
	if !res.Found() {
		logger.Info("no path", zap.Int("explored", res.Explored))
		return nil
	}

	poses := m.Poses(res.Path)
	logger.Info("path found",
		zap.Int("steps", res.Steps()),
		zap.Int("explored", res.Explored),
		zap.Bool("partial", cfg.partial),
	)
	for i, p := range poses {
		fmt.Printf("%d\t%s\t%s\n", i, res.Path[i], p)
	}
	return nil
}
