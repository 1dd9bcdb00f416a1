package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/careerworks/rostergen/internal/dto"
	"github.com/careerworks/rostergen/internal/engine"
	"github.com/careerworks/rostergen/internal/loader"
	"github.com/careerworks/rostergen/internal/report"
	"github.com/careerworks/rostergen/internal/service"
	"github.com/careerworks/rostergen/pkg/config"
	apperrors "github.com/careerworks/rostergen/pkg/errors"
	"github.com/careerworks/rostergen/pkg/logger"
	"github.com/careerworks/rostergen/pkg/storage"
)

func main() {
	os.Exit(run())
}

func run() int {
	fs := flag.NewFlagSet("rostergen", flag.ExitOnError)
	outputBase := fs.String("output", "schedule", "base name for the CSV/PDF exports")
	maxSolveSeconds := fs.Float64("max-solve-seconds", 0, "override the solver time budget (0 keeps the configured value)")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: rostergen [flags] <staff.csv> <requirements.csv>\n\n")
		fs.PrintDefaults()
	}
	_ = fs.Parse(os.Args[1:])

	if fs.NArg() != 2 {
		fs.Usage()
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load configuration: %v\n", err)
		return apperrors.ErrConfiguration.ExitCode
	}

	log, err := logger.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "initialize logger: %v\n", err)
		return 1
	}
	defer log.Sync()

	store, err := storage.NewLocalStorage(cfg.Output.Dir)
	if err != nil {
		log.Error("initialize output storage", zap.Error(err))
		return apperrors.ErrConfiguration.ExitCode
	}

	opts := engine.SolveOptions{
		MaxTime:    cfg.Solver.MaxTime,
		Workers:    cfg.Solver.Workers,
		RandomSeed: cfg.Solver.RandomSeed,
	}

	svc := service.NewRosterService(
		loader.NewStaffLoader(),
		loader.NewDepartmentLoader(),
		loader.BuildRoster,
		engine.NewCpSatSolver(),
		store,
		engine.ParamsFromConfig(cfg),
		opts,
		log,
	)

	req := dto.ScheduleRequest{
		StaffPath:        fs.Arg(0),
		RequirementsPath: fs.Arg(1),
		OutputBase:       *outputBase,
	}
	if *maxSolveSeconds > 0 {
		req.MaxSolveTime = time.Duration(*maxSolveSeconds * float64(time.Second))
	}

	result, err := svc.Run(context.Background(), req)
	if err != nil {
		appErr := apperrors.FromError(err)
		log.Error("scheduling run failed",
			zap.String("code", appErr.Code),
			zap.Error(appErr))
		fmt.Fprintf(os.Stderr, "%s: %s\n", appErr.Code, appErr.Error())
		return appErr.ExitCode
	}

	renderer := report.NewConsoleRenderer(os.Stdout)
	if err := renderer.Render(result.Input, result.Schedule, result.Scores); err != nil {
		log.Error("render report", zap.Error(err))
		return 1
	}

	for _, path := range result.Summary.OutputFiles {
		fmt.Printf("wrote %s\n", path)
	}
	return 0
}
