package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/careerworks/rostergen/internal/models"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config carries every tunable scheduler knob. Values come from a local
// .env file and the process environment; every knob has a default so a bare
// invocation behaves like the documented model.
type Config struct {
	Env string

	Log    LogConfig
	Solver SolverConfig
	Shift  ShiftConfig
	Output OutputConfig

	Weights models.ObjectiveWeights
}

type LogConfig struct {
	Level  string
	Format string
}

// SolverConfig configures the external CP-SAT solving service.
type SolverConfig struct {
	// MaxTime is the wall-clock budget for one solve.
	MaxTime time.Duration
	// Workers hints the solver's parallelism; 0 keeps the solver default.
	Workers int
	// RandomSeed pins tie-breaking so identical input reproduces the same
	// objective value across runs.
	RandomSeed int
}

// ShiftConfig bounds individual shifts and weekly workloads.
type ShiftConfig struct {
	// MinSlots and MaxSlots bound a day's contiguous shift in 30-minute
	// slots (defaults: 4 and 8, i.e. 2-4 hours).
	MinSlots int
	MaxSlots int
	// UniversalMaxHours caps every employee's week regardless of their
	// personal preference.
	UniversalMaxHours float64
	// EmployeeDeviationSlots is the large-deviation threshold in slots
	// (default 4 = 2 hours off target).
	EmployeeDeviationSlots int
	// DepartmentShortfallHours is the department large-shortfall threshold.
	DepartmentShortfallHours float64
}

// OutputConfig governs where exports land.
type OutputConfig struct {
	Dir string
}

// Load reads configuration from .env and the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	setDefaults(v)

	// A missing .env is fine: defaults plus the process environment apply.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, err
		}
	}

	cfg := &Config{}
	cfg.Env = v.GetString("ENV")

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Solver = SolverConfig{
		MaxTime:    parseDuration(v.GetString("SOLVER_MAX_TIME"), 90*time.Second),
		Workers:    v.GetInt("SOLVER_WORKERS"),
		RandomSeed: v.GetInt("SOLVER_RANDOM_SEED"),
	}

	cfg.Shift = ShiftConfig{
		MinSlots:                 v.GetInt("SHIFT_MIN_SLOTS"),
		MaxSlots:                 v.GetInt("SHIFT_MAX_SLOTS"),
		UniversalMaxHours:        v.GetFloat64("UNIVERSAL_MAX_HOURS"),
		EmployeeDeviationSlots:   v.GetInt("EMPLOYEE_DEVIATION_SLOTS"),
		DepartmentShortfallHours: v.GetFloat64("DEPARTMENT_SHORTFALL_HOURS"),
	}

	cfg.Output = OutputConfig{Dir: v.GetString("OUTPUT_DIR")}

	cfg.Weights = models.ObjectiveWeights{
		FrontDeskCoverage:        v.GetFloat64("WEIGHT_FRONT_DESK_COVERAGE"),
		EmployeeLargeDeviation:   v.GetFloat64("WEIGHT_EMPLOYEE_LARGE_DEVIATION"),
		DepartmentLargeShortfall: v.GetFloat64("WEIGHT_DEPARTMENT_LARGE_SHORTFALL"),
		DepartmentTarget:         v.GetFloat64("WEIGHT_DEPARTMENT_TARGET"),
		TargetAdherence:          v.GetFloat64("WEIGHT_TARGET_ADHERENCE"),
		DepartmentSpread:         v.GetFloat64("WEIGHT_DEPARTMENT_SPREAD"),
		CollaborativeHours:       v.GetFloat64("WEIGHT_COLLABORATIVE_HOURS"),
		DepartmentDayCoverage:    v.GetFloat64("WEIGHT_DEPARTMENT_DAY_COVERAGE"),
		ShiftLength:              v.GetFloat64("WEIGHT_SHIFT_LENGTH"),
		DepartmentScarcity:       v.GetFloat64("WEIGHT_DEPARTMENT_SCARCITY"),
		UnderclassmanFrontDesk:   v.GetFloat64("WEIGHT_UNDERCLASSMAN_FRONT_DESK"),
		DepartmentTotal:          v.GetFloat64("WEIGHT_DEPARTMENT_TOTAL"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("SOLVER_MAX_TIME", "90s")
	v.SetDefault("SOLVER_WORKERS", 0)
	v.SetDefault("SOLVER_RANDOM_SEED", 0)

	v.SetDefault("SHIFT_MIN_SLOTS", 4)
	v.SetDefault("SHIFT_MAX_SLOTS", 8)
	v.SetDefault("UNIVERSAL_MAX_HOURS", 19)
	v.SetDefault("EMPLOYEE_DEVIATION_SLOTS", 4)
	v.SetDefault("DEPARTMENT_SHORTFALL_HOURS", 4)

	v.SetDefault("OUTPUT_DIR", ".")

	defaults := models.DefaultWeights()
	v.SetDefault("WEIGHT_FRONT_DESK_COVERAGE", defaults.FrontDeskCoverage)
	v.SetDefault("WEIGHT_EMPLOYEE_LARGE_DEVIATION", defaults.EmployeeLargeDeviation)
	v.SetDefault("WEIGHT_DEPARTMENT_LARGE_SHORTFALL", defaults.DepartmentLargeShortfall)
	v.SetDefault("WEIGHT_DEPARTMENT_TARGET", defaults.DepartmentTarget)
	v.SetDefault("WEIGHT_TARGET_ADHERENCE", defaults.TargetAdherence)
	v.SetDefault("WEIGHT_DEPARTMENT_SPREAD", defaults.DepartmentSpread)
	v.SetDefault("WEIGHT_COLLABORATIVE_HOURS", defaults.CollaborativeHours)
	v.SetDefault("WEIGHT_DEPARTMENT_DAY_COVERAGE", defaults.DepartmentDayCoverage)
	v.SetDefault("WEIGHT_SHIFT_LENGTH", defaults.ShiftLength)
	v.SetDefault("WEIGHT_DEPARTMENT_SCARCITY", defaults.DepartmentScarcity)
	v.SetDefault("WEIGHT_UNDERCLASSMAN_FRONT_DESK", defaults.UnderclassmanFrontDesk)
	v.SetDefault("WEIGHT_DEPARTMENT_TOTAL", defaults.DepartmentTotal)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}
