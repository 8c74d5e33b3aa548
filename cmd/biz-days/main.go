package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/username/biz-days/internal/bizdays"
	"github.com/username/biz-days/internal/calendar"
	"github.com/username/biz-days/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const version = "0.1.0"

var (
	configPath   string
	holidayFiles []string
	cfg          *config.Config
	logger       = zap.NewNop()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "biz-days",
		Short:   "Business day calculator",
		Long:    "Calculate what day is N business days from a date (exclusive of the start date), or how many business days lie between two dates (inclusive of both).\n\nAll dates are in YYYY-MM-DD format.",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}

			level, _ := cfg.Log.ZapLevel()
			if cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, level)
			} else {
				logger, err = initLogger(level)
			}
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: ./config.yaml if present)")
	rootCmd.PersistentFlags().StringSliceVar(&holidayFiles, "holidays-file", nil, "Holiday file to skip, one YYYY-MM-DD per line (repeatable)")

	rootCmd.AddCommand(daysFromCmd())
	rootCmd.AddCommand(inIntervalCmd())

	return rootCmd
}

// buildCalculator merges configured holidays, holiday files and SKIP arguments
func buildCalculator(skip []string) (*bizdays.Calculator, error) {
	composite := calendar.NewCompositeCalendar(logger)

	files := make([]string, 0, len(cfg.Calendar.HolidayFiles)+len(holidayFiles))
	files = append(files, cfg.Calendar.HolidayFiles...)
	files = append(files, holidayFiles...)
	for _, file := range files {
		composite.Add(calendar.NewFileCalendar(file, logger))
	}

	inline := make([]string, 0, len(cfg.Calendar.Holidays)+len(skip))
	inline = append(inline, cfg.Calendar.Holidays...)
	inline = append(inline, skip...)
	static, err := calendar.ParseStaticCalendar(inline)
	if err != nil {
		return nil, err
	}
	composite.Add(static)

	holidays, err := calendar.LoadSet(composite)
	if err != nil {
		return nil, err
	}

	logger.Debug("Holidays loaded",
		zap.Int("files", len(files)),
		zap.Int("holidays", holidays.Len()))

	return bizdays.NewCalculator(holidays,
		bizdays.WithMaxIterations(cfg.Resolver.MaxIterations),
		bizdays.WithLogger(logger),
	), nil
}

func initLogger(level zapcore.Level) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	built, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return built, nil
}

func initFileLogger(logFile string, level zapcore.Level) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		level,
	)

	return zap.New(core), nil
}
