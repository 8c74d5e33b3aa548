package calendar

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/username/biz-days/pkg/dateutil"
	"go.uber.org/zap"
)

// FileCalendar implements Calendar using a local text file
type FileCalendar struct {
	filePath string
	logger   *zap.Logger
	holidays []Holiday
	loaded   bool
}

// NewFileCalendar creates a new FileCalendar instance
func NewFileCalendar(filePath string, logger *zap.Logger) *FileCalendar {
	return &FileCalendar{
		filePath: filePath,
		logger:   logger,
	}
}

// Load loads holidays from file
func (fc *FileCalendar) Load() error {
	file, err := os.Open(fc.filePath)
	if err != nil {
		return fmt.Errorf("failed to open holiday file: %w", err)
	}
	defer file.Close()

	holidays := []Holiday{}
	scanner := bufio.NewScanner(file)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Format: YYYY-MM-DD [note]
		// Example: 2017-01-02 New Year's Day (observed)
		parts := strings.SplitN(line, " ", 2)
		date, err := dateutil.ParseDate(parts[0])
		if err != nil {
			fc.logger.Warn("Failed to parse date",
				zap.String("file", fc.filePath),
				zap.Int("line", lineNo),
				zap.String("date", parts[0]),
				zap.Error(err))
			continue
		}

		note := ""
		if len(parts) == 2 {
			note = strings.TrimSpace(parts[1])
		}
		holidays = append(holidays, Holiday{Date: date, Note: note})
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading holiday file: %w", err)
	}

	fc.holidays = holidays
	fc.loaded = true

	fc.logger.Info("Holiday file loaded",
		zap.String("file", fc.filePath),
		zap.Int("holidays", len(holidays)))

	return nil
}

// Holidays returns the holidays in the file, loading it on first use
func (fc *FileCalendar) Holidays() ([]Holiday, error) {
	if !fc.loaded {
		if err := fc.Load(); err != nil {
			return nil, err
		}
	}
	return fc.holidays, nil
}
