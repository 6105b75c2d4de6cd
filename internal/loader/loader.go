package loader

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"os-scheduler/internal/core"
	"os-scheduler/internal/util"
)

var (
	ErrOpenFile      = errors.New("can not open data file")
	ErrNoValidLines  = errors.New("data file contains no valid process lines")
	ErrMalformedLine = errors.New("malformed process line")
)

// LoadProcesses reads a workload file into the core input list. Three line
// formats are accepted, mixed freely within one file:
//
//	A (2, 1)
//	B,6,6
//	C 5 3
//
// Blank lines and lines starting with '#' are skipped. Malformed lines are
// logged and skipped; a file yielding no valid lines is an error, as is any
// process failing the simulation preconditions.
func LoadProcesses(path string, logger *zap.SugaredLogger) ([]core.Process, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenFile, err)
	}
	defer file.Close()

	processes := make([]core.Process, 0)
	scanner := bufio.NewScanner(file)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		process, err := ParseLine(line)
		if err != nil {
			logger.Warnw("skipping malformed line", "file", path, "line", lineNumber, "text", line)
			continue
		}
		processes = append(processes, process)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if len(processes) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoValidLines, path)
	}
	if err := util.ValidateProcesses(processes); err != nil {
		return nil, err
	}

	logger.Infow("loaded processes", "file", path, "count", len(processes))
	return processes, nil
}

// ParseLine parses one non-comment line in any of the three accepted formats.
func ParseLine(line string) (core.Process, error) {
	var parts []string
	switch {
	case strings.Contains(line, "("):
		// format: A (2, 1)
		cleaned := strings.NewReplacer("(", " ", ")", " ", ",", " ").Replace(line)
		parts = strings.Fields(cleaned)
	case strings.Contains(line, ","):
		// format: A,2,1
		parts = strings.Split(line, ",")
	default:
		// format: A 2 1
		parts = strings.Fields(line)
	}

	if len(parts) != 3 {
		return core.Process{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}

	arrivalTime, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return core.Process{}, fmt.Errorf("%w: %q: %v", ErrMalformedLine, line, err)
	}
	burstTime, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return core.Process{}, fmt.Errorf("%w: %q: %v", ErrMalformedLine, line, err)
	}

	return core.Process{
		ProcessId:   strings.TrimSpace(parts[0]),
		ArrivalTime: arrivalTime,
		BurstTime:   burstTime,
	}, nil
}
