package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"os-scheduler/config"
	"os-scheduler/internal/core"
	"os-scheduler/internal/loader"
	"os-scheduler/internal/report"
	"os-scheduler/internal/schedulers"
	"os-scheduler/internal/util"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run all three algorithms over a workload file and print the tables",
	Long: `Load a process workload from a text file, simulate it under FIFO, LIFO and
round robin, and print one result table per algorithm.

Accepted line formats (mixed freely, '#' starts a comment):
  A (2, 1)
  B,6,6
  C 5 3`,
	RunE: runSimulation,
}

var (
	runFile    string
	runQuantum int
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runFile, "file", "f", "", "Workload file (prompts when omitted)")
	runCmd.Flags().IntVarP(&runQuantum, "quantum", "q", 0, "Round robin time quantum (config default when omitted)")
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg := config.GetSchedulerConfig()

	file := runFile
	if file == "" {
		file = promptForFile(cmd.InOrStdin(), cmd.OutOrStdout(), cfg.InputFile)
	}

	timeQuantum := runQuantum
	if timeQuantum == 0 {
		timeQuantum = cfg.RoundRobinTimeQuantum
	}
	if err := util.ValidateQuantum(timeQuantum); err != nil {
		return err
	}

	processes, err := loader.LoadProcesses(file, logger)
	if err != nil {
		return err
	}

	simulateAll(cmd.OutOrStdout(), processes, timeQuantum)
	return nil
}

// promptForFile asks for the workload filename, falling back to the
// configured default on an empty answer.
func promptForFile(in io.Reader, out io.Writer, defaultFile string) string {
	fmt.Fprintf(out, "Workload file [%s]: ", defaultFile)
	reader := bufio.NewReader(in)
	answer, _ := reader.ReadString('\n')
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return defaultFile
	}
	return answer
}

// simulateAll runs every algorithm on its own copy of the input and renders
// the tables.
func simulateAll(out io.Writer, processes []core.Process, timeQuantum int) {
	report.Render(out, fmt.Sprintf("ROUND ROBIN (quantum=%d)", timeQuantum),
		schedulers.ScheduleRoundRobin(processes, timeQuantum))
	report.Render(out, "FIFO", schedulers.ScheduleFirstInFirstOut(processes))
	report.Render(out, "LIFO", schedulers.ScheduleLastInFirstOut(processes))
}
