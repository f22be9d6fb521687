package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fadi/mendly/internal/breathing"
	"github.com/fadi/mendly/internal/store"
)

var breatheCmd = &cobra.Command{
	Use:   "breathe",
	Short: "Guided breathing exercises",
}

var breatheListCmd = &cobra.Command{
	Use:   "list",
	Short: "List breathing programs",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}
		fmt.Printf("%-14s  %-24s  %-10s  %6s  %s\n", "ID", "Name", "Pattern", "Cycles", "Length")
		fmt.Println(strings.Repeat("─", 70))
		for _, p := range catalog.All() {
			fmt.Printf("%-14s  %-24s  %-10s  %6d  %dm%02ds\n",
				truncate(p.ID, 14), truncate(p.Name, 24), p.Pattern(), p.TotalCycles,
				p.TotalSeconds()/60, p.TotalSeconds()%60)
		}
		return nil
	},
}

var breatheRunCmd = &cobra.Command{
	Use:   "run <id>",
	Short: "Run a breathing program in the terminal, printing each phase",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}
		p, err := catalog.Lookup(args[0])
		if err != nil {
			return fmt.Errorf("%w (try: %s)", err, strings.Join(catalog.IDs(), ", "))
		}
		if cmd.Flags().Changed("cycles") {
			cycles, _ := cmd.Flags().GetInt("cycles")
			if p, err = withCycles(p, cycles); err != nil {
				return err
			}
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		runner, err := breathing.NewRunner(p, breathing.WithObserver(func(ev breathing.Event) {
			switch {
			case ev.Done:
				fmt.Println("Done. Well breathed.")
			case ev.PhaseChange:
				printPhase(p, ev)
			}
		}))
		if err != nil {
			return err
		}

		fmt.Printf("%s (%s, %d cycles). Ctrl+C to stop.\n\n", p.Name, p.Pattern(), p.TotalCycles)
		runner.Toggle()
		printPhase(p, breathing.Event{Phase: p.Phases[0], Cycle: 1})

		runErr := runner.Run(ctx)
		final := runner.State()
		if errors.Is(runErr, context.Canceled) {
			fmt.Println("\nStopped.")
			runErr = nil
		}

		noSave, _ := cmd.Flags().GetBool("no-save")
		if !noSave {
			recordRun(cmd, p, final)
		}
		return runErr
	},
}

// withCycles overrides the cycle count, rejecting counts that could not
// drive a timer.
func withCycles(p breathing.Program, cycles int) (breathing.Program, error) {
	out := p.WithCycles(cycles)
	if err := out.Validate(); err != nil {
		return breathing.Program{}, err
	}
	return out, nil
}

func printPhase(p breathing.Program, ev breathing.Event) {
	fmt.Printf("[%d/%d] %-10s %ds\n", ev.Cycle, p.TotalCycles, ev.Phase.Label, ev.Phase.Seconds)
}

// recordRun stores the session like the TUI does. Failures are logged only.
func recordRun(cmd *cobra.Command, p breathing.Program, s breathing.State) {
	secs := breathing.Elapsed(s, p)
	if secs == 0 {
		return
	}
	st, err := openStore(cmd)
	if err != nil {
		logger.Warn("session not saved", zap.Error(err))
		return
	}
	defer st.Close()

	_, err = st.BreathingRepo().AppendBreathing(context.Background(), store.BreathingEventData{
		SessionID:        uuid.NewString(),
		ProgramID:        p.ID,
		CyclesCompleted:  breathing.CyclesCompleted(s, p),
		TotalCycles:      p.TotalCycles,
		SecondsPracticed: secs,
		Completed:        breathing.Done(s),
	})
	if err != nil {
		logger.Warn("session not saved", zap.Error(err))
	}
}

func init() {
	breatheRunCmd.Flags().Int("cycles", 0, "Number of cycles, at least 1 (default: the program's own)")
	breatheRunCmd.Flags().Bool("no-save", false, "Do not record the session")

	breatheCmd.AddCommand(breatheListCmd)
	breatheCmd.AddCommand(breatheRunCmd)
}
