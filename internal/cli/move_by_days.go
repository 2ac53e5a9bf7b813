package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"photodater/internal/app"
	"photodater/internal/config"
	"photodater/internal/domain"
	exifinfra "photodater/internal/infra/exif"
	fsinfra "photodater/internal/infra/fs"
	"photodater/internal/tui"
)

var (
	moveDryRun      bool
	moveInteractive bool
)

var moveByDaysCmd = &cobra.Command{
	Use:   "move-by-days",
	Short: "Move files into YYYY-MM-DD subdirectories by creation date",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if moveInteractive {
			return runMoveInteractive(cmd)
		}

		dir, set, err := scanDirectory(cmd.Context())
		if err != nil {
			return reportNoDates(err)
		}

		planner := app.Planner{Logger: newLogger()}
		plan, err := planner.PlanMoveByDays(dir, set)
		if err != nil {
			return reportNoDates(err)
		}

		printer := newPrinter()
		printer.PrintMovePlan(plan, moveDryRun)
		if moveDryRun || len(plan.Steps) == 0 {
			return nil
		}

		executor := app.Executor{FS: fsinfra.OSFS{}}
		execErr := executor.ExecuteMove(cmd.Context(), &plan)
		printer.PrintMoveOutcome(plan)
		return execErr
	},
}

func runMoveInteractive(cmd *cobra.Command) error {
	ctx := cmd.Context()
	filesystem := fsinfra.OSFS{}

	var program *tea.Program

	executeMove := func(plan domain.MovePlan) tea.Cmd {
		return func() tea.Msg {
			executor := app.Executor{
				FS: filesystem,
				OnProgress: func(current, total int) {
					file := ""
					if current-1 < len(plan.Steps) {
						file = plan.Steps[current-1].Entry.Name
					}
					program.Send(tui.MoveProgressMsg{Current: current, Total: total, File: file})
				},
			}
			if err := executor.ExecuteMove(ctx, &plan); err != nil {
				return tui.ErrorMsg{Err: err}
			}
			return tui.MoveDoneMsg{Moved: len(plan.Steps)}
		}
	}

	model := tui.NewModel(tui.Config{
		Directory:   directory,
		DryRun:      moveDryRun,
		ExecuteMove: executeMove,
	})
	program = tea.NewProgram(model)

	go func() {
		scanner := app.Scanner{
			FS:         filesystem,
			Exif:       exifinfra.Reader{},
			Logger:     newLogger(),
			Extensions: domain.NewExtensionSet(config.ScanExtensions()),
			OnProgress: func(current, total int) {
				program.Send(tui.ScanProgressMsg{Current: current, Total: total})
			},
		}
		dir, set, err := scanWith(ctx, &scanner)
		if err != nil {
			program.Send(tui.ErrorMsg{Err: err})
			return
		}
		planner := app.Planner{Logger: newLogger()}
		plan, err := planner.PlanMoveByDays(dir, set)
		if err != nil {
			program.Send(tui.ErrorMsg{Err: err})
			return
		}
		program.Send(tui.PlanReadyMsg{Plan: plan})
	}()

	final, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(tui.Model); ok && m.Err != nil {
		return m.Err
	}
	return nil
}

func init() {
	moveByDaysCmd.Flags().BoolVar(&moveDryRun, "dry-run", false, "print the plan without moving")
	moveByDaysCmd.Flags().BoolVarP(&moveInteractive, "interactive", "i", false, "confirm and watch the moves in a TUI")
	rootCmd.AddCommand(moveByDaysCmd)
}
