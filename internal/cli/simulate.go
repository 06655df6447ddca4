package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jssohel603-bot/football-game/internal/gameserver"
	"github.com/jssohel603-bot/football-game/internal/input"
	"github.com/jssohel603-bot/football-game/internal/shared/types"
	"github.com/jssohel603-bot/football-game/internal/simulation"
)

// NewSimulateCommand creates the headless simulation command
func NewSimulateCommand() *cobra.Command {
	var (
		ticks  int
		seed   int64
		events bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run an AI-only match without a window and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup("simulate")
			if err != nil {
				return err
			}
			if ticks <= 0 {
				return fmt.Errorf("--ticks must be positive, got %d", ticks)
			}

			opts := gameserver.MatchOptions(cfg.Match)
			opts.Autopilot = true
			if cmd.Flags().Changed("seed") {
				opts.Seed = seed
			}
			m, err := simulation.NewMatch(opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for range ticks {
				for _, ev := range m.Step(input.Frame{}) {
					if ev.Type == types.EventGoal {
						log.Debug("goal", "team", ev.Team, "tick", ev.Tick)
					}
					if events && ev.Type != types.EventKickoff {
						fmt.Fprintf(out, "%6d %-7s %s %s\n", ev.Tick, ev.Type, ev.Team, ev.PlayerID)
					}
					if events && ev.Type == types.EventKickoff {
						fmt.Fprintf(out, "%6d %-7s %s\n", ev.Tick, ev.Type, ev.Reason)
					}
				}
			}

			fmt.Fprintf(out, "%s after %d ticks\n", m.ScoreLine(), m.Tick())
			return nil
		},
	}

	cmd.Flags().IntVar(&ticks, "ticks", 3600, "Number of ticks to simulate (60 per second of play)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed, overrides match.seed")
	cmd.Flags().BoolVar(&events, "events", false, "Print every gameplay event")

	return cmd
}
