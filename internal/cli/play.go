package cli

import (
	"github.com/spf13/cobra"

	"github.com/jssohel603-bot/football-game/internal/desktop"
	"github.com/jssohel603-bot/football-game/internal/gameserver"
	"github.com/jssohel603-bot/football-game/internal/simulation"
)

// NewPlayCommand creates the desktop play command
func NewPlayCommand() *cobra.Command {
	var autopilot bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a match in a desktop window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup("desktop")
			if err != nil {
				return err
			}

			opts := gameserver.MatchOptions(cfg.Match)
			opts.Autopilot = opts.Autopilot || autopilot
			m, err := simulation.NewMatch(opts)
			if err != nil {
				return err
			}

			log.Info("kickoff", "score", m.ScoreLine(), "human_team", cfg.Match.HumanTeam)
			return desktop.Run(desktop.NewGame(m, log), "Football")
		},
	}

	cmd.Flags().BoolVar(&autopilot, "autopilot", false, "Let the AI drive the controlled player too")

	return cmd
}
