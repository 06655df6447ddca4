package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jssohel603-bot/football-game/internal/gameserver"
)

// NewServeCommand creates the websocket game server command
func NewServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Host one match per websocket connection",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup("gameserver")
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Address = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return gameserver.Run(ctx, cfg, log)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Override server.address")

	return cmd
}
