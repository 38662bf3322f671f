package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Gopesh111/TrueClause/internal/infrastructure/monitoring/logging"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			if port > 0 {
				cliCtx.Config.Server.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := cliCtx.App(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			a.Warm()
			if err := a.WatchLogLevel(cliCtx.ConfigPath); err != nil {
				a.Logger.Warn("config watch disabled", logging.Err(err))
			}
			return a.Run(ctx)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides config)")
	return cmd
}

//Personal.AI order the ending
