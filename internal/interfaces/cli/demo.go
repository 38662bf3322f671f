package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gopesh111/TrueClause/internal/application/audit"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo [name]",
		Short: "Render a built-in sample audit without calling a provider",
		Long:  "Without a name, lists the demos. With a name, renders its canned analysis through scoring and the report.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				names := audit.DemoNames()
				if cliCtx.OutputFormat == OutputJSON {
					return printJSON(cmd, map[string][]string{"demos": names})
				}
				for _, n := range names {
					fmt.Fprintln(cmd.OutOrStdout(), n)
				}
				return nil
			}

			a, err := cliCtx.App(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := a.Service.Demo(args[0])
			if err != nil {
				return err
			}
			return printResult(cmd, cliCtx.OutputFormat, res)
		},
	}
}

//Personal.AI order the ending
