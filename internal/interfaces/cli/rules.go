package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gopesh111/TrueClause/internal/domain/contract"
	"github.com/Gopesh111/TrueClause/internal/domain/rulebook"
)

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules [type]",
		Short: "List document types or show one baseline rulebook",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			catalog, err := rulebook.NewCatalog()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				rs, err := catalog.Resolve(args[0])
				if err != nil {
					return err
				}
				if cliCtx.OutputFormat == OutputJSON {
					return printJSON(cmd, map[string]string{"key": string(rs.Type), "label": rs.Label, "rules": rs.Rules})
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n\n%s\n", rs.Label, rs.Type, rs.Rules)
				return nil
			}

			all := catalog.All()
			switch cliCtx.OutputFormat {
			case OutputJSON:
				type entry struct {
					Key   contract.DocumentType `json:"key"`
					Label string                `json:"label"`
				}
				out := struct {
					DocumentTypes []entry              `json:"document_types"`
					Languages     []contract.Language `json:"languages"`
				}{Languages: contract.Languages()}
				for _, rs := range all {
					out.DocumentTypes = append(out.DocumentTypes, entry{Key: rs.Type, Label: rs.Label})
				}
				return printJSON(cmd, out)
			default:
				rows := make([][]string, 0, len(all))
				for _, rs := range all {
					rows = append(rows, []string{string(rs.Type), rs.Label})
				}
				fmt.Fprint(cmd.OutOrStdout(), FormatTable([]string{"KEY", "LABEL"}, rows))
				return nil
			}
		},
	}
}

//Personal.AI order the ending
