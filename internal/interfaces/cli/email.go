package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gopesh111/TrueClause/internal/domain/contract"
	"github.com/Gopesh111/TrueClause/pkg/errors"
)

// savedAnalysis accepts either a bare analysis or the JSON output of
// `trueclause audit -o json`.
type savedAnalysis struct {
	contract.ContractAnalysis
	DocumentType string                     `json:"document_type"`
	Analysis     *contract.ContractAnalysis `json:"analysis"`
}

func newEmailCmd() *cobra.Command {
	var (
		file    string
		docType string
	)

	cmd := &cobra.Command{
		Use:     "email",
		Short:   "Draft a negotiation email from a saved analysis",
		Example: "  trueclause audit -f offer.txt -o json > result.json\n  trueclause email -f result.json",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			raw, err := readInput(cmd, file)
			if err != nil {
				return err
			}
			analysis, savedType, err := decodeAnalysis(raw)
			if err != nil {
				return err
			}
			if docType == "" {
				docType = savedType
			}

			ctx, cancel := withTimeout(cmd, cliCtx)
			defer cancel()

			a, err := cliCtx.App(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			body, err := a.Service.DraftEmail(ctx, docType, analysis)
			if err != nil {
				return err
			}
			if cliCtx.OutputFormat == OutputJSON {
				return printJSON(cmd, map[string]string{"email": body})
			}
			fmt.Fprintln(cmd.OutOrStdout(), body)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "analysis JSON file, - for stdin [REQUIRED]")
	cmd.Flags().StringVarP(&docType, "type", "t", "", "document type (default: the saved result's type)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func decodeAnalysis(raw string) (*contract.ContractAnalysis, string, error) {
	var s savedAnalysis
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, "", errors.Wrap(err, errors.CodeInvalidParam, "analysis file is not valid JSON")
	}
	if s.Analysis != nil {
		return s.Analysis, s.DocumentType, nil
	}
	a := s.ContractAnalysis
	return &a, s.DocumentType, nil
}

//Personal.AI order the ending
