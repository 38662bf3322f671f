package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Gopesh111/TrueClause/internal/application/audit"
	"github.com/Gopesh111/TrueClause/internal/domain/contract"
	"github.com/Gopesh111/TrueClause/pkg/errors"
)

func newAuditCmd() *cobra.Command {
	var (
		file     string
		docType  string
		language string
		email    bool
		export   bool
		outFile  string
	)

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Audit a contract against its baseline",
		Long: "Read contract text from a file (or stdin with --file -), compare it to the\n" +
			"baseline for its document type and print the deviation report.",
		Example: "  trueclause audit --file offer.txt --type employment --language Hinglish --email",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			text, err := readInput(cmd, file)
			if err != nil {
				return err
			}

			ctx, cancel := withTimeout(cmd, cliCtx)
			defer cancel()

			a, err := cliCtx.App(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := a.Service.Audit(ctx, audit.Request{
				DocumentType: docType,
				Language:     language,
				ContractText: text,
				DraftEmail:   email,
				Export:       export,
			})
			if err != nil {
				return err
			}
			if outFile != "" {
				if err := writeOutput(res.Report, outFile); err != nil {
					return fmt.Errorf("failed to write report: %w", err)
				}
			}
			if err := printResult(cmd, cliCtx.OutputFormat, res); err != nil {
				return err
			}
			warnHighRisk(cmd, res)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "contract text file, - for stdin [REQUIRED]")
	cmd.Flags().StringVarP(&docType, "type", "t", "", "document type key or label (default from config)")
	cmd.Flags().StringVarP(&language, "language", "l", "", "explanation language: English, Hindi, Hinglish")
	cmd.Flags().BoolVar(&email, "email", false, "also draft a negotiation email")
	cmd.Flags().BoolVar(&export, "export", false, "upload the report to object storage")
	cmd.Flags().StringVar(&outFile, "report-file", "", "also write the text report to this path")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// readInput reads path, or stdin for "-".
func readInput(cmd *cobra.Command, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", errors.Wrap(err, errors.CodeDocumentUnreadable, "contract could not be read").WithDetail(path)
	}
	return string(data), nil
}

func writeOutput(content, path string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

// printResult renders an audit or demo result in the selected format.
func printResult(cmd *cobra.Command, format string, res *audit.Result) error {
	out := cmd.OutOrStdout()
	switch format {
	case OutputJSON:
		return printJSON(cmd, res)
	case OutputTable:
		fmt.Fprint(out, FormatTable(
			[]string{"#", "LEVEL", "CATEGORY", "CLAUSE", "SUGGESTION"},
			riskRows(res.Analysis),
		))
		if res.Assessment.Scored {
			fmt.Fprintf(out, "\nScore: %d/100  %s\n", res.Assessment.Score, res.Assessment.VerdictLabel)
		} else {
			fmt.Fprintf(out, "\n%s\n", res.Assessment.Message)
		}
	default:
		fmt.Fprintln(out, res.Report)
		if res.Email != "" {
			fmt.Fprintf(out, "\n---\n\n%s\n", res.Email)
		}
	}
	if res.ReportURL != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Report uploaded: %s\n", res.ReportURL)
	}
	for _, msg := range []string{res.EmailError, res.ExportError} {
		if msg != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Note: %s\n", msg)
		}
	}
	return nil
}

func riskRows(a *contract.ContractAnalysis) [][]string {
	if a == nil {
		return nil
	}
	rows := make([][]string, 0, len(a.Risks))
	for i, r := range a.Risks {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strings.ToUpper(string(r.RiskLevel)),
			strings.ToUpper(string(r.Category)),
			truncate(r.ClauseText, 48),
			truncate(r.Suggestion, 48),
		})
	}
	return rows
}

// warnHighRisk flags high-risk findings on stderr.
func warnHighRisk(cmd *cobra.Command, res *audit.Result) {
	if res.Analysis == nil {
		return
	}
	high := 0
	for _, r := range res.Analysis.Risks {
		if r.RiskLevel.IsHigh() {
			high++
		}
	}
	if high > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "WARNING: %d high-risk clause(s) found\n", high)
	}
	if res.Degraded {
		fmt.Fprintf(cmd.ErrOrStderr(), "Note: answered by the secondary provider (%s)\n", res.Provider)
	}
}

//Personal.AI order the ending
