package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/scalarguard/internal/document"
	"github.com/aretw0/scalarguard/internal/presentation/tui"
	"github.com/aretw0/scalarguard/pkg/scalar"
	"github.com/spf13/cobra"
)

// errChecksFailed signals a non-zero exit after the report has been printed.
var errChecksFailed = errors.New("one or more documents failed validation")

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Validate check documents",
	Long: `Reads YAML or JSON documents with 'types', 'values' and optional 'options'
and reports every key whose value does not match its declared type.
Flags override the options found in each document.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd, args, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	addCheckFlags(checkCmd)
}

func addCheckFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("allow-null", true, "Let absent or null values pass any declared type")
	cmd.Flags().Bool("report-only", false, "Log failures as warnings instead of failing fast")
	cmd.Flags().Bool("soft-numeric", false, "Accept values loosely equal to their int/float coercion")
	cmd.Flags().String("format", "text", "Output format (text, markdown)")
}

func runCheck(cmd *cobra.Command, args []string, out io.Writer) error {
	logger, err := loggerFromFlags(cmd)
	if err != nil {
		return err
	}
	extra, err := overridesFromFlags(cmd)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	var render func(string) (string, error)
	switch format {
	case "text":
	case "markdown":
		if render, err = tui.NewRenderer(""); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	v := scalar.New(scalar.WithLogger(logger))
	report := tui.NewReport(out)
	failed := false

	for _, path := range args {
		doc, err := document.Load(path)
		if err != nil {
			return err
		}

		res, err := doc.Inspect(v, extra)
		if err != nil || !res.OK() {
			failed = true
		}

		if render == nil {
			report.Document(path, res, err)
			continue
		}
		md, rerr := render(tui.Markdown(path, res, err))
		if rerr != nil {
			return rerr
		}
		fmt.Fprint(out, md)
	}

	if failed {
		return errChecksFailed
	}
	return nil
}

// overridesFromFlags returns only the flags the user actually set.
func overridesFromFlags(cmd *cobra.Command) (*scalar.Overrides, error) {
	o := &scalar.Overrides{}
	for name, dst := range map[string]**bool{
		"allow-null":   &o.AllowNull,
		"report-only":  &o.ReportOnly,
		"soft-numeric": &o.SoftNumeric,
	} {
		if !cmd.Flags().Changed(name) {
			continue
		}
		b, err := cmd.Flags().GetBool(name)
		if err != nil {
			return nil, err
		}
		*dst = scalar.Flag(b)
	}
	return o, nil
}
