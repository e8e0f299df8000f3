package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"cogmetrics/adapters/excel"
	"cogmetrics/adapters/markdown"
	"cogmetrics/app"
	"cogmetrics/domain/intake"
	"cogmetrics/domain/report"
	"cogmetrics/internal/testkit"

	"github.com/spf13/cobra"
)

// Offline report tool: generates reports from a raw JSON capture or from a
// synthetic profile, with no database required.
func main() {
	rootCmd := &cobra.Command{
		Use:   "cogmetrics-cli",
		Short: "Generate cognitive assessment reports offline",
	}

	rootCmd.AddCommand(
		newGenerateCmd(),
		newDemoCmd(),
		newExportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newGenerateCmd() *cobra.Command {
	var audience string
	var seed int64
	var seedSet bool
	var format string

	cmd := &cobra.Command{
		Use:   "generate [input.json]",
		Short: "Generate a report from a raw capture file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var raw intake.RawAssessmentInput
			if err := json.Unmarshal(data, &raw); err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}
			seedSet = cmd.Flags().Changed("seed")
			return runPipeline(cmd, &raw, audience, seed, seedSet, format)
		},
	}

	cmd.Flags().StringVar(&audience, "audience", "patient", "patient or clinician")
	cmd.Flags().Int64Var(&seed, "seed", 0, "deterministic phrasing seed")
	cmd.Flags().StringVar(&format, "format", "markdown", "markdown, html, or json")
	return cmd
}

func newDemoCmd() *cobra.Command {
	var profile string
	var audience string
	var seed int64
	var format string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Generate a report from a synthetic profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg testkit.GeneratorConfig
			switch profile {
			case "typical":
				cfg = testkit.TypicalConfig()
			case "inattentive":
				cfg = testkit.InattentiveConfig()
			case "compensated":
				cfg = testkit.CompensatedConfig()
			default:
				return fmt.Errorf("unknown profile %q (typical, inattentive, compensated)", profile)
			}
			raw := testkit.NewGenerator(cfg).Generate("demo-session", "demo-subject")
			seedSet := cmd.Flags().Changed("seed")
			return runPipeline(cmd, raw, audience, seed, seedSet, format)
		},
	}

	cmd.Flags().StringVar(&profile, "profile", "typical", "synthetic profile to generate")
	cmd.Flags().StringVar(&audience, "audience", "patient", "patient or clinician")
	cmd.Flags().Int64Var(&seed, "seed", 0, "deterministic phrasing seed")
	cmd.Flags().StringVar(&format, "format", "markdown", "markdown, html, or json")
	return cmd
}

func newExportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export [input.json...]",
		Short: "Export metric snapshots from raw capture files to a spreadsheet",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := app.NewReportService(app.ReportServiceConfig{})

			var reports []*report.Report
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				var raw intake.RawAssessmentInput
				if err := json.Unmarshal(data, &raw); err != nil {
					return fmt.Errorf("parse %s: %w", path, err)
				}
				rep, err := service.Generate(context.Background(), app.GenerateRequest{
					Raw:      &raw,
					Audience: report.AudienceClinician,
				})
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				reports = append(reports, rep)
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := excel.NewExporter().ExportWorkbook(context.Background(), reports, f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d snapshots to %s\n", len(reports), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "snapshots.xlsx", "output spreadsheet path")
	return cmd
}

func runPipeline(cmd *cobra.Command, raw *intake.RawAssessmentInput, audienceStr string, seed int64, seedSet bool, format string) error {
	audience, err := report.ParseAudience(audienceStr)
	if err != nil {
		return err
	}

	var seedPtr *int64
	if seedSet {
		seedPtr = &seed
	}

	service := app.NewReportService(app.ReportServiceConfig{})
	rep, err := service.Generate(context.Background(), app.GenerateRequest{
		Raw:      raw,
		Audience: audience,
		Seed:     seedPtr,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch strings.ToLower(format) {
	case "markdown":
		return markdown.NewRenderer().RenderMarkdown(context.Background(), rep, out)
	case "html":
		return markdown.NewRenderer().RenderHTML(context.Background(), rep, out)
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	default:
		return fmt.Errorf("unknown format %q (markdown, html, json)", format)
	}
}
