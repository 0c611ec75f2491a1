package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pladria/internal/config"
	"pladria/internal/domain"
	"pladria/internal/gateway"
	"pladria/internal/logging"
	"pladria/internal/usecase"
)

var auditFlags struct {
	gisPath    string
	suiviPath  string
	configPath string
	idColumn   string
	catColumn  string
	threshold  float64
	output     string
	logLevel   string
	logFormat  string
}

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Run one reconciliation audit and emit the JSON report",
	Long: "Loads the GIS export (source A) and the Suivi Commune file (source B),\n" +
		"reconciles them by identifier and writes the audit report as JSON.\n" +
		"A missing source file is not a command error: it shows up in the report\n" +
		"as a KO with the matching status reason.",
	RunE: runAudit,
}

func init() {
	auditCmd.Flags().StringVar(&auditFlags.gisPath, "gis", "", "Path to the GIS export CSV (source A)")
	auditCmd.Flags().StringVar(&auditFlags.suiviPath, "suivi", "", "Path to the Suivi Commune CSV (source B)")
	auditCmd.Flags().StringVar(&auditFlags.configPath, "config", "", "Path to the taxonomy/assessment config (YAML or JSON)")
	auditCmd.Flags().StringVar(&auditFlags.idColumn, "id-column", "IMB", "Identifier column name in both sources")
	auditCmd.Flags().StringVar(&auditFlags.catColumn, "category-column", "MOTIF", "Category (motif) column name in both sources")
	auditCmd.Flags().Float64Var(&auditFlags.threshold, "threshold", 0, "Conformity threshold percentage (overrides config)")
	auditCmd.Flags().StringVarP(&auditFlags.output, "output", "o", "", "Write the JSON report to this file (default stdout)")
	auditCmd.Flags().StringVar(&auditFlags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	auditCmd.Flags().StringVar(&auditFlags.logFormat, "log-format", "text", "Log format (text or json)")
	_ = auditCmd.MarkFlagRequired("gis")
	_ = auditCmd.MarkFlagRequired("suivi")
}

func runAudit(cmd *cobra.Command, args []string) error {
	logging.Setup(auditFlags.logLevel, auditFlags.logFormat, os.Stderr)

	var cfg *config.Config
	if auditFlags.configPath != "" {
		var err error
		cfg, err = config.LoadFromPath(auditFlags.configPath)
		if err != nil {
			return err
		}
	}
	tax, err := cfg.BuildTaxonomy()
	if err != nil {
		return err
	}
	assessCfg := cfg.AssessmentConfig()
	if auditFlags.threshold > 0 {
		assessCfg.ThresholdPct = auditFlags.threshold
	}

	mapping := domain.ColumnMapping{
		IdentifierColumn: auditFlags.idColumn,
		CategoryColumn:   auditFlags.catColumn,
	}

	repo := gateway.NewCSVRecordRepository()
	uc := usecase.NewAuditUseCase(repo, tax, assessCfg)

	report, err := uc.RunAudit(cmd.Context(), auditFlags.gisPath, auditFlags.suiviPath, mapping, mapping)
	if err != nil {
		return fmt.Errorf("audit failed: %w", err)
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if auditFlags.output != "" {
		if err := os.WriteFile(auditFlags.output, append(out, '\n'), 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
