package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Narturebelle/Narturebelle/internal/config"
)

var configOutput string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display the effective configuration",
	Long: `Load configuration the same way serve does and print it.

Output formats: table (default), json, yaml.`,
	RunE: runConfig,
}

type setting struct {
	Key   string
	Value string
}

// settings flattens cfg into environment variable names and values, in
// display order.
func settings(cfg *config.Config) []setting {
	d := func(v fmt.Stringer) string { return v.String() }
	return []setting{
		{"SERVER_ADDRESS", cfg.ServerAddress},
		{"SERVER_PORT", strconv.Itoa(cfg.ServerPort)},
		{"ENVIRONMENT", cfg.Environment},
		{"LOG_LEVEL", cfg.LogLevel},
		{"SUBMIT_DELAY", d(cfg.Landing.SubmitDelay)},
		{"RESET_DELAY", d(cfg.Landing.ResetDelay)},
		{"CONTACT_ADDRESS", cfg.Landing.ContactAddress},
		{"CONTACT_RATE_PER_MINUTE", strconv.Itoa(cfg.Landing.ContactRatePerMinute)},
		{"CONTACT_RATE_BURST", strconv.Itoa(cfg.Landing.ContactRateBurst)},
		{"LOGO_IMAGE_URL", cfg.Landing.LogoImageURL},
		{"HERO_IMAGE_URL", cfg.Landing.HeroImageURL},
		{"SESSION_COOKIE_NAME", cfg.Session.CookieName},
		{"SESSION_TTL", d(cfg.Session.TTL)},
		{"SESSION_SWEEP_INTERVAL", d(cfg.Session.SweepInterval)},
		{"OTEL_EXPORTER_OTLP_ENDPOINT", cfg.Otel.ExporterEndpoint},
		{"OTEL_SERVICE_NAME", cfg.Otel.ServiceName},
	}
}

func runConfig(cmd *cobra.Command, args []string) error {
	if err := loadEnv(envFiles); err != nil {
		return fmt.Errorf("load env files: %w", err)
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	return printSettings(cmd.OutOrStdout(), configOutput, settings(cfg))
}

func printSettings(w io.Writer, format string, rows []setting) error {
	switch format {
	case "json", "yaml":
		m := make(map[string]string, len(rows))
		for _, s := range rows {
			m[s.Key] = s.Value
		}
		if format == "json" {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(m)
		}
		return yaml.NewEncoder(w).Encode(m)
	case "table", "":
		table := tablewriter.NewWriter(w)
		table.Header("Setting", "Value")
		for _, s := range rows {
			if err := table.Append(s.Key, s.Value); err != nil {
				return err
			}
		}
		return table.Render()
	default:
		return fmt.Errorf("unknown output format %q (want table, json or yaml)", format)
	}
}

func init() {
	configCmd.Flags().StringVarP(&configOutput, "output", "o", "table", "output format (table, json, yaml)")
	rootCmd.AddCommand(configCmd)
}
