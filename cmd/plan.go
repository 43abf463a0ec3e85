package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kilianp07/productionplan/core/dispatch"
	"github.com/kilianp07/productionplan/core/model"
	"github.com/kilianp07/productionplan/infra/logger"
	"github.com/kilianp07/productionplan/pkg/export"
)

var (
	planFormat     string
	planChart      string
	planCorrection string
)

var planCmd = &cobra.Command{
	Use:   "plan <payload.json>",
	Short: "Compute the production plan of a payload file",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&planFormat, "format", "f", "json", "output format: json or csv")
	planCmd.Flags().StringVar(&planChart, "chart", "", "write an HTML bar chart of the plan to this file")
	planCmd.Flags().StringVar(&planCorrection, "correction", "", "minimum-output correction: headroom or legacy")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if planCorrection != "" {
		cfg.Dispatch.Correction = planCorrection
	}
	if planFormat != "json" && planFormat != "csv" {
		return fmt.Errorf("unknown format %q", planFormat)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	var payload model.Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("decode %s: %w", args[0], err)
	}

	mgr, err := dispatch.NewManager(cfg.Dispatch, logger.NopLogger{}, nil, nil, nil)
	if err != nil {
		return err
	}
	plan, entries, err := mgr.Plan(cmd.Context(), payload)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if planFormat == "csv" {
		err = export.WriteCSV(out, entries)
	} else {
		err = export.WriteJSON(out, entries)
	}
	if err != nil {
		return err
	}
	if plan.Excess > 0 || plan.Unserved > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: excess %.1f MW, unserved %.1f MW\n", plan.Excess, plan.Unserved)
	}

	if planChart == "" {
		return nil
	}
	f, err := os.Create(planChart)
	if err != nil {
		return err
	}
	if err := export.WriteChartHTML(f, plan); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
