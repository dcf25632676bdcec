package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"arena-portal-backend/config"
	"arena-portal-backend/internal/domain"
	"arena-portal-backend/internal/infrastructure/cache"
	"arena-portal-backend/internal/progress"
	"arena-portal-backend/internal/repository"
	"arena-portal-backend/internal/tui"
	"arena-portal-backend/internal/usecase"
)

// resolve --status "Processando" --stage "Costura"
func newResolveCmd() *cobra.Command {
	var status, stage string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a status/stage pair into the stepper",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := progress.Resolve(domain.OrderStatus(strings.TrimSpace(status)), domain.OrderStage(strings.TrimSpace(stage)))
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), p)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderProgress(p))
			return nil
		},
	}
	cmd.Flags().StringVarP(&status, "status", "s", "", "Order status as sent by the ERP")
	cmd.Flags().StringVar(&stage, "stage", "", "Order stage, empty when not in production")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of the stepper")
	return cmd
}

// track <order_id>
func newTrackCmd() *cobra.Command {
	var asJSON bool
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "track <order_id>",
		Short: "Fetch an order from the configured source and show its progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			orders, closeOrders, err := repository.NewOrderRepository(ctx, cfg)
			if err != nil {
				return fmt.Errorf("failed to open order source: %w", err)
			}
			defer closeOrders()

			uc := usecase.NewTrackingUsecase(orders, cache.NewMemoryCache(time.Minute, time.Minute), nil, time.Minute, timeout)
			operator := &domain.User{ID: "cli", Role: domain.RoleAdmin}

			result, err := uc.GetOrderProgress(ctx, operator, args[0])
			if err != nil {
				return fmt.Errorf("order %s: %w", args[0], err)
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderOrder(*result))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of the stepper")
	cmd.Flags().DurationVar(&timeout, "timeout", 15*time.Second, "Overall request timeout")
	return cmd
}

// statuses
func newStatusesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "statuses",
		Short: "List known statuses and stages with the step they map to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printStatuses(cmd.OutOrStdout())
		},
	}
}

func printStatuses(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tVALUE\tSTEP")

	for _, s := range domain.OrderStatuses {
		step := "-"
		if id, ok := progress.StepOf(s); ok {
			step = progress.StepLabel(id)
		}
		fmt.Fprintf(w, "status\t%s\t%s\n", s, step)
	}
	for _, stage := range domain.OrderStages {
		idx := progress.ResolveStepIndex("", stage)
		fmt.Fprintf(w, "stage\t%s\t%s\n", stage, progress.StepLabel(domain.StepIDs[idx]))
	}
	return w.Flush()
}

func writeJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
