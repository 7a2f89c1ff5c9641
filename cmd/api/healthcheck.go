package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"pet-api/internal/platform/httpclient"

	"github.com/spf13/cobra"
)

var (
	healthURL     string
	healthTimeout time.Duration
)

var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Consulta GET /health; sale con error si el servicio no está sano",
	Long:  "Pensado para el HEALTHCHECK del contenedor: no lee config ni abre el store.",
	RunE:  runHealthcheck,
}

func init() {
	healthcheckCmd.Flags().StringVar(&healthURL, "url", "http://localhost:8080", "Base URL del servicio")
	healthcheckCmd.Flags().DurationVar(&healthTimeout, "timeout", httpclient.DefaultTimeout, "Timeout del request")
	rootCmd.AddCommand(healthcheckCmd)
}

func runHealthcheck(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return checkHealth(ctx, healthURL, healthTimeout, cmd.OutOrStdout())
}

type healthStatus struct {
	Status string `json:"status"`
}

func checkHealth(ctx context.Context, baseURL string, timeout time.Duration, out io.Writer) error {
	client, err := httpclient.New(baseURL, timeout)
	if err != nil {
		return err
	}

	var st healthStatus
	if err := client.GetJSON(ctx, "/health", &st); err != nil {
		return fmt.Errorf("unhealthy: %w", err)
	}
	if st.Status != "ok" {
		return fmt.Errorf("unhealthy: status %q", st.Status)
	}

	_, _ = fmt.Fprintln(out, st.Status)
	return nil
}
