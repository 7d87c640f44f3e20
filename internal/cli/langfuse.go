package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blaisecz/nutrition-coach/internal/config"
	"github.com/blaisecz/nutrition-coach/internal/langfuse"
	"github.com/spf13/cobra"
)

var errLangfuseDisabled = errors.New("langfuse client is disabled; set LANGFUSE_BASE_URL, LANGFUSE_PUBLIC_KEY and LANGFUSE_SECRET_KEY")

var langfuseCheckCmd = &cobra.Command{
	Use:   "langfuse-check",
	Short: "Send a test trace to Langfuse",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		lfCfg := langfuse.Config{
			BaseURL:     cfg.LangfuseBaseURL,
			PublicKey:   cfg.LangfusePublicKey,
			SecretKey:   cfg.LangfuseSecretKey,
			Environment: cfg.LangfuseEnv,
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Base URL:    %s\n", lfCfg.BaseURL)
		fmt.Fprintf(out, "Public Key:  %s\n", maskKey(lfCfg.PublicKey))
		fmt.Fprintf(out, "Secret Key:  %s\n", maskKey(lfCfg.SecretKey))
		fmt.Fprintf(out, "Environment: %s\n", lfCfg.Environment)

		client := langfuse.NewClient(lfCfg)
		if !client.IsEnabled() {
			return errLangfuseDisabled
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		traceID, err := client.CreateTrace(ctx, langfuse.TraceInput{
			UserID: "coachctl",
			Name:   "coachctl-check",
			Input: map[string]any{
				"message": "connectivity check",
				"time":    time.Now().Format(time.RFC3339),
			},
			Output: map[string]any{"status": "success"},
			Tags:   []string{"test", "manual"},
		})
		if err != nil {
			return fmt.Errorf("create trace: %w", err)
		}

		fmt.Fprintf(out, "Trace created: %s\n", traceID)
		fmt.Fprintf(out, "View at: %s/trace/%s\n", lfCfg.BaseURL, traceID)
		return nil
	},
}

func maskKey(key string) string {
	switch {
	case key == "":
		return "(empty)"
	case len(key) < 8:
		return "***"
	default:
		return key[:8] + "..."
	}
}

func init() {
	rootCmd.AddCommand(langfuseCheckCmd)
}
