package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/okian/caltrack/internal/domain/calorie"
	"github.com/okian/caltrack/internal/domain/types"
	"github.com/okian/caltrack/pkg/logger"
)

const maxResponseBody = 1 << 20

// remoteError is the error body returned by the API.
type remoteError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

func newRemoteCommand(a *app) *cobra.Command {
	var (
		baseURL string
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Compute the balance on a running caltrack server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client := a.client
			if client == nil {
				client = &http.Client{Timeout: timeout}
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return a.runRemote(ctx, client, baseURL, a.input(cmd))
		},
	}
	cmd.Flags().StringVar(&baseURL, flagURL, defaultBaseURL, "base URL of the caltrack server")
	cmd.Flags().DurationVar(&timeout, flagTimeout, defaultTimeout, "HTTP request timeout")
	return cmd
}

func (a *app) runRemote(ctx context.Context, client *http.Client, baseURL string, in calorie.Input) error {
	url := strings.TrimRight(baseURL, "/") + "/api/calculate"

	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("%w: marshal request: %w", ErrRemote, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: create request: %w", ErrRemote, err)
	}
	req.Header.Set("Content-Type", "application/json")

	a.log.Debug(ctx, "posting calculation", logger.String("url", url))
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRemote, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return fmt.Errorf("%w: read response: %w", ErrRemote, err)
	}
	a.log.Debug(ctx, "server answered",
		logger.Int("status", resp.StatusCode),
		logger.String("request_id", resp.Header.Get("X-Request-ID")),
	)

	switch resp.StatusCode {
	case http.StatusOK:
		var calc types.Calculation
		if err := json.Unmarshal(data, &calc); err != nil {
			return fmt.Errorf("%w: decode response: %w", ErrRemote, err)
		}
		return a.printResult(calc.Result)
	case http.StatusBadRequest:
		var re remoteError
		if err := json.Unmarshal(data, &re); err != nil {
			return fmt.Errorf("%w: status %d", ErrRemote, resp.StatusCode)
		}
		if len(re.Fields) > 0 {
			a.printFieldErrors(re.Fields)
		}
		return fmt.Errorf("%w: %s", ErrRejected, re.Message)
	default:
		return fmt.Errorf("%w: status %d", ErrRemote, resp.StatusCode)
	}
}
