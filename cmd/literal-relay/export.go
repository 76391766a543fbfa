// Copyright 2025 BookRelay, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bookrelayhq/literal-relay/internal/config"
	"github.com/bookrelayhq/literal-relay/internal/credentials"
	relayerrors "github.com/bookrelayhq/literal-relay/internal/errors"
	"github.com/bookrelayhq/literal-relay/internal/export"
	"github.com/bookrelayhq/literal-relay/internal/literal"
	"github.com/bookrelayhq/literal-relay/internal/metadata"
	"github.com/bookrelayhq/literal-relay/pkg/version"
)

// exportOptions carries the flag values into the pipeline.
type exportOptions struct {
	email      string
	password   string
	format     string
	outfile    string
	configPath string
}

// newRootCommand builds the literal-relay root command. The tool has a
// single operation, so the export runs directly on the root command rather
// than behind a subcommand.
func newRootCommand() *cobra.Command {
	var opts exportOptions

	cmd := &cobra.Command{
		Use:   "literal-relay",
		Short: "Export your Literal book reviews to CSV or JSON",
		Long: `literal-relay logs in to your Literal.club account, downloads every
book review you have written, and serializes them to CSV or JSON, writing
to stdout or a file.

Credentials can be passed via flags, the LITERAL_EMAIL and LITERAL_PASSWORD
environment variables, or entered interactively. Password input never
echoes to the terminal.`,
		Version:       version.Version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.email, "email", "e", "", "Literal account email (prompted if absent)")
	cmd.Flags().StringVarP(&opts.password, "password", "p", "", "Literal account password (prompted with hidden input if absent)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Export format: csv or json (default csv)")
	cmd.Flags().StringVar(&opts.outfile, "outfile", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to a literal-relay config file")

	return cmd
}

// runExport executes the export pipeline: resolve configuration and
// credentials, authenticate, fetch every review page, and serialize.
func runExport(ctx context.Context, opts exportOptions) error {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Validate the format before collecting credentials or touching the
	// network, so a bad --format fails without prompting.
	formatValue := opts.format
	if formatValue == "" {
		formatValue = cfg.Defaults.Format
	}
	format, err := export.ParseFormat(formatValue)
	if err != nil {
		return err
	}

	resolver := credentials.NewResolver()
	creds, err := resolver.Resolve(opts.email, opts.password, cfg.Literal.EmailEnv, cfg.Literal.PasswordEnv)
	if err != nil {
		return err
	}

	client := literal.NewGraphQLClient(cfg.Literal.GraphQLEndpoint)

	return exportReviews(ctx, client, creds, format, opts.outfile, cfg.Defaults.PageSize)
}

// exportReviews drives the authenticated part of the pipeline. It is split
// from runExport so tests can substitute the client.
func exportReviews(ctx context.Context, client literal.Client, creds credentials.Credentials, format export.Format, outfile string, pageSize int) error {
	tracker := metadata.New()

	account, err := client.Login(ctx, creds.Email, creds.Password)
	if err != nil {
		return err
	}
	tracker.RecordAPICall()

	if account.Handle != "" {
		fmt.Fprintf(os.Stderr, "Authenticated as %s\n", account.Handle)
	}

	reviews, err := fetchAllReviews(ctx, client, pageSize, tracker)
	if err != nil {
		return err
	}

	records := export.FromReviews(reviews)
	if err := export.Write(records, format, outfile); err != nil {
		return err
	}

	reportSummary(tracker.Summarize(), format, outfile)
	return nil
}

// fetchAllReviews pages through the reviews query until a partial page
// signals the end, accumulating records in server order.
func fetchAllReviews(ctx context.Context, client literal.Client, pageSize int, tracker *metadata.Tracker) ([]literal.Review, error) {
	var reviews []literal.Review
	offset := 0

	for {
		page, err := client.FetchReviews(ctx, literal.FetchOptions{PageSize: pageSize, Offset: offset})
		if err != nil {
			fmt.Fprintf(os.Stderr, "\r\033[K") // Clear progress line
			return nil, err
		}

		tracker.RecordAPICall()
		tracker.RecordPage(len(page.Reviews))
		for _, review := range page.Reviews {
			tracker.RecordReviewDate(review.UpdatedAt)
		}

		reviews = append(reviews, page.Reviews...)
		fmt.Fprintf(os.Stderr, "\rFetching reviews... %d fetched", len(reviews))

		if !page.HasMore {
			break
		}
		offset += pageSize
	}

	fmt.Fprintf(os.Stderr, "\r\033[K") // Clear progress line
	return reviews, nil
}

// reportSummary prints the end-of-run statistics to stderr.
func reportSummary(summary metadata.ExportSummary, format export.Format, outfile string) {
	dest := outfile
	if dest == "" {
		dest = "stdout"
	}

	if summary.TotalReviews == 0 {
		fmt.Fprintf(os.Stderr, "No reviews found; wrote an empty %s export to %s\n", format, dest)
		return
	}

	fmt.Fprintf(os.Stderr, "Exported %d reviews to %s in %s (%d API calls)\n",
		summary.TotalReviews, dest, summary.Duration.Round(time.Millisecond), summary.APICalls)
}

// mapErrorToExitCode maps internal errors to appropriate exit codes
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, relayerrors.ErrAuthentication) {
		return 2 // Authentication errors
	}

	if errors.Is(err, relayerrors.ErrNetworkFailure) {
		return 3 // Network errors
	}

	return 1 // General error
}
