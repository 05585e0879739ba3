// Package main provides the CLI entry point for gsjson-go.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ukaji3/gsjson-go/internal/config"
	"github.com/ukaji3/gsjson-go/internal/logger"
	"github.com/ukaji3/gsjson-go/internal/server"
	"github.com/ukaji3/gsjson-go/pkg/gsjson"
	"github.com/ukaji3/gsjson-go/pkg/gsjson/output"
	"github.com/ukaji3/gsjson-go/pkg/gsjson/source"
	"github.com/ukaji3/gsjson-go/pkg/gsjson/transform"
)

var (
	worksheets    []string
	allWorksheets bool
	hash          string
	vertical      bool
	listOnly      bool
	includeHeader bool
	propertyMode  string
	headerStart   string
	headerSize    int
	ignoreRows    []int
	ignoreCols    []string
	beautify      bool
	token         string
	tokenType     string
	credentials   string
	configPath    string
	addr          string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gsjson <spreadsheet-id|workbook.xlsx> [output-file]",
		Short: "Convert spreadsheet worksheets to JSON",
		Long: `gsjson reads the cells of a Google spreadsheet (or a local xlsx workbook),
uses the header rows as property names and outputs the rows as JSON.`,
		Args:          cobra.RangeArgs(1, 2),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.Flags()
	flags.StringArrayVarP(&worksheets, "worksheet", "w", nil, "Worksheet index or title (repeat to select several)")
	flags.BoolVar(&allWorksheets, "all-worksheets", false, "Convert every worksheet")
	flags.StringVarP(&hash, "hash", "c", "", "Property to hash the final JSON by")
	flags.BoolVarP(&vertical, "vertical", "i", false, "Use the first column as header")
	flags.BoolVarP(&listOnly, "list-only", "l", false, "Ignore headers and just list the values in arrays")
	flags.BoolVar(&includeHeader, "include-header", false, "Keep the header rows as values in list-only mode")
	flags.StringVar(&propertyMode, "property-mode", "camel", "Property naming: camel, pascal, nospace, or none")
	flags.StringVar(&headerStart, "header-start", "", "Row number where the header starts")
	flags.IntVar(&headerSize, "header-size", 1, "Number of header rows")
	flags.IntSliceVar(&ignoreRows, "ignore-row", nil, "Row numbers to ignore")
	flags.StringSliceVar(&ignoreCols, "ignore-col", nil, "Columns to ignore, as numbers or letters")
	flags.BoolVarP(&beautify, "beautify", "b", false, "Beautify final JSON")
	flags.StringVar(&configPath, "config", "", "YAML file with conversion options")
	addAuthFlags(rootCmd)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the conversion over HTTP",
		Args:  cobra.NoArgs,
		RunE:  serve,
	}
	serveCmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from GSJSON_ADDR or :8080)")
	addAuthFlags(serveCmd)
	rootCmd.AddCommand(serveCmd)

	return rootCmd
}

func addAuthFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&token, "token", "t", "", "OAuth access token")
	cmd.Flags().StringVar(&tokenType, "token-type", "", "Token type (default Bearer)")
	cmd.Flags().StringVar(&credentials, "credentials", "", "Service account credentials as JSON or file path")
}

func run(cmd *cobra.Command, args []string) error {
	target := args[0]

	cfg, ctx, err := setup(cmd.Context())
	if err != nil {
		return err
	}

	opts, err := buildOptions(cmd)
	if err != nil {
		return err
	}

	src, closeSource, err := openSource(ctx, cfg, target)
	if err != nil {
		return err
	}
	defer closeSource()

	out, err := gsjson.SpreadsheetToJSON(ctx, src, opts)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	if len(args) == 2 {
		if err := output.WriteFile(args[1], out, beautify); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		logger.FromContext(ctx).Info().Str("file", args[1]).Int("worksheets", len(out.Results)).Msg("output written")
		return nil
	}
	return output.Write(cmd.OutOrStdout(), out, beautify)
}

func serve(cmd *cobra.Command, args []string) error {
	cfg, ctx, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	if addr == "" {
		addr = cfg.Addr
	}

	handler := server.New(func(ctx context.Context, spreadsheetID string) (gsjson.SheetSource, error) {
		auth, err := resolveAuth(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return source.NewGoogleSheets(ctx, spreadsheetID, auth)
	})
	srv := &http.Server{Addr: addr, Handler: handler, ReadHeaderTimeout: 10 * time.Second}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.FromContext(ctx).Info().Str("addr", addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// setup loads the environment config and returns a context carrying the logger.
func setup(ctx context.Context) (*config.Config, context.Context, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger.Init(cfg.LogLevel, cfg.LogFile)
	if ctx == nil {
		ctx = context.Background()
	}
	return cfg, logger.Logger().WithContext(ctx), nil
}

// buildOptions applies the options file and then every flag set explicitly.
func buildOptions(cmd *cobra.Command) (gsjson.Options, error) {
	opts := gsjson.DefaultOptions()
	if configPath != "" {
		var err error
		if opts, err = config.LoadOptions(configPath, opts); err != nil {
			return opts, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("worksheet") {
		opts.Worksheet = worksheets
		opts.MultipleWorksheets = len(worksheets) > 1
	}
	if flags.Changed("all-worksheets") {
		opts.AllWorksheets = allWorksheets
	}
	if flags.Changed("hash") {
		opts.Hash = hash
	}
	if flags.Changed("vertical") {
		opts.Vertical = vertical
	}
	if flags.Changed("list-only") {
		opts.ListOnly = listOnly
	}
	if flags.Changed("include-header") {
		opts.IncludeHeader = includeHeader
	}
	if flags.Changed("property-mode") {
		mode, err := transform.ParsePropertyMode(propertyMode)
		if err != nil {
			return opts, err
		}
		opts.PropertyMode = mode
	}
	if flags.Changed("header-start") {
		opts.HeaderStart = headerStart
	}
	if flags.Changed("header-size") {
		opts.HeaderSize = headerSize
	}
	if flags.Changed("ignore-row") {
		opts.IgnoreRow = ignoreRows
	}
	if flags.Changed("ignore-col") {
		opts.IgnoreCol = ignoreCols
	}

	// fail before any network access
	if _, err := opts.Resolve(); err != nil {
		return opts, err
	}
	return opts, nil
}

// openSource opens a local workbook or connects to a Google spreadsheet.
func openSource(ctx context.Context, cfg *config.Config, target string) (gsjson.SheetSource, func(), error) {
	if source.IsWorkbookPath(target) {
		if _, err := os.Stat(target); os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("file not found: %s", target)
		}
		x, err := source.OpenXLSX(target)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open workbook: %w", err)
		}
		return x, func() { x.Close() }, nil
	}

	auth, err := resolveAuth(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	g, err := source.NewGoogleSheets(ctx, target, auth)
	if err != nil {
		return nil, nil, err
	}
	return g, func() {}, nil
}

// resolveAuth picks credentials from flags first, then the environment.
func resolveAuth(ctx context.Context, cfg *config.Config) (source.Auth, error) {
	auth := source.Auth{Token: cfg.Token, TokenType: cfg.TokenType}
	if token != "" {
		auth.Token = token
	}
	if tokenType != "" {
		auth.TokenType = tokenType
	}

	switch {
	case credentials != "":
		raw, err := source.ParseCredentials(credentials)
		if err != nil {
			return auth, err
		}
		auth.Credentials = raw
	case cfg.Credentials != "" || cfg.CredentialsFile != "":
		raw, err := source.LoadCredentials(ctx, cfg.Credentials, cfg.CredentialsFile)
		if err != nil {
			return auth, err
		}
		auth.Credentials = raw
	}
	return auth, nil
}
