package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"payeerapi/client/payeer"
	"payeerapi/config"
)

var exampleUsage = strings.TrimSpace(`
  PAYEER_ACCOUNT=P1000000 PAYEER_API_ID=123 PAYEER_API_SECRET=... payeer balance
  payeer --config ~/.payeer/config.toml check-user P1234567
  payeer transfer --to P1234567 --sum 10.50 --cur-in USD --cur-out RUB
  payeer history --sort desc --count 10
`)

type app struct {
	cfgPath string
	debug   bool
	logger  *slog.Logger
	client  *payeer.Client
}

func main() {
	a := &app{}
	if err := newRootCmd(a).Execute(); err != nil {
		logger := a.logger
		if logger == nil {
			logger = newLogger(false)
		}
		logger.Error("payeer", tint.Err(err))
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "payeer",
		Short:         "Command line access to the Payeer merchant API",
		Example:       exampleUsage,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}
	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "path to config file (default: $HOME/.payeer/config.toml)")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "log every request")

	root.AddCommand(
		a.balanceCmd(),
		a.checkUserCmd(),
		a.ratesCmd(),
		a.paySystemsCmd(),
		a.historyInfoCmd(),
		a.shopOrderCmd(),
		a.historyCmd(),
		a.transferCmd(),
		a.checkOutputCmd(),
		a.outputCmd(),
	)
	return root
}

func (a *app) init() error {
	a.logger = newLogger(a.debug)
	slog.SetDefault(a.logger)

	cfgFile := a.cfgPath
	if cfgFile == "" {
		cfgFile = config.DefaultConfigPath()
		if _, err := os.Stat(cfgFile); err != nil {
			cfgFile = ""
		}
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	opts := append(cfg.Options(), payeer.WithLogger(a.logger))
	client, err := payeer.NewClient(cfg.ClientConfig(), opts...)
	if err != nil {
		return fmt.Errorf("connect as %s: %w", cfg.Account, err)
	}
	a.client = client
	return nil
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: level,
	}))
}
