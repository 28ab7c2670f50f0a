// Package cli はPyHSSプロビジョニングCLIのコマンドツリーを提供する。
package cli

import (
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/lynxis/pyhss-cli/internal/config"
	"github.com/lynxis/pyhss-cli/internal/hss"
	"github.com/lynxis/pyhss-cli/internal/logging"
	"github.com/lynxis/pyhss-cli/internal/provision"
)

var (
	flagAPI    string
	flagAPIKey string
	flagDebug  bool

	// PersistentPreRunEで初期化され、各サブコマンドが参照する。
	gateway     provision.Gateway
	provisioner *provision.Provisioner
)

var rootCmd = &cobra.Command{
	Use:   "pyhss-cli",
	Short: "Provisioning client for the PyHSS subscriber database",
	Long: `pyhss-cli provisions subscribers, IMS subscribers and APNs
against the PyHSS provisioning REST API.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		// フラグは環境変数より優先する
		if cmd.Flags().Changed("api") {
			cfg.APIURL = flagAPI
		}
		if cmd.Flags().Changed("api-key") {
			cfg.APIKey = flagAPIKey
		}
		if flagDebug {
			cfg.Debug = true
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		initLogger(cfg)

		client := hss.NewClient(cfg)
		masker := logging.NewMasker(cfg.LogMaskSecrets)

		gateway = client
		provisioner = provision.NewProvisioner(client, masker)
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagAPI, "api", "", "Url to the pyhss API (env: PYHSS_API)")
	pf.StringVar(&flagAPIKey, "api-key", "", "Api key. See provisioning_key in pyHss config.toml (env: PYHSS_APIKEY)")
	pf.BoolVar(&flagDebug, "debug", false, "Enable debug logging")
}

// Execute はルートコマンドを実行する。
func Execute(version string) error {
	rootCmd.Version = version
	return rootCmd.Execute()
}

// initLogger はロガーを初期化する。
// 通常運用ではWarn以上のみstderrに出し、stdoutはコマンド出力専用とする。
func initLogger(cfg *config.Config) {
	level := slog.LevelWarn
	if cfg.Debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	h := slog.NewJSONHandler(os.Stderr, opts)
	logger := slog.New(h).With(
		"app", "pyhss-cli",
		"trace_id", uuid.NewString(),
	)
	slog.SetDefault(logger)
}
