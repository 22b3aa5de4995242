// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/luxfi/scholarship-deploy/cmd/deploycmd"
	cmdflags "github.com/luxfi/scholarship-deploy/cmd/flags"
	"github.com/luxfi/scholarship-deploy/cmd/frontendcmd"
	"github.com/luxfi/scholarship-deploy/pkg/application"
	"github.com/luxfi/scholarship-deploy/pkg/config"
	"github.com/luxfi/scholarship-deploy/pkg/constants"
	"github.com/luxfi/scholarship-deploy/pkg/prompts"
	"github.com/luxfi/scholarship-deploy/pkg/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	app *application.App

	logLevel       string
	Version        = "0.1.0"
	cfgFile        string
	nonInteractive bool
)

func NewRootCmd() *cobra.Command {
	// rootCmd represents the base command when called without any subcommands
	rootCmd := &cobra.Command{
		Use: "scholarship-deploy",
		Long: `scholarship-deploy deploys the scholarship system contracts to an EVM chain.

It deploys MyToken, then ScholarshipManager bound to the MyToken address,
and prints the changes the frontend needs to talk to the new contracts.

QUICK START:

  # Compile the contracts first (hardhat layout under ./artifacts)
  npx hardhat compile

  # Deploy to a local node with the first hardhat account
  SCHOLARSHIP_PRIVATE_KEY=0x... scholarship-deploy deploy --rpc-url http://127.0.0.1:8545

  # Apply the addresses and ABIs to the frontend
  scholarship-deploy frontend sync --record deployments/31337.json --frontend-dir ../frontend

Every flag can also be given as SCHOLARSHIP_<FLAG> (dashes become underscores)
or in $HOME/.scholarship-deploy/config.yaml.`,
		PersistentPreRunE: createApp,
		PersistentPostRun: syncLogs,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	// Disable printing the completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.scholarship-deploy/config.yaml)")
	flags.StringVar(&logLevel, "log-level", "error", "log level for the application")
	flags.BoolVar(&nonInteractive, config.KeyNonInteractive, false,
		"Disable prompts; fail if required values are missing (also enabled when stdin is not a TTY or CI=1)")
	flags.Bool("verbose", false, "Show verbose output (info level logs)")
	flags.Bool("debug", false, "Show debug output (debug level logs)")

	flags.String(config.KeyRPCURL, constants.DefaultRPCURL, "JSON-RPC endpoint of the target chain")
	flags.String(config.KeyChainID, "", "expected chain ID; the run fails if the node reports another one")
	flags.String(config.KeyArtifactsDir, constants.DefaultArtifactsDir, "hardhat artifacts directory")
	flags.Duration(config.KeyRPCTimeout, constants.RPCRequestTimeout, "timeout of a single RPC request")
	flags.String(config.KeyKeyFile, "", "encrypted JSON keystore of the deployer (password from SCHOLARSHIP_KEY_PASSWORD or prompt)")
	flags.Uint32(config.KeyHDIndex, 0, "account index when deriving the deployer from SCHOLARSHIP_MNEMONIC")
	cmdflags.BindConfigFlags(flags,
		config.KeyNonInteractive,
		config.KeyRPCURL,
		config.KeyChainID,
		config.KeyArtifactsDir,
		config.KeyRPCTimeout,
		config.KeyKeyFile,
		config.KeyHDIndex,
	)

	// add sub commands
	rootCmd.AddCommand(deploycmd.NewCmd(app))
	rootCmd.AddCommand(deploycmd.NewBalanceCmd(app))
	rootCmd.AddCommand(frontendcmd.NewCmd(app))

	return rootCmd
}

func createApp(cmd *cobra.Command, _ []string) error {
	baseDir, err := setupEnv()
	if err != nil {
		return err
	}
	log, err := setupLogging(cmd, baseDir)
	if err != nil {
		return err
	}
	if err := initConfig(log); err != nil {
		return err
	}
	conf, err := config.New(viper.GetViper())
	if err != nil {
		return err
	}
	log.Debug("configuration loaded",
		zap.String("rpcURL", conf.RPCURL),
		zap.Stringer("credentials", conf.Credentials),
	)

	// Interactive by default on TTY, non-interactive when:
	// SCHOLARSHIP_NON_INTERACTIVE=1, CI=1, --non-interactive flag, or stdin is piped
	prompts.SetNonInteractive(conf.NonInteractive)
	app.Setup(baseDir, log, conf, prompts.NewPrompterForMode())
	return nil
}

func syncLogs(*cobra.Command, []string) {
	if app != nil && app.Log != nil {
		_ = app.Log.Sync()
	}
}

func setupEnv() (string, error) {
	// Set base dir
	usr, err := user.Current()
	if err != nil {
		// no logger here yet
		fmt.Fprintf(os.Stderr, "unable to get system user: %s\n", err)
		return "", err
	}
	baseDir := filepath.Join(usr.HomeDir, constants.BaseDirName)

	if err := makeLogDir(os.Stderr, baseDir); err != nil {
		return "", err
	}
	return baseDir, nil
}

// makeLogDir creates the base and log dirs if they don't exist. Failures are
// reported on errOut since there is no logger yet.
func makeLogDir(errOut io.Writer, baseDir string) error {
	logDir := filepath.Join(baseDir, constants.LogDir)
	if err := os.MkdirAll(logDir, 0o750); err != nil {
		fmt.Fprintf(errOut, "failed creating the log dir %s: %s\n", logDir, err)
		return err
	}
	return nil
}

// displayLevel resolves the stderr log level from the flags.
func displayLevel(cmd *cobra.Command) (zapcore.Level, error) {
	switch {
	case cmd.Flags().Changed("debug"):
		return zapcore.DebugLevel, nil
	case cmd.Flags().Changed("verbose"):
		return zapcore.InfoLevel, nil
	}
	level, err := zapcore.ParseLevel(strings.ToLower(logLevel))
	if err != nil {
		return zapcore.ErrorLevel, fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
	}
	return level, nil
}

// setupLogging logs to stderr at the display level and, at debug level, to
// a JSON file under the base dir. Command output goes to stdout separately.
func setupLogging(cmd *cobra.Command, baseDir string) (*zap.Logger, error) {
	level, err := displayLevel(cmd)
	if err != nil {
		return nil, err
	}

	consoleCfg := zap.NewDevelopmentEncoderConfig()
	consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	consoleCore := zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.Lock(os.Stderr), level)

	logPath := filepath.Join(baseDir, constants.LogDir, constants.LogFileName)
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, constants.WriteReadUserOnlyPerms)
	if err != nil {
		return nil, fmt.Errorf("failed setting up logging, exiting: %w", err)
	}
	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(logFile),
		zapcore.DebugLevel,
	)

	log := zap.New(zapcore.NewTee(consoleCore, fileCore), zap.AddCaller()).
		With(zap.String("cmd", cmd.CommandPath()))
	return log, nil
}

// initConfig reads in config file and ENV variables if set.
// Priority: flags > env vars > config file > defaults
func initConfig(log *zap.Logger) error {
	config.SetDefaults(viper.GetViper())
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	switch {
	case cfgFile != "":
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	case utils.FileExists(constants.LocalConfigName + ".yaml"):
		viper.SetConfigFile(constants.LocalConfigName + ".yaml")
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		viper.AddConfigPath(filepath.Join(home, constants.BaseDirName))
		viper.SetConfigName(constants.ConfigFileName)
	}

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// No config file is normal - most users don't have one, so we silently continue
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	log.Debug("using config file", zap.String("config-file", viper.ConfigFileUsed()))
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	app = application.New()
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\nERROR: %s\n", err)
		os.Exit(1)
	}
}
