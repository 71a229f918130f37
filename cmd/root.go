package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/goldtrust/gtw/cmd/transaction"
	"github.com/goldtrust/gtw/internal/app"
	"github.com/goldtrust/gtw/internal/config"
	"github.com/goldtrust/gtw/internal/errhandler"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     *config.Config
)

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	if err := initConfig(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	application, cleanup, err := app.NewApp(cfg, migrations)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	defer cleanup()

	rootCmd := &cobra.Command{
		Use:           "gtw",
		Short:         "gtw is the GoldTrust Wallet command line companion",
		Long:          `gtw is the GoldTrust Wallet command line companion`,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")

	rootCmd.AddCommand(transaction.NewTransactionCmd(application.Service))

	rootCmd.AddCommand(NewLoginCmd(application.Service))
	rootCmd.AddCommand(NewLogoutCmd(application.Service))
	rootCmd.AddCommand(NewInfoCmd(application.Service))
	rootCmd.AddCommand(NewTopupCmd(application.Service))
	rootCmd.AddCommand(NewWithdrawCmd(application.Service))
	rootCmd.AddCommand(NewBuyCodeCmd(application.Service, cfg))

	rootCmd.SilenceErrors = true
	if err := rootCmd.Execute(); err != nil {
		if errhandler.IsInterrupt(err) {
			pterm.Warning.Println("Operation Cancelled")
			os.Exit(0)
		}

		errMsg := err.Error()
		displayMsg := capitalize(errMsg)

		pterm.Error.Println(displayMsg)
		os.Exit(1)
	}
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := getAppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	setConfigDefaults()

	if err := createDefaultConfig(); err != nil {
		return fmt.Errorf("failed to ensure config file: %w", err)
	}

	viper.SetEnvPrefix("GTW")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {

		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	return nil
}

func setConfigDefaults() {
	defaults := config.NewDefault()

	viper.SetDefault("payment.code_price", defaults.Payment.CodePrice)
	viper.SetDefault("payment.gateway_price", defaults.Payment.GatewayPrice)
	viper.SetDefault("payment.gateway_url", defaults.Payment.GatewayURL)
	viper.SetDefault("payment.confirm_window_seconds", defaults.Payment.ConfirmWindowSeconds)
	viper.SetDefault("payment.verify_delay_ms", defaults.Payment.VerifyDelayMillis)
	viper.SetDefault("vendor.whatsapp", defaults.Vendor.WhatsApp)
	viper.SetDefault("vendor.account_name", defaults.Vendor.AccountName)
	viper.SetDefault("vendor.account_number", defaults.Vendor.AccountNumber)
	viper.SetDefault("vendor.bank", defaults.Vendor.Bank)
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".gtw"), nil
	}

	return filepath.Join(configDir, "gtw"), nil
}

func createDefaultConfig() error {
	appDir, err := getAppDataDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
