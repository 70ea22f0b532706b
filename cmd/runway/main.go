package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rcalder/runway/internal/auth"
	"github.com/rcalder/runway/internal/config"
	"github.com/rcalder/runway/internal/fcapi"
	"github.com/rcalder/runway/internal/tui"
)

var (
	flagAPIURL string
	flagMonths int
	flagBuffer float64
	flagDebug  bool
)

var rootCmd = &cobra.Command{
	Use:   "runway",
	Short: "Cash-balance forecast viewer",
	Long:  "Browse multi-month cash-balance projections, low-balance alerts, and submit bill/transaction overrides against a forecasting API.",
	RunE:  runTUI,
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the API token",
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Exchange credentials for an API token and store it",
	RunE:  runAuthLogin,
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored API token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := auth.RemoveToken(); err != nil {
			return err
		}
		fmt.Println("Token removed from your system credential store.")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "Forecasting API base URL (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write diagnostics to a debug log file")
	rootCmd.Flags().IntVar(&flagMonths, "months", 0, "Forecast horizon in months (overrides config)")
	rootCmd.Flags().Float64Var(&flagBuffer, "buffer", -1, "Low-balance buffer amount (overrides config)")

	authCmd.AddCommand(authLoginCmd, authLogoutCmd)
	rootCmd.AddCommand(authCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if strings.TrimSpace(flagAPIURL) != "" {
		cfg.API.BaseURL = strings.TrimSpace(flagAPIURL)
	}
	if flagMonths > 0 {
		cfg.Forecast.Months = flagMonths
	}
	if flagBuffer >= 0 {
		cfg.Forecast.Buffer = flagBuffer
	}
	return cfg, nil
}

func newClient(cfg config.Config) *fcapi.Client {
	token, err := auth.LoadToken()
	if err != nil {
		// A broken credential store should not block unauthenticated use.
		token = ""
	}
	return fcapi.New(
		cfg.API.BaseURL,
		fcapi.WithToken(token),
		fcapi.WithLogger(newLogger()),
	)
}

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)

	if !flagDebug && strings.TrimSpace(os.Getenv("RUNWAY_DEBUG")) == "" {
		return log
	}

	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return log
	}
	dir := filepath.Join(cacheDir, "runway")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return log
	}
	file, err := os.OpenFile(
		filepath.Join(dir, "debug.log"),
		os.O_CREATE|os.O_APPEND|os.O_WRONLY,
		0o600,
	)
	if err != nil {
		return log
	}

	log.SetOutput(file)
	log.SetLevel(logrus.DebugLevel)
	return log
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	program := tea.NewProgram(
		tui.New(newClient(cfg), cfg),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func runAuthLogin(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Email: ")
	email, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return errors.New("empty email")
	}

	fmt.Print("Password: ")
	password, err := readSecret(reader)
	if err != nil {
		return err
	}
	fmt.Println()
	if strings.TrimSpace(password) == "" {
		return errors.New("empty password")
	}

	client := fcapi.New(cfg.API.BaseURL, fcapi.WithLogger(newLogger()))
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	token, err := client.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if err := auth.SaveToken(token); err != nil {
		return err
	}
	fmt.Println("Token saved to your system credential store.")
	return nil
}

func readSecret(reader *bufio.Reader) (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		value, err := term.ReadPassword(fd)
		if err != nil {
			return "", err
		}
		return string(value), nil
	}

	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		if len(line) == 0 {
			return "", err
		}
	}
	return strings.TrimSpace(line), nil
}
