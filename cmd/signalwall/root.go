package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eringen/signalwall"
)

// fileConfig mirrors signalwall.yaml.
type fileConfig struct {
	Name          string        `mapstructure:"name"`
	URL           string        `mapstructure:"url"`
	Description   string        `mapstructure:"description"`
	Author        string        `mapstructure:"author"`
	Addr          string        `mapstructure:"addr"`
	ContentRoot   string        `mapstructure:"content_root"`
	MailTo        string        `mapstructure:"mail_to"`
	SessionSecret string        `mapstructure:"session_secret"`
	CookieSecure  bool          `mapstructure:"cookie_secure"`
	SubmitLimit   int           `mapstructure:"submit_limit"`
	SubmitWindow  time.Duration `mapstructure:"submit_window"`
	WatchIndex    bool          `mapstructure:"watch_index"`
	StaticDir     string        `mapstructure:"static_dir"`
	Analytics     struct {
		Enabled       bool   `mapstructure:"enabled"`
		DatabasePath  string `mapstructure:"database_path"`
		RetentionDays int    `mapstructure:"retention_days"`
	} `mapstructure:"analytics"`
}

func (f fileConfig) site() signalwall.SiteConfig {
	return signalwall.SiteConfig{
		Name:                   f.Name,
		URL:                    f.URL,
		Description:            f.Description,
		Author:                 f.Author,
		Addr:                   f.Addr,
		ContentRoot:            f.ContentRoot,
		MailTo:                 f.MailTo,
		SessionSecret:          f.SessionSecret,
		CookieSecure:           f.CookieSecure,
		AnalyticsEnabled:       f.Analytics.Enabled,
		AnalyticsDatabasePath:  f.Analytics.DatabasePath,
		AnalyticsRetentionDays: f.Analytics.RetentionDays,
		SubmitLimit:            f.SubmitLimit,
		SubmitWindow:           f.SubmitWindow,
		WatchIndex:             f.WatchIndex,
	}
}

// configDir is where signalwall.yaml is looked up after the working directory.
func configDir() string {
	return filepath.Join(xdg.ConfigHome, "signalwall")
}

func newRootCmd() *cobra.Command {
	var cfgFile string
	cfg := &fileConfig{}

	root := &cobra.Command{
		Use:   "signalwall",
		Short: "A two-language blog wall built with Go, Echo, and templ",
		Long: `signalwall serves a wall of English posts and a pawaura of Sinhala posts
from a JSON index, with a modal reader and mailto: comment forms.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations["config"] == "skip" {
				return nil
			}
			return loadConfig(cmd, cfgFile, cfg)
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./signalwall.yaml)")
	root.PersistentFlags().String("content", "", "content root directory or http(s) URL")

	root.AddCommand(
		newServeCmd(cfg),
		newCheckCmd(cfg),
		newNewCmd(),
		newVersionCmd(),
	)
	return root
}

func loadConfig(cmd *cobra.Command, cfgFile string, cfg *fileConfig) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetDefault("name", "Signal Wall")
	v.SetDefault("url", "http://localhost:3000")
	v.SetDefault("description", "")
	v.SetDefault("author", "")
	v.SetDefault("addr", ":3000")
	v.SetDefault("content_root", "content")
	v.SetDefault("mail_to", "hello@example.com")
	v.SetDefault("session_secret", "")
	v.SetDefault("cookie_secure", false)
	v.SetDefault("submit_limit", 10)
	v.SetDefault("submit_window", time.Minute)
	v.SetDefault("watch_index", false)
	v.SetDefault("static_dir", "public")
	v.SetDefault("analytics.enabled", false)
	v.SetDefault("analytics.database_path", "data/reads.db")
	v.SetDefault("analytics.retention_days", 365)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath(configDir())
		v.SetConfigName("signalwall")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("SIGNALWALL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlag("content_root", cmd.Root().PersistentFlags().Lookup("content")); err != nil {
		return err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print the signalwall version",
		Annotations: map[string]string{"config": "skip"},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "signalwall %s\n", version)
		},
	}
}
