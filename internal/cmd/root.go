// Package cmd wires the command-line surface to the processing pipeline.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcstats/mcstats/internal/config"
	"github.com/mcstats/mcstats/internal/diag"
	"github.com/mcstats/mcstats/internal/models"
	"github.com/mcstats/mcstats/internal/report"
)

// defaultConfigFile is picked up from the working directory when present.
const defaultConfigFile = "mcstats.yaml"

type options struct {
	onlineTime bool
	logins     bool
	deaths     bool
	chat       bool
	byLogin    bool
	byTime     bool

	verbose   bool
	noColor   bool
	write     string
	deathList string
	cfgFile   string
}

var opts options

var rootCmd = &cobra.Command{
	Use:   "mcstats [flags] file...",
	Short: "Per-player statistics from Minecraft server logs",
	Long: `mcstats reads Minecraft server log files (plain or gzipped), classifies
every line against the vanilla server line grammar and derives per-player
statistics: online time, logins, deaths and chat activity, plus per-login
and per-time ratios. Files are processed in the order given; order matters
for online-time reconstruction across rotated logs.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// The invocation contract comes first: a broken config file must
		// not mask a usage error.
		if err := validate(cmd, args); err != nil {
			return err
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		rep := diag.New(os.Stderr, opts.verbose)
		rep.SetColor(!opts.noColor)

		r, err := buildReport(cfg, rep, args)
		if err != nil {
			return err
		}
		return writeReport(cfg, r)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&opts.onlineTime, "online-time", false, "overall time each player has been online")
	pf.BoolVar(&opts.logins, "logins", false, "number of logins per player")
	pf.BoolVar(&opts.deaths, "deaths", false, "number of deaths per player")
	pf.BoolVar(&opts.chat, "chat", false, "number of chat/emote messages per player")
	pf.BoolVar(&opts.byLogin, "by-login", false, "divide the other metrics by login count (implies --logins)")
	pf.BoolVar(&opts.byTime, "by-time", false, "spread online time over the other metrics (implies --online-time)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose diagnostics on stderr")
	pf.BoolVar(&opts.noColor, "no-color", false, "disable styled output")
	pf.StringVar(&opts.deathList, "death-list", "", "path to the death-cause phrase list")
	pf.StringVar(&opts.cfgFile, "config", "", "config file (default: ./"+defaultConfigFile+" when present)")

	rootCmd.Flags().StringVarP(&opts.write, "write", "w", "", "write a rendered report to this file instead of stdout (.html or .msgpack)")
}

// loadConfig loads the YAML config and applies flag overrides.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	switch {
	case opts.cfgFile != "":
		c, err := config.Load(opts.cfgFile)
		if err != nil {
			return nil, err
		}
		cfg = c
	default:
		if _, err := os.Stat(defaultConfigFile); err == nil {
			c, err := config.Load(defaultConfigFile)
			if err != nil {
				return nil, err
			}
			cfg = c
		} else {
			cfg = config.Default()
		}
	}
	if opts.deathList != "" {
		cfg.DeathList = opts.deathList
	}
	if opts.noColor {
		cfg.Report.Color = false
	}
	return cfg, nil
}

// validate enforces the invocation contract: at least one metric and at
// least one file, otherwise usage and a non-zero exit.
func validate(cmd *cobra.Command, args []string) error {
	// Derived metrics need their normalizer computed as well.
	if opts.byLogin {
		opts.logins = true
	}
	if opts.byTime {
		opts.onlineTime = true
	}
	if !opts.onlineTime && !opts.logins && !opts.deaths && !opts.chat {
		cmd.Usage()
		return errors.New("no metrics selected")
	}
	if len(args) == 0 {
		cmd.Usage()
		return errors.New("no files given")
	}
	return nil
}

// writeReport picks the output channel: styled text on stdout, or a
// rendered document whose format follows the file extension.
func writeReport(cfg *config.Config, r *models.Report) error {
	if opts.write == "" {
		return report.WriteText(os.Stdout, r, cfg.Report.Color)
	}
	f, err := os.Create(opts.write)
	if err != nil {
		return fmt.Errorf("creating %s: %w", opts.write, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(opts.write)) {
	case ".msgpack", ".mp":
		return report.WriteMsgpack(f, r)
	default:
		return report.WriteHTML(f, r)
	}
}
