// Package commands implements the ncstreaminfo CLI commands.
package commands

import (
	"strings"

	nclog "github.com/kungfusheep/ncstream/log"
	"github.com/kungfusheep/ncstream/ncstream"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var v = viper.New()

// rootCmd is the base command when ncstreaminfo is called without a
// subcommand.
var rootCmd = &cobra.Command{
	Use:           "ncstreaminfo",
	Short:         "Inspect ncStream frames and report structural health",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch strings.ToLower(v.GetString("log-level")) {
		case "debug":
			nclog.SetLevel(nclog.LevelDebug)
		case "info":
			nclog.SetLevel(nclog.LevelInfo)
		case "error":
			nclog.SetLevel(nclog.LevelError)
		default:
			nclog.SetLevel(nclog.LevelWarn)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	v.SetEnvPrefix("NCSTREAMINFO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	flags := rootCmd.PersistentFlags()
	flags.String("log-level", "warn", "Log level (debug|info|warn|error)")
	flags.Int("limits.max-depth", ncstream.DefaultLimits.MaxDepth, "Maximum submessage nesting depth (0 = unlimited)")
	flags.Int("limits.max-bytes-field-len", ncstream.DefaultLimits.MaxBytesFieldLen, "Maximum declared length for a bytes/string field (0 = unlimited)")
	_ = v.BindPFlag("log-level", flags.Lookup("log-level"))
	_ = v.BindPFlag("limits.max-depth", flags.Lookup("limits.max-depth"))
	_ = v.BindPFlag("limits.max-bytes-field-len", flags.Lookup("limits.max-bytes-field-len"))

	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(versionCmd)
}

// limitsFromFlags builds a ncstream.Limits from the bound viper config,
// the entry point every subcommand that decodes untrusted input reaches
// for instead of hardcoding DefaultLimits.
func limitsFromFlags() ncstream.Limits {
	return ncstream.Limits{
		MaxDepth:         v.GetInt("limits.max-depth"),
		MaxBytesFieldLen: v.GetInt("limits.max-bytes-field-len"),
	}
}
