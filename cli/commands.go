// Package cli provides the Cobra-based CLI for cuisine.
package cli

import (
	"cuisine/domain"
	"cuisine/factory"
	"cuisine/metrics"
	"cuisine/util"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const prompt = "Who are you? (A)Adult or (C)Child? (by default adult)"

// NewRootCmd builds the command tree with its own viper instance
func NewRootCmd() *cobra.Command {
	v := viper.New()
	var pal *palette

	rootCmd := &cobra.Command{
		Use:           "cuisine",
		Short:         "Serve a matching sandwich and dessert for an adult or a child",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := configure(v, cmd.ErrOrStderr()); err != nil {
				return err
			}
			pal = newPalette(!color.NoColor && !v.GetBool("no-color"))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd, v, pal)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "config file")
	rootCmd.PersistentFlags().String("env-file", ".env", "dotenv file loaded before reading settings")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level")
	rootCmd.PersistentFlags().String("output", "text", "output format: text|json")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	rootCmd.Flags().String("family", "", "serve this family without prompting: adult|kid")
	rootCmd.Flags().Bool("no-pause", false, "exit without waiting for a final key")
	rootCmd.Flags().String("metrics-file", "", "write served-meal counters to this file")

	v.BindPFlags(rootCmd.PersistentFlags())
	v.BindPFlags(rootCmd.Flags())
	v.SetEnvPrefix("CUISINE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	// menu
	menuCmd := &cobra.Command{
		Use:   "menu",
		Short: "List every family with its sandwich and dessert",
		RunE: func(cmd *cobra.Command, args []string) error {
			var meals []domain.Meal
			for _, fam := range factory.Families() {
				f, err := factory.NewFactory(fam)
				if err != nil {
					return err
				}
				meals = append(meals, factory.Serve(f))
			}
			return pal.renderMenu(cmd.OutOrStdout(), meals, v.GetString("output"))
		},
	}
	rootCmd.AddCommand(menuCmd)

	return rootCmd
}

func serve(cmd *cobra.Command, v *viper.Viper, pal *palette) error {
	keys := newKeyReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()
	output := v.GetString("output")
	logger := slog.With("session_id", util.NewSessionID())

	var f domain.RecipeFactory
	if name := v.GetString("family"); name != "" {
		fam, err := domain.ParseFamily(name)
		if err != nil {
			return fmt.Errorf("family setting: %w", err)
		}
		if f, err = factory.NewFactory(fam); err != nil {
			return err
		}
	} else {
		// keep stdout parseable when it carries JSON
		promptOut := out
		if output == "json" {
			promptOut = cmd.ErrOrStderr()
		}
		fmt.Fprintln(promptOut, prompt)
		key := keys.ReadKey()
		logger.Debug("key read", "key", strconv.QuoteRune(key))
		f = factory.ForKey(key)
		fmt.Fprintln(promptOut)
	}

	meal := factory.Serve(f)
	logger.Info("meal served",
		"family", meal.Family.String(),
		"sandwich", meal.Sandwich.String(),
		"dessert", meal.Dessert.String(),
	)

	reg := prometheus.NewRegistry()
	metrics.New(reg).RecordMeal(meal)

	if err := pal.renderMeal(out, meal, output); err != nil {
		return err
	}

	if path := v.GetString("metrics-file"); path != "" {
		if err := prometheus.WriteToTextfile(path, reg); err != nil {
			logger.Error("metrics write failed", "path", path, "error", err)
			return err
		}
	}

	if !v.GetBool("no-pause") {
		keys.Pause()
	}
	return nil
}

func Execute() error {
	return NewRootCmd().Execute()
}
