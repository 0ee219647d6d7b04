package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rpncalc/internal/driver"
)

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the on-disk result cache",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "clean",
		Short: "Remove every cached result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cache, err := driver.OpenResultCache("rpncalc")
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}
			if err := cache.DropAll(); err != nil {
				return fmt.Errorf("clean cache: %w", err)
			}
			if !quiet(cmd) {
				fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", cache.Dir())
			}
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the cache directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := driver.DefaultCacheDir("rpncalc")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	})
	return cmd
}
