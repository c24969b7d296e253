// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/formula-zero/auth"
	"github.com/danielhkuo/formula-zero/models"
	"github.com/danielhkuo/formula-zero/render"
	"github.com/danielhkuo/formula-zero/season"
	"github.com/danielhkuo/formula-zero/standings"
)

func newRootCmd() *cobra.Command {
	var seasonFile string

	load := func() (models.Season, error) {
		return season.LoadFile(seasonFile)
	}

	cmd := &cobra.Command{
		Use:          "f0",
		Short:        "Formula Zero championship tables",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := load()
			if err != nil {
				return err
			}
			dash, err := standings.Dashboard(s)
			if err != nil {
				return err
			}
			render.Standings(cmd.OutOrStdout(), dash)
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&seasonFile, "season", "s", "", "Season YAML file (built-in season if omitted)")

	cmd.AddCommand(
		driversCmd(load),
		constructorsCmd(load),
		raceCmd(load),
		driverCmd(load),
		teamCmd(load),
		progressCmd(load),
		hashPasswordCmd(),
	)
	return cmd
}

type seasonLoader func() (models.Season, error)

func driversCmd(load seasonLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "drivers",
		Short: "Driver championship",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := load()
			if err != nil {
				return err
			}
			rows, err := standings.DriverStandings(s.Drivers, s.Races)
			if err != nil {
				return err
			}
			render.DriverTable(cmd.OutOrStdout(), "Drivers", rows)
			return nil
		},
	}
}

func constructorsCmd(load seasonLoader) *cobra.Command {
	return &cobra.Command{
		Use:     "constructors",
		Aliases: []string{"teams"},
		Short:   "Constructor championship",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := load()
			if err != nil {
				return err
			}
			rows, err := standings.ConstructorStandings(s.Drivers, s.Races)
			if err != nil {
				return err
			}
			render.ConstructorTable(cmd.OutOrStdout(), "Constructors", rows)
			return nil
		},
	}
}

func raceCmd(load seasonLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "race <name>",
		Short: "Result of a single race",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := load()
			if err != nil {
				return err
			}
			race, err := standings.FindRace(s.Races, args[0])
			if err != nil {
				return err
			}
			detail, err := standings.RaceDetail(s.Drivers, race)
			if err != nil {
				return err
			}
			render.RaceTable(cmd.OutOrStdout(), detail)
			return nil
		},
	}
}

func driverCmd(load seasonLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "driver <name>",
		Short: "Season summary for one driver",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := load()
			if err != nil {
				return err
			}
			p, err := standings.DriverProfile(s.Drivers, s.Races, args[0])
			if err != nil {
				return err
			}
			render.DriverProfileTable(cmd.OutOrStdout(), p)
			return nil
		},
	}
}

func teamCmd(load seasonLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "team <name>",
		Short: "Season summary for one constructor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := load()
			if err != nil {
				return err
			}
			p, err := standings.TeamProfile(s.Drivers, s.Races, args[0])
			if err != nil {
				return err
			}
			render.TeamProfileTable(cmd.OutOrStdout(), p)
			return nil
		},
	}
}

func progressCmd(load seasonLoader) *cobra.Command {
	var svgPath string

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Cumulative points after each race",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := load()
			if err != nil {
				return err
			}
			series, err := standings.CumulativePointsSeries(s.Drivers, s.Races)
			if err != nil {
				return err
			}
			render.ProgressTable(cmd.OutOrStdout(), s.Drivers, series)

			if svgPath == "" {
				return nil
			}
			f, err := os.Create(svgPath)
			if err != nil {
				return err
			}
			if err := render.ProgressChart(f, s.Drivers, series, standings.ChartScale(series)); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Chart written to %s\n", svgPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&svgPath, "svg", "", "Also write the chart as SVG to this file")
	return cmd
}

func hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := auth.HashPassword(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}
