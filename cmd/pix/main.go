/*
 * Copyright © 2025 Bling Digital, All rights reserved.
 */

// Command pix is a small CLI for poking at a PIX host: listing projects
// and reading project inboxes.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blingdigital/pix"
	"github.com/blingdigital/pix/api"
)

var configFile string

func main() {
	root := &cobra.Command{
		Use:           "pix",
		Short:         "Interact with the PIX REST API",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "",
		"YAML config file (overlays the PIX_* environment)")

	root.AddCommand(newVersionCmd(), newProjectsCmd(), newInboxCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newSession(ctx context.Context) (*api.Session, error) {
	cfg, err := api.FromEnv()
	if err != nil {
		return nil, err
	}
	if configFile != "" {
		fileCfg, err := api.LoadFile(configFile)
		if err != nil {
			return nil, err
		}
		cfg = cfg.Merge(fileCfg)
	}
	return api.NewSession(ctx, cfg)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			info := pix.GetVersionInfo()
			fmt.Printf("pix version %s\n", info.Version)
			fmt.Printf("Git commit: %s\n", info.GitCommit)
			fmt.Printf("Build date: %s\n", info.BuildDate)
		},
	}
}

func newProjectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "projects",
		Short: "List projects the logged-in user has access to",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			session, err := newSession(ctx)
			if err != nil {
				return err
			}
			defer session.Logout(ctx)

			projects, err := session.Projects(ctx)
			if err != nil {
				return err
			}
			for _, p := range projects {
				fmt.Println(p.Identifier())
			}
			return nil
		},
	}
}

func newInboxCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "inbox <project>",
		Short: "List incoming feed entries for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			session, err := newSession(ctx)
			if err != nil {
				return err
			}
			defer session.Logout(ctx)

			project, err := session.LoadProject(ctx, args[0])
			if err != nil {
				return err
			}
			entries, err := project.Inbox(ctx, limit)
			if err != nil {
				return err
			}
			for _, entry := range entries {
				marker := " "
				if !entry.Viewed() {
					marker = "*"
				}
				fmt.Printf("%s %s\n", marker, entry.Identifier())
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum entries to fetch")
	return cmd
}
