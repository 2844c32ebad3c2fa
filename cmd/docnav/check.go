package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/docnav/internal/config"
	"github.com/vango-dev/docnav/internal/errors"
	"github.com/vango-dev/docnav/pkg/linkcheck"
	"github.com/vango-dev/docnav/pkg/manifest"
	"github.com/vango-dev/docnav/pkg/nav"
)

func checkCmd() *cobra.Command {
	var contentDir string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the manifest and cross-references",
		Long: `Build the navigation index from the configured manifest and check
every site-internal link in the content directory against it.

The command fails when the manifest does not validate (duplicate
paths, malformed section headers, invalid page paths) or when any
authored link points at a page the manifest does not know.

Examples:
  docnav check
  docnav check --content=src/content`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(contentDir)
		},
	}

	cmd.Flags().StringVarP(&contentDir, "content", "c", "", "Content directory (default from docnav.json)")

	return cmd
}

func runCheck(contentDir string) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}
	if contentDir != "" {
		cfg.Content.Dir = contentDir
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := context.Background()
	src, err := manifestSource(ctx, cfg)
	if err != nil {
		return err
	}

	entries, err := manifest.Load(ctx, src)
	if err != nil {
		return codedError(err)
	}
	tree, err := nav.Build(entries)
	if err != nil {
		return codedError(err)
	}
	ix := nav.NewIndex(tree)
	success("Manifest valid: %d stable pages, %d canary pages",
		len(ix.Flatten(nav.ChannelStable)),
		len(ix.Flatten(nav.ChannelCanary)))

	problems, err := linkcheck.New(ix).CheckDir(cfg.ContentPath())
	if err != nil {
		return err
	}

	if len(problems) > 0 {
		for _, p := range problems {
			errorMsg("%s", p)
		}
		return errors.New("N060").
			WithDetail(fmt.Sprintf("%d unresolved cross-references in %s", len(problems), cfg.ContentPath()))
	}

	success("All cross-references resolve")
	return nil
}
