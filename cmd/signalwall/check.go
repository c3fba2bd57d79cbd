package main

import (
	"fmt"
	"io"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"

	"github.com/eringen/signalwall"
)

func newCheckCmd(cfg *fileConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the post index and report counts per language",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, cfg.ContentRoot, cmd.OutOrStdout())
		},
	}
}

func runCheck(cmd *cobra.Command, contentRoot string, out io.Writer) error {
	src, err := signalwall.NewSource(contentRoot)
	if err != nil {
		return err
	}

	logger := log.New("check")
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetHeader("${level}")

	store := signalwall.NewPostStore(src, logger)
	if err := store.Load(cmd.Context()); err != nil {
		return fmt.Errorf("post index: %w", err)
	}

	posts := store.All()
	wall := store.ByLang(signalwall.LangEnglish)
	pawaura := store.ByLang(signalwall.LangSinhala)

	fmt.Fprintf(out, "posts:   %d\n", len(posts))
	fmt.Fprintf(out, "wall:    %d\n", len(wall))
	fmt.Fprintf(out, "pawaura: %d\n", len(pawaura))
	if other := len(posts) - len(wall) - len(pawaura); other > 0 {
		fmt.Fprintf(out, "other:   %d (not listed)\n", other)
	}

	missing := 0
	for _, p := range posts {
		rc, err := src.Open(cmd.Context(), p.File)
		if err != nil {
			fmt.Fprintf(out, "missing: %s (%s)\n", p.ID, p.File)
			missing++
			continue
		}
		rc.Close()
	}
	if missing > 0 {
		return fmt.Errorf("%d post file(s) missing", missing)
	}
	return nil
}
