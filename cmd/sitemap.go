package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/logger"
	"github.com/Zachkp/portfolio/internal/sitemap"
)

var flagSitemapOut string

var sitemapCmd = &cobra.Command{
	Use:   "sitemap",
	Short: "Write sitemap.xml for the current content",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		var w io.Writer = cmd.OutOrStdout()
		if flagSitemapOut != "" {
			f, err := os.Create(flagSitemapOut)
			if err != nil {
				return fmt.Errorf("creating %s: %w", flagSitemapOut, err)
			}
			defer f.Close()
			w = f
		}
		return writeSitemap(cmd.Context(), cfg, logger.NewNop(), w, time.Now())
	},
}

func init() {
	sitemapCmd.Flags().StringVarP(&flagSitemapOut, "out", "o", "", "output file (default stdout)")
}

func writeSitemap(ctx context.Context, cfg *config.Config, log logger.Logger, w io.Writer, now time.Time) error {
	store, err := loadContent(ctx, cfg, log, nil)
	if err != nil {
		return err
	}
	return sitemap.Write(w, sitemap.Build(cfg.Site.URL, store, now))
}
