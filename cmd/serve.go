package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/logger"
	"github.com/Zachkp/portfolio/internal/metrics"
	"github.com/Zachkp/portfolio/internal/portfolio"
	"github.com/Zachkp/portfolio/internal/prefs"
	"github.com/Zachkp/portfolio/internal/render"
	"github.com/Zachkp/portfolio/internal/theme"
	"github.com/Zachkp/portfolio/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site over HTTP",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	m := metrics.New()

	store, err := loadContent(cmd.Context(), cfg, log, m)
	if err != nil {
		return err
	}

	profile, err := portfolio.Load(cfg.Site.Profile)
	if err != nil {
		return err
	}

	deps := web.Deps{
		Store:     store,
		Profile:   profile,
		Renderer:  render.New(""),
		Contact:   newContactService(cfg, log, m),
		Metrics:   m,
		Logger:    log,
		SiteName:  cfg.Site.Name,
		StaticDir: cfg.Server.StaticDir,
		Version:   version,
	}

	// The site still works without remembered themes.
	prefsPath := filepath.Join(cfg.DataDir, "prefs.db")
	if p, perr := prefs.Open(prefsPath); perr != nil {
		log.Warn("Preference store unavailable, themes will not persist",
			logger.String("path", prefsPath),
			logger.Error(perr),
		)
	} else {
		defer p.Close()
		deps.Theme = theme.NewProvider(p)
		deps.Prefs = p
	}

	srv, err := web.NewServer(web.Options{
		Port:         cfg.Server.Port,
		Debug:        cfg.Server.Debug,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}, deps)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	return srv.RunWithGracefulShutdown(cmd.Context())
}

// loadContent fetches every configured resource once. The load timeout caps
// each resource's API call; a resource that runs out of time is served from
// its fallback file. Only cancellation of ctx itself abandons the load.
func loadContent(ctx context.Context, cfg *config.Config, log logger.Logger, rec content.Recorder) (*content.Store, error) {
	opts := []content.LoaderOption{content.WithRemoteBudget(cfg.Content.LoadTimeout)}
	if rec != nil {
		opts = append(opts, content.WithRecorder(rec))
	}
	loader := content.NewLoader(cfg.Content.BaseURL, cfg.Content.FallbackDir, cfg.Content.Timeout, log, opts...)
	return content.Open(ctx, loader, cfg.Content.Resources...)
}

func newContactService(cfg *config.Config, log logger.Logger, rec contact.Recorder) *contact.Service {
	sender := contact.NewSender(contact.Options{
		Endpoint: cfg.Contact.Endpoint,
		Timeout:  cfg.Contact.Timeout,
		SMTP: contact.SMTPSettings{
			Host:     cfg.Contact.SMTP.Host,
			Port:     cfg.Contact.SMTP.Port,
			User:     cfg.Contact.SMTP.User,
			Password: cfg.Contact.SMTP.Password,
			To:       cfg.Contact.SMTP.To,
		},
	})
	log.Info("Contact delivery configured", logger.String("channel", sender.Name()))
	return contact.NewService(sender, log, rec)
}
