package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/exonian/articlebot/pkg/logger"
	"github.com/exonian/articlebot/server/app"
	"github.com/exonian/articlebot/server/config"
	"github.com/exonian/articlebot/server/discord"
)

var rootCmd = &cobra.Command{
	Use:   "articlebot",
	Short: "Discord bot managing article channels for a student publication",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Connect to Discord and serve commands plus the deadline sweeper",
	RunE:  runCmdF,
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run one archival pass against the bound guild and exit",
	RunE:  sweepCmdF,
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(sweepCmd)
}

// deps is everything a subcommand needs after wiring.
type deps struct {
	log      zerolog.Logger
	settings *config.Settings
	store    *config.Store
	cfg      *config.BotConfig
	session  *discordgo.Session
	registry *app.Registry
	sweeper  *app.Sweeper
}

func wire() (*deps, error) {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	settings, err := config.LoadSettings(os.Getenv("ARTICLEBOT_SETTINGS"))
	if err != nil {
		return nil, err
	}
	log := logger.New(settings.LogLevel)

	token := os.Getenv("DISCORD_BOT_TOKEN")
	if token == "" {
		return nil, errors.New("DISCORD_BOT_TOKEN is not set")
	}

	store := config.NewStore(settings.StatePath)
	cfg, err := store.Load()
	if err != nil {
		return nil, errors.Wrap(err, "loading state")
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, errors.Wrap(err, "creating discord session")
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers

	gateway := discord.NewGateway(session, log)
	registry := app.NewRegistry(cfg, store, gateway, log)
	sweeper := app.NewSweeper(registry, log, app.SweeperOptions{
		Interval:   settings.SweepInterval,
		APITimeout: settings.APITimeout,
	})

	return &deps{
		log:      log,
		settings: settings,
		store:    store,
		cfg:      cfg,
		session:  session,
		registry: registry,
		sweeper:  sweeper,
	}, nil
}

func runCmdF(cmd *cobra.Command, args []string) error {
	d, err := wire()
	if err != nil {
		return err
	}

	bot := discord.NewBot(d.session, d.registry, d.log, d.settings.APITimeout)
	bot.RegisterHandlers()

	if err := d.session.Open(); err != nil {
		return errors.Wrap(err, "opening discord connection")
	}
	defer d.session.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if d.cfg.GuildID != "" {
		if err := bot.SyncCommands(ctx, d.cfg.GuildID); err != nil {
			d.log.Error().Err(err).Msg("could not sync commands at startup")
		}
		if _, err := d.registry.Reconcile(ctx); err != nil {
			d.log.Error().Err(err).Msg("startup reconciliation failed")
		}
	} else {
		d.log.Warn().Msg("no guild bound yet, run /setup from your server")
	}

	go d.sweeper.Run(ctx)

	d.log.Info().Dur("sweep_interval", d.settings.SweepInterval).Msg("articlebot running, press ctrl-c to exit")
	<-ctx.Done()

	d.log.Info().Msg("shutting down")
	if err := d.store.Save(d.cfg); err != nil {
		d.log.Error().Err(err).Msg("final state write failed")
	}
	return nil
}

func sweepCmdF(cmd *cobra.Command, args []string) error {
	d, err := wire()
	if err != nil {
		return err
	}

	if d.cfg.GuildID == "" {
		return app.ErrNotConfigured
	}

	if err := d.session.Open(); err != nil {
		return errors.Wrap(err, "opening discord connection")
	}
	defer d.session.Close()

	res := d.sweeper.SweepOnce(context.Background())
	fmt.Printf("archived %d article(s), %d failure(s)\n", len(res.Archived), len(res.Failures))
	for id, err := range res.Failures {
		fmt.Printf("  %s: %v\n", id, err)
	}
	if len(res.Failures) > 0 {
		return errors.New("sweep finished with failures")
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
