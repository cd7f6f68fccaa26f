package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/somnolent"
	"github.com/fwojciec/somnolent/fetch"
	"github.com/fwojciec/somnolent/goquery"
	"github.com/fwojciec/somnolent/html"
	somnolenthttp "github.com/fwojciec/somnolent/http"
	"github.com/fwojciec/somnolent/regexp2"
	somnolentslog "github.com/fwojciec/somnolent/slog"
	"github.com/fwojciec/somnolent/story"
	"github.com/fwojciec/somnolent/tweet"
	"github.com/google/uuid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher and Publisher replace the HTTP implementations when set.
	// Used for end-to-end testing.
	Fetcher   somnolent.Fetcher
	Publisher somnolent.Publisher

	// RetryDelays overrides fetch.DefaultRetryDelays.
	RetryDelays []time.Duration
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("somnolent"),
		kong.Description("Tweet a random sentence from the newest stories on somnolentworks.com"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars(vars()),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if err := cli.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", somnolent.ErrorMessage(err))
		return err
	}

	site := somnolent.Site{BaseURL: cli.BaseURL, IndexURL: cli.IndexURL}
	if err := site.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", somnolent.ErrorMessage(err))
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).
		With("run", uuid.NewString())

	// Requests are logged individually, spaced per host, then retried.
	var fetcher somnolent.Fetcher = m.Fetcher
	if fetcher == nil {
		fetcher = somnolenthttp.NewFetcher(somnolenthttp.WithTimeout(cli.Timeout))
	}
	fetcher = somnolentslog.NewLoggingFetcher(fetcher, logger)
	fetcher = fetch.NewLimitedFetcher(fetcher, cli.Rate)
	fetcher = fetch.NewRetryFetcher(fetcher, logger, m.RetryDelays)
	defer fetcher.Close()

	segmenter, err := regexp2.NewSegmenter(somnolent.DefaultAbbreviations())
	if err != nil {
		return fmt.Errorf("failed to build sentence pattern: %w", err)
	}

	var stories somnolent.StoryService = &story.Service{
		Site:      site,
		Fetcher:   fetcher,
		Locator:   goquery.NewLocator(site.BaseURL),
		Parser:    html.NewParser(),
		Sentences: segmenter,
	}
	stories = somnolentslog.NewLoggingStoryService(stories, logger)

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Composer: &tweet.Composer{
			Stories:   stories,
			MaxLength: cli.MaxLength,
			MaxTries:  cli.MaxTries,
			Logger:    logger,
		},
	}

	if !cli.DryRun {
		publisher := m.Publisher
		if publisher == nil {
			publisher = somnolenthttp.NewPublisher(cli.Token,
				somnolenthttp.WithAPIURL(cli.APIURL),
			)
		}
		deps.Publisher = somnolentslog.NewLoggingPublisher(publisher, logger)
	}

	cmd := &TweetCmd{DryRun: cli.DryRun}
	return cmd.Run(deps)
}
