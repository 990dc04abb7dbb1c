package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/ytget/ytfetch/internal/api"
	"github.com/ytget/ytfetch/internal/config"
	"github.com/ytget/ytfetch/internal/download"
	"github.com/ytget/ytfetch/internal/logging"
	"github.com/ytget/ytfetch/internal/model"
	termview "github.com/ytget/ytfetch/internal/term"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		return 2
	}

	var (
		videoURL    = flag.String("url", "", "URL of the video to download (required)")
		quality     = flag.String("quality", string(model.DefaultQuality), "quality preset: highest, medium, lowest")
		fileType    = flag.String("type", string(model.DefaultFileType), "file type: mp4, mp3")
		serverURL   = flag.String("server", cfg.ServerURL, "job server URL")
		interval    = flag.Duration("interval", cfg.PollInterval, "delay between status checks")
		maxPolls    = flag.Int("max-polls", cfg.MaxPolls, "give up after this many status checks (0 = never)")
		timeout     = flag.Duration("timeout", cfg.Timeout, "give up after this long (0 = never)")
		logLevel    = flag.String("log-level", cfg.LogLevel, "DEBUG, INFO, WARN, ERROR, FATAL")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("ytfetch v%s\n", version)
		return 0
	}

	if *videoURL == "" && flag.NArg() > 0 {
		*videoURL = flag.Arg(0)
	}
	if *videoURL == "" {
		flag.Usage()
		return 2
	}

	logger, err := logging.New(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		return 2
	}
	defer logger.Sync()

	client, err := api.NewClient(*serverURL, api.WithLogger(logger))
	if err != nil {
		logger.Error("invalid server", zap.Error(err))
		return 2
	}

	req := model.DownloadRequest{
		URL:      *videoURL,
		Quality:  model.Quality(*quality),
		FileType: model.FileType(*fileType),
	}

	view := termview.NewView(os.Stdout, term.IsTerminal(int(os.Stdout.Fd())))
	opts := download.Options{
		PollInterval: *interval,
		MaxPolls:     *maxPolls,
		Timeout:      *timeout,
	}
	ctrl := download.NewController(client, staticForm(req), view, view, logger, opts)
	ctrl.SetStateCallback(view.OnStateChange)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := ctrl.Submit(ctx); err != nil {
		return 1
	}
	return 0
}

// staticForm serves the request built from flags
type staticForm model.DownloadRequest

func (f staticForm) Request() model.DownloadRequest {
	return model.DownloadRequest(f)
}
