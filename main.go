package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/exp/slog"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"ytcollect/collect"
	"ytcollect/fetch"
	"ytcollect/progress"
)

func main() {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stderr))

	godotenv.Load()

	topic := flag.String("topic", "", "topic to search for (required)")
	target := flag.Int("max", collect.DefaultTarget, "maximum number of videos to collect")
	outputDir := flag.String("output", getParam("OUTPUT_DIR", "output"), "directory for the output file")
	flag.Parse()

	if *topic == "" {
		fmt.Fprintln(os.Stderr, "usage: ytcollect -topic <topic> [-max n] [-output dir]")
		os.Exit(2)
	}

	apiKey := getParam("YOUTUBE_API_KEY", "")
	if apiKey == "" {
		logger.Error("missing credential", fmt.Errorf("YOUTUBE_API_KEY is not set"))
		os.Exit(1)
	}

	ytClient, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		logger.Error("unable to create youtube service", err)
		os.Exit(1)
	}

	sink := progress.NewConsole(os.Stderr)
	defer sink.Stop()

	yt := fetch.NewYoutube(ytClient)
	searcher := fetch.NewSearcher(yt, sink, logger)
	transcripts := fetch.NewTranscriptClient(getParam("CAPTION_LANGUAGE", "en"))
	enricher := fetch.NewEnricher(yt, transcripts, sink, logger)

	collector := collect.NewCollector(searcher, enricher, *outputDir, *target, sink, logger)
	collector.Run(ctx, *topic)
}

func getParam(param, def string) string {
	if val, ok := os.LookupEnv(param); ok {
		return val
	}
	return def
}
