package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/WangWilly/threadStats/pkgs/clients/threadsclient"
	"github.com/WangWilly/threadStats/pkgs/config"
	"github.com/WangWilly/threadStats/pkgs/export"
	"github.com/WangWilly/threadStats/pkgs/logging"
	"github.com/WangWilly/threadStats/pkgs/tokenstore"

	"github.com/gookit/color"
	log "github.com/sirupsen/logrus"
)

func main() {
	year := flag.Int("year", time.Now().Year(), "calendar year to export")
	out := flag.String("out", "", "output file path (defaults to threads_archive_<year>.csv)")
	confPath := flag.String("config", "", "path to the yaml configuration file")
	flag.Parse()

	logging.InitLogger(false, os.Stderr)

	store := tokenstore.NewMemoryStore()
	if *confPath != "" {
		conf, err := config.ReadConfig(*confPath)
		if err != nil {
			log.Fatalf("failed to read config %s: %v", *confPath, err)
		}
		if conf.AccessToken != "" {
			store.Set(context.Background(), conf.AccessToken)
		}
	}

	token, err := store.Get(context.Background())
	if err != nil {
		log.Fatalf("no access token: set %s or provide a config file", tokenstore.ENV_ACCESS_TOKEN)
	}

	////////////////////////////////////////////////////////////////////////////

	ctx := context.Background()
	client := threadsclient.New()

	log.Infoln("fetching posts for", color.FgLightBlue.Render(fmt.Sprint(*year)))
	posts, err := client.ListPostsByYear(ctx, token, *year, time.Now())
	if err != nil {
		log.Fatalf("failed to fetch posts: %v", err)
	}
	log.Infoln("collected", color.FgLightMagenta.Render(fmt.Sprint(len(posts))), "posts")

	content, err := export.ArchiveCSV(posts)
	if err != nil {
		log.Fatalf("failed to build archive: %v", err)
	}

	path := *out
	if path == "" {
		path = export.ArchiveFilename(*year)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		log.Fatalf("failed to write %s: %v", path, err)
	}

	log.Infoln("archive written to", color.FgLightBlue.Render(path))
}
