package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/WangWilly/threadStats/pkgs/aggregating"
	"github.com/WangWilly/threadStats/pkgs/clients/threadsclient"
	"github.com/WangWilly/threadStats/pkgs/config"
	"github.com/WangWilly/threadStats/pkgs/database"
	"github.com/WangWilly/threadStats/pkgs/logging"
	"github.com/WangWilly/threadStats/pkgs/repos/credentialrepo"
	"github.com/WangWilly/threadStats/pkgs/serverpkg/server"
	"github.com/WangWilly/threadStats/pkgs/tokenstore"

	"github.com/jmoiron/sqlx"
)

func main() {
	confPath := flag.String("config", "", "path to the yaml configuration file")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	conf := config.DefaultConfig()
	if *confPath != "" {
		loaded, err := config.ReadConfig(*confPath)
		if err != nil {
			log.Fatalf("Failed to read config %s: %v", *confPath, err)
		}
		conf = loaded
	}

	logFile, err := os.OpenFile("threadStats.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logFile.Close()
	logging.InitLogger(*debug, logFile)

	////////////////////////////////////////////////////////////////////////////

	store, db, err := buildTokenStore(conf)
	if err != nil {
		log.Fatalf("Failed to set up token store: %v", err)
	}
	if db != nil {
		defer db.Close()
	}
	if conf.AccessToken != "" {
		if err := store.Set(context.Background(), conf.AccessToken); err != nil {
			log.Fatalf("Failed to seed access token: %v", err)
		}
	}

	////////////////////////////////////////////////////////////////////////////

	client := threadsclient.New()
	logging.SetThreadsClientLogger(client, logFile)

	service := aggregating.New(client, aggregating.Config{
		MaxInsightRoutine: conf.MaxInsightRoutine,
		InsightTimeout:    conf.InsightTimeout(),
	})

	port := conf.Port
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}
	srv := server.New(server.Config{Port: port}, service, client, store)

	////////////////////////////////////////////////////////////////////////////

	log.Printf("Open http://localhost:%s to view the dashboard", port)
	if err := srv.Start(); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}

func buildTokenStore(conf *config.Config) (tokenstore.Store, *sqlx.DB, error) {
	if conf.Store.Backend != "db" {
		return tokenstore.NewMemoryStore(), nil, nil
	}

	var db *sqlx.DB
	var err error
	switch conf.Store.Driver {
	case "postgres":
		pg := conf.Store.Postgres
		db, err = database.ConnectPostgres(pg.Host, pg.Port, pg.User, pg.Password, pg.DBName)
	default:
		db, err = database.ConnectDatabase(conf.Store.SqlitePath)
	}
	if err != nil {
		return nil, nil, err
	}

	store := tokenstore.NewDBStore(db, credentialrepo.New(), credentialrepo.CREDENTIAL_NAME_THREADS)
	return store, db, nil
}
