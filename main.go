package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/chw708/teresa-api/api"
	"github.com/chw708/teresa-api/assistant"
	"github.com/chw708/teresa-api/daily"
	"github.com/chw708/teresa-api/external/ai"
	"github.com/chw708/teresa-api/schema"
	"github.com/chw708/teresa-api/store"
	"github.com/chw708/teresa-api/utils"
)

func initConfig(file string) {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("teresa")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("listen", ":8087")
	viper.SetDefault("mongo.database", "teresa")
	viper.SetDefault("log.level", "info")

	if file != "" {
		viper.SetConfigFile(file)
		if err := viper.ReadInConfig(); err != nil {
			log.WithError(err).Fatal("fail to read config file")
		}
	}
}

func initLog() {
	level, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stdout)
}

func main() {
	var configFile string
	flag.StringVar(&configFile, "c", "", "config file")
	flag.Parse()

	initConfig(configFile)
	initLog()
	utils.InitI18NBundle()

	mongoConn := viper.GetString("mongo.conn")
	if mongoConn == "" {
		log.Fatal("mongo.conn is not configured")
	}
	database := viper.GetString("mongo.database")

	if err := schema.NewMongoDBIndexer(mongoConn, database).IndexAll(); err != nil {
		log.WithError(err).Fatal("fail to create mongodb indexes")
	}

	healthStore, err := store.NewMongoStore(mongoConn, database)
	if err != nil {
		log.WithError(err).Fatal("fail to initialize store")
	}
	defer healthStore.Close()

	// warm the localized stretch tables so the first morning submission
	// does not pay for bundle parsing
	for _, lang := range []string{"en", "ko"} {
		if _, err := store.LoadStretchTable(lang); err != nil {
			log.WithError(err).WithField("lang", lang).Warn("fail to preload stretch table")
		}
	}

	var completer assistant.Completer
	if endpoint := viper.GetString("ai.endpoint"); endpoint != "" {
		completer = ai.New(endpoint, viper.GetString("ai.api_key"))
	} else {
		log.Warn("ai.endpoint is not configured; assistant runs scripted-only")
	}

	responder := assistant.NewResponder(completer)
	assistant.SetResponder(responder)
	generator := daily.NewGenerator(completer)

	server := api.NewServer(healthStore, responder, generator, viper.GetBool("trace"))

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.WithError(err).Error("fail to shutdown server")
		}
	}()

	log.WithField("listen", viper.GetString("listen")).Info("teresa api started")
	if err := server.Run(viper.GetString("listen")); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server stopped")
	}
}
