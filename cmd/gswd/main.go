package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/oceanum/seawater/gsw"
	"github.com/oceanum/seawater/saar"
	"github.com/oceanum/seawater/server"
)

func main() {
	cfgPath := flag.String("config", "", "path to ini config file")
	flag.Parse()

	log := logrus.New()

	cfg := server.DefaultConfig()
	if *cfgPath != "" {
		var err error
		cfg, err = server.LoadConfig(*cfgPath)
		if err != nil {
			log.WithError(err).Fatal("bad config")
		}
	}
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	} else {
		log.WithField("level", cfg.LogLevel).Warn("unknown log level, using info")
	}

	var sal *gsw.Salinity
	if cfg.AtlasPath != "" {
		atlas, err := saar.Load(cfg.AtlasPath)
		if err != nil {
			log.WithError(err).Fatal("load anomaly atlas")
		}
		sal = gsw.NewSalinity(atlas)
		log.WithField("path", cfg.AtlasPath).Info("anomaly atlas loaded")
	} else {
		log.Warn("no atlas configured, salinity-scale ops disabled")
	}

	srv := server.New(cfg, sal, log)
	if err := srv.Serve(); err != nil {
		log.WithError(err).Error("server stopped")
		os.Exit(1)
	}
}
