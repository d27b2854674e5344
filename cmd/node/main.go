package main

import (
	"log"

	"github.com/spf13/pflag"

	"ticketchain/api"
	"ticketchain/config"
)

func main() {
	configPath := pflag.String("config", "", "path to YAML config file")
	listenAddr := pflag.String("listen", "", "listen address, overrides the config file")
	pflag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal("Failed to load config: ", err)
		}
		cfg = loaded
	}
	if *listenAddr != "" {
		cfg.ListenAddr = *listenAddr
	}

	// One engine per process; every handler goes through it.
	log.Println("Starting ticket ledger node...")
	log.Fatal(api.StartNode(cfg.ListenAddr)) // blocks forever
}
