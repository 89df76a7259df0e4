package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/akimenko/securevault/internal/biometric"
	"github.com/akimenko/securevault/internal/config"
	"github.com/akimenko/securevault/internal/gate"
	"github.com/akimenko/securevault/internal/logger"
	"github.com/akimenko/securevault/internal/service"
	"github.com/akimenko/securevault/internal/store"
	"github.com/akimenko/securevault/internal/validators"
	"github.com/akimenko/securevault/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewFileLogger("securevault")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	vault := service.NewVaultService(storages, validators.NewNoteValidator(), log)

	// the REPL and the challenger must share one buffered reader, or the
	// challenge prompt would swallow buffered command input
	stdin := bufio.NewReader(os.Stdin)
	challenger := biometric.NewTerminalChallenger(stdin, os.Stdout)

	g := gate.NewGate(vault, storages.Session, challenger, cfg.App, log)
	g.Restore(ctx)

	idleLock := workers.NewIdleLockWorker(g, cfg.Session.IdleTimeout, log)
	idleLock.Start(ctx)
	defer idleLock.Stop()

	ui := newRepl(g, stdin, os.Stdout, log)
	if err := ui.run(ctx); err != nil {
		log.Fatal().Err(err).Msg("vault run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
