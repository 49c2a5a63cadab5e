package main

import (
	"context"
	"flag"
	stdlog "log"
	"os"

	"shipping/internal/pkg/config"
	"shipping/internal/pkg/postgres"
	"shipping/pkg/logger"
	"shipping/pkg/logger/zap_adapter"
)

const usage = `usage: migrate <command> [args]

commands:
  up         применить все миграции
  up-by-one  применить следующую миграцию
  down       откатить последнюю миграцию
  status     показать состояние миграций
  version    показать текущую версию`

func main() {
	flag.Usage = func() {
		stdlog.Println(usage)
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}
	command, args := flag.Arg(0), flag.Args()[1:]

	zapLogger, err := zap_adapter.NewZapAdapter(os.Getenv("LOG_LEVEL"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	log := zapLogger.With(
		logger.NewField("binary", "migrate"),
		logger.NewField("command", command),
	)

	cfg, err := config.LoadDatabase()
	if err != nil {
		log.Error("load config", logger.NewField("error", err))
		os.Exit(1)
	}

	if err := postgres.Migrate(context.Background(), postgres.DSN(cfg), command, args...); err != nil {
		log.Error("migration failed", logger.NewField("error", err))
		os.Exit(1)
	}

	log.Info("migration finished")
}
