package main

import (
	"context"
	"flag"
	"log"

	"inspection-system/migrations"
	"inspection-system/pkg/config"
	"inspection-system/pkg/database/postgresql"
	applogger "inspection-system/pkg/logger"
	"inspection-system/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 СИСТЕМА СИДЕРОВ (Наполнение БД)           ")
	log.Println("======================================================")

	runMigrate := flag.Bool("migrate", false, "Перед наполнением применить миграции")
	runReference := flag.Bool("reference", false, "Наполнить справочники: города, компании, объекты, типы, шаблоны, инспекторы")
	runAll := flag.Bool("all", false, "Эквивалентно -migrate -reference")
	flag.Parse()

	if !*runMigrate && !*runReference && !*runAll {
		log.Println("❌ Не выбран ни один сидер для запуска.")
		log.Println("Доступные флаги:")
		flag.PrintDefaults()
		log.Println("Пример: go run ./seeders/cmd/seed -all")
		return
	}

	cfg := config.New()
	logger := applogger.NewLogger(cfg.Log.Level, "")
	ctx := context.Background()

	dbPool, err := postgresql.ConnectDB(ctx, cfg.Postgres.DSN, cfg.Postgres.ConnectAttempts, logger)
	if err != nil {
		log.Fatalf("❌ Не удалось подключиться к БД: %v", err)
	}
	defer dbPool.Close()

	if *runAll || *runMigrate {
		if err := postgresql.Migrate(ctx, dbPool, migrations.FS, logger); err != nil {
			log.Fatalf("❌ Ошибка миграций: %v", err)
		}
	}

	if *runAll || *runReference {
		if err := seeders.SeedReferenceData(ctx, dbPool); err != nil {
			log.Fatalf("❌ Ошибка наполнения справочников: %v", err)
		}
	}

	log.Println("✅ Все указанные операции сидирования успешно завершены.")
}
