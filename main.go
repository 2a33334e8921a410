package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/go-redis/redis/v8"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/jangir-ritik/andamanexcursion-sub005/config"
	"github.com/jangir-ritik/andamanexcursion-sub005/database"
	"github.com/jangir-ritik/andamanexcursion-sub005/routes"
	ferry "github.com/jangir-ritik/andamanexcursion-sub005/services/ferry"
	"github.com/jangir-ritik/andamanexcursion-sub005/utils"
)

func main() {
	cfg := config.LoadConfig()

	if err := utils.InitLogger(); err != nil {
		log.Printf("Failed to init file loggers: %v", err)
	}

	// Подключение к PostgreSQL (хранилище броней)
	var db *gorm.DB
	if cfg.DBHost != "" {
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
		var err error
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to connect to postgres: %v", err)
		}
		log.Println("Connected to PostgreSQL")

		utils.SetDB(db)

		if err := database.Migrate(db); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
		log.Println("Migration complete")
	} else {
		log.Println("DB_HOST not set, booking persistence disabled")
	}

	// Подключение к Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     getenvOr("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Printf("Redis unavailable, snapshots disabled: %v", err)
	} else {
		utils.SetRedis(rdb)
		log.Println("Connected to Redis")
	}

	// Запуск фоновых задач
	go func() {
		sealink := ferry.NewSealinkService(cfg)
		makruzz := ferry.NewMakruzzService(cfg)
		greenOcean := ferry.NewGreenOceanService(cfg)

		ferry.StartHealthCron(ferry.NewHealthService(cfg.HealthTimeout, sealink, makruzz, greenOcean))
		ferry.StartLocationsCron(greenOcean)
	}()

	r := routes.SetupRouter(cfg, db)

	port := cfg.Port
	if port == "" {
		port = "8080"
	}
	log.Printf("Server is running on port %s", port)

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

func getenvOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
