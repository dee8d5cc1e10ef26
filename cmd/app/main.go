package main

import (
	"FindNest/cmd/config"
	migration "FindNest/cmd/database/migrate"
	"FindNest/internal/utils"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("error connecting to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("error migrating database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("error creating app: %v", err)
	}

	addr := utils.GetConfig("LISTEN_ADDR")
	if addr == "" {
		addr = ":3000"
	}

	go func() {
		if err := app.Listen(addr); err != nil {
			log.Fatalf("error starting server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("error shutting down server: %v", err)
	}
	if err := config.CloseDB(db); err != nil {
		log.Printf("error closing database: %v", err)
	}
}
