package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"habit-engine/internal/config"
	"habit-engine/internal/repository"
	"habit-engine/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	taskRepo := repository.NewTaskRepository(db)
	logRepo := repository.NewLogRepository(db)

	predictorSvc := service.NewPredictorService(taskRepo, logRepo, nil)

	exportJob := func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		n, err := predictorSvc.ExportTrainingRows(jobCtx, cfg.ExportPath, time.Now(), cfg.LookbackDays)
		if err != nil {
			log.Printf("training export: %v", err)
			return
		}
		log.Printf("[info] exported %d training rows to %s", n, cfg.ExportPath)
	}

	scheduler := service.NewSchedulerService(time.Local)
	if cfg.ExportAt != "" {
		if _, err := scheduler.ScheduleDaily(cfg.ExportAt, exportJob); err != nil {
			log.Fatalf("schedule export: %v", err)
		}
	} else {
		if _, err := scheduler.ScheduleInterval(cfg.ExportInterval, exportJob); err != nil {
			log.Fatalf("schedule export: %v", err)
		}
	}
	scheduler.Start()
	defer scheduler.Stop()

	log.Println("Habit engine started.")
	<-ctx.Done()
	log.Println("Shutdown complete.")
}
