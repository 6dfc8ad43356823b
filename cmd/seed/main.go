package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"econgov-portal/internal/portal/config"
	"econgov-portal/internal/portal/dto"
	"econgov-portal/internal/portal/repository"
	"econgov-portal/internal/portal/service"
	"econgov-portal/pkg/logger"
	"econgov-portal/pkg/postgres"

	"github.com/spf13/cobra"
)

var (
	configPath string
	exportPath string
)

// buildSeeder wires the repository and service graph needed by the seed
// commands against a live database.
func buildSeeder() (service.SeederService, *logger.Logger, func()) {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	db, err := postgres.NewDB(postgres.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
	}

	economicRepo := repository.NewEconomicDataRepository(db.DB)
	articleRepo := repository.NewArticleRepository(db.DB)
	eventRepo := repository.NewEventRepository(db.DB)
	categoryRepo := repository.NewCategoryRepository(db.DB)
	staffRepo := repository.NewStaffRepository(db.DB)
	programRepo := repository.NewProgramRepository(db.DB)
	resourceRepo := repository.NewResourceRepository(db.DB)

	contentSvc := service.NewContentService(articleRepo, eventRepo, categoryRepo, staffRepo, programRepo, resourceRepo, appLogger)
	seeder := service.NewSeederService(economicRepo, contentSvc, articleRepo, eventRepo, categoryRepo, staffRepo, programRepo, resourceRepo, appLogger)

	cleanup := func() {
		_ = appLogger.Sync()
		if sqlDB, err := db.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return seeder, appLogger, cleanup
}

func printOutput(output []string) {
	for _, line := range output {
		fmt.Println(line)
	}
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Upsert the literal seed datasets without deleting anything",
	Run: func(cmd *cobra.Command, args []string) {
		seeder, appLogger, cleanup := buildSeeder()
		defer cleanup()
		output, err := seeder.SeedAll(context.Background())
		printOutput(output)
		if err != nil {
			appLogger.Fatal("Seed failed", logger.ErrorField(err))
		}
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Wipe the seeded tables and reseed from the literal datasets",
	Run: func(cmd *cobra.Command, args []string) {
		seeder, appLogger, cleanup := buildSeeder()
		defer cleanup()
		output, err := seeder.RestoreAll(context.Background())
		printOutput(output)
		if err != nil {
			appLogger.Fatal("Restore failed", logger.ErrorField(err))
		}
	},
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Merge an export file into the store without deleting anything",
	Run: func(cmd *cobra.Command, args []string) {
		if exportPath == "" {
			log.Fatal("sync requires an export file, pass -f <file>")
		}
		payload, err := os.ReadFile(exportPath)
		if err != nil {
			log.Fatalf("Failed to read export file: %v", err)
		}
		var export dto.ExportFile
		if err := json.Unmarshal(payload, &export); err != nil {
			log.Fatalf("Malformed export file: %v", err)
		}

		seeder, appLogger, cleanup := buildSeeder()
		defer cleanup()
		output, err := seeder.Sync(context.Background(), &export)
		printOutput(output)
		if err != nil {
			appLogger.Fatal("Sync failed", logger.ErrorField(err))
		}
	},
}

func main() {
	rootCmd := &cobra.Command{Use: "seed"}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config.yaml", "Path to the configuration file")
	syncCmd.Flags().StringVarP(&exportPath, "file", "f", "", "Path to the export file")

	rootCmd.AddCommand(seedCmd, restoreCmd, syncCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing seed CLI: %s\n", err)
		os.Exit(1)
	}
}
