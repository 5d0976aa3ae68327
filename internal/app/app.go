package app

import (
	"context"
	"fmt"
	"log"

	"apridrive/internal/config"
	"apridrive/internal/handler"
	"apridrive/internal/remote"
	"apridrive/internal/repository"
	"apridrive/internal/service"
	"apridrive/internal/stage"
)

func Run(cfg *config.Config) {
	ctx := context.Background()

	st, err := stage.New(cfg.UploadsDir)
	if err != nil {
		log.Fatal(err)
	}

	remoteStore, folder, err := newRemoteStore(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}

	recordStore, err := newRecordStore(cfg)
	if err != nil {
		log.Fatal(err)
	}

	var previewCache repository.PreviewCacheRepository
	if cfg.RedisAddr != "" {
		rdb, err := repository.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Printf("Redis unavailable, preview cache disabled: %v", err)
		} else {
			previewCache = repository.NewPreviewCacheRepository(rdb)
		}
	}

	ingestService := service.NewIngestService(remoteStore, st, folder)
	recordService := service.NewRecordService(recordStore, ingestService)
	fileService := service.NewFileService(remoteStore, previewCache)

	devMode := cfg.AppEnv != "production"
	recordHandler := handler.NewRecordHandler(recordService, st, devMode)
	fileHandler := handler.NewFileHandler(fileService, devMode)

	server := NewServer(recordHandler, fileHandler)
	server.Run(cfg.ServerPort)
}

func newRemoteStore(ctx context.Context, cfg *config.Config) (remote.Store, string, error) {
	switch cfg.StorageDriver {
	case "drive":
		store, err := remote.NewDriveStore(ctx, cfg.DriveClientID, cfg.DriveClientSecret, cfg.DriveRefreshToken)
		return store, cfg.DriveFolderID, err
	case "s3":
		store, err := remote.NewS3Store(ctx, remote.S3Config{
			Endpoint:        cfg.S3Endpoint,
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			PublicBaseURL:   cfg.S3PublicBaseURL,
		})
		return store, cfg.S3Folder, err
	}
	return nil, "", fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}

func newRecordStore(cfg *config.Config) (repository.RecordStore, error) {
	switch cfg.RecordStore {
	case "json":
		return repository.NewJSONFileStore(cfg.DataFile)
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.DBPort)
		db, err := repository.NewDB(dsn)
		if err != nil {
			return nil, err
		}
		return repository.NewPostgresStore(db)
	}
	return nil, fmt.Errorf("unknown record store %q", cfg.RecordStore)
}
