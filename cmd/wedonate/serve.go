package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wedonate/internal/auth"
	"wedonate/internal/db"
	"wedonate/internal/geocode"
	"wedonate/internal/lookup"
	"wedonate/internal/server"
	"wedonate/internal/service"
	"wedonate/internal/storage"
	"wedonate/internal/store"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var serveCommand = &cli.Command{
	Name:   "serve",
	Usage:  "Start the HTTP server",
	Action: serve,
}

func serve(cCtx *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	config, err := loadConfig()
	if err != nil {
		return err
	}

	awsConfig, err := loadAWSConfig(ctx, config.S3BucketRegion)
	if err != nil {
		return err
	}

	s3Client := s3.NewFromConfig(awsConfig)

	pool, err := db.Connect(ctx, config)
	if err != nil {
		return err
	}
	defer pool.Close()

	orgRepo := store.NewOrganizationRepository(pool)
	campaignRepo := store.NewCampaignRepository(pool)
	locationRepo := store.NewLocationRepository(pool)

	media := storage.NewS3Media(s3Client, config.S3BucketName, config.S3BucketRegion)
	geocoder := geocode.NewClient(config.GeocodeBaseURL, config.GeocodeUserAgent)
	cepClient := lookup.NewViaCEPClient(config.ViaCEPBaseURL)
	cnpjClient := lookup.NewCNPJClient(config.BrasilAPIBaseURL)

	tokens := auth.NewTokenIssuer(config.JWTSecret, time.Duration(config.TokenTTLHours)*time.Hour)

	orgService := service.NewOrganizationService(logger, orgRepo, campaignRepo, locationRepo, media, geocoder, tokens)
	campaignService := service.NewCampaignService(logger, campaignRepo, media)
	locationService := service.NewLocationService(logger, locationRepo, media)

	srv := server.New(
		config,
		logger,
		orgService,
		campaignService,
		locationService,
		tokens,
		cepClient,
		cnpjClient,
		pool,
	)

	go func() {
		logger.WithField("port", config.ServerPort).Infof("server starting http://localhost:%d", config.ServerPort)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Stop(shutdownCtx)
}
