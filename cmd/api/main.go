package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/zenbourg/agency-api/internal/config"
	"github.com/zenbourg/agency-api/internal/infrastructure/dynamo"
	jwtinfra "github.com/zenbourg/agency-api/internal/infrastructure/jwt"
	"github.com/zenbourg/agency-api/internal/infrastructure/payments"
	s3infra "github.com/zenbourg/agency-api/internal/infrastructure/s3"
	"github.com/zenbourg/agency-api/internal/infrastructure/smtp"
	"github.com/zenbourg/agency-api/internal/infrastructure/sns"
	transporthttp "github.com/zenbourg/agency-api/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	// Session credentials cannot be minted without a signing secret, so a
	// missing JWT_SECRET is fatal rather than a degraded mode.
	jwtProvider, err := jwtinfra.NewProvider(cfg)
	if err != nil {
		log.Fatalf("jwt provider: %v", err)
	}

	// S3 store for portfolio images.
	s3Client := s3infra.NewClient(cfg)
	s3Store := s3infra.NewStore(s3Client, cfg.S3BucketName)

	// SMTP mailer.
	mailer := smtp.NewMailer(cfg)

	// SNS SMS sender (optional — graceful fallback).
	var smsSender sns.SMSSender
	if sender, err := sns.NewSender(cfg); err == nil {
		smsSender = sender
	} else {
		log.Printf("WARN: SNS sender not available: %v", err)
	}

	deps := &transporthttp.Deps{
		UserRepo:         dynamo.NewUserRepo(dynamoClient, cfg.DynamoTables.Users),
		PendingUserRepo:  dynamo.NewPendingUserRepo(dynamoClient, cfg.DynamoTables.PendingUsers),
		VerificationRepo: dynamo.NewVerificationRepo(dynamoClient, cfg.DynamoTables.VerificationCodes),
		AppointmentRepo:  dynamo.NewAppointmentRepo(dynamoClient, cfg.DynamoTables.Appointments),
		ContactRepo:      dynamo.NewContactRepo(dynamoClient, cfg.DynamoTables.Contacts),
		OrderRepo:        dynamo.NewOrderRepo(dynamoClient, cfg.DynamoTables.Orders),
		PortfolioRepo:    dynamo.NewPortfolioRepo(dynamoClient, cfg.DynamoTables.Portfolio),
		S3Store:          s3Store,
		Mailer:           mailer,
		SMSSender:        smsSender,
		PaymentGateway:   payments.NewSimulatedGateway(),
		JWTProvider:      jwtProvider,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
