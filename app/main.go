package main

import (
	"context"
	"dashboard/config"
	"dashboard/services/dashboard/delivery"
	"dashboard/services/dashboard/repository"
	"dashboard/services/dashboard/usecase"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var log *logrus.Logger
var wg sync.WaitGroup

const requestTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Fatalf("Error loading .env file")
	}

	log = config.GetLogrusInstance()

	startHTTP()
}

func startHTTP() {
	log.Info("Starting HTTP")
	app := fiber.New(config.GetFiberConfig())

	// CORS Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	db, err := config.BootDB(context.Background())
	if err != nil {
		log.Fatal("Failed to boot DB")
		return
	}
	defer db.Close()

	memberRepo := repository.NewMemberRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	customerRepo := repository.NewCustomerRepository(db)

	memberUC := usecase.NewMemberUseCase(memberRepo, requestTimeout)
	invoiceUC := usecase.NewInvoiceUseCase(invoiceRepo, requestTimeout)
	customerUC := usecase.NewCustomerUseCase(customerRepo, requestTimeout)

	delivery.NewMemberDelivery(app, memberUC)
	delivery.NewInvoiceDelivery(app, invoiceUC)
	delivery.NewCustomerDelivery(app, customerUC)

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Infof("Starting HTTP server for Public on port %s", config.GetFiberHttpPort())
		if err := app.Listen(config.GetFiberListenAddress()); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, os.Kill)

	<-signalChan

	log.Info("Shutting down the server...")

	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
	}

	wg.Wait()
	log.Info("Server shut down gracefully")
}
