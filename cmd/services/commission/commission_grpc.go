package main

import (
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"

	rds "crm-commissions/config"
	"crm-commissions/internal/database"
	"crm-commissions/internal/jobs"
	"crm-commissions/internal/logger"
	"crm-commissions/internal/metrics"
	"crm-commissions/internal/services/commissions/handler"
	"crm-commissions/internal/services/commissions/repository"
	proto "crm-commissions/proto/protogen/commissions"
)

func main() {
	godotenv.Load()
	serverCfg := rds.LoadConfig()
	appLogger := logger.New(serverCfg.LogLevel)

	redisClient := rds.NewRedisClient(serverCfg.Redis)
	defer redisClient.Close()

	db, err := database.NewConnection(serverCfg.DB.DSN)
	if err != nil {
		log.Fatalf("Failed to connect to db: %v", err)
	}

	if err := database.MigrateCommissionDB(db); err != nil {
		log.Fatalf("Failed to migrate Commission database: %v", err)
	}

	lis, err := net.Listen("tcp", serverCfg.Commission.GRPCAddr)
	if err != nil {
		log.Fatalf("Failed to listen: %v", err)
	}

	s := grpc.NewServer()

	commissionHandler := handler.NewCommissionHandler(db, redisClient,
		handler.WithLogger(appLogger.With("service", "commission")),
		handler.WithCacheTTL(serverCfg.Commission.CacheTTL),
		handler.WithMetrics(metrics.Default),
	)
	proto.RegisterCommissionServiceServer(s, commissionHandler)

	if serverCfg.Jobs.BordereauCronEnabled {
		periodClose := jobs.NewPeriodCloseJob(repository.New(db), commissionHandler, appLogger.With("job", "period_close"), metrics.Default)
		cronManager := jobs.NewCronManager(periodClose, appLogger)
		if err := cronManager.SetupJobs(serverCfg.Jobs.BordereauCron); err != nil {
			log.Fatalf("Failed to schedule period close job: %v", err)
		}
		cronManager.Start()
		defer cronManager.Stop()
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		appLogger.Info("shutting down commission service")
		s.GracefulStop()
	}()

	log.Printf(" 💰 Commission service listening on %s", serverCfg.Commission.GRPCAddr)
	if err := s.Serve(lis); err != nil {
		log.Fatalf("Failed to serve: %v", err)
	}
}
