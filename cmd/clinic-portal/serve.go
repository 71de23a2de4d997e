package main

import (
	"clinic-portal-service/internal/app/config"
	"clinic-portal-service/internal/app/delivery/http/controllers"
	"clinic-portal-service/internal/app/delivery/http/middlewares"
	"clinic-portal-service/internal/app/delivery/http/routers"
	"clinic-portal-service/internal/app/drivers/database"
	"clinic-portal-service/internal/app/drivers/logger"
	"clinic-portal-service/internal/app/drivers/messaging"
	"clinic-portal-service/internal/app/drivers/storage"
	"clinic-portal-service/internal/app/services/clinic_api"
	"clinic-portal-service/internal/app/services/core/appointments"
	"clinic-portal-service/internal/app/services/core/auth"
	"clinic-portal-service/internal/app/services/core/notifications"
	"clinic-portal-service/internal/app/services/core/references"
	"clinic-portal-service/internal/app/services/core/roles"
	"clinic-portal-service/internal/app/services/core/session"
	"clinic-portal-service/internal/app/services/core/workflow"
	"clinic-portal-service/internal/app/services/shared/audit"
	"clinic-portal-service/internal/app/services/shared/locker"
	"clinic-portal-service/internal/app/services/shared/mailer"
	"clinic-portal-service/internal/app/services/shared/redis"
	minioStorage "clinic-portal-service/internal/app/services/shared/storage"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the clinic portal HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context())
		},
	}
}

func runServer(ctx context.Context) error {
	internalConfig, driverConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		return err
	}

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Error("Error loading location", zap.String("timezone", internalConfig.App.Timezone), zap.Error(err))
		return err
	}
	time.Local = location

	redisClient, err := database.NewRedisClient(ctx, driverConfig, log)
	if err != nil {
		log.Error("Error connecting to Redis", zap.Error(err))
		return err
	}
	mongoDB, err := database.NewMongoDB(ctx, driverConfig, log)
	if err != nil {
		log.Error("Error connecting to MongoDB", zap.Error(err))
		return err
	}
	rabbitMQ, err := messaging.NewRabbitMQ(driverConfig, log)
	if err != nil {
		log.Error("Error connecting to RabbitMQ", zap.Error(err))
		return err
	}
	minioClient, err := storage.NewMinio(driverConfig, log)
	if err != nil {
		log.Error("Error initializing MinIO", zap.Error(err))
		return err
	}

	err = messaging.DeclareQueue(rabbitMQ, internalConfig.RabbitMQ.MailerQueue)
	if err != nil {
		log.Error("Error declaring mailer queue", zap.Error(err))
		return err
	}
	err = storage.EnsureBucket(ctx, minioClient, internalConfig.Minio.BucketName)
	if err != nil {
		log.Error("Error ensuring certificate bucket", zap.Error(err))
		return err
	}

	chiRouter := chi.NewRouter()
	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		MongoDB:        mongoDB,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         log,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Error("Error bootstrapping the app", zap.Error(err))
		return err
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler: chiRouter,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Server started", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	select {
	case <-c:
	case err := <-serverErr:
		log.Error("Server failed to start", zap.Error(err))
		return err
	}

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Error closing drivers", zap.Error(err))
		return err
	}

	log.Info("Server exiting")
	return nil
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	internalConfig := bootstrap.InternalConfig
	log := bootstrap.Logger
	requestTimeout := time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second

	// Shared infrastructure
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, log)
	auditRepository := audit.NewAuditMongoRepository(
		bootstrap.MongoDB.Database(internalConfig.MongoDB.DBName),
		internalConfig.MongoDB.AuditCollection,
	)
	auditService := audit.NewAuditService(auditRepository, internalConfig.App.AuditRecentEventsMaxLimit, log)
	retentionWorker := audit.NewRetentionWorker(
		auditRepository,
		lockService,
		internalConfig.Audit.RetentionInDays,
		internalConfig.Audit.RetentionCronSpec,
		log,
	)
	retentionWorker.Start(context.Background())
	bootstrap.AuditWorkerStop = retentionWorker.Stop
	mailerService, err := mailer.NewMailerService(bootstrap.RabbitMQ, internalConfig.RabbitMQ.MailerQueue, log)
	if err != nil {
		return err
	}
	certificateStorage := minioStorage.NewMinioStorage(bootstrap.Minio, internalConfig.Minio.PublicBaseUrl, log)

	// Clinic backend
	clinicApiClient := clinic_api.NewClinicApiClient(
		internalConfig.ClinicApi.BaseUrl,
		time.Duration(internalConfig.ClinicApi.RequestTimeoutInSeconds)*time.Second,
		internalConfig.ClinicApi.RateLimitPerSecond,
		internalConfig.ClinicApi.RateLimitBurst,
		log,
	)
	authClinicClient := clinic_api.NewAuthClinicClient(clinicApiClient)
	appointmentClinicClient := clinic_api.NewAppointmentClinicClient(clinicApiClient)
	doctorClinicClient := clinic_api.NewDoctorClinicClient(clinicApiClient)
	testTypeClinicClient := clinic_api.NewTestTypeClinicClient(clinicApiClient)
	testResultClinicClient := clinic_api.NewTestResultClinicClient(clinicApiClient)
	regimenClinicClient := clinic_api.NewRegimenClinicClient(clinicApiClient)
	componentClinicClient := clinic_api.NewComponentClinicClient(clinicApiClient)
	treatmentClinicClient := clinic_api.NewTreatmentClinicClient(clinicApiClient)
	patientClinicClient := clinic_api.NewPatientClinicClient(clinicApiClient)
	recordClinicClient := clinic_api.NewRecordClinicClient(clinicApiClient)

	// Session and permissions
	sessionService := session.NewSessionService(redisRepository, internalConfig.Session.SealSecret, log)
	permissionService, err := roles.NewPermissionService()
	if err != nil {
		log.Error("Error loading role policy", zap.Error(err))
		return err
	}

	// Usecases
	authUsecase := auth.NewAuthUsecase(authClinicClient, sessionService, permissionService, auditService, internalConfig, log)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentClinicClient, doctorClinicClient, auditService, log)
	treatmentNotifier := notifications.NewTreatmentNotifier(patientClinicClient, mailerService, internalConfig, log)
	workflowDraftRepository := workflow.NewWorkflowDraftRedisRepository(
		redisRepository,
		time.Duration(internalConfig.Workflow.DraftExpiredTimeInHours)*time.Hour,
	)
	workflowUsecase := workflow.NewWorkflowUsecase(
		workflowDraftRepository,
		lockService,
		appointmentClinicClient,
		testTypeClinicClient,
		testResultClinicClient,
		regimenClinicClient,
		componentClinicClient,
		treatmentClinicClient,
		treatmentNotifier,
		auditService,
		internalConfig,
		log,
	)
	referenceUsecase := references.NewReferenceUsecase(recordClinicClient, certificateStorage, auditService, internalConfig, log)

	// Middlewares
	mw := middlewares.NewMiddlewares(
		log,
		authUsecase,
		permissionService,
		referenceUsecase,
		redisRepository,
		lockService,
		internalConfig,
	)

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		mw,
		routers.NewLoginRateLimiter(internalConfig, mw),
		&routers.Controllers{
			Auth:        controllers.NewAuthController(log, authUsecase, requestTimeout),
			Appointment: controllers.NewAppointmentController(log, appointmentUsecase, requestTimeout),
			Workflow:    controllers.NewWorkflowController(log, workflowUsecase, requestTimeout),
			Reference:   controllers.NewReferenceController(log, referenceUsecase, internalConfig, requestTimeout),
			Audit:       controllers.NewAuditController(log, auditService, requestTimeout),
		},
	)
	return nil
}
