package main

import (
	"context"
	"errors"
	"log"

	"go.uber.org/zap"

	"github.com/armahcreates/iwil/internal/config"
	"github.com/armahcreates/iwil/internal/observability"
	"github.com/armahcreates/iwil/internal/persistence"
	"github.com/armahcreates/iwil/internal/repository"
	"github.com/armahcreates/iwil/internal/service"
	apperrors "github.com/armahcreates/iwil/pkg/util"
)

type demoUser struct {
	firstName    string
	lastName     string
	email        string
	password     string
	role         string
	organization string
	phone        string
}

var demoUsers = []demoUser{
	{"Dr. Sarah", "Johnson", "sarah.johnson@iwilprotocol.com", "demo123456", "doctor", "IWIL Medical Center", "+1 (555) 123-4567"},
	{"Michael", "Chen", "michael.chen@iwilprotocol.com", "demo123456", "nutritionist", "IWIL Wellness Clinic", "+1 (555) 234-5678"},
	{"Emily", "Rodriguez", "emily.rodriguez@iwilprotocol.com", "demo123456", "nurse", "IWIL Health Services", "+1 (555) 345-6789"},
	{"Dr. James", "Wilson", "james.wilson@iwilprotocol.com", "demo123456", "therapist", "IWIL Therapy Center", "+1 (555) 456-7890"},
	{"Lisa", "Thompson", "lisa.thompson@iwilprotocol.com", "demo123456", "wellness-coach", "IWIL Wellness Institute", "+1 (555) 567-8901"},
	{"Admin", "User", "admin@iwilprotocol.com", "admin123456", "administrator", "IWIL Protocol HQ", "+1 (555) 678-9012"},
}

// seed inserts the demo staff roster plus sample clients and reports.
// Existing rows are skipped, so reruns are safe.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.Postgres.DSN == "" {
		log.Fatal("DATABASE_URL is required to seed; demo mode seeds itself in memory")
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	pool := pg.PoolHandle()
	staffRepo := repository.NewStaffRepository(pool)
	clientRepo := repository.NewClientRepository(pool)
	reportRepo := repository.NewReportRepository(pool)

	authService := service.NewAuthService(cfg.Auth, staffRepo, nil)

	created, skipped := 0, 0
	for _, user := range demoUsers {
		_, err := authService.Register(ctx, service.RegisterInput{
			FirstName:    user.firstName,
			LastName:     user.lastName,
			Email:        user.email,
			Password:     user.password,
			Role:         user.role,
			Organization: user.organization,
			Phone:        user.phone,
		})
		switch {
		case err == nil:
			created++
			logger.Info("seeded staff account", zap.String("email", user.email), zap.String("role", user.role))
		case isDuplicate(err):
			skipped++
			logger.Info("staff account already exists", zap.String("email", user.email))
		default:
			logger.Fatal("failed to seed staff account", zap.String("email", user.email), zap.Error(err))
		}
	}

	if err := seedSampleData(ctx, clientRepo, reportRepo); err != nil {
		logger.Fatal("failed to seed sample data", zap.Error(err))
	}

	logger.Info("demo data seeding completed", zap.Int("created", created), zap.Int("skipped", skipped))
}

func seedSampleData(ctx context.Context, clients repository.ClientRepository, reports repository.ReportRepository) error {
	demoClients, err := repository.NewMemoryClientRepository().List(ctx)
	if err != nil {
		return err
	}
	for i := range demoClients {
		if err := clients.Insert(ctx, &demoClients[i]); err != nil {
			return err
		}
	}

	demoReports, err := repository.NewMemoryReportRepository().List(ctx)
	if err != nil {
		return err
	}
	for i := range demoReports {
		if err := reports.Insert(ctx, &demoReports[i]); err != nil {
			return err
		}
	}
	return nil
}

func isDuplicate(err error) bool {
	if errors.Is(err, repository.ErrDuplicateEmail) {
		return true
	}
	return apperrors.ToDomainError(err).Code == "DUPLICATE_ACCOUNT"
}
