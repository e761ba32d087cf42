package bootstrap

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/ravikt/tuitiondesk/internal/app/controllers"
	appRepos "github.com/ravikt/tuitiondesk/internal/app/repositories"
	appRoutes "github.com/ravikt/tuitiondesk/internal/app/routes"
	appServices "github.com/ravikt/tuitiondesk/internal/app/services"
	"github.com/ravikt/tuitiondesk/internal/config"
	appMiddleware "github.com/ravikt/tuitiondesk/internal/middleware"
	pkgAuth "github.com/ravikt/tuitiondesk/internal/pkg/auth"
	"github.com/ravikt/tuitiondesk/internal/pkg/docstore"
	"github.com/ravikt/tuitiondesk/internal/pkg/helpers"
	"github.com/ravikt/tuitiondesk/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService         appServices.AuthService
	StudentService      appServices.StudentService
	AdmissionService    appServices.AdmissionService
	SystemService       appServices.SystemService
	AuthController      *appControllers.AuthController
	StudentController   *appControllers.StudentController
	AdmissionController *appControllers.AdmissionController
	SystemController    *appControllers.SystemController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	Repos               *appRepos.Repositories
	JWTService          *pkgAuth.JWTService
	Store               *docstore.Store
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDocumentStore creates the document store and loads both documents
// from disk. Missing files yield empty documents; corrupt files are
// quarantined into the backup directory.
func SetupDocumentStore(cfg *config.Config, lgr zerolog.Logger) (*docstore.Store, *appRepos.Repositories, error) {
	store := docstore.NewStore(cfg.Storage.BackupDir)

	repos, err := appRepos.NewRepositories(store, cfg.Storage.StudentsFile, cfg.Storage.AdmissionsFile)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to load document files")
		return nil, nil, err
	}

	lgr.Info().
		Str("studentsFile", cfg.Storage.StudentsFile).
		Str("admissionsFile", cfg.Storage.AdmissionsFile).
		Str("backupDir", cfg.Storage.BackupDir).
		Msg("Document store ready")

	return store, repos, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, store *docstore.Store, repos *appRepos.Repositories, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr, Store: store, Repos: repos}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.Auth.JWTSecret,
		TokenExp:    helpers.ParseDuration(cfg.Auth.TokenExpiration, 12*time.Hour),
		TokenIssuer: cfg.Auth.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(cfg, deps.JWTService)
	deps.StudentService = appServices.NewStudentService(repos.Students)
	deps.AdmissionService = appServices.NewAdmissionService(repos.Admissions, repos.Students)
	deps.SystemService = appServices.NewSystemService(
		repos.Students,
		repos.Admissions,
		store,
		[]string{cfg.Storage.StudentsFile, cfg.Storage.AdmissionsFile},
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.AdmissionController = appControllers.NewAdmissionController(deps.AdmissionService)
	deps.SystemController = appControllers.NewSystemController(deps.SystemService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.AdmissionController,
		deps.SystemController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
