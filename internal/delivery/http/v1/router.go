package v1

import (
	"time"

	"cv-manager-backend/config"
	"cv-manager-backend/internal/delivery/http/middleware"
	"cv-manager-backend/internal/domain"
	"cv-manager-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const BasePath = "/api/v1"

type RouterDeps struct {
	Config   *config.Config
	Tokens   middleware.TokenParser
	AuthUC   domain.AuthUsecase
	UserUC   domain.UserUsecase
	HealthUC usecase.HealthUsecase

	CVUC          domain.CrudUsecase[domain.CV, domain.CVCreate, domain.CVUpdate]
	JobUC         domain.CrudUsecase[domain.Job, domain.JobCreate, domain.JobUpdate]
	TaskUC        domain.CrudUsecase[domain.Task, domain.TaskCreate, domain.TaskUpdate]
	SkillUC       domain.CrudUsecase[domain.Skill, domain.SkillCreate, domain.SkillUpdate]
	SchoolUC      domain.CrudUsecase[domain.School, domain.SchoolCreate, domain.SchoolUpdate]
	ContactUC     domain.ContactUsecase
	KnowledgeUC   domain.CrudUsecase[domain.Knowledge, domain.KnowledgeCreate, domain.KnowledgeUpdate]
	LanguageUC    domain.CrudUsecase[domain.Language, domain.LanguageCreate, domain.LanguageUpdate]
	CertificateUC domain.CrudUsecase[domain.Certificate, domain.CertificateCreate, domain.CertificateUpdate]
	ItemUC        domain.CrudUsecase[domain.Item, domain.ItemCreate, domain.ItemUpdate]
}

func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second

	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(cfg.FrontendURL)) // CORS must be first
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group(BasePath)

	NewHealthHandler(v1, deps.HealthUC)
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	public := v1.Group("")
	public.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(cfg.RateLimitGlobalThreshold, window)))

	protected := public.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.AuthUC))

	admin := protected.Group("")
	admin.Use(middleware.RequireSuperuser())

	loginLimit := middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig(cfg.RateLimitLoginThreshold, window))
	uploadLimit := middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig(cfg.RateLimitUploadThreshold, window))

	NewAuthHandler(public, protected, deps.AuthUC, cfg.AccessTokenMinutes, loginLimit)
	NewUserHandler(public, protected, admin, deps.UserUC)

	NewCVHandler(protected, deps.CVUC)
	NewJobHandler(protected, deps.JobUC)
	NewTaskHandler(protected, deps.TaskUC)
	NewSkillHandler(protected, deps.SkillUC)
	NewSchoolHandler(protected, deps.SchoolUC)
	NewContactHandler(protected, deps.ContactUC, uploadLimit)
	NewKnowledgeHandler(protected, deps.KnowledgeUC)
	NewLanguageHandler(protected, deps.LanguageUC)
	NewCertificateHandler(protected, deps.CertificateUC)
	NewItemHandler(protected, deps.ItemUC)

	return r
}
