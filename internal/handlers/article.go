package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jayt9/article-downloader/internal/domain"
	"github.com/jayt9/article-downloader/internal/pipeline"
	u "github.com/jayt9/article-downloader/internal/utils"
)

// ArticleRequest is the inbound payload for /process-article.
type ArticleRequest struct {
	URL   string `json:"url"`
	Email string `json:"email"`
}

// Validate performs the shallow syntactic checks the service promises:
// URL scheme prefix and the presence of '@' and '.' in the email. Full
// RFC compliance is intentionally out of scope.
func (r ArticleRequest) Validate() error {
	if !strings.HasPrefix(r.URL, "http://") && !strings.HasPrefix(r.URL, "https://") {
		return &domain.ValidationError{Field: "url", Reason: "must start with http:// or https://"}
	}
	if !strings.Contains(r.Email, "@") || !strings.Contains(r.Email, ".") {
		return &domain.ValidationError{Field: "email", Reason: "invalid email format"}
	}
	return nil
}

// ArticleService bundles configuration and the pipeline for the
// article endpoints.
type ArticleService struct {
	Config   *u.Config
	Pipeline *pipeline.Pipeline
}

// NewArticleService creates a new ArticleService instance.
func NewArticleService(cfg u.Config, pl *pipeline.Pipeline) *ArticleService {
	return &ArticleService{
		Config:   &cfg,
		Pipeline: pl,
	}
}

// HandleHealth reports service liveness. No auth, no side effects.
func (svc *ArticleService) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "healthy"})
}

// HandleProcessArticle validates the request and runs the pipeline,
// mapping each failure kind to its HTTP status.
func (svc *ArticleService) HandleProcessArticle(c *fiber.Ctx) error {
	var req ArticleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	if err := svc.Pipeline.Run(c.Context(), req.URL, req.Email); err != nil {
		return mapPipelineError(c, err)
	}

	requestID := c.Get("X-Request-ID")
	if requestID == "" {
		requestID = c.GetRespHeader("X-Request-ID")
	}
	u.Info("Article sent", "url", req.URL, "request_id", requestID)

	return c.JSON(fiber.Map{"message": "Article has been processed and sent to your email!"})
}

func mapPipelineError(c *fiber.Ctx, err error) error {
	var fetchErr *domain.FetchError
	var sumErr *domain.SummarizeError

	switch {
	case errors.Is(err, domain.ErrMissingCredentials):
		return fiber.NewError(fiber.StatusInternalServerError,
			"Email configuration is missing. Please set EMAIL_USER and EMAIL_PASSWORD in your environment")
	case errors.As(err, &fetchErr):
		u.Warn("Article fetch failed", "url", fetchErr.URL, "error", fetchErr.Err.Error())
		return fiber.NewError(fiber.StatusBadRequest, "Failed to fetch article: "+fetchErr.Err.Error())
	case errors.As(err, &sumErr):
		u.Error("Article summarization failed", "error", sumErr.Err.Error())
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to process article content: "+sumErr.Err.Error())
	default:
		u.Error("Article processing failed", "path", c.Path(), "error", err.Error())
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to process or send article: "+err.Error())
	}
}
