package handlers

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"auditpdf/internal/config"
	"auditpdf/internal/domain"
	"auditpdf/internal/logging"
	"auditpdf/internal/render"
)

// AuditService bundles configuration and dependencies for audit PDF rendering.
type AuditService struct {
	Config *config.Config
	Redis  *redis.Client

	gen *render.Generator
}

// NewAuditService creates a new AuditService instance. The logo variant is
// selected here, once, from asset availability.
func NewAuditService(cfg config.Config, rdb *redis.Client) *AuditService {
	policy, err := render.ParsePolicy(cfg.PDF.TruncationPolicy)
	if err != nil {
		logging.Warn("Unknown truncation policy, using drop", "policy", cfg.PDF.TruncationPolicy)
	}
	return &AuditService{
		Config: &cfg,
		Redis:  rdb,
		gen:    render.NewGenerator(render.SelectLogo(cfg.PDF.LogoPath), policy),
	}
}

// HandleGenerate renders the audit document for the posted form fields and
// returns it base64-encoded in a JSON envelope.
func (svc *AuditService) HandleGenerate(c *fiber.Ctx) error {
	var req domain.AuditRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON body")
	}
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing required fields")
	}

	cacheKey := computeAuditCacheKey(req)
	if svc.Redis != nil && svc.Config.Cache.PDFCacheEnabled {
		if cached, err := svc.getCachedPDF(c, cacheKey); err == nil && cached != nil {
			return c.JSON(fiber.Map{"pdf": base64.StdEncoding.EncodeToString(cached)})
		}
	}

	timeout := time.Duration(svc.Config.PDF.TimeoutSecs) * time.Second
	ctx, cancel := context.WithTimeout(c.Context(), timeout)
	defer cancel()

	pdfBuf, err := svc.gen.Generate(ctx, req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			logging.Error("PDF generation timeout", "timeout_secs", svc.Config.PDF.TimeoutSecs, "error", err.Error())
			return fiber.NewError(fiber.StatusRequestTimeout, "PDF generation took too long")
		}
		logging.Error("PDF generation failed", "error", err.Error())
		return fiber.NewError(fiber.StatusInternalServerError, "PDF generation failed")
	}

	if svc.Redis != nil && svc.Config.Cache.PDFCacheEnabled {
		svc.setCachedPDF(c, cacheKey, pdfBuf)
	}

	requestID := c.Get("X-Request-ID")
	if requestID == "" {
		requestID = c.GetRespHeader("X-Request-ID")
	}
	logging.Info("Audit PDF generated", "name", req.Name, "bytes", len(pdfBuf), "request_id", requestID)

	return c.JSON(fiber.Map{"pdf": base64.StdEncoding.EncodeToString(pdfBuf)})
}

// computeAuditCacheKey creates a SHA256-based cache key over every request
// field, so any change in the form produces a distinct document.
func computeAuditCacheKey(req domain.AuditRequest) string {
	h := sha256.New()
	for _, v := range []string{req.Name, req.Email, req.Field, req.Website, req.Problem} {
		h.Write([]byte(v))
		h.Write([]byte{0})
	}
	return "auditpdf:" + hex.EncodeToString(h.Sum(nil))
}

// getCachedPDF attempts to retrieve a rendered document from Redis.
func (svc *AuditService) getCachedPDF(c *fiber.Ctx, key string) ([]byte, error) {
	ctxRedis, cancel := context.WithTimeout(c.Context(), 1*time.Second)
	defer cancel()

	cached, err := svc.Redis.Get(ctxRedis, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		logging.Warn("Redis read failed", "error", err)
		return nil, err
	}

	logging.Info("Audit PDF cache hit", "key", key)
	return cached, nil
}

// setCachedPDF stores a rendered document in Redis. Write failures are logged
// and never affect the response.
func (svc *AuditService) setCachedPDF(c *fiber.Ctx, key string, data []byte) {
	ctxRedis, cancel := context.WithTimeout(c.Context(), 1*time.Second)
	defer cancel()

	ttl := time.Duration(svc.Config.Cache.PDFCacheTTL)
	if ttl <= 0 {
		ttl = 1 * time.Minute
	}

	if err := svc.Redis.Set(ctxRedis, key, data, ttl).Err(); err != nil {
		logging.Warn("Redis write failed", "error", err)
	}
}
