package handler

import (
	"errors"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"encly/internal/config"
	"encly/internal/domain"
	"encly/internal/logger"
	"encly/internal/metrics"
	"encly/internal/service"
	"encly/internal/shortener"
	"encly/internal/validation"
)

type messageResponse struct {
	Message string `json:"message"`
}

var (
	errInvalidBody     = messageResponse{Message: "Invalid request body."}
	errInvalidLink     = messageResponse{Message: "Invalid link."}
	errLinkNotFound    = messageResponse{Message: "Link not found."}
	errLinkExpired     = messageResponse{Message: "Expired link."}
	errCodeUnavailable = messageResponse{Message: "Could not allocate a short code, try again."}
	errInternal        = messageResponse{Message: "Internal server error."}
	respHealthOK       = map[string]string{"status": "OK"}
)

type Handler struct {
	links          LinkService
	urlValidator   URLValidator
	logger         *slog.Logger
	recorder       BusinessRecorder
	codeLength     int
	defaultTTLDays int
}

func New(
	links LinkService,
	urlValidator URLValidator,
	logger *slog.Logger,
	recorder BusinessRecorder,
	cfg *config.LinkConfig,
) *Handler {
	return &Handler{
		links:          links,
		urlValidator:   urlValidator,
		logger:         logger,
		recorder:       recorder,
		codeLength:     cfg.CodeLength,
		defaultTTLDays: cfg.DefaultTTLDays,
	}
}

// Register mounts the routes. Static routes win over the short code
// parameter in echo's router.
func (h *Handler) Register(e *echo.Echo) {
	if e.Validator == nil {
		e.Validator = validation.NewStructValidator()
	}
	e.GET("/health", h.Health)
	e.GET("/links", h.ListLinks)
	e.POST("/links", h.CreateLink)
	e.POST("/links/batch", h.CreateLinkBatch)
	e.GET("/:shortCode", h.Redirect)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, respHealthOK)
}

func (h *Handler) CreateLink(c echo.Context) error {
	var req domain.CreateLinkRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: validation.Message(err)})
	}
	if err := h.urlValidator.ValidateURL(req.URL); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: validation.Message(err)})
	}

	link, err := h.links.CreateLink(c.Request().Context(), req.URL, h.ttl(req.TTLDays))
	if err != nil {
		return h.createError(c, err)
	}

	return c.JSON(http.StatusCreated, h.toResponse(link))
}

func (h *Handler) CreateLinkBatch(c echo.Context) error {
	var req domain.CreateLinkBatchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: validation.Message(err)})
	}
	if err := h.urlValidator.ValidateBatch(req.URLs); err != nil {
		var batchErr *validation.BatchValidationError
		if errors.As(err, &batchErr) {
			return c.JSON(http.StatusBadRequest, formatBatchErrors(batchErr))
		}
		return c.JSON(http.StatusBadRequest, messageResponse{Message: validation.Message(err)})
	}

	links, err := h.links.CreateLinks(c.Request().Context(), req.URLs, h.ttl(req.TTLDays))
	if err != nil {
		return h.createError(c, err)
	}

	resp := domain.CreateLinkBatchResponse{Links: make([]domain.CreateLinkResponse, len(links))}
	for i, link := range links {
		resp.Links[i] = h.toResponse(link)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *Handler) ListLinks(c echo.Context) error {
	links, err := h.links.ListLinks(c.Request().Context())
	if err != nil {
		h.log(c).Error("failed to list links", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errInternal)
	}

	views := make([]domain.LinkView, len(links))
	for i, l := range links {
		views[i] = domain.LinkView{
			ID:           l.ID.String(),
			ShortURL:     h.links.ShortURL(l.ShortCode),
			OriginalURL:  l.OriginalURL,
			CreatedAt:    l.CreatedAt,
			ExpiresAt:    l.ExpiresAt,
			ClickCount:   l.ClickCount,
			LastAccessed: l.LastAccessed,
		}
	}
	return c.JSON(http.StatusOK, views)
}

func (h *Handler) Redirect(c echo.Context) error {
	code := c.Param("shortCode")
	if !shortener.IsValid(code, h.codeLength) {
		return c.JSON(http.StatusBadRequest, errInvalidLink)
	}

	res, err := h.links.Resolve(c.Request().Context(), code,
		optional(c.RealIP()), optional(c.Request().UserAgent()))
	if err != nil {
		h.log(c).Error("failed to resolve link",
			slog.String("short_code", code),
			slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errInternal)
	}

	switch res.Status {
	case domain.StatusNotFound:
		return c.JSON(http.StatusNotFound, errLinkNotFound)
	case domain.StatusExpired:
		return c.JSON(http.StatusGone, errLinkExpired)
	}

	h.recorder.RecordBusiness(metrics.ReferrerRedirects, 1, map[string]string{
		"referrer": extractDomain(c.Request().Referer()),
	})
	return c.Redirect(http.StatusFound, res.Link.OriginalURL)
}

func (h *Handler) ttl(requested *int) int {
	if requested != nil {
		return *requested
	}
	return h.defaultTTLDays
}

func (h *Handler) createError(c echo.Context, err error) error {
	if errors.Is(err, service.ErrCodeSpaceExhausted) {
		h.log(c).Error("short code space exhausted", slog.String("error", err.Error()))
		return c.JSON(http.StatusServiceUnavailable, errCodeUnavailable)
	}
	h.log(c).Error("failed to create link", slog.String("error", err.Error()))
	return c.JSON(http.StatusInternalServerError, errInternal)
}

func (h *Handler) toResponse(link *domain.Link) domain.CreateLinkResponse {
	return domain.CreateLinkResponse{
		ShortCode:   link.ShortCode,
		ShortURL:    h.links.ShortURL(link.ShortCode),
		OriginalURL: link.OriginalURL,
		ExpiresAt:   link.ExpiresAt,
	}
}

func (h *Handler) log(c echo.Context) *slog.Logger {
	return logger.FromContext(c.Request().Context(), h.logger)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// extractDomain reduces a Referer header to the referrer label: "direct"
// when absent, "unknown" without a host, otherwise the lowercased host with
// any "www." prefix and default port dropped.
func extractDomain(referer string) string {
	if referer == "" {
		return "direct"
	}

	parsed, err := url.Parse(referer)
	if err != nil || parsed.Hostname() == "" {
		return "unknown"
	}

	host := strings.TrimPrefix(strings.ToLower(parsed.Hostname()), "www.")
	port := parsed.Port()
	if port == "" || defaultPorts[strings.ToLower(parsed.Scheme)] == port {
		return host
	}
	return net.JoinHostPort(host, port)
}

var defaultPorts = map[string]string{"http": "80", "https": "443"}

type batchErrorItem struct {
	Index   int    `json:"index"`
	Message string `json:"message"`
}

type batchErrorResponse struct {
	Message string           `json:"message"`
	Errors  []batchErrorItem `json:"errors"`
}

func formatBatchErrors(err *validation.BatchValidationError) batchErrorResponse {
	items := make([]batchErrorItem, len(err.Errors))
	for i, e := range err.Errors {
		items[i] = batchErrorItem{Index: e.Index, Message: validation.Message(e.Err)}
	}
	return batchErrorResponse{Message: "Invalid URL.", Errors: items}
}
