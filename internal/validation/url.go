package validation

import (
	"net/url"
	"strings"

	"encly/internal/config"
)

var blockedProtocols = map[string]bool{
	"javascript": true,
	"data":       true,
	"file":       true,
	"vbscript":   true,
	"about":      true,
	"blob":       true,
}

var allowedProtocols = map[string]bool{
	"http":  true,
	"https": true,
}

// URLValidator checks destination URLs before links are created.
type URLValidator struct {
	maxLength       int
	maxBatchSize    int
	allowPrivateIPs bool
	ipValidator     *IPValidator
	self            serviceHost
}

// serviceHost identifies the public address short links are served from.
// port is empty when the base URL does not name one, in which case any port
// on the host counts as the service.
type serviceHost struct {
	hostname string
	port     string
}

// NewURLValidator builds a validator. baseURL is the public address short
// links are served from; destinations on it are rejected because they would
// redirect back into the service. An empty baseURL disables that check.
func NewURLValidator(cfg *config.ValidationConfig, baseURL string) *URLValidator {
	return &URLValidator{
		maxLength:       cfg.MaxURLLength,
		maxBatchSize:    cfg.MaxBatchSize,
		allowPrivateIPs: cfg.AllowPrivateIPs,
		ipValidator:     NewIPValidator(),
		self:            parseServiceHost(baseURL),
	}
}

func parseServiceHost(baseURL string) serviceHost {
	parsed, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil || parsed.Host == "" {
		return serviceHost{}
	}
	return serviceHost{hostname: normalizeHostname(parsed.Hostname()), port: parsed.Port()}
}

func normalizeHostname(h string) string {
	return strings.TrimSuffix(strings.ToLower(h), ".")
}

func (v *URLValidator) ValidateURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return ErrEmptyURL
	}
	if len(rawURL) > v.maxLength {
		return ErrURLTooLong
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ErrInvalidURLFormat
	}

	scheme := strings.ToLower(parsed.Scheme)
	if blockedProtocols[scheme] {
		return ErrUnsafeProtocol
	}
	if !allowedProtocols[scheme] || parsed.Host == "" || parsed.Hostname() == "" {
		return ErrInvalidURLFormat
	}
	// https://trusted.example@evil.example/ displays as the first host.
	if parsed.User != nil {
		return ErrCredentialsInURL
	}
	if v.pointsToService(parsed) {
		return ErrSelfReference
	}

	if !v.allowPrivateIPs {
		return v.ipValidator.ValidateHost(parsed.Host)
	}
	return nil
}

func (v *URLValidator) pointsToService(u *url.URL) bool {
	if v.self.hostname == "" || normalizeHostname(u.Hostname()) != v.self.hostname {
		return false
	}
	return v.self.port == "" || u.Port() == v.self.port
}

// ValidateBatch checks every URL and reports all failures by index.
func (v *URLValidator) ValidateBatch(urls []string) error {
	if len(urls) == 0 {
		return ErrEmptyBatch
	}
	if len(urls) > v.maxBatchSize {
		return ErrBatchTooLarge
	}

	var batchErrors []IndexedError
	for i, u := range urls {
		if err := v.ValidateURL(u); err != nil {
			batchErrors = append(batchErrors, IndexedError{Index: i, Err: err})
		}
	}
	if len(batchErrors) > 0 {
		return &BatchValidationError{Errors: batchErrors}
	}
	return nil
}
