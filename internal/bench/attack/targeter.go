package attack

import (
	"fmt"
	"math/rand/v2"
	"net/http"
	"strconv"
	"sync/atomic"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const bypassHeader = "X-Rate-Limit-Bypass"

var urlCounter atomic.Uint64

// CreateTargeter posts a distinct destination per request so every target
// allocates a new code. ttlDays of 0 leaves the expiry to the server default.
func CreateTargeter(baseURL, bypassSecret string, ttlDays int) vegeta.Targeter {
	header := http.Header{"Content-Type": []string{"application/json"}}
	if bypassSecret != "" {
		header.Set(bypassHeader, bypassSecret)
	}
	url := baseURL + "/links"

	var ttlField string
	if ttlDays > 0 {
		ttlField = `,"ttl_days":` + strconv.Itoa(ttlDays)
	}

	return func(t *vegeta.Target) error {
		t.Method = http.MethodPost
		t.URL = url
		t.Header = header
		// vegeta keeps the body until the request is sent, so it cannot be reused.
		t.Body = fmt.Appendf(nil, `{"url":"https://example.com/%d"%s}`, urlCounter.Add(1), ttlField)
		return nil
	}
}

func RedirectTargeter(baseURL string, codes []string, bypassSecret string) vegeta.Targeter {
	var header http.Header
	if bypassSecret != "" {
		header = http.Header{bypassHeader: []string{bypassSecret}}
	}

	return func(t *vegeta.Target) error {
		code := codes[rand.IntN(len(codes))]
		t.Method = http.MethodGet
		t.URL = baseURL + "/" + code
		t.Header = header
		t.Body = nil
		return nil
	}
}

func MixedTargeter(baseURL string, codes []string, createRatio float64, bypassSecret string, ttlDays int) vegeta.Targeter {
	createTarget := CreateTargeter(baseURL, bypassSecret, ttlDays)
	redirectTarget := RedirectTargeter(baseURL, codes, bypassSecret)

	return func(t *vegeta.Target) error {
		if rand.Float64() < createRatio {
			return createTarget(t)
		}
		return redirectTarget(t)
	}
}
