package attack

import (
	"crypto/tls"
	"fmt"
	"io"
	"os"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

type Config struct {
	BaseURL            string
	Codes              []string
	Rate               int
	Duration           time.Duration
	CreateRatio        float64
	Type               string
	RateLimitBypass    string
	TTLDays            int
	InsecureSkipVerify bool
	Connections        int
	MaxWorkers         uint64
	Out                io.Writer
}

func NewTargeter(cfg *Config) (vegeta.Targeter, error) {
	switch cfg.Type {
	case "create":
		return CreateTargeter(cfg.BaseURL, cfg.RateLimitBypass, cfg.TTLDays), nil
	case "redirect":
		if len(cfg.Codes) == 0 {
			return nil, fmt.Errorf("redirect attack requires seeded codes")
		}
		return RedirectTargeter(cfg.BaseURL, cfg.Codes, cfg.RateLimitBypass), nil
	case "mixed":
		if len(cfg.Codes) == 0 {
			return nil, fmt.Errorf("mixed attack requires seeded codes")
		}
		return MixedTargeter(cfg.BaseURL, cfg.Codes, cfg.CreateRatio, cfg.RateLimitBypass, cfg.TTLDays), nil
	default:
		return nil, fmt.Errorf("unknown attack type: %s", cfg.Type)
	}
}

func Run(cfg *Config) error {
	targeter, err := NewTargeter(cfg)
	if err != nil {
		return err
	}

	opts := []func(*vegeta.Attacker){
		// 302 is the expected answer for a redirect, do not follow it to example.com.
		vegeta.Redirects(vegeta.NoFollow),
		vegeta.KeepAlive(true),
		vegeta.Timeout(5 * time.Second),
		vegeta.MaxBody(0),
		vegeta.HTTP2(false),
		vegeta.TLSConfig(&tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify}),
	}
	if cfg.Connections > 0 {
		opts = append(opts, vegeta.Connections(cfg.Connections))
	}
	if cfg.MaxWorkers > 0 {
		opts = append(opts, vegeta.MaxWorkers(cfg.MaxWorkers))
	}
	attacker := vegeta.NewAttacker(opts...)

	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintf(out, "Starting %s attack: rate=%d/s duration=%s\n", cfg.Type, cfg.Rate, cfg.Duration)

	rate := vegeta.Rate{Freq: cfg.Rate, Per: time.Second}
	var metrics vegeta.Metrics
	for res := range attacker.Attack(targeter, rate, cfg.Duration, cfg.Type) {
		metrics.Add(res)
	}
	metrics.Close()

	reporter := vegeta.NewTextReporter(&metrics)
	return reporter.Report(out)
}
