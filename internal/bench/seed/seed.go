// Package seed creates links through the batch endpoint before an attack.
package seed

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

const bypassHeader = "X-Rate-Limit-Bypass"

type Options struct {
	BaseURL            string
	Count              int
	BatchSize          int
	TTLDays            int
	BypassSecret       string
	InsecureSkipVerify bool
	Timeout            time.Duration
	Workers            int
	Progress           io.Writer
}

type batchRequest struct {
	URLs    []string `json:"urls"`
	TTLDays int      `json:"ttl_days,omitempty"`
}

type batchResponse struct {
	Links []struct {
		ShortCode string `json:"short_code"`
	} `json:"links"`
}

// Run seeds opts.Count links and returns their codes in creation order.
func Run(ctx context.Context, opts Options) ([]string, error) {
	if opts.BatchSize <= 0 {
		return nil, fmt.Errorf("batch size must be positive, got %d", opts.BatchSize)
	}
	numWorkers := opts.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU() * 2
	}
	progressOut := opts.Progress
	if progressOut == nil {
		progressOut = io.Discard
	}
	fmt.Fprintf(progressOut, "Seeding %d links (batch size: %d, workers: %d)...\n", opts.Count, opts.BatchSize, numWorkers)

	client := &http.Client{
		Timeout: opts.Timeout,
		Transport: &http.Transport{
			TLSClientConfig:     &tls.Config{InsecureSkipVerify: opts.InsecureSkipVerify},
			MaxIdleConns:        numWorkers * 2,
			MaxIdleConnsPerHost: numWorkers * 2,
			IdleConnTimeout:     90 * time.Second,
			ForceAttemptHTTP2:   true,
		},
	}

	numBatches := (opts.Count + opts.BatchSize - 1) / opts.BatchSize
	results := make([][]string, numBatches)
	var progress atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(numWorkers)

	for batchIndex := range numBatches {
		startIndex := batchIndex * opts.BatchSize
		size := min(opts.BatchSize, opts.Count-startIndex)

		g.Go(func() error {
			codes, err := createBatch(gctx, client, opts, startIndex, size)
			if err != nil {
				return fmt.Errorf("failed to create batch at %d: %w", startIndex, err)
			}
			results[batchIndex] = codes
			done := progress.Add(int64(len(codes)))
			fmt.Fprintf(progressOut, "\rProgress: %d/%d", done, opts.Count)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	codes := make([]string, 0, opts.Count)
	for _, batch := range results {
		codes = append(codes, batch...)
	}

	fmt.Fprintf(progressOut, "\nSeeding complete: %d codes\n", len(codes))
	return codes, nil
}

func createBatch(ctx context.Context, client *http.Client, opts Options, startIndex, count int) ([]string, error) {
	urls := make([]string, count)
	for i := range count {
		urls[i] = fmt.Sprintf("https://example.com/seed/%d", startIndex+i)
	}

	body, err := json.Marshal(batchRequest{URLs: urls, TTLDays: opts.TTLDays})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, opts.BaseURL+"/links/batch", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if opts.BypassSecret != "" {
		req.Header.Set(bypassHeader, opts.BypassSecret)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var result batchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	if len(result.Links) != count {
		return nil, fmt.Errorf("expected %d links, got %d", count, len(result.Links))
	}

	codes := make([]string, len(result.Links))
	for i, l := range result.Links {
		codes[i] = l.ShortCode
	}
	return codes, nil
}
