// Package diag probes a running backend with a fixed list of requests and
// reports status and payload shape. Operational utility for deploy checks,
// not part of the console's data path.
package diag

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

// ConnectivityTimeout bounds the initial reachability probe. The endpoint
// probes inherit the caller's context instead.
const ConnectivityTimeout = 5 * time.Second

// DefaultProbes is the fixed request list fired against a backend.
var DefaultProbes = []Probe{
	{Name: "items", Method: http.MethodGet, Path: "/items"},
	{Name: "recipes", Method: http.MethodGet, Path: "/recipes"},
	{Name: "price-history", Method: http.MethodGet, Path: "/recipes/1/price-history"},
}

// Probe describes one diagnostic request.
type Probe struct {
	Name   string
	Method string
	Path   string
}

// Result is the outcome of one probe. Exactly one of Err or StatusCode is
// meaningful: a transport failure sets Err, a completed exchange sets
// StatusCode and JSONShaped.
type Result struct {
	Probe      Probe
	StatusCode int
	JSONShaped bool
	Duration   time.Duration
	Err        error
}

// Runner fires probes against one backend base URL.
type Runner struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewRunner builds a runner. token may be empty for unauthenticated probing;
// gated endpoints will then report their 401 rather than content.
func NewRunner(baseURL, token string) *Runner {
	return &Runner{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{},
	}
}

// CheckConnectivity verifies the backend answers its health endpoint within
// the connectivity timeout.
func (r *Runner) CheckConnectivity(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, ConnectivityTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("backend unreachable: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health endpoint returned %d", resp.StatusCode)
	}
	return nil
}

// Run fires the probes concurrently and returns their results in probe-list
// order. Cancelling the context aborts every in-flight request; no retries
// are attempted.
func (r *Runner) Run(ctx context.Context, probes []Probe) []Result {
	if len(probes) == 0 {
		probes = DefaultProbes
	}
	results := make([]Result, len(probes))

	g, ctx := errgroup.WithContext(ctx)
	for i, p := range probes {
		i, p := i, p
		g.Go(func() error {
			results[i] = r.run(ctx, p)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (r *Runner) run(ctx context.Context, p Probe) Result {
	start := time.Now()
	result := Result{Probe: p}

	req, err := http.NewRequestWithContext(ctx, p.Method, r.baseURL+p.Path, nil)
	if err != nil {
		result.Err = err
		return result
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	result.Duration = time.Since(start)
	result.StatusCode = resp.StatusCode
	if err != nil {
		result.Err = err
		return result
	}
	result.JSONShaped = json.Valid(body)
	return result
}
