// Command loadtest drives a running fitviz server with a mix of log writes
// and dashboard reads and prints per-endpoint latency percentiles.
package main

import (
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/atomic"
)

var (
	baseURL      string
	numWorkers   int
	testDuration time.Duration
)

var mealTypes = []string{"breakfast", "lunch", "dinner", "snack"}
var intensities = []string{"low", "medium", "high"}
var muscleGroups = []string{"chest", "back", "shoulders", "biceps", "triceps", "abs", "legs", "glutes", "cardiovascular"}

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        200,
		MaxIdleConnsPerHost: 200,
		IdleConnTimeout:     30 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

type result struct {
	endpoint string
	status   int
	latency  time.Duration
	err      bool
}

type stats struct {
	count     int64
	errors    int64
	latencies []time.Duration
}

var rootCmd = &cobra.Command{
	Use:   "loadtest",
	Short: "Load test a running fitviz server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func main() {
	rootCmd.Flags().StringVar(&baseURL, "url", "http://127.0.0.1:8090", "Server base URL")
	rootCmd.Flags().IntVar(&numWorkers, "workers", 20, "Concurrent workers")
	rootCmd.Flags().DurationVar(&testDuration, "duration", 10*time.Second, "Duration of each phase")
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	fmt.Println("=== FitViz Load Test ===")
	fmt.Printf("Workers: %d | Duration: %s\n\n", numWorkers, testDuration)

	fmt.Print("Waiting for server... ")
	if err := waitForServer(); err != nil {
		fmt.Println("FAILED")
		return err
	}
	fmt.Println("OK")

	fmt.Println("\n--- Phase 1: Logging (POST) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		return doWrite(rng)
	})

	fmt.Println("\n--- Phase 2: Dashboard reads (10% POST, 90% GET) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		if rng.Float64() < 0.10 {
			return doWrite(rng)
		}
		return doRead(rng)
	})
	return nil
}

func waitForServer() error {
	for i := 0; i < 30; i++ {
		resp, err := httpClient.Get(baseURL + "/health")
		if err == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			return nil
		}
		time.Sleep(200 * time.Millisecond)
	}
	return fmt.Errorf("server at %s not responding", baseURL)
}

func runPhase(duration time.Duration, workFn func(rng *rand.Rand) result) {
	results := make(chan result, 10000)
	var wg sync.WaitGroup
	totalOps := atomic.NewInt64(0)
	stop := make(chan struct{})

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for {
				select {
				case <-stop:
					return
				default:
					r := workFn(rng)
					totalOps.Inc()
					results <- r
				}
			}
		}(rand.Int63() + int64(i))
	}

	allResults := make(map[string]*stats)
	done := make(chan struct{})
	go func() {
		for r := range results {
			s, ok := allResults[r.endpoint]
			if !ok {
				s = &stats{}
				allResults[r.endpoint] = s
			}
			s.count++
			if r.err {
				s.errors++
			}
			s.latencies = append(s.latencies, r.latency)
		}
		close(done)
	}()

	time.Sleep(duration)
	close(stop)
	wg.Wait()
	close(results)
	<-done

	printResults(allResults, duration, totalOps.Load())
}

func printResults(allResults map[string]*stats, duration time.Duration, totalOps int64) {
	var totalErrors int64

	endpoints := make([]string, 0, len(allResults))
	for ep := range allResults {
		endpoints = append(endpoints, ep)
	}
	sort.Strings(endpoints)

	fmt.Printf("\n  %-26s %8s %6s %10s %10s %10s %10s\n",
		"Endpoint", "Reqs", "Errs", "Avg", "P50", "P95", "P99")
	fmt.Println("  " + strings.Repeat("-", 92))

	for _, ep := range endpoints {
		s := allResults[ep]
		totalErrors += s.errors

		sort.Slice(s.latencies, func(i, j int) bool {
			return s.latencies[i] < s.latencies[j]
		})

		fmt.Printf("  %-26s %8d %6d %10s %10s %10s %10s\n",
			ep, s.count, s.errors,
			fmtDur(avgDuration(s.latencies)),
			fmtDur(percentile(s.latencies, 0.50)),
			fmtDur(percentile(s.latencies, 0.95)),
			fmtDur(percentile(s.latencies, 0.99)))
	}

	if totalOps == 0 {
		fmt.Println("  no requests completed")
		return
	}
	rps := float64(totalOps) / duration.Seconds()
	fmt.Println("  " + strings.Repeat("-", 92))
	fmt.Printf("  Total: %d reqs | Errors: %d (%.1f%%) | RPS: %.0f\n",
		totalOps, totalErrors, float64(totalErrors)/float64(totalOps)*100, rps)
}

func doWrite(rng *rand.Rand) result {
	switch rng.Intn(3) {
	case 0:
		return post("/water", map[string]any{"amount": 0.1 + float64(rng.Intn(5))/10}, http.StatusOK)
	case 1:
		return post("/meals", map[string]any{
			"name":     fmt.Sprintf("meal_%d", rng.Intn(100)),
			"calories": 100 + rng.Intn(700),
			"carbs":    float64(rng.Intn(80)),
			"protein":  float64(rng.Intn(50)),
			"fat":      float64(rng.Intn(30)),
			"mealType": mealTypes[rng.Intn(len(mealTypes))],
		}, http.StatusCreated)
	default:
		return post("/workouts", map[string]any{
			"name":         fmt.Sprintf("workout_%d", rng.Intn(50)),
			"duration":     10 + rng.Intn(80),
			"intensity":    intensities[rng.Intn(len(intensities))],
			"muscleGroups": []string{muscleGroups[rng.Intn(len(muscleGroups))]},
		}, http.StatusCreated)
	}
}

func doRead(rng *rand.Rand) result {
	paths := []string{"/summary", "/summary", "/water", "/meals", "/workouts", "/sleep", "/notifications"}
	return get(paths[rng.Intn(len(paths))])
}

func post(path string, body any, want int) result {
	endpoint := "POST " + path
	data, _ := json.Marshal(body)
	start := time.Now()
	resp, err := httpClient.Post(baseURL+path, "application/json", bytes.NewReader(data))
	lat := time.Since(start)
	if err != nil {
		return result{endpoint, 0, lat, true}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{endpoint, resp.StatusCode, lat, resp.StatusCode != want}
}

func get(path string) result {
	endpoint := "GET " + path
	start := time.Now()
	resp, err := httpClient.Get(baseURL + path)
	lat := time.Since(start)
	if err != nil {
		return result{endpoint, 0, lat, true}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{endpoint, resp.StatusCode, lat, resp.StatusCode != http.StatusOK}
}

func avgDuration(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum / time.Duration(len(d))
}

func percentile(d []time.Duration, p float64) time.Duration {
	if len(d) == 0 {
		return 0
	}
	idx := int(float64(len(d)) * p)
	if idx >= len(d) {
		idx = len(d) - 1
	}
	return d[idx]
}

func fmtDur(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dus", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}
