package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
const (
	totalSessions    = 4000 // sessions across all restaurants, every session has one event of each type
	sessionsPerBatch = 10
	sessionStep      = 10 * time.Second // gap between consecutive events of one session
)

var (
	restaurants = []string{"rst-a", "rst-b", "rst-c", "rst-d"}
	eventTypes  = []string{"QR_SCAN", "MENU_VIEW", "PRODUCT_VIEW", "CONTACT_CLICK"}
	userAgents  = []string{
		"Mozilla/5.0 (iPhone; CPU iPhone OS 17_2 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Mobile/15E148 Safari/604.1",
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		"Mozilla/5.0 (iPad; CPU OS 17_2 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Mobile/15E148 Safari/604.1",
		"curl/7.88.1",
	}
)

// ### End - fixed configs

type trackingEvent struct {
	EventType  string `json:"eventType"`
	OccurredAt string `json:"occurredAt"`
	SessionID  string `json:"sessionId"`
	VisitorID  string `json:"visitorId"`
	Source     string `json:"source"`
	ProductID  string `json:"productId,omitempty"`
	TableNo    string `json:"tableNo"`
}

type batchToSend struct {
	batchIndex   int
	restaurantID string
	userAgent    string
	jsonData     []byte
	isOriginal   bool
}

type metricComparison struct {
	Current float64 `json:"current"`
}

type summaryResponse struct {
	TotalVisits        metricComparison `json:"totalVisits"`
	UniqueVisitors     metricComparison `json:"uniqueVisitors"`
	QRScans            metricComparison `json:"qrScans"`
	TotalSessions      int64            `json:"totalSessions"`
	BounceRate         float64          `json:"bounceRate"`
	AvgSessionDuration float64          `json:"avgSessionDuration"`
}

// main runs the e2e scenario: 001_tracking_ingest_summary
//
// It posts storefront tracking batches for four restaurants to POST /events, resends a share of
// them under the same idempotency key, waits for the write-behind consumer to reach the event
// store and then reads the totals back through the analytics routes.
//
// Expected results:
//   - every original batch is accepted (202), every resend is rejected (409)
//   - per restaurant: 1000 sessions, 4000 visits, 1000 QR scans, bounce rate 0, average
//     session duration 30 seconds
//   - the leaderboard lists the four restaurants with 4000 visits each, tied and ordered by id
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080" // Base URL of the analytics API server
	dateUTC := "2025-12-28"            // Day the generated events fall on (UTC)
	parallel := 4                      // Number of concurrent batch requests
	totalDuplicates := 100             // Batches resent with an already used idempotency key
	settleDelay := 3 * time.Second     // Time given to the write-behind consumer before reading back

	day, err := time.Parse("2006-01-02", dateUTC)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: invalid date %q: %v\n", dateUTC, err)
		os.Exit(1)
	}

	batchCount := totalSessions / sessionsPerBatch
	fmt.Println("Starting e2e scenario: 001_tracking_ingest_summary")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("DATE_UTC: %s\n", dateUTC)
	fmt.Printf("BATCH_COUNT: %d\n", batchCount)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Printf("TOTAL_DUPLICATES: %d\n", totalDuplicates)
	fmt.Println()

	batches := make([]batchToSend, 0, batchCount+totalDuplicates)
	for batchIndex := 0; batchIndex < batchCount; batchIndex++ {
		b, err := generateBatch(batchIndex, day)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: failed to generate batch %d: %v\n", batchIndex, err)
			os.Exit(1)
		}
		batches = append(batches, b)
	}
	for i := 0; i < totalDuplicates; i++ {
		dup := batches[i%batchCount]
		dup.isOriginal = false
		batches = append(batches, dup)
	}

	var accepted, conflicted, failed int64
	client := &http.Client{Timeout: 30 * time.Second}

	// originals first so every duplicate meets an existing key
	for _, round := range [][]batchToSend{batches[:batchCount], batches[batchCount:]} {
		g, ctx := errgroup.WithContext(context.Background())
		g.SetLimit(parallel)
		for _, b := range round {
			b := b
			g.Go(func() error {
				status, err := sendBatch(ctx, client, baseURL, b)
				switch {
				case err != nil:
					atomic.AddInt64(&failed, 1)
					fmt.Fprintf(os.Stderr, "ERROR: batch %d failed: %v\n", b.batchIndex, err)
				case status == http.StatusAccepted:
					atomic.AddInt64(&accepted, 1)
				case status == http.StatusConflict:
					atomic.AddInt64(&conflicted, 1)
				default:
					atomic.AddInt64(&failed, 1)
					fmt.Fprintf(os.Stderr, "ERROR: batch %d returned status %d\n", b.batchIndex, status)
				}
				return nil
			})
		}
		_ = g.Wait()
	}

	fmt.Println("=== Ingestion ===")
	fmt.Printf("Accepted request: %d (want %d)\n", accepted, batchCount)
	fmt.Printf("Conflicted request: %d (want %d)\n", conflicted, totalDuplicates)
	fmt.Printf("Failed request: %d\n", failed)
	fmt.Println()
	if failed > 0 || accepted != int64(batchCount) || conflicted != int64(totalDuplicates) {
		fmt.Fprintln(os.Stderr, "ERROR: ingestion did not match the expected results")
		os.Exit(1)
	}

	fmt.Printf("Waiting %s for the write-behind consumer...\n", settleDelay)
	time.Sleep(settleDelay)

	window := fmt.Sprintf("from=%s&to=%s", dateUTC, dateUTC)
	ok := true
	for _, restaurantID := range restaurants {
		var summary summaryResponse
		if err := getJSON(client, fmt.Sprintf("%s/analytics/summary?%s&restaurantId=%s", baseURL, window, restaurantID), &summary); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: summary for %s: %v\n", restaurantID, err)
			os.Exit(1)
		}
		fmt.Printf("%s: visits=%.0f visitors=%.0f qrScans=%.0f sessions=%d bounce=%.2f avgDuration=%.2f\n",
			restaurantID, summary.TotalVisits.Current, summary.UniqueVisitors.Current, summary.QRScans.Current,
			summary.TotalSessions, summary.BounceRate, summary.AvgSessionDuration)

		perRestaurant := totalSessions / len(restaurants)
		if summary.TotalSessions != int64(perRestaurant) ||
			summary.TotalVisits.Current != float64(perRestaurant*len(eventTypes)) ||
			summary.QRScans.Current != float64(perRestaurant) ||
			summary.BounceRate != 0 ||
			summary.AvgSessionDuration != (sessionStep*time.Duration(len(eventTypes)-1)).Seconds() {
			ok = false
		}
	}

	var leaderboard json.RawMessage
	if err := getJSON(client, fmt.Sprintf("%s/analytics/leaderboard?%s&sortBy=totalVisits", baseURL, window), &leaderboard); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: leaderboard: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Leaderboard: %s\n", leaderboard)

	if !ok {
		fmt.Fprintln(os.Stderr, "ERROR: summaries did not match the expected results")
		os.Exit(1)
	}
	fmt.Println("Scenario completed successfully")
}

// generateBatch builds sessionsPerBatch complete sessions for one restaurant. Session s starts
// at 12:00 plus s seconds and runs QR_SCAN, MENU_VIEW, PRODUCT_VIEW, CONTACT_CLICK.
func generateBatch(batchIndex int, day time.Time) (batchToSend, error) {
	restaurantID := restaurants[batchIndex%len(restaurants)]
	items := make([]trackingEvent, 0, sessionsPerBatch*len(eventTypes))

	for i := 0; i < sessionsPerBatch; i++ {
		session := batchIndex*sessionsPerBatch + i
		start := day.Add(12*time.Hour + time.Duration(session)*time.Second)
		for step, eventType := range eventTypes {
			item := trackingEvent{
				EventType:  eventType,
				OccurredAt: start.Add(time.Duration(step) * sessionStep).Format(time.RFC3339),
				SessionID:  fmt.Sprintf("s-%05d", session),
				VisitorID:  fmt.Sprintf("v-%05d", session),
				Source:     "qr",
				TableNo:    fmt.Sprintf("%d", session%20+1),
			}
			if eventType == "PRODUCT_VIEW" {
				item.ProductID = fmt.Sprintf("prd-%02d", session%10)
			}
			items = append(items, item)
		}
	}

	jsonData, err := json.Marshal(items)
	if err != nil {
		return batchToSend{}, err
	}
	return batchToSend{
		batchIndex:   batchIndex,
		restaurantID: restaurantID,
		userAgent:    userAgents[batchIndex%len(userAgents)],
		jsonData:     jsonData,
		isOriginal:   true,
	}, nil
}

func sendBatch(ctx context.Context, client *http.Client, baseURL string, batch batchToSend) (int, error) {
	// same key for every resend of this batch
	idempotencyKey := fmt.Sprintf("batch-%06d", batch.batchIndex)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/events", bytes.NewReader(batch.jsonData))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-restaurant-id", batch.restaurantID)
	req.Header.Set("idempotency-key", idempotencyKey)
	req.Header.Set("user-agent", batch.userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}

func getJSON(client *http.Client, url string, out any) error {
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, body)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
