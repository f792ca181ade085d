package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// ### Start - fixed configs (no change)
// These values drive deterministic transfer generation and the expected counts below.
const (
	totalTransfers = 400
	clientCount    = 4
)

var dataTypes = []string{"sensor_reading", "heartbeat", "config_snapshot", "event_log"}

// ### End - fixed configs

type transferToSend struct {
	index      int
	clientID   string
	body       []byte
	isOriginal bool
}

// main runs the e2e scenario: 001_json_data_idempotency
//
// It uploads totalTransfers JSON documents to POST /api/json-data in parallel,
// replaying a share of them with the same Idempotency-Key.
//
// Expected results:
//   - every original transfer returns 201 Created
//   - every replay returns 409 Conflict
//   - GET /api/json-data/{client_id} lists exactly totalTransfers/clientCount ids per client
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8000"
	parallel := 4
	totalDuplicates := 100
	runID := time.Now().UTC().Format("20060102T150405")

	fmt.Println("Starting e2e scenario: 001_json_data_idempotency")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Printf("TOTAL_TRANSFERS: %d\n", totalTransfers)
	fmt.Printf("TOTAL_DUPLICATES: %d\n", totalDuplicates)
	fmt.Printf("RUN_ID: %s\n", runID)
	fmt.Println()

	toSend := make([]transferToSend, 0, totalTransfers+totalDuplicates)
	for i := 0; i < totalTransfers; i++ {
		transfer, err := generateTransfer(i, runID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to generate transfer %d: %v\n", i, err)
			os.Exit(1)
		}
		toSend = append(toSend, transfer)
	}
	for i := 0; i < totalDuplicates; i++ {
		duplicate := toSend[i%totalTransfers]
		duplicate.isOriginal = false
		toSend = append(toSend, duplicate)
	}
	// originals sort ahead of their replays so every replay meets a stored transfer
	sort.SliceStable(toSend, func(i, j int) bool {
		if toSend[i].index != toSend[j].index {
			return toSend[i].index < toSend[j].index
		}
		return toSend[i].isOriginal && !toSend[j].isOriginal
	})

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		failures  []error
		created   int64
		conflicts int64
		other     int64
	)
	slots := make(chan struct{}, parallel)

	for _, transfer := range toSend {
		wg.Add(1)
		slots <- struct{}{}

		go func(tr transferToSend) {
			defer wg.Done()
			defer func() { <-slots }()

			status, err := upload(baseURL, runID, tr)
			if err != nil {
				mu.Lock()
				failures = append(failures, fmt.Errorf("transfer %d: %w", tr.index, err))
				mu.Unlock()
				return
			}
			switch {
			case status == http.StatusCreated && tr.isOriginal:
				atomic.AddInt64(&created, 1)
			case status == http.StatusConflict && !tr.isOriginal:
				atomic.AddInt64(&conflicts, 1)
			default:
				atomic.AddInt64(&other, 1)
				fmt.Fprintf(os.Stderr, "UNEXPECTED: transfer %d original=%v status %d\n", tr.index, tr.isOriginal, status)
			}
		}(transfer)
	}
	wg.Wait()

	if len(failures) > 0 {
		fmt.Fprintf(os.Stderr, "ERROR: %d uploads failed, first: %v\n", len(failures), failures[0])
		os.Exit(1)
	}

	fmt.Println("=== Statistics ===")
	fmt.Printf("Created: %d\n", created)
	fmt.Printf("Conflicted: %d\n", conflicts)
	fmt.Printf("Unexpected: %d\n", other)

	if created != totalTransfers || conflicts != int64(totalDuplicates) || other != 0 {
		fmt.Fprintln(os.Stderr, "ERROR: status counts do not match expectations")
		os.Exit(1)
	}

	for c := 0; c < clientCount; c++ {
		clientID := clientName(c, runID)
		count, err := countTransfers(baseURL, clientID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: list %s: %v\n", clientID, err)
			os.Exit(1)
		}
		fmt.Printf("Client %s: %d transfers\n", clientID, count)
		if count != totalTransfers/clientCount {
			fmt.Fprintf(os.Stderr, "ERROR: expected %d transfers for %s\n", totalTransfers/clientCount, clientID)
			os.Exit(1)
		}
	}

	fmt.Println("Scenario completed successfully")
}

func clientName(c int, runID string) string {
	return fmt.Sprintf("e2e-%s-client-%d", runID, c)
}

func generateTransfer(index int, runID string) (transferToSend, error) {
	clientID := clientName(index%clientCount, runID)
	body, err := json.Marshal(map[string]any{
		"client_id": clientID,
		"timestamp": 1_700_000_000 + index,
		"data_type": dataTypes[index%len(dataTypes)],
		"payload": map[string]any{
			"sequence": index,
			"value":    float64(index%97) / 7,
		},
		"file_size": 128 + index,
	})
	if err != nil {
		return transferToSend{}, err
	}
	return transferToSend{index: index, clientID: clientID, body: body, isOriginal: true}, nil
}

func upload(baseURL, runID string, tr transferToSend) (int, error) {
	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/json-data", bytes.NewReader(tr.body))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", fmt.Sprintf("%s-transfer-%06d", runID, tr.index))

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

func countTransfers(baseURL, clientID string) (int, error) {
	resp, err := http.Get(baseURL + "/api/json-data/" + clientID)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body struct {
		TransferIDs []string `json:"transfer_ids"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, err
	}
	return len(body.TransferIDs), nil
}
