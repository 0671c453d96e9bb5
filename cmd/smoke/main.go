package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
)

const defaultAPIBase = "http://localhost:8080"

var (
	apiBase string
	client  = &http.Client{Timeout: 30 * time.Second}
)

func main() {
	fmt.Println("=== Caloric Expenditure API Smoke Test ===")
	fmt.Println()

	apiBase = getEnv("API_BASE_URL", defaultAPIBase)
	fmt.Printf("API Base: %s\n", apiBase)
	fmt.Println()

	steps := []struct {
		name string
		fn   func() error
	}{
		{"Healthz", testHealthz},
		{"Predict (metric)", testPredictMetric},
		{"Predict (imperial)", testPredictImperial},
		{"Predict rejects bad units", testPredictBadUnits},
		{"Predict Time Series", testPredictTimeSeries},
	}

	failed := false
	for i, step := range steps {
		fmt.Printf("[%d/%d] %s... ", i+1, len(steps), step.name)
		if err := step.fn(); err != nil {
			fmt.Printf("❌ FAILED\n")
			fmt.Printf("  Error: %v\n\n", err)
			failed = true
			break
		}
		fmt.Printf("✅ OK\n")
	}

	fmt.Println()
	if failed {
		fmt.Println("❌ SMOKE TEST FAILED")
		os.Exit(1)
	}

	fmt.Println("✅ ALL SMOKE TESTS PASSED")
}

func testHealthz() error {
	resp, err := client.Get(apiBase + "/healthz")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}
	return nil
}

func testPredictMetric() error {
	result, err := postJSON("/v1/predict", map[string]interface{}{
		"age":            30,
		"biological_sex": "male",
		"weight":         70,
		"height":         175,
		"activity_level": "sedentary",
		"units":          "metric",
	})
	if err != nil {
		return err
	}

	bmr, ok := result["bmr"].(float64)
	if !ok || bmr != 1680.0 {
		return fmt.Errorf("expected bmr 1680.0, got %v", result["bmr"])
	}
	if result["recommendations"] == "" {
		return fmt.Errorf("missing recommendations")
	}
	return nil
}

func testPredictImperial() error {
	result, err := postJSON("/v1/predict", map[string]interface{}{
		"age":            30,
		"biological_sex": "female",
		"weight":         150,
		"height":         65,
		"activity_level": "moderately_active",
		"units":          "imperial",
	})
	if err != nil {
		return err
	}
	if _, ok := result["daily_caloric_needs"].(float64); !ok {
		return fmt.Errorf("missing daily_caloric_needs: %v", result)
	}
	return nil
}

func testPredictBadUnits() error {
	body, _ := json.Marshal(map[string]interface{}{
		"age":            30,
		"biological_sex": "male",
		"weight":         70,
		"height":         175,
		"activity_level": "sedentary",
		"units":          "stone",
	})
	resp, err := client.Post(apiBase+"/v1/predict", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		return fmt.Errorf("expected 400 for bad units, got %d", resp.StatusCode)
	}
	return nil
}

func testPredictTimeSeries() error {
	result, err := postJSON("/v1/predict-time-series", map[string]interface{}{
		"initial_weight":         90,
		"weight_change_per_week": 0.5,
		"units":                  "metric",
	})
	if err != nil {
		return err
	}

	points, ok := result["predicted_weight"].([]interface{})
	if !ok {
		return fmt.Errorf("missing predicted_weight: %v", result)
	}
	if len(points) != 13 {
		return fmt.Errorf("expected 13 points, got %d", len(points))
	}
	return nil
}

func postJSON(path string, payload map[string]interface{}) (map[string]interface{}, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	resp, err := client.Post(apiBase+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return result, nil
}

func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return fmt.Errorf("status=%d body=%s", resp.StatusCode, string(body))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
