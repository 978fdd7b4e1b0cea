package renpho

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"
)

func TestMetric_GirthIgnoresZeroValuedNewerEntry(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, Config{Email: "a@b.c", Password: "x", UserID: 7}, http.NotFoundHandler())
	c.girths.set([]Girth{
		{ID: 1, WaistValue: 80, TimeStamp: 100},
		{ID: 2, WaistValue: 0, TimeStamp: 200},
	})

	value, ok := c.Metric(context.Background(), CategoryGirth, "waist", 0)
	if !ok {
		t.Fatal("Metric returned absent, want 80")
	}
	if value != 80 {
		t.Fatalf("Metric = %v, want 80 (zero-valued newer entry must not win)", value)
	}
}

func TestMetric_GirthPicksNewestQualifyingEntry(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, Config{Email: "a@b.c", Password: "x", UserID: 7}, http.NotFoundHandler())
	c.girths.set([]Girth{
		{ID: 1, WaistValue: 80, TimeStamp: 100},
		{ID: 2, WaistValue: 78.5, TimeStamp: 300},
		{ID: 3, WaistValue: 79, TimeStamp: 200},
	})

	value, ok := c.Metric(context.Background(), CategoryGirth, "waist", 0)
	if !ok || value != 78.5 {
		t.Fatalf("Metric = %v ok=%v, want newest value 78.5", value, ok)
	}
}

func TestMetric_GirthAbsentWhenNoQualifyingEntry(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, Config{Email: "a@b.c", Password: "x", UserID: 7}, http.NotFoundHandler())
	c.girths.set([]Girth{
		{ID: 1, WaistValue: 0, TimeStamp: 100},
		{ID: 2, HipValue: 95, TimeStamp: 200},
	})

	if _, ok := c.Metric(context.Background(), CategoryGirth, "waist", 0); ok {
		t.Fatal("Metric returned a value, want absent when every waist reading is zero")
	}
}

func TestMetric_GirthGoalFiltersTypeAndSortsBySetupTime(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, Config{Email: "a@b.c", Password: "x", UserID: 7}, http.NotFoundHandler())
	c.girthGoals.set([]GirthGoal{
		{ID: 1, GirthType: "waist", GoalValue: 75, SetupGoalAt: 100},
		{ID: 2, GirthType: "hip", GoalValue: 90, SetupGoalAt: 400},
		{ID: 3, GirthType: "waist", GoalValue: 73, SetupGoalAt: 300},
		{ID: 4, GirthType: "waist", GoalValue: 0, SetupGoalAt: 500},
	})

	value, ok := c.Metric(context.Background(), CategoryGirthGoal, "waist", 0)
	if !ok || value != 73 {
		t.Fatalf("Metric = %v ok=%v, want 73 (newest non-zero waist goal)", value, ok)
	}

	if _, ok := c.Metric(context.Background(), CategoryGirthGoal, "thigh", 0); ok {
		t.Fatal("Metric returned a value for a goal type with no entries")
	}
}

func TestMetric_WeightServedFromCacheOnly(t *testing.T) {
	t.Parallel()

	var requests atomic.Int64
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		http.NotFound(w, r)
	})
	c := newTestClient(t, Config{Email: "a@b.c", Password: "x", UserID: 7}, handler)

	if _, ok := c.Metric(context.Background(), CategoryWeight, "weight", 0); ok {
		t.Fatal("Metric returned a weight before any fetch")
	}
	if requests.Load() != 0 {
		t.Fatalf("weight metric issued %d requests, want 0", requests.Load())
	}

	c.weight.set(Measurement{Weight: 81.2, BMI: 24.1, TimeStamp: 200})

	value, ok := c.Metric(context.Background(), CategoryWeight, "bmi", 0)
	if !ok || value != 24.1 {
		t.Fatalf("Metric = %v ok=%v, want cached bmi 24.1", value, ok)
	}
}

func TestMetric_GirthFetchesLazilyOnce(t *testing.T) {
	t.Parallel()

	var girthCalls atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc(girthPath, func(w http.ResponseWriter, r *http.Request) {
		girthCalls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status_code":    "20000",
			"status_message": "ok",
			"girths":         []map[string]any{{"id": 1, "waist_value": 80, "time_stamp": 100}},
		})
	})

	c := newTestClient(t, Config{Email: "a@b.c", Password: "x", UserID: 7}, mux)
	c.setToken("abc")

	ctx := context.Background()
	value, ok := c.Metric(ctx, CategoryGirth, "waist", 0)
	if !ok || value != 80 {
		t.Fatalf("Metric = %v ok=%v, want lazily fetched 80", value, ok)
	}
	if _, ok := c.Metric(ctx, CategoryGirth, "waist", 0); !ok {
		t.Fatal("second Metric call returned absent")
	}
	if girthCalls.Load() != 1 {
		t.Fatalf("girth fetches = %d, want 1 (cache hit on second call)", girthCalls.Load())
	}
}

func TestMetric_UserIDOverrideSticks(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, Config{Email: "a@b.c", Password: "x", UserID: 7}, http.NotFoundHandler())
	c.weight.set(Measurement{Weight: 81.2})

	if _, ok := c.Metric(context.Background(), CategoryWeight, "weight", 99); !ok {
		t.Fatal("Metric returned absent for cached weight")
	}
	if c.UserID() != 99 {
		t.Fatalf("UserID() = %d, want override 99 to stick", c.UserID())
	}
}

func TestMetric_UnknownCategoryAndName(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, Config{Email: "a@b.c", Password: "x", UserID: 7}, http.NotFoundHandler())
	c.weight.set(Measurement{Weight: 81.2})
	c.girths.set([]Girth{{WaistValue: 80, TimeStamp: 100}})

	if _, ok := c.Metric(context.Background(), "growth_record", "height", 0); ok {
		t.Fatal("Metric returned a value for an unsupported category")
	}
	if _, ok := c.Metric(context.Background(), CategoryWeight, "nonsense", 0); ok {
		t.Fatal("Metric returned a value for an unknown weight metric")
	}
	if _, ok := c.Metric(context.Background(), CategoryGirth, "nonsense", 0); ok {
		t.Fatal("Metric returned a value for an unknown girth metric")
	}
}

func TestMetricNames(t *testing.T) {
	t.Parallel()

	weights := MetricNames(CategoryWeight)
	if len(weights) != len(measurementAccessors) {
		t.Fatalf("MetricNames(weight) = %d names, want %d", len(weights), len(measurementAccessors))
	}
	girths := MetricNames(CategoryGirth)
	if len(girths) != len(girthAccessors) {
		t.Fatalf("MetricNames(girth) = %d names, want %d", len(girths), len(girthAccessors))
	}
	if names := MetricNames("bogus"); names != nil {
		t.Fatalf("MetricNames(bogus) = %v, want nil", names)
	}
}
