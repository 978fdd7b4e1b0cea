package renpho

import (
	"net/http"
	"testing"
	"time"
)

func TestCached_GetBeforeSet(t *testing.T) {
	var c cached[[]Girth]
	if _, ok := c.get(); ok {
		t.Fatal("get() reported a value before any set")
	}
	if !c.at().IsZero() {
		t.Fatal("at() is non-zero before any set")
	}
}

func TestCached_SetReplacesWholesale(t *testing.T) {
	var c cached[[]Girth]
	c.set([]Girth{{ID: 1}, {ID: 2}})
	c.set([]Girth{{ID: 3}})

	value, ok := c.get()
	if !ok || len(value) != 1 || value[0].ID != 3 {
		t.Fatalf("get() = %#v, want the second snapshot only", value)
	}
	if c.at().IsZero() {
		t.Fatal("at() is zero after set")
	}
}

func TestSnapshot_IsIndependentCopy(t *testing.T) {
	c := newTestClient(t, Config{Email: "a@b.c", Password: "x", UserID: 7}, http.NotFoundHandler())

	now := time.Now().Unix()
	c.weight.set(Measurement{Weight: 81.2, TimeStamp: now})
	c.girths.set([]Girth{{ID: 1, WaistValue: 80}})
	c.girthGoals.set([]GirthGoal{{ID: 1, GirthType: "waist", GoalValue: 75}})

	snap := c.Snapshot()
	snap.Girths[0].WaistValue = 999

	again := c.Snapshot()
	if again.Girths[0].WaistValue != 80 {
		t.Fatalf("snapshot mutation leaked into the cache: waist = %v", again.Girths[0].WaistValue)
	}
	if !again.HasWeight || again.Weight.Weight != 81.2 {
		t.Fatalf("snapshot weight = %#v, want 81.2", again.Weight)
	}
	if again.LastWeighed.Unix() != now {
		t.Fatalf("LastWeighed = %v, want unix %d", again.LastWeighed, now)
	}
}

func TestParseStamp(t *testing.T) {
	if !parseStamp(0).IsZero() {
		t.Fatal("parseStamp(0) should be the zero time")
	}
	if got := parseStamp(200).Unix(); got != 200 {
		t.Fatalf("parseStamp(200).Unix() = %d, want 200", got)
	}
}
