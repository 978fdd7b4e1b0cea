package renpho

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
)

// Fetchers issue one request each, parse a typed payload, and refresh the
// corresponding cache. They never propagate errors: a failed fetch is logged
// and reported as an absent result so a bad cycle cannot kill the poll loop.

// FetchMeasurements retrieves the weight history, caches it newest first,
// and returns the most recent measurement, or nil when no data is available.
func (c *Client) FetchMeasurements(ctx context.Context) *Measurement {
	raw, err := c.request(ctx, http.MethodGet, measurementsPath, c.userQuery("last_at"), nil, true)
	if err != nil {
		log.Printf("renpho: measurement fetch failed: %v", err)
		return nil
	}

	var payload measurementListPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Printf("renpho: decode measurements: %v", err)
		return nil
	}
	if len(payload.LastAry) == 0 {
		log.Printf("renpho: no weight measurements in response")
		return nil
	}

	c.weightHistory.set(payload.LastAry)
	latest := payload.LastAry[0]
	c.weight.set(latest)
	return &latest
}

// FetchDeviceInfo retrieves the scales bound to the account.
func (c *Client) FetchDeviceInfo(ctx context.Context) []DeviceBind {
	raw, err := c.request(ctx, http.MethodGet, devicePath, c.userQuery("last_updated_at"), nil, true)
	if err != nil {
		log.Printf("renpho: device info fetch failed: %v", err)
		return nil
	}

	var payload deviceListPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Printf("renpho: decode device info: %v", err)
		return nil
	}

	c.devices.set(payload.DeviceBinds)
	return payload.DeviceBinds
}

// FetchLatestModel retrieves the newest firmware model listing for the
// scale reported by the last measurement.
func (c *Client) FetchLatestModel(ctx context.Context) RawPayload {
	query := c.userQuery("last_updated_at")
	if m, ok := c.weight.get(); ok && m.InternalModel != "" {
		query.Set("internal_model_json", `["`+m.InternalModel+`"]`)
	}

	raw, err := c.request(ctx, http.MethodGet, latestModelPath, query, nil, true)
	if err != nil {
		log.Printf("renpho: latest model fetch failed: %v", err)
		return nil
	}

	c.latestModel.set(raw)
	return raw
}

// FetchGirths retrieves the tape-measure entries.
func (c *Client) FetchGirths(ctx context.Context) []Girth {
	raw, err := c.request(ctx, http.MethodGet, girthPath, c.userQuery("last_updated_at"), nil, true)
	if err != nil {
		log.Printf("renpho: girth fetch failed: %v", err)
		return nil
	}

	var payload girthListPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Printf("renpho: decode girths: %v", err)
		return nil
	}

	c.girths.set(payload.Girths)
	return payload.Girths
}

// FetchGirthGoals retrieves the girth goals.
func (c *Client) FetchGirthGoals(ctx context.Context) []GirthGoal {
	raw, err := c.request(ctx, http.MethodGet, girthGoalPath, c.userQuery("last_updated_at"), nil, true)
	if err != nil {
		log.Printf("renpho: girth goal fetch failed: %v", err)
		return nil
	}

	var payload girthGoalListPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Printf("renpho: decode girth goals: %v", err)
		return nil
	}

	c.girthGoals.set(payload.GirthGoals)
	return payload.GirthGoals
}

// FetchGrowthRecord retrieves the growth record payload, cached wholesale.
func (c *Client) FetchGrowthRecord(ctx context.Context) RawPayload {
	raw, err := c.request(ctx, http.MethodGet, growthRecordPath, c.userQuery("last_updated_at"), nil, true)
	if err != nil {
		log.Printf("renpho: growth record fetch failed: %v", err)
		return nil
	}

	c.growthRecord.set(raw)
	return raw
}

// FetchScaleUsers retrieves the profiles registered on the scale. When the
// list is non-empty the first profile becomes the fetch target, matching the
// mobile app's behavior.
func (c *Client) FetchScaleUsers(ctx context.Context) []ScaleUser {
	query := url.Values{}
	query.Set("locale", "en")
	query.Set("app_id", "Renpho")

	raw, err := c.request(ctx, http.MethodGet, scaleUsersPath, query, nil, true)
	if err != nil {
		log.Printf("renpho: scale user fetch failed: %v", err)
		return nil
	}

	var payload scaleUserListPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Printf("renpho: decode scale users: %v", err)
		return nil
	}
	if len(payload.ScaleUsers) == 0 {
		log.Printf("renpho: no scale users in response")
		return nil
	}

	c.scaleUsers.set(payload.ScaleUsers)
	c.SetUserID(payload.ScaleUsers[0].UserID)
	return payload.ScaleUsers
}

// FetchMessages retrieves the account message list.
func (c *Client) FetchMessages(ctx context.Context) RawPayload {
	raw, err := c.request(ctx, http.MethodGet, messagesPath, c.userQuery("last_updated_at"), nil, true)
	if err != nil {
		log.Printf("renpho: message fetch failed: %v", err)
		return nil
	}
	return raw
}

// RequestUser retrieves the profile of the current fetch target.
func (c *Client) RequestUser(ctx context.Context) RawPayload {
	raw, err := c.request(ctx, http.MethodGet, requestUserPath, c.userQuery("last_updated_at"), nil, true)
	if err != nil {
		log.Printf("renpho: user request failed: %v", err)
		return nil
	}
	return raw
}

// ReachGoal retrieves the goal-reach notification payload.
func (c *Client) ReachGoal(ctx context.Context) RawPayload {
	raw, err := c.request(ctx, http.MethodGet, reachGoalPath, c.userQuery("last_updated_at"), nil, true)
	if err != nil {
		log.Printf("renpho: reach goal fetch failed: %v", err)
		return nil
	}
	return raw
}
