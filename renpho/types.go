package renpho

import (
	"encoding/json"
	"time"
)

// envelope is the status wrapper every cloud API response carries.
type envelope struct {
	StatusCode    string `json:"status_code"`
	StatusMessage string `json:"status_message"`
}

func (e envelope) ok() bool {
	return e.StatusCode == statusOK && e.StatusMessage == "ok"
}

// LoginPayload mirrors the body returned by the sign-in endpoint.
type LoginPayload struct {
	ID          int64        `json:"id"`
	Email       string       `json:"email"`
	AccountName string       `json:"account_name"`
	Gender      int          `json:"gender"`
	Height      float64      `json:"height"`
	HeightUnit  int          `json:"height_unit"`
	Birthday    string       `json:"birthday"`
	SessionKey  string       `json:"terminal_user_session_key"`
	DeviceBinds []DeviceBind `json:"device_binds_ary"`
}

// DeviceBind describes one scale bound to the account.
type DeviceBind struct {
	ID                int64  `json:"id"`
	UserID            int64  `json:"user_id"`
	Mac               string `json:"mac"`
	ScaleName         string `json:"scale_name"`
	InternalModel     string `json:"internal_model"`
	DeviceType        int    `json:"device_type"`
	HwBleVersion      int    `json:"hw_ble_version"`
	HwSoftwareVersion int    `json:"hw_software_version"`
	WifiName          string `json:"wifi_name"`
	ProductCategory   int    `json:"product_category"`
	CreatedAt         string `json:"created_at"`
}

// Measurement is a single weight reading with derived body-composition
// metrics, newest first in the history the API returns.
type Measurement struct {
	ID            int64   `json:"id"`
	BUserID       int64   `json:"b_user_id"`
	TimeStamp     int64   `json:"time_stamp"`
	CreatedAt     string  `json:"created_at"`
	CreatedStamp  int64   `json:"created_stamp"`
	ScaleType     int     `json:"scale_type"`
	ScaleName     string  `json:"scale_name"`
	Mac           string  `json:"mac"`
	InternalModel string  `json:"internal_model"`
	TimeZone      string  `json:"time_zone"`
	Gender        int     `json:"gender"`
	Height        float64 `json:"height"`
	HeightUnit    int     `json:"height_unit"`

	Weight    float64 `json:"weight"`
	BMI       float64 `json:"bmi"`
	Muscle    float64 `json:"muscle"`
	Bone      float64 `json:"bone"`
	Waistline float64 `json:"waistline"`
	Hip       float64 `json:"hip"`
	Stature   float64 `json:"stature"`
	Bodyfat   float64 `json:"bodyfat"`
	Water     float64 `json:"water"`
	Subfat    float64 `json:"subfat"`
	Visfat    float64 `json:"visfat"`
	BMR       float64 `json:"bmr"`
	Protein   float64 `json:"protein"`
	Bodyage   float64 `json:"bodyage"`
}

// Time returns the measurement timestamp as time.Time.
func (m Measurement) Time() time.Time {
	return parseStamp(m.TimeStamp)
}

// Girth is one tape-measure entry. The API reports every supported
// circumference per entry; zero means the field was not measured.
type Girth struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	TimeStamp int64  `json:"time_stamp"`
	TimeZone  string `json:"time_zone"`

	NeckValue       float64 `json:"neck_value"`
	ShoulderValue   float64 `json:"shoulder_value"`
	ArmValue        float64 `json:"arm_value"`
	ChestValue      float64 `json:"chest_value"`
	WaistValue      float64 `json:"waist_value"`
	HipValue        float64 `json:"hip_value"`
	ThighValue      float64 `json:"thigh_value"`
	CalfValue       float64 `json:"calf_value"`
	LeftArmValue    float64 `json:"left_arm_value"`
	LeftThighValue  float64 `json:"left_thigh_value"`
	LeftCalfValue   float64 `json:"left_calf_value"`
	RightArmValue   float64 `json:"right_arm_value"`
	RightThighValue float64 `json:"right_thigh_value"`
	RightCalfValue  float64 `json:"right_calf_value"`
	WhrValue        float64 `json:"whr_value"`
	AbdomenValue    float64 `json:"abdomen_value"`
}

// Time returns the entry timestamp as time.Time.
func (g Girth) Time() time.Time {
	return parseStamp(g.TimeStamp)
}

// GirthGoal is a target value for one girth type.
type GirthGoal struct {
	ID           int64   `json:"id"`
	UserID       int64   `json:"user_id"`
	GirthType    string  `json:"girth_type"`
	GoalValue    float64 `json:"goal_value"`
	GoalUnit     int     `json:"goal_unit"`
	InitialValue float64 `json:"initial_value"`
	InitialUnit  int     `json:"initial_unit"`
	SetupGoalAt  int64   `json:"setup_goal_at"`
	FinishGoalAt int64   `json:"finish_goal_at"`
}

// SetupTime returns the goal-setup timestamp as time.Time.
func (g GirthGoal) SetupTime() time.Time {
	return parseStamp(g.SetupGoalAt)
}

// ScaleUser is one profile registered on a scale.
type ScaleUser struct {
	ScaleUserID string `json:"scale_user_id"`
	UserID      int64  `json:"user_id"`
	Mac         string `json:"mac"`
	Index       int    `json:"index"`
	Key         int    `json:"key"`
	Method      int    `json:"method"`
}

// List payloads under the status envelope.

type measurementListPayload struct {
	LastAry []Measurement `json:"last_ary"`
}

type deviceListPayload struct {
	DeviceBinds []DeviceBind `json:"device_binds_ary"`
}

type girthListPayload struct {
	Girths []Girth `json:"girths"`
}

type girthGoalListPayload struct {
	GirthGoals []GirthGoal `json:"girth_goals"`
}

type scaleUserListPayload struct {
	ScaleUsers []ScaleUser `json:"scale_users"`
}

// RawPayload is an uninterpreted response body for resources the library
// caches wholesale without modeling (latest model, growth record, messages).
type RawPayload = json.RawMessage

func parseStamp(sec int64) time.Time {
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0)
}
