package engine

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Persisted keys. Each is written independently.
const (
	KeyPoints              = "points"
	KeyCompletedActivities = "completedActivities"
	KeyUserInfo            = "userInfo"
	KeyLastResetTime       = "lastResetTime"
)

// isoMillis matches the browser's Date.toISOString layout.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

type Profile struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func DefaultProfile() Profile {
	return Profile{Name: "Guest", Age: 0}
}

func encodePoints(n int) string {
	return strconv.Itoa(n)
}

func decodePoints(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}

// encodeCompleted writes the set as a JSON array in catalog order.
func encodeCompleted(set map[ActivityID]struct{}) string {
	ids := make([]string, 0, len(set))
	for _, a := range Activities {
		if _, ok := set[a]; ok {
			ids = append(ids, string(a))
		}
	}
	b, _ := json.Marshal(ids)
	return string(b)
}

// decodeCompleted drops identifiers that are not in the catalog.
func decodeCompleted(s string) (map[ActivityID]struct{}, bool) {
	var ids []string
	if err := json.Unmarshal([]byte(s), &ids); err != nil {
		return nil, false
	}
	set := make(map[ActivityID]struct{}, len(ids))
	for _, id := range ids {
		a := ActivityID(id)
		if a.IsValid() {
			set[a] = struct{}{}
		}
	}
	return set, true
}

func encodeProfile(p Profile) string {
	b, _ := json.Marshal(p)
	return string(b)
}

func decodeProfile(s string) (Profile, bool) {
	var p Profile
	if err := json.Unmarshal([]byte(s), &p); err != nil {
		return Profile{}, false
	}
	return NormalizeProfile(p), true
}

func encodeTime(t time.Time) string {
	return t.UTC().Format(isoMillis)
}

func decodeTime(s string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
