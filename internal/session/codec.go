package session

import (
	"encoding/json"
	"fmt"

	"github.com/verte-zerg/consistency21/internal/model"
)

// Encode serializes the aggregate as one JSON document.
func Encode(state model.UserState) (string, error) {
	state = normalize(state)
	data, err := json.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("encode state: %w", err)
	}
	return string(data), nil
}

// Decode parses a serialized aggregate.
func Decode(raw string) (model.UserState, error) {
	var state model.UserState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return model.UserState{}, fmt.Errorf("decode state: %w", err)
	}
	return normalize(state), nil
}

func normalize(state model.UserState) model.UserState {
	if state.Plan == nil {
		state.Plan = []model.DayPlan{}
	}
	for i := range state.Plan {
		if state.Plan[i].Activities == nil {
			state.Plan[i].Activities = []string{}
		}
	}
	if state.Reports == nil {
		state.Reports = map[int]model.DailyReport{}
	}
	for day, r := range state.Reports {
		if r.ActivitiesCompleted == nil {
			r.ActivitiesCompleted = []int{}
			state.Reports[day] = r
		}
	}
	return state
}
