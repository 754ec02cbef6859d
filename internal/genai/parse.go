package genai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/verte-zerg/consistency21/internal/model"
)

// wireDay tolerates numbers sent as floats.
type wireDay struct {
	Day        float64  `json:"day"`
	Title      string   `json:"title"`
	Guidance   string   `json:"guidance"`
	Activities []string `json:"activities"`
}

// wireAnalysis uses pointers so missing required fields can be told apart from zero values.
type wireAnalysis struct {
	Summary          *string  `json:"summary"`
	ConsistencyScore *float64 `json:"consistencyScore"`
	Strengths        []string `json:"strengths"`
	Weaknesses       []string `json:"weaknesses"`
	NextSteps        string   `json:"nextSteps"`
}

// stripFences removes a surrounding Markdown code fence.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		text = text[nl+1:]
	} else {
		text = strings.TrimPrefix(text, "json")
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

// ParsePlan decodes a plan from either {"days":[...]} or a bare array.
// A reply without any day is malformed.
func ParsePlan(text string) ([]model.DayPlan, error) {
	text = stripFences(text)
	if text == "" {
		return nil, ErrEmptyResponse
	}
	var days []wireDay
	data := []byte(text)
	if bytes.HasPrefix(data, []byte("[")) {
		if err := json.Unmarshal(data, &days); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
	} else {
		var wrapped struct {
			Days []wireDay `json:"days"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		days = wrapped.Days
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("%w: no days in plan", ErrMalformedResponse)
	}
	plan := make([]model.DayPlan, 0, len(days))
	for _, d := range days {
		acts := d.Activities
		if acts == nil {
			acts = []string{}
		}
		plan = append(plan, model.DayPlan{
			Day:        int(math.Round(d.Day)),
			Title:      d.Title,
			Guidance:   d.Guidance,
			Activities: acts,
		})
	}
	return plan, nil
}

// ParseAnalysis decodes the final analysis object. Summary and consistencyScore are required.
func ParseAnalysis(text string) (model.FinalAnalysis, error) {
	text = stripFences(text)
	if text == "" {
		return model.FinalAnalysis{}, ErrEmptyResponse
	}
	var w wireAnalysis
	if err := json.Unmarshal([]byte(text), &w); err != nil {
		return model.FinalAnalysis{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if w.Summary == nil || w.ConsistencyScore == nil {
		return model.FinalAnalysis{}, fmt.Errorf("%w: missing summary or consistencyScore", ErrMalformedResponse)
	}
	if w.Strengths == nil {
		w.Strengths = []string{}
	}
	if w.Weaknesses == nil {
		w.Weaknesses = []string{}
	}
	return model.FinalAnalysis{
		Summary:          *w.Summary,
		ConsistencyScore: int(math.Round(*w.ConsistencyScore)),
		Strengths:        w.Strengths,
		Weaknesses:       w.Weaknesses,
		NextSteps:        w.NextSteps,
	}, nil
}
