package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/consistency21/internal/model"
)

func TestCodec_RoundTrip(t *testing.T) {
	analysis := testAnalysis()
	state := model.UserState{
		Goal: "Learn guitar",
		Plan: testPlan(21),
		Reports: map[int]model.DailyReport{
			1: {Day: 1, Completed: true, ActivitiesCompleted: []int{0, 1, 2}, Notes: "ok", Mood: 8, Timestamp: 1700000000000},
			4: {Day: 4, Completed: false, ActivitiesCompleted: []int{2}, Notes: "", Mood: 3, Timestamp: 1700000360000},
		},
		FinalAnalysis: &analysis,
		StartDate:     1699990000000,
	}

	raw, err := Encode(state)
	require.NoError(t, err)
	decoded, err := Decode(raw)
	require.NoError(t, err)

	assert.Equal(t, state, decoded)
}

func TestCodec_EmptyStateShape(t *testing.T) {
	raw, err := Encode(model.UserState{})
	require.NoError(t, err)

	assert.JSONEq(t, `{"goal":"","plan":[],"reports":{},"finalAnalysis":null,"startDate":0}`, raw)
}

func TestCodec_DecodeFillsMissingCollections(t *testing.T) {
	state, err := Decode(`{"goal":"g","plan":[{"day":1,"title":"t","guidance":"x"}],"reports":{"1":{"day":1,"mood":5}}}`)
	require.NoError(t, err)

	assert.Equal(t, []string{}, state.Plan[0].Activities)
	assert.Equal(t, []int{}, state.Reports[1].ActivitiesCompleted)
	assert.Nil(t, state.FinalAnalysis)
}

func TestCodec_DecodeRejectsGarbage(t *testing.T) {
	_, err := Decode("not json")
	assert.Error(t, err)
}
