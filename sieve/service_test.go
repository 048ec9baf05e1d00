package sieve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestService(t *testing.T) (*Service, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	svc, err := NewService(DefaultKnowledgeBase(), zap.New(core))
	require.NoError(t, err)
	return svc, logs
}

func TestNewServiceRequiresKnowledge(t *testing.T) {
	_, err := NewService(nil, nil)
	assert.Error(t, err)

	svc, err := NewService(DefaultKnowledgeBase(), nil)
	require.NoError(t, err)
	assert.Empty(t, svc.Selected())
}

func TestServiceAddSymptom(t *testing.T) {
	svc, logs := newTestService(t)

	sym, added, err := svc.AddSymptom(" fever ")
	require.NoError(t, err)
	assert.Equal(t, Symptom("Fever"), sym)
	assert.True(t, added)

	_, added, err = svc.AddSymptom("Fever")
	require.NoError(t, err)
	assert.False(t, added)

	assert.Equal(t, []Symptom{"Fever"}, svc.Selected())
	assert.Equal(t, 1, logs.FilterMessage("symptom selected").Len())
}

func TestServiceRejectsUnknownSymptomWithoutChangingState(t *testing.T) {
	svc, logs := newTestService(t)
	_, _, err := svc.AddSymptom("Cough")
	require.NoError(t, err)

	for _, label := range []string{"", "Hiccups"} {
		_, added, err := svc.AddSymptom(label)
		assert.ErrorIs(t, err, ErrInvalidSymptom)
		assert.False(t, added)
	}
	assert.Equal(t, []Symptom{"Cough"}, svc.Selected())
	assert.Equal(t, 2, logs.FilterMessage("symptom rejected").Len())
}

func TestServiceClearSelection(t *testing.T) {
	svc, _ := newTestService(t)
	svc.ClearSelection()
	assert.True(t, svc.CombinedView().Empty())

	_, _, _ = svc.AddSymptom("Fever")
	_, _, _ = svc.AddSymptom("Rash")
	svc.ClearSelection()
	assert.Empty(t, svc.Selected())
	assert.True(t, svc.CombinedView().Empty())
	assert.Nil(t, svc.Views())
}

func TestServiceViews(t *testing.T) {
	svc, _ := newTestService(t)
	assert.Nil(t, svc.Views())

	_, _, _ = svc.AddSymptom("Fever")
	_, _, _ = svc.AddSymptom("Cough")

	views := svc.Views()
	require.Len(t, views, 3)
	assert.True(t, views[0].Combined)
	assert.Equal(t, "Combined (Fever, Cough)", views[0].Title)
	assert.Equal(t, "Fever", views[1].Title)
	assert.Equal(t, "Cough", views[2].Title)
	assert.Equal(t,
		[]string{"Viral URTI", "Pneumonia", "UTI", "Sepsis", "Viral bronchitis", "Tuberculosis"},
		views[0].Diagnoses(CategoryInfection))
}

func TestServicePerSymptomViewIsCachedAndIsolated(t *testing.T) {
	svc, _ := newTestService(t)
	first := svc.PerSymptomView("Fever")
	first.Groups[0].Diagnoses[0] = "mutated"

	second := svc.PerSymptomView("Fever")
	assert.Equal(t, "Thyrotoxicosis", second.Diagnoses(CategoryMetabolic)[0])
	assert.Equal(t, PerSymptomView(svc.Knowledge(), "Fever"), second)

	assert.True(t, svc.PerSymptomView("Hiccups").Empty())
	_, cached := svc.views.Get("Hiccups")
	assert.False(t, cached)
}
