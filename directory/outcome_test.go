package directory

import (
	"encoding/json"
	"testing"
	"voice_access/recognition"

	"github.com/stretchr/testify/assert"
)

func Test_ClassifyVerification(t *testing.T) {
	t.Run("threshold is the client value", func(t *testing.T) {
		o := ClassifyVerification(&recognition.VerifyResult{Status: "not recognized", Confidence: "40"}, "70")
		assert.Equal(t, OutcomeNotRecognized, o.Kind)
		assert.Equal(t, "70", o.Threshold)
		assert.Equal(t, "Best match confidence: 40% (Threshold: 70)", o.Status().Message)
	})

	t.Run("confidence is not recomputed", func(t *testing.T) {
		o := ClassifyVerification(&recognition.VerifyResult{Status: "recognized", Name: "alice", Confidence: "92.50"}, "0.65")
		assert.Equal(t, "92.50", o.Confidence)
		assert.Equal(t, "Identity: alice\nConfidence: 92.50%", o.Status().Message)
	})

	t.Run("error field fallback", func(t *testing.T) {
		o := ClassifyVerification(&recognition.VerifyResult{Error: "No file part"}, "0.65")
		assert.Equal(t, OutcomeError, o.Kind)
		assert.Equal(t, "Error: No file part", o.Status().Message)
	})

	t.Run("message wins over error field", func(t *testing.T) {
		o := ClassifyVerification(&recognition.VerifyResult{Status: "error", Message: "No speakers enrolled", Error: "x"}, "0.65")
		assert.Equal(t, "No speakers enrolled", o.Message)
	})

	t.Run("nil result", func(t *testing.T) {
		o := ClassifyVerification(nil, "0.65")
		assert.Equal(t, Status{State: Failed, Message: "Error: Unknown error", Style: StyleFailure}, o.Status())
	})

	t.Run("scores sorted by name", func(t *testing.T) {
		o := ClassifyVerification(&recognition.VerifyResult{
			Status:     "recognized",
			Name:       "bob",
			Confidence: "81",
			Scores:     map[string]json.Number{"carol": "12.5", "bob": "81", "alice": "33"},
		}, "0.65")

		assert.Equal(t, []Score{{"alice", "33"}, {"bob", "81"}, {"carol", "12.5"}}, o.Scores)
		assert.Equal(t, "Identity: bob\nConfidence: 81%\n\nAll scores:\nalice: 33%\nbob: 81%\ncarol: 12.5%", o.Status().Message)
	})
}

func Test_StateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "in_progress", InProgress.String())
	assert.Equal(t, "succeeded", Succeeded.String())
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "unknown", State(42).String())
}
