package directory

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"voice_access/recognition"
)

type OutcomeKind int

const (
	OutcomeRecognized OutcomeKind = iota
	OutcomeNotRecognized
	OutcomeError
)

const msgUnknownError = "Unknown error"

type Score struct {
	Name       string
	Confidence string
}

// Outcome результат проверки образца.
// Для OutcomeRecognized заполнены Name и Confidence, для OutcomeNotRecognized Confidence и Threshold,
// для OutcomeError только Message.
type Outcome struct {
	Kind       OutcomeKind
	Name       string
	Confidence string
	Threshold  string
	Message    string
	Scores     []Score
}

// ClassifyVerification разбирает ответ по полю status, код HTTP значения не имеет.
// threshold - значение, введенное пользователем, а не эхо сервера.
func ClassifyVerification(result *recognition.VerifyResult, threshold string) Outcome {
	if result == nil {
		return Outcome{Kind: OutcomeError, Message: msgUnknownError}
	}

	switch result.Status {
	case recognition.StatusRecognized:
		return Outcome{
			Kind:       OutcomeRecognized,
			Name:       result.Name,
			Confidence: result.Confidence.String(),
			Scores:     scores(result.Scores),
		}
	case recognition.StatusNotRecognized:
		return Outcome{
			Kind:       OutcomeNotRecognized,
			Confidence: result.Confidence.String(),
			Threshold:  threshold,
			Scores:     scores(result.Scores),
		}
	}

	msg := result.Message
	if msg == "" {
		msg = result.Error
	}
	if msg == "" {
		msg = msgUnknownError
	}

	return Outcome{Kind: OutcomeError, Message: msg}
}

func (o Outcome) Status() Status {
	switch o.Kind {
	case OutcomeRecognized:
		return Status{
			State:   Succeeded,
			Title:   "ACCESS GRANTED",
			Message: fmt.Sprintf("Identity: %s\nConfidence: %s%%", o.Name, o.Confidence) + o.scoresText(),
			Style:   StyleSuccess,
		}
	case OutcomeNotRecognized:
		return Status{
			State:   Failed,
			Title:   "ACCESS DENIED",
			Message: fmt.Sprintf("Best match confidence: %s%% (Threshold: %s)", o.Confidence, o.Threshold) + o.scoresText(),
			Style:   StyleFailure,
		}
	}

	return failed("Error: " + o.Message)
}

func (o Outcome) scoresText() string {
	if len(o.Scores) == 0 {
		return ""
	}

	lines := make([]string, 0, len(o.Scores))
	for _, s := range o.Scores {
		lines = append(lines, fmt.Sprintf("%s: %s%%", s.Name, s.Confidence))
	}

	return "\n\nAll scores:\n" + strings.Join(lines, "\n")
}

func scores(all map[string]json.Number) []Score {
	if len(all) == 0 {
		return nil
	}

	result := make([]Score, 0, len(all))
	for name, c := range all {
		result = append(result, Score{Name: name, Confidence: c.String()})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}
