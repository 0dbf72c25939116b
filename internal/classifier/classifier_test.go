package classifier_test

import (
	"testing"

	"appointment-assistant/internal/classifier"
	"appointment-assistant/internal/model"
)

func TestClassify(t *testing.T) {
	c := classifier.New()

	tests := []struct {
		name       string
		text       string
		active     model.Mode
		wantIntent model.Intent
	}{
		{"schedule verb", "I want to schedule an appointment", model.ModeAppointment, model.IntentScheduleAppointment},
		{"book with person", "book a meeting with John tomorrow", model.ModeAppointment, model.IntentScheduleAppointment},
		{"see a doctor", "I need to see a doctor", model.ModeAppointment, model.IntentScheduleAppointment},
		{"cancel", "cancel my appointment with Dr Smith", model.ModeAppointment, model.IntentCancelAppointment},
		{"cancel it", "please cancel it", model.ModeAppointment, model.IntentCancelAppointment},
		{"availability", "is John available on Friday?", model.ModeAppointment, model.IntentCheckAvailability},
		{"availability misspelled", "check availibility of Dr Smith", model.ModeAppointment, model.IntentCheckAvailability},
		{"when available", "when is Dr Smith available", model.ModeAppointment, model.IntentCheckAvailability},
		{"list", "show my appointments", model.ModeAppointment, model.IntentListAppointments},
		{"list question", "what appointments do I have this week", model.ModeAppointment, model.IntentListAppointments},
		{"knowledge what-is", "what is the capital of France", model.ModeAppointment, model.IntentKnowledgeQuery},
		{"knowledge explain", "explain photosynthesis to me", model.ModeKnowledge, model.IntentKnowledgeQuery},
		{"switch to knowledge", "switch to knowledge mode", model.ModeAppointment, model.IntentSwitchMode},
		{"switch to appointment", "let's go back to appointment mode", model.ModeKnowledge, model.IntentSwitchMode},
		{"unknown", "the weather sure is nice", model.ModeAppointment, model.IntentUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Classify(tc.text, tc.active)
			if got.Intent != tc.wantIntent {
				t.Errorf("Classify(%q) = %s (%.2f), want %s", tc.text, got.Intent, got.Confidence, tc.wantIntent)
			}
		})
	}
}

func TestClassifyConfidence(t *testing.T) {
	c := classifier.New()

	t.Run("single match is high confidence", func(t *testing.T) {
		got := c.Classify("cancel my appointment", model.ModeAppointment)
		if got.Intent != model.IntentCancelAppointment || got.Confidence < 0.8 {
			t.Errorf("got %s conf %.2f", got.Intent, got.Confidence)
		}
	})

	t.Run("competing matches split confidence", func(t *testing.T) {
		// Triggers both cancel and schedule patterns.
		got := c.Classify("cancel the appointment and book a meeting with John", model.ModeAppointment)
		if got.Intent != model.IntentCancelAppointment {
			t.Fatalf("primary intent = %s", got.Intent)
		}
		if got.Confidence >= 0.5 {
			t.Errorf("confidence %.2f should be diluted below 0.5 by competing matches", got.Confidence)
		}
	})

	t.Run("question form falls back to knowledge", func(t *testing.T) {
		got := c.Classify("how tall is Mount Everest?", model.ModeAppointment)
		if got.Intent != model.IntentKnowledgeQuery {
			t.Fatalf("intent = %s", got.Intent)
		}
		if got.Confidence != 0.6 {
			t.Errorf("confidence = %.2f, want reduced 0.60", got.Confidence)
		}
	})

	t.Run("question about appointments is not knowledge", func(t *testing.T) {
		got := c.Classify("can I book an appointment?", model.ModeAppointment)
		if got.Intent == model.IntentKnowledgeQuery {
			t.Errorf("appointment question misrouted to knowledge")
		}
	})

	t.Run("unknown has zero confidence", func(t *testing.T) {
		got := c.Classify("the weather sure is nice", model.ModeAppointment)
		if got.Intent != model.IntentUnknown || got.Confidence != 0 {
			t.Errorf("got %s conf %.2f", got.Intent, got.Confidence)
		}
	})
}
