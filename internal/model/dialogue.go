package model

// Mode is the conversation's current operating domain.
type Mode string

const (
	ModeAppointment Mode = "appointment"
	ModeKnowledge   Mode = "knowledge"
)

// Intent is the categorical purpose of an utterance.
type Intent string

const (
	IntentScheduleAppointment Intent = "schedule_appointment"
	IntentCheckAvailability   Intent = "check_availability"
	IntentCancelAppointment   Intent = "cancel_appointment"
	IntentListAppointments    Intent = "list_appointments"
	IntentKnowledgeQuery      Intent = "knowledge_query"
	IntentSwitchMode          Intent = "switch_mode"
	IntentUnknown             Intent = "unknown"
)

// NaturalMode returns the operating mode an intent belongs to.
// IntentSwitchMode and IntentUnknown have no natural mode of their own;
// they return the empty Mode and are resolved by the dialogue manager.
func (i Intent) NaturalMode() Mode {
	switch i {
	case IntentScheduleAppointment, IntentCheckAvailability,
		IntentCancelAppointment, IntentListAppointments:
		return ModeAppointment
	case IntentKnowledgeQuery:
		return ModeKnowledge
	default:
		return ""
	}
}
