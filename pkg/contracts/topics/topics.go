package topics

const (
	// Canal de ingestão (chat-bot → tracker)
	BetRecorded     = "bet_recorded"
	BetSettled      = "bet_settled"
	CapitalRecorded = "capital_movement_recorded"

	// DLQs
	BetRecordedDLQ     = "bet_recorded_dlq"
	BetSettledDLQ      = "bet_settled_dlq"
	CapitalRecordedDLQ = "capital_movement_recorded_dlq"
)
