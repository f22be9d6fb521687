package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table and column names shared by the repositories.
const (
	tableMood       = "mood_entries"
	tableScreening  = "screening_events"
	tableBreathing  = "breathing_events"
	tableChat       = "chat_events"
	tableLLMRequest = "llm_request_events"

	colID        = "id"
	colSequence  = "sequence"
	colTimestamp = "timestamp"
)

// eventTable returns a table with the columns every event shares: an
// auto-increment id, the global sequence number and a unix-millisecond
// timestamp, both indexed.
func eventTable(name string, cols ...*schema.Column) *schema.Table {
	t := schema.NewTable(name).
		AddPrimary(&schema.Column{Name: colID, Type: field.TypeInt, Increment: true}).
		AddColumn(&schema.Column{Name: colSequence, Type: field.TypeInt64}).
		AddColumn(&schema.Column{Name: colTimestamp, Type: field.TypeInt64})
	for _, c := range cols {
		t.AddColumn(c)
	}
	t.AddIndex(name+"_sequence", true, []string{colSequence})
	t.AddIndex(name+"_timestamp", false, []string{colTimestamp})
	return t
}

func stringCol(name string) *schema.Column {
	return &schema.Column{Name: name, Type: field.TypeString, Default: ""}
}

func intCol(name string) *schema.Column {
	return &schema.Column{Name: name, Type: field.TypeInt, Default: 0}
}

func int64Col(name string) *schema.Column {
	return &schema.Column{Name: name, Type: field.TypeInt64, Default: 0}
}

func boolCol(name string) *schema.Column {
	return &schema.Column{Name: name, Type: field.TypeBool, Default: false}
}

var (
	moodTable = eventTable(tableMood,
		intCol("score"),
		stringCol("label"),
		stringCol("note"),
		stringCol("source"),
	)

	screeningTable = eventTable(tableScreening,
		stringCol("kind"),
		stringCol("answers"),
		intCol("total"),
		stringCol("severity"),
		boolCol("self_harm_risk"),
		boolCol("needs_support"),
	).AddIndex(tableScreening+"_kind", false, []string{"kind"})

	breathingTable = eventTable(tableBreathing,
		stringCol("session_id"),
		stringCol("program_id"),
		intCol("cycles_completed"),
		intCol("total_cycles"),
		intCol("seconds_practiced"),
		boolCol("completed"),
	).AddIndex(tableBreathing+"_program_id", false, []string{"program_id"})

	chatTable = eventTable(tableChat,
		stringCol("session_id"),
		stringCol("role"),
		stringCol("content"),
		stringCol("responder"),
	).AddIndex(tableChat+"_session_id", false, []string{"session_id"})

	llmRequestTable = eventTable(tableLLMRequest,
		stringCol("provider"),
		stringCol("model"),
		stringCol("purpose"),
		intCol("input_tokens"),
		intCol("output_tokens"),
		int64Col("latency_ms"),
		boolCol("success"),
		stringCol("error_message"),
		stringCol("request_body"),
		stringCol("response_body"),
	).AddIndex(tableLLMRequest+"_purpose", false, []string{"purpose"})

	// tables lists every table created by auto-migration.
	tables = []*schema.Table{
		moodTable,
		screeningTable,
		breathingTable,
		chatTable,
		llmRequestTable,
	}
)
