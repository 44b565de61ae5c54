// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// IllustrationEventsColumns holds the columns for the "illustration_events" table.
	IllustrationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "question_id", Type: field.TypeString},
		{Name: "file_id", Type: field.TypeString, Default: ""},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
	}
	// IllustrationEventsTable holds the schema information for the "illustration_events" table.
	IllustrationEventsTable = &schema.Table{
		Name:       "illustration_events",
		Columns:    IllustrationEventsColumns,
		PrimaryKey: []*schema.Column{IllustrationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "illustrationevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{IllustrationEventsColumns[1]},
			},
			{
				Name:    "illustrationevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{IllustrationEventsColumns[2]},
			},
			{
				Name:    "illustrationevent_question_id",
				Unique:  false,
				Columns: []*schema.Column{IllustrationEventsColumns[3]},
			},
			{
				Name:    "illustrationevent_success",
				Unique:  false,
				Columns: []*schema.Column{IllustrationEventsColumns[5]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// SolveEventsColumns holds the columns for the "solve_events" table.
	SolveEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "question_count", Type: field.TypeInt},
		{Name: "batch_count", Type: field.TypeInt},
		{Name: "failed_batches", Type: field.TypeInt, Default: 0},
		{Name: "placeholder_count", Type: field.TypeInt, Default: 0},
		{Name: "estimated_tokens_saved", Type: field.TypeInt, Default: 0},
	}
	// SolveEventsTable holds the schema information for the "solve_events" table.
	SolveEventsTable = &schema.Table{
		Name:       "solve_events",
		Columns:    SolveEventsColumns,
		PrimaryKey: []*schema.Column{SolveEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "solveevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SolveEventsColumns[1]},
			},
			{
				Name:    "solveevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SolveEventsColumns[2]},
			},
			{
				Name:    "solveevent_question_count",
				Unique:  false,
				Columns: []*schema.Column{SolveEventsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		IllustrationEventsTable,
		LlmRequestEventsTable,
		SolveEventsTable,
	}
)

func init() {
}
