package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"

	entsql "entgo.io/ent/dialect/sql"
)

// Table names.
const (
	tableQuizzes    = "quizzes"
	tableFlashcards = "flashcards"
	tableLimits     = "user_limits"
	tableLLMEvents  = "llm_request_events"
)

var (
	quizzesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "pack_id", Type: field.TypeString},
		{Name: "quiz_name", Type: field.TypeString},
		{Name: "question", Type: field.TypeString, Size: 2147483647},
		{Name: "answer", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	quizzesTable = &schema.Table{
		Name:       tableQuizzes,
		Columns:    quizzesColumns,
		PrimaryKey: []*schema.Column{quizzesColumns[0]},
		Indexes: []*schema.Index{
			{Name: "quiz_user_id_pack_id", Columns: []*schema.Column{quizzesColumns[1], quizzesColumns[2]}},
		},
	}

	flashcardsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "pack_id", Type: field.TypeString},
		{Name: "question", Type: field.TypeString, Size: 2147483647},
		{Name: "answer", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	flashcardsTable = &schema.Table{
		Name:       tableFlashcards,
		Columns:    flashcardsColumns,
		PrimaryKey: []*schema.Column{flashcardsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "flashcard_user_id", Columns: []*schema.Column{flashcardsColumns[1]}},
		},
	}

	limitsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "q_limit", Type: field.TypeInt},
		{Name: "q_current", Type: field.TypeInt, Default: 0},
		{Name: "fc_limit", Type: field.TypeInt},
		{Name: "fc_current", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	limitsTable = &schema.Table{
		Name:       tableLimits,
		Columns:    limitsColumns,
		PrimaryKey: []*schema.Column{limitsColumns[0]},
	}

	llmEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt},
		{Name: "output_tokens", Type: field.TypeInt},
		{Name: "latency_ms", Type: field.TypeInt64},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647},
	}
	llmEventsTable = &schema.Table{
		Name:       tableLLMEvents,
		Columns:    llmEventsColumns,
		PrimaryKey: []*schema.Column{llmEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "llmrequestevent_purpose", Columns: []*schema.Column{llmEventsColumns[4]}},
		},
	}

	tables = []*schema.Table{quizzesTable, flashcardsTable, limitsTable, llmEventsTable}
)

// migrate creates or upgrades every table.
func migrate(ctx context.Context, drv *entsql.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("new migrate: %w", err)
	}
	if err := m.Create(ctx, tables...); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}
