// Code generated by ent, DO NOT EDIT.

package solveevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the solveevent type in the database.
	Label = "solve_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldQuestionCount holds the string denoting the question_count field in the database.
	FieldQuestionCount = "question_count"
	// FieldBatchCount holds the string denoting the batch_count field in the database.
	FieldBatchCount = "batch_count"
	// FieldFailedBatches holds the string denoting the failed_batches field in the database.
	FieldFailedBatches = "failed_batches"
	// FieldPlaceholderCount holds the string denoting the placeholder_count field in the database.
	FieldPlaceholderCount = "placeholder_count"
	// FieldEstimatedTokensSaved holds the string denoting the estimated_tokens_saved field in the database.
	FieldEstimatedTokensSaved = "estimated_tokens_saved"
	// Table holds the table name of the solveevent in the database.
	Table = "solve_events"
)

// Columns holds all SQL columns for solveevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldQuestionCount,
	FieldBatchCount,
	FieldFailedBatches,
	FieldPlaceholderCount,
	FieldEstimatedTokensSaved,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DefaultFailedBatches holds the default value on creation for the "failed_batches" field.
	DefaultFailedBatches int
	// DefaultPlaceholderCount holds the default value on creation for the "placeholder_count" field.
	DefaultPlaceholderCount int
	// DefaultEstimatedTokensSaved holds the default value on creation for the "estimated_tokens_saved" field.
	DefaultEstimatedTokensSaved int
)

// OrderOption defines the ordering options for the SolveEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByQuestionCount orders the results by the question_count field.
func ByQuestionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionCount, opts...).ToFunc()
}

// ByBatchCount orders the results by the batch_count field.
func ByBatchCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBatchCount, opts...).ToFunc()
}

// ByFailedBatches orders the results by the failed_batches field.
func ByFailedBatches(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailedBatches, opts...).ToFunc()
}

// ByPlaceholderCount orders the results by the placeholder_count field.
func ByPlaceholderCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlaceholderCount, opts...).ToFunc()
}

// ByEstimatedTokensSaved orders the results by the estimated_tokens_saved field.
func ByEstimatedTokensSaved(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedTokensSaved, opts...).ToFunc()
}
