// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/homewise/homewise/ent/solveevent"
)

// SolveEvent is the model entity for the SolveEvent schema.
type SolveEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Total questions submitted for batch solving
	QuestionCount int `json:"question_count,omitempty"`
	// Number of chunks the questions were split into
	BatchCount int `json:"batch_count,omitempty"`
	// Chunks whose solve call failed outright
	FailedBatches int `json:"failed_batches,omitempty"`
	// Questions that received a placeholder answer
	PlaceholderCount int `json:"placeholder_count,omitempty"`
	// Token savings estimate versus per-question calls
	EstimatedTokensSaved int `json:"estimated_tokens_saved,omitempty"`
	selectValues         sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SolveEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case solveevent.FieldID, solveevent.FieldSequence, solveevent.FieldQuestionCount, solveevent.FieldBatchCount, solveevent.FieldFailedBatches, solveevent.FieldPlaceholderCount, solveevent.FieldEstimatedTokensSaved:
			values[i] = new(sql.NullInt64)
		case solveevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SolveEvent fields.
func (_m *SolveEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case solveevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case solveevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case solveevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case solveevent.FieldQuestionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field question_count", values[i])
			} else if value.Valid {
				_m.QuestionCount = int(value.Int64)
			}
		case solveevent.FieldBatchCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field batch_count", values[i])
			} else if value.Valid {
				_m.BatchCount = int(value.Int64)
			}
		case solveevent.FieldFailedBatches:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failed_batches", values[i])
			} else if value.Valid {
				_m.FailedBatches = int(value.Int64)
			}
		case solveevent.FieldPlaceholderCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field placeholder_count", values[i])
			} else if value.Valid {
				_m.PlaceholderCount = int(value.Int64)
			}
		case solveevent.FieldEstimatedTokensSaved:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_tokens_saved", values[i])
			} else if value.Valid {
				_m.EstimatedTokensSaved = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SolveEvent.
// This includes values selected through modifiers, order, etc.
func (_m *SolveEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SolveEvent.
// Note that you need to call SolveEvent.Unwrap() before calling this method if this SolveEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SolveEvent) Update() *SolveEventUpdateOne {
	return NewSolveEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SolveEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SolveEvent) Unwrap() *SolveEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SolveEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SolveEvent) String() string {
	var builder strings.Builder
	builder.WriteString("SolveEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("question_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionCount))
	builder.WriteString(", ")
	builder.WriteString("batch_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.BatchCount))
	builder.WriteString(", ")
	builder.WriteString("failed_batches=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailedBatches))
	builder.WriteString(", ")
	builder.WriteString("placeholder_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlaceholderCount))
	builder.WriteString(", ")
	builder.WriteString("estimated_tokens_saved=")
	builder.WriteString(fmt.Sprintf("%v", _m.EstimatedTokensSaved))
	builder.WriteByte(')')
	return builder.String()
}

// SolveEvents is a parsable slice of SolveEvent.
type SolveEvents []*SolveEvent
