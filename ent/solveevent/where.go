// Code generated by ent, DO NOT EDIT.

package solveevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/homewise/homewise/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldTimestamp, v))
}

// QuestionCount applies equality check predicate on the "question_count" field. It's identical to QuestionCountEQ.
func QuestionCount(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldQuestionCount, v))
}

// BatchCount applies equality check predicate on the "batch_count" field. It's identical to BatchCountEQ.
func BatchCount(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldBatchCount, v))
}

// FailedBatches applies equality check predicate on the "failed_batches" field. It's identical to FailedBatchesEQ.
func FailedBatches(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldFailedBatches, v))
}

// PlaceholderCount applies equality check predicate on the "placeholder_count" field. It's identical to PlaceholderCountEQ.
func PlaceholderCount(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldPlaceholderCount, v))
}

// EstimatedTokensSaved applies equality check predicate on the "estimated_tokens_saved" field. It's identical to EstimatedTokensSavedEQ.
func EstimatedTokensSaved(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldEstimatedTokensSaved, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLTE(FieldTimestamp, v))
}

// QuestionCountEQ applies the EQ predicate on the "question_count" field.
func QuestionCountEQ(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldQuestionCount, v))
}

// QuestionCountNEQ applies the NEQ predicate on the "question_count" field.
func QuestionCountNEQ(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNEQ(FieldQuestionCount, v))
}

// QuestionCountIn applies the In predicate on the "question_count" field.
func QuestionCountIn(vs ...int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldIn(FieldQuestionCount, vs...))
}

// QuestionCountNotIn applies the NotIn predicate on the "question_count" field.
func QuestionCountNotIn(vs ...int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNotIn(FieldQuestionCount, vs...))
}

// QuestionCountGT applies the GT predicate on the "question_count" field.
func QuestionCountGT(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGT(FieldQuestionCount, v))
}

// QuestionCountGTE applies the GTE predicate on the "question_count" field.
func QuestionCountGTE(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGTE(FieldQuestionCount, v))
}

// QuestionCountLT applies the LT predicate on the "question_count" field.
func QuestionCountLT(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLT(FieldQuestionCount, v))
}

// QuestionCountLTE applies the LTE predicate on the "question_count" field.
func QuestionCountLTE(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLTE(FieldQuestionCount, v))
}

// BatchCountEQ applies the EQ predicate on the "batch_count" field.
func BatchCountEQ(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldBatchCount, v))
}

// BatchCountNEQ applies the NEQ predicate on the "batch_count" field.
func BatchCountNEQ(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNEQ(FieldBatchCount, v))
}

// BatchCountIn applies the In predicate on the "batch_count" field.
func BatchCountIn(vs ...int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldIn(FieldBatchCount, vs...))
}

// BatchCountNotIn applies the NotIn predicate on the "batch_count" field.
func BatchCountNotIn(vs ...int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNotIn(FieldBatchCount, vs...))
}

// BatchCountGT applies the GT predicate on the "batch_count" field.
func BatchCountGT(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGT(FieldBatchCount, v))
}

// BatchCountGTE applies the GTE predicate on the "batch_count" field.
func BatchCountGTE(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGTE(FieldBatchCount, v))
}

// BatchCountLT applies the LT predicate on the "batch_count" field.
func BatchCountLT(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLT(FieldBatchCount, v))
}

// BatchCountLTE applies the LTE predicate on the "batch_count" field.
func BatchCountLTE(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLTE(FieldBatchCount, v))
}

// FailedBatchesEQ applies the EQ predicate on the "failed_batches" field.
func FailedBatchesEQ(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldFailedBatches, v))
}

// FailedBatchesNEQ applies the NEQ predicate on the "failed_batches" field.
func FailedBatchesNEQ(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNEQ(FieldFailedBatches, v))
}

// FailedBatchesIn applies the In predicate on the "failed_batches" field.
func FailedBatchesIn(vs ...int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldIn(FieldFailedBatches, vs...))
}

// FailedBatchesNotIn applies the NotIn predicate on the "failed_batches" field.
func FailedBatchesNotIn(vs ...int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNotIn(FieldFailedBatches, vs...))
}

// FailedBatchesGT applies the GT predicate on the "failed_batches" field.
func FailedBatchesGT(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGT(FieldFailedBatches, v))
}

// FailedBatchesGTE applies the GTE predicate on the "failed_batches" field.
func FailedBatchesGTE(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGTE(FieldFailedBatches, v))
}

// FailedBatchesLT applies the LT predicate on the "failed_batches" field.
func FailedBatchesLT(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLT(FieldFailedBatches, v))
}

// FailedBatchesLTE applies the LTE predicate on the "failed_batches" field.
func FailedBatchesLTE(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLTE(FieldFailedBatches, v))
}

// PlaceholderCountEQ applies the EQ predicate on the "placeholder_count" field.
func PlaceholderCountEQ(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldPlaceholderCount, v))
}

// PlaceholderCountNEQ applies the NEQ predicate on the "placeholder_count" field.
func PlaceholderCountNEQ(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNEQ(FieldPlaceholderCount, v))
}

// PlaceholderCountIn applies the In predicate on the "placeholder_count" field.
func PlaceholderCountIn(vs ...int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldIn(FieldPlaceholderCount, vs...))
}

// PlaceholderCountNotIn applies the NotIn predicate on the "placeholder_count" field.
func PlaceholderCountNotIn(vs ...int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNotIn(FieldPlaceholderCount, vs...))
}

// PlaceholderCountGT applies the GT predicate on the "placeholder_count" field.
func PlaceholderCountGT(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGT(FieldPlaceholderCount, v))
}

// PlaceholderCountGTE applies the GTE predicate on the "placeholder_count" field.
func PlaceholderCountGTE(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGTE(FieldPlaceholderCount, v))
}

// PlaceholderCountLT applies the LT predicate on the "placeholder_count" field.
func PlaceholderCountLT(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLT(FieldPlaceholderCount, v))
}

// PlaceholderCountLTE applies the LTE predicate on the "placeholder_count" field.
func PlaceholderCountLTE(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLTE(FieldPlaceholderCount, v))
}

// EstimatedTokensSavedEQ applies the EQ predicate on the "estimated_tokens_saved" field.
func EstimatedTokensSavedEQ(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldEstimatedTokensSaved, v))
}

// EstimatedTokensSavedNEQ applies the NEQ predicate on the "estimated_tokens_saved" field.
func EstimatedTokensSavedNEQ(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNEQ(FieldEstimatedTokensSaved, v))
}

// EstimatedTokensSavedIn applies the In predicate on the "estimated_tokens_saved" field.
func EstimatedTokensSavedIn(vs ...int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldIn(FieldEstimatedTokensSaved, vs...))
}

// EstimatedTokensSavedNotIn applies the NotIn predicate on the "estimated_tokens_saved" field.
func EstimatedTokensSavedNotIn(vs ...int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNotIn(FieldEstimatedTokensSaved, vs...))
}

// EstimatedTokensSavedGT applies the GT predicate on the "estimated_tokens_saved" field.
func EstimatedTokensSavedGT(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGT(FieldEstimatedTokensSaved, v))
}

// EstimatedTokensSavedGTE applies the GTE predicate on the "estimated_tokens_saved" field.
func EstimatedTokensSavedGTE(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGTE(FieldEstimatedTokensSaved, v))
}

// EstimatedTokensSavedLT applies the LT predicate on the "estimated_tokens_saved" field.
func EstimatedTokensSavedLT(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLT(FieldEstimatedTokensSaved, v))
}

// EstimatedTokensSavedLTE applies the LTE predicate on the "estimated_tokens_saved" field.
func EstimatedTokensSavedLTE(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLTE(FieldEstimatedTokensSaved, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SolveEvent) predicate.SolveEvent {
	return predicate.SolveEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SolveEvent) predicate.SolveEvent {
	return predicate.SolveEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SolveEvent) predicate.SolveEvent {
	return predicate.SolveEvent(sql.NotPredicates(p))
}
