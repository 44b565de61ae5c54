package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendSolve(ctx context.Context, data SolveEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SolveEvent.Create().
		SetSequence(seqNum).
		SetQuestionCount(data.QuestionCount).
		SetBatchCount(data.BatchCount).
		SetFailedBatches(data.FailedBatches).
		SetPlaceholderCount(data.PlaceholderCount).
		SetEstimatedTokensSaved(data.EstimatedTokensSaved).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save solve event: %w", err)
	}

	return nil
}

func (r *eventRepo) AppendIllustration(ctx context.Context, data IllustrationEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.IllustrationEvent.Create().
		SetSequence(seqNum).
		SetQuestionID(data.QuestionID).
		SetFileID(data.FileID).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetLatencyMs(data.LatencyMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save illustration event: %w", err)
	}

	return nil
}
