package api

import (
	"context"

	"github.com/s21platform/outreach-workspace/internal/model"
)

const (
	sequencesPath = "/api/sequences"
	stepsPath     = "/api/steps"
)

func sequencePath(id int64) (string, error) {
	param, err := pathParam("id", id)
	if err != nil {
		return "", err
	}
	return sequencesPath + "/" + param, nil
}

func sequenceStepsPath(sequenceID int64) (string, error) {
	path, err := sequencePath(sequenceID)
	if err != nil {
		return "", err
	}
	return path + "/steps", nil
}

func (c *Client) GetSequences(ctx context.Context) ([]model.Sequence, error) {
	var sequences model.SequenceList
	if err := c.get(ctx, sequencesPath, &sequences); err != nil {
		return nil, err
	}
	return sequences, nil
}

func (c *Client) GetSequence(ctx context.Context, id int64) (*model.Sequence, error) {
	path, err := sequencePath(id)
	if err != nil {
		return nil, err
	}

	var sequence model.Sequence
	if err := c.get(ctx, path, &sequence); err != nil {
		return nil, err
	}
	return &sequence, nil
}

func (c *Client) CreateSequence(ctx context.Context, title string) (*model.Sequence, error) {
	var sequence model.Sequence
	if err := c.post(ctx, sequencesPath, model.CreateSequenceRequest{Title: title}, &sequence); err != nil {
		return nil, err
	}
	return &sequence, nil
}

func (c *Client) UpdateSequence(ctx context.Context, sequence model.Sequence) (*model.Sequence, error) {
	path, err := sequencePath(sequence.ID)
	if err != nil {
		return nil, err
	}

	var updated model.Sequence
	if err := c.put(ctx, path, sequence, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteSequence(ctx context.Context, id int64) error {
	path, err := sequencePath(id)
	if err != nil {
		return err
	}
	return c.delete(ctx, path)
}

func (c *Client) GetSteps(ctx context.Context, sequenceID int64) ([]model.SequenceStep, error) {
	path, err := sequenceStepsPath(sequenceID)
	if err != nil {
		return nil, err
	}

	var steps []model.SequenceStep
	if err := c.get(ctx, path, &steps); err != nil {
		return nil, err
	}
	return steps, nil
}

func (c *Client) AddStep(ctx context.Context, step model.SequenceStep) (*model.SequenceStep, error) {
	path, err := sequenceStepsPath(step.SequenceID)
	if err != nil {
		return nil, err
	}

	var created model.SequenceStep
	if err := c.post(ctx, path, step, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateStep(ctx context.Context, step model.SequenceStep) (*model.SequenceStep, error) {
	path, err := sequenceStepsPath(step.SequenceID)
	if err != nil {
		return nil, err
	}

	stepParam, err := pathParam("stepId", step.ID)
	if err != nil {
		return nil, err
	}

	var updated model.SequenceStep
	if err := c.put(ctx, path+"/"+stepParam, step, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteStep(ctx context.Context, stepID int64) error {
	stepParam, err := pathParam("stepId", stepID)
	if err != nil {
		return err
	}
	return c.delete(ctx, stepsPath+"/"+stepParam)
}
