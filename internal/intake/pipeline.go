package intake

import (
	"context"
	"fmt"
	"strings"

	"chat-task-manager/pkg/retry"
)

// Run executes the linear extraction flow over a fresh ExtractionState.
// Any stage failure aborts the run; the partial state is discarded.
func (p *implPipeline) Run(ctx context.Context, description string) (*ExtractionState, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}

	state := &ExtractionState{Description: description}

	stages := []struct {
		name string
		run  func(ctx context.Context, state *ExtractionState) error
	}{
		{StagePriority, p.runPriority},
		{StageDueDate, p.runDueDate},
		{StageCategory, p.runCategory},
		{StageAssemble, p.runAssemble},
		{StageConfirm, p.runConfirm},
	}

	for _, stage := range stages {
		if err := stage.run(ctx, state); err != nil {
			p.l.Warnf(ctx, "extraction aborted at stage %s: %v", stage.name, err)
			return nil, &StageError{Stage: stage.name, Err: err}
		}
		p.l.Debugf(ctx, "extraction stage %s done", stage.name)
	}

	return state, nil
}

func (p *implPipeline) runPriority(ctx context.Context, state *ExtractionState) error {
	out, err := p.complete(ctx, StagePriority, fmt.Sprintf(priorityPromptTemplate, state.Description))
	if err != nil {
		return err
	}
	state.Priority = normalize(out)
	return nil
}

// runDueDate keeps both due-date paths: the raw model text for messaging and
// the deterministic resolver result over the original phrase for persistence.
func (p *implPipeline) runDueDate(ctx context.Context, state *ExtractionState) error {
	out, err := p.complete(ctx, StageDueDate, fmt.Sprintf(dueDatePromptTemplate, state.Description))
	if err != nil {
		return err
	}
	state.DueDateText = strings.TrimSpace(out)
	state.DueDateResolved = p.resolver.Resolve(state.Description, p.now())
	return nil
}

func (p *implPipeline) runCategory(ctx context.Context, state *ExtractionState) error {
	out, err := p.complete(ctx, StageCategory, fmt.Sprintf(categoryPromptTemplate, state.Description))
	if err != nil {
		return err
	}
	state.Category = normalize(out)
	return nil
}

func (p *implPipeline) runAssemble(ctx context.Context, state *ExtractionState) error {
	state.Task = &AssembledTask{
		Description: state.Description,
		Priority:    state.Priority,
		DueDate:     state.DueDateResolved,
		Category:    state.Category,
	}
	return nil
}

func (p *implPipeline) runConfirm(ctx context.Context, state *ExtractionState) error {
	state.Confirmation = renderConfirmation(state.Task, state.DueDateText)
	return nil
}

// complete is one retry-wrapped exchange with the text-completion backend.
func (p *implPipeline) complete(ctx context.Context, stage, prompt string) (string, error) {
	return retry.Do(ctx, p.retry, p.l, stage, func(ctx context.Context) (string, error) {
		return p.completer.Complete(ctx, prompt)
	})
}

// renderConfirmation builds the fixed-template user-facing confirmation.
// The due date slot prefers the deterministic resolution; when nothing
// resolved it falls back to the model's free-text reading.
func renderConfirmation(task *AssembledTask, dueDateText string) string {
	due := task.DueDate.Format()
	if due == "" {
		due = dueDateText
	}
	if due == "" || due == "null" {
		due = noDueDateLabel
	}
	return fmt.Sprintf(confirmationTemplate, task.Description, task.Priority, due, task.Category)
}

// normalize trims and lower-cases a stage's raw model output. Membership in
// the closed priority/category sets is enforced later, at the storage
// boundary, not here.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
