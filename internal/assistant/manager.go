package assistant

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"salonbot/internal/booking"
	"salonbot/internal/structs"
	"salonbot/internal/texts"
	"salonbot/internal/user"
	"salonbot/pkg/logger"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// ChatTransport is the slice of the chat platform the orchestrator needs:
// a way to answer and a way to show the "typing..." indicator while a run
// is in flight.
type ChatTransport interface {
	SendMessage(chatID int64, text string) error
	SendTyping(chatID int64)
}

// Manager drives one user's conversation thread: exactly one run at a time,
// tool calls resolved against the booking service.
type Manager struct {
	logger      logger.Logger
	client      *openai.Client
	assistantID string
	users       user.Service
	booking     booking.Service
	chat        ChatTransport

	user     structs.User
	chatID   int64
	threadID string

	mu           sync.Mutex
	pollInterval time.Duration
	runTimeout   time.Duration
}

// Initialize resolves the user's thread, creating and persisting one when
// missing. Failures are soft: the bot keeps working without the assistant.
func (m *Manager) Initialize(ctx context.Context) string {
	if m.threadID != "" {
		return m.threadID
	}

	if _, err := m.client.RetrieveAssistant(ctx, m.assistantID); err != nil {
		m.logger.Error(ctx, "failed to retrieve assistant", zap.Error(err))
		return ""
	}

	if m.user.ThreadID != "" {
		if _, err := m.client.RetrieveThread(ctx, m.user.ThreadID); err == nil {
			m.threadID = m.user.ThreadID
			return m.threadID
		}
		m.logger.Warn(ctx, "stored thread is gone, creating a new one",
			zap.String("thread_id", m.user.ThreadID))
	}

	thread, err := m.client.CreateThread(ctx, openai.ThreadRequest{})
	if err != nil {
		m.logger.Error(ctx, "failed to create thread", zap.Error(err))
		return ""
	}
	if err := m.users.UpdateThreadID(ctx, m.user.TelegramID, thread.ID); err != nil {
		m.logger.Error(ctx, "failed to persist thread id", zap.Error(err))
		return ""
	}
	m.threadID = thread.ID
	m.user.ThreadID = thread.ID
	return m.threadID
}

// Submit adds the user's message to the thread and drives a run to its
// terminal state. While a previous run is still in flight the caller gets
// the busy notice immediately.
func (m *Manager) Submit(ctx context.Context, content string) string {
	if !m.mu.TryLock() {
		return texts.AssistantBusy
	}
	defer m.mu.Unlock()

	if m.Initialize(ctx) == "" {
		return texts.AssistantError
	}

	m.cancelStaleRuns(ctx)

	_, err := m.client.CreateMessage(ctx, m.threadID, openai.MessageRequest{
		Role:    openai.ChatMessageRoleUser,
		Content: content,
	})
	if err != nil {
		m.logger.Error(ctx, "failed to create thread message", zap.Error(err))
		return texts.AssistantError
	}

	run, err := m.client.CreateRun(ctx, m.threadID, openai.RunRequest{
		AssistantID:            m.assistantID,
		AdditionalInstructions: m.additionalInstructions(),
	})
	if err != nil {
		m.logger.Error(ctx, "failed to create run", zap.Error(err))
		return texts.AssistantError
	}

	return m.handleRun(ctx, run)
}

func (m *Manager) additionalInstructions() string {
	return fmt.Sprintf("Клиент: %s\nНомер телефона: %s\nТекущее время: %s",
		m.user.Fullname(), m.user.Phone, time.Now().Format("2006-01-02T15:04:05"))
}

// cancelStaleRuns sweeps runs a previous session may have left active.
func (m *Manager) cancelStaleRuns(ctx context.Context) {
	runs, err := m.client.ListRuns(ctx, m.threadID, openai.Pagination{})
	if err != nil {
		m.logger.Warn(ctx, "failed to list runs", zap.Error(err))
		return
	}
	for _, run := range runs.Runs {
		switch run.Status {
		case openai.RunStatusCompleted, openai.RunStatusCancelled, openai.RunStatusExpired, openai.RunStatusFailed:
			continue
		}
		if _, err := m.client.CancelRun(ctx, m.threadID, run.ID); err != nil {
			m.logger.Warn(ctx, "failed to cancel stale run",
				zap.String("run_id", run.ID), zap.Error(err))
		}
	}
}

// handleRun polls the run until it finishes, keeping the typing indicator
// alive. The loop is bounded: a run that outlives the timeout is cancelled.
func (m *Manager) handleRun(ctx context.Context, run openai.Run) string {
	deadline := time.Now().Add(m.runTimeout)

	for {
		if time.Now().After(deadline) {
			m.logger.Error(ctx, "run exceeded timeout",
				zap.String("run_id", run.ID), zap.Duration("timeout", m.runTimeout))
			if _, err := m.client.CancelRun(ctx, m.threadID, run.ID); err != nil {
				m.logger.Warn(ctx, "failed to cancel timed out run", zap.Error(err))
			}
			return texts.AssistantError
		}

		m.chat.SendTyping(m.chatID)

		select {
		case <-ctx.Done():
			return texts.AssistantError
		case <-time.After(m.pollInterval):
		}

		current, err := m.client.RetrieveRun(ctx, m.threadID, run.ID)
		if err != nil {
			m.logger.Error(ctx, "failed to retrieve run", zap.Error(err))
			return texts.AssistantError
		}

		switch current.Status {
		case openai.RunStatusCompleted:
			return m.latestAssistantMessage(ctx)

		case openai.RunStatusRequiresAction:
			if err := m.submitToolOutputs(ctx, current); err != nil {
				m.logger.Error(ctx, "failed to submit tool outputs", zap.Error(err))
				return texts.AssistantError
			}

		case openai.RunStatusFailed, openai.RunStatusCancelled, openai.RunStatusExpired:
			m.logger.Error(ctx, "run finished without an answer",
				zap.String("run_id", current.ID), zap.String("status", string(current.Status)))
			return texts.AssistantError
		}
	}
}

func (m *Manager) submitToolOutputs(ctx context.Context, run openai.Run) error {
	if run.RequiredAction == nil || run.RequiredAction.SubmitToolOutputs == nil {
		return fmt.Errorf("run %s requires action but has no tool calls", run.ID)
	}

	outputs := make([]openai.ToolOutput, 0, len(run.RequiredAction.SubmitToolOutputs.ToolCalls))
	for _, call := range run.RequiredAction.SubmitToolOutputs.ToolCalls {
		result, err := m.dispatchTool(ctx, call.Function.Name, call.Function.Arguments)
		if err != nil && !errors.Is(err, ErrUnknownTool) {
			m.logger.Error(ctx, "tool call failed",
				zap.String("tool", call.Function.Name), zap.Error(err))
			result = fmt.Sprintf(`{"error": %q}`, err.Error())
		}
		outputs = append(outputs, openai.ToolOutput{
			ToolCallID: call.ID,
			Output:     result,
		})
	}

	_, err := m.client.SubmitToolOutputs(ctx, m.threadID, run.ID, openai.SubmitToolOutputsRequest{
		ToolOutputs: outputs,
	})
	return err
}

func (m *Manager) latestAssistantMessage(ctx context.Context) string {
	limit := 10
	order := "desc"
	msgs, err := m.client.ListMessage(ctx, m.threadID, &limit, &order, nil, nil, nil)
	if err != nil {
		m.logger.Error(ctx, "failed to list thread messages", zap.Error(err))
		return texts.AssistantError
	}
	for _, msg := range msgs.Messages {
		if msg.Role != openai.ChatMessageRoleAssistant {
			continue
		}
		for _, part := range msg.Content {
			if part.Text != nil {
				return part.Text.Value
			}
		}
	}
	return texts.AssistantError
}
