package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/AttendanceDesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type fakeSender struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, msg)
	}
	return tgbotapi.Message{}, f.err
}

func TestNewTelegramNotifier_DisabledWithoutToken(t *testing.T) {
	n, err := NewTelegramNotifier("", 42, newTestLogger(t))

	require.NoError(t, err)
	assert.Nil(t, n.bot)

	n.NotifyBatchCompleted(context.Background(), "e1", &domain.BatchSummary{})
}

func TestNewTelegramNotifier_DisabledWithoutChat(t *testing.T) {
	n, err := NewTelegramNotifier("token", 0, newTestLogger(t))

	require.NoError(t, err)
	assert.Nil(t, n.bot)
}

func TestTelegramNotifier_NotifyBatchCompleted(t *testing.T) {
	sender := &fakeSender{}
	n := &TelegramNotifier{bot: sender, chatID: 42, logger: newTestLogger(t)}

	n.NotifyBatchCompleted(context.Background(), "e1", &domain.BatchSummary{
		Succeeded:  []string{"Ann", "Ben"},
		Duplicates: 1,
		Failed:     []domain.FailedItem{{Identifier: "bogus", Reason: "Member not found or not registered for this event."}},
		Snapshot:   &domain.Snapshot{Stats: domain.NewAttendanceStats(10, 4)},
	})

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, int64(42), msg.ChatID)
	assert.Equal(t, "Markdown", msg.ParseMode)
	assert.Contains(t, msg.Text, "Checked in: 2")
	assert.Contains(t, msg.Text, "Already attended: 1")
	assert.Contains(t, msg.Text, "- bogus: Member not found")
	assert.Contains(t, msg.Text, "Attendance: 4/10 (40.0%)")
}

func TestTelegramNotifier_SkipsCancelledContext(t *testing.T) {
	sender := &fakeSender{}
	n := &TelegramNotifier{bot: sender, chatID: 42, logger: newTestLogger(t)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n.NotifyBatchCompleted(ctx, "e1", &domain.BatchSummary{})

	assert.Empty(t, sender.sent)
}

func TestTelegramNotifier_SendErrorIsSwallowed(t *testing.T) {
	sender := &fakeSender{err: errors.New("telegram down")}
	n := &TelegramNotifier{bot: sender, chatID: 42, logger: newTestLogger(t)}

	assert.NotPanics(t, func() {
		n.NotifyBatchCompleted(context.Background(), "e1", &domain.BatchSummary{})
	})
	assert.Len(t, sender.sent, 1)
}

func TestFormatBatchSummary_TruncatesFailures(t *testing.T) {
	s := &domain.BatchSummary{}
	for i := 0; i < maxListedFailures+3; i++ {
		s.Failed = append(s.Failed, domain.FailedItem{Identifier: fmt.Sprintf("c%d", i), Reason: "x"})
	}

	text := FormatBatchSummary("e1", s)

	assert.Equal(t, maxListedFailures, strings.Count(text, ": x\n"))
	assert.Contains(t, text, "...and 3 more")
	assert.NotContains(t, text, "Attendance:")
}

func TestFormatBatchSummary_EscapesMarkdown(t *testing.T) {
	text := FormatBatchSummary("spring_gala", &domain.BatchSummary{
		Failed: []domain.FailedItem{
			{Identifier: "REG_001", Reason: "Member not found or not registered for this event."},
			{Identifier: "*bold*[link]`x`", Reason: "boom"},
		},
	})

	assert.Contains(t, text, `Event: spring\_gala`)
	assert.Contains(t, text, `- REG\_001: Member not found`)
	assert.Contains(t, text, "- \\*bold\\*\\[link]\\`x\\`: boom")
	assert.True(t, strings.HasPrefix(text, "*Batch check-in processed*"))
}
