package notification

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/AttendanceDesk/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const maxListedFailures = 10

type messageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier posts batch check-in summaries to the organisers' chat.
type TelegramNotifier struct {
	bot    messageSender
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}
	if chatID == 0 {
		logger.Warn("telegram chat id is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBatchCompleted(ctx context.Context, eventID string, summary *domain.BatchSummary) {
	if summary == nil {
		return
	}
	n.send(ctx, FormatBatchSummary(eventID, summary))
}

// FormatBatchSummary renders the organiser message for one processed batch.
func FormatBatchSummary(eventID string, s *domain.BatchSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*Batch check-in processed*\n\nEvent: %s\n", escape(eventID))
	fmt.Fprintf(&b, "Checked in: %d\nAlready attended: %d\nFailed: %d\n",
		len(s.Succeeded), s.Duplicates, len(s.Failed))

	if s.Snapshot != nil {
		fmt.Fprintf(&b, "Attendance: %d/%d (%.1f%%)\n",
			s.Snapshot.Stats.TotalAttended,
			s.Snapshot.Stats.TotalRegistered,
			s.Snapshot.Stats.AttendanceRate,
		)
	}

	if len(s.Failed) > 0 {
		b.WriteString("\nFailures:\n")
		for i, f := range s.Failed {
			if i == maxListedFailures {
				fmt.Fprintf(&b, "...and %d more\n", len(s.Failed)-maxListedFailures)
				break
			}
			fmt.Fprintf(&b, "- %s: %s\n", escape(f.Identifier), escape(f.Reason))
		}
	}

	return b.String()
}

// escape keeps scanned codes like REG_001 from opening Markdown entities.
func escape(text string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
