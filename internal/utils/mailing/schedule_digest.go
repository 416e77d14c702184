package mailing

import (
	"context"
	"fmt"
	"html"
	"prep-scheduler/domain"
	"prep-scheduler/internal/utils"
	"strings"
)

type ScheduleNotifier struct {
	recipients []string
	send       func(Message) error
}

// NewScheduleNotifier returns nil when SMTP or SCHEDULE_NOTIFY_EMAIL is not configured.
// SCHEDULE_NOTIFY_EMAIL may hold several comma separated addresses.
func NewScheduleNotifier() *ScheduleNotifier {
	cfg := LoadMailConfig()
	recipients := splitRecipients(utils.GetConfig("SCHEDULE_NOTIFY_EMAIL"))
	if len(recipients) == 0 || !cfg.Enabled() {
		return nil
	}
	return &ScheduleNotifier{
		recipients: recipients,
		send: func(msg Message) error {
			return SendMail(cfg, msg)
		},
	}
}

func splitRecipients(raw string) []string {
	var out []string
	for _, addr := range strings.Split(raw, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			out = append(out, addr)
		}
	}
	return out
}

func (n *ScheduleNotifier) NotifyNewTasks(ctx context.Context, tasks []domain.ScheduleTask) error {
	if len(tasks) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return n.send(Message{
		To:       n.recipients,
		Subject:  fmt.Sprintf("%d new prep task(s) scheduled", len(tasks)),
		HTMLBody: RenderDigest(tasks),
		TextBody: renderDigestText(tasks),
	})
}

func RenderDigest(tasks []domain.ScheduleTask) string {
	var b strings.Builder
	b.WriteString("<h3>New prep tasks</h3><table><tr><th>Weekday</th><th>Task</th><th>Item</th><th>Qty</th></tr>")
	for _, t := range tasks {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%g</td></tr>",
			html.EscapeString(t.Weekday),
			html.EscapeString(t.Task),
			html.EscapeString(t.Item),
			t.Qty,
		)
	}
	b.WriteString("</table>")
	return b.String()
}

func renderDigestText(tasks []domain.ScheduleTask) string {
	var b strings.Builder
	for _, t := range tasks {
		fmt.Fprintf(&b, "%s: %s (%s x %g)\n", t.Weekday, t.Task, t.Item, t.Qty)
	}
	return b.String()
}
