package jobs

import (
	"context"
	"fmt"
	"time"

	"hackathon-backend/internal/logger"
)

// MarkOverdueOrders flips PICKED_UP orders to OVERDUE once the event's
// hardware due date has passed. A blank due date disables the job.
func (jr *JobRunner) MarkOverdueOrders() {
	jr.runWithRecovery("MarkOverdueOrders", func() {
		due := jr.config.Hackathon.HardwareDueDate
		if due == "" {
			logger.Debug("No hardware due date configured; skipping overdue check")
			return
		}
		dueDate, err := time.ParseInLocation("2006-01-02", due, jr.config.Location())
		if err != nil {
			logger.Error("Invalid hardware due date", "value", due, "error", err)
			return
		}
		if time.Now().Before(dueDate.Add(24 * time.Hour)) {
			return
		}

		ctx := context.Background()
		query := `
			UPDATE orders
			SET status = 'OVERDUE',
			    updated_on = NOW()
			WHERE status = 'PICKED_UP'
			RETURNING id, team_id
		`
		rows, err := jr.db.QueryContext(ctx, query)
		if err != nil {
			logger.Error("Failed to mark overdue orders", "error", err)
			return
		}
		defer rows.Close()

		var marked int
		for rows.Next() {
			var orderID, teamID int32
			if err := rows.Scan(&orderID, &teamID); err != nil {
				logger.Error("Failed to scan overdue order", "error", err)
				return
			}
			logger.Info("Order marked overdue", "order_id", orderID, "team_id", teamID)
			marked++
		}
		logger.Info("Overdue sweep finished", "marked", marked)
	})
}

// SendReturnReminders emails every member of teams that still have
// outstanding picked-up or overdue items.
func (jr *JobRunner) SendReturnReminders() {
	jr.runWithRecovery("SendReturnReminders", func() {
		ctx := context.Background()
		query := `
			SELECT DISTINCT u.email, u.name
			FROM orders o
			JOIN profiles p ON p.team_id = o.team_id
			JOIN users u ON u.id = p.user_id
			WHERE o.status IN ('PICKED_UP', 'OVERDUE')
		`
		rows, err := jr.db.QueryContext(ctx, query)
		if err != nil {
			logger.Error("Failed to query teams with outstanding hardware", "error", err)
			return
		}
		defer rows.Close()

		type recipient struct{ email, name string }
		var recipients []recipient
		for rows.Next() {
			var rec recipient
			if err := rows.Scan(&rec.email, &rec.name); err != nil {
				logger.Error("Failed to scan reminder recipient", "error", err)
				return
			}
			recipients = append(recipients, rec)
		}

		event := jr.config.Hackathon.EventName
		for _, rec := range recipients {
			subject := fmt.Sprintf("%s hardware return reminder", event)
			body := fmt.Sprintf("Hello %s,\n\nYour team still has hardware checked out. Please return it to the hardware desk.\n\nBest regards,\nThe %s Team", rec.name, event)
			if err := jr.emailSvc.Send(rec.email, subject, body); err != nil {
				logger.Error("Failed to send return reminder", "email", rec.email, "error", err)
			}
		}
		logger.Info("Return reminders sent", "count", len(recipients))
	})
}
