package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"medigo/config"
	"medigo/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// reminderLead is how far ahead of the appointment the reminder fires.
const reminderLead = 24 * time.Hour

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// Client enqueues reminder tasks onto the Redis-backed queue. It satisfies
// the booking finalizer's ReminderQueue.
type Client struct {
	client *asynq.Client
}

func NewClient() *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		}),
	}
}

// ScheduleReminder enqueues a reminder 24 hours before the appointment, or
// a minute from now when the appointment is closer than that.
func (c *Client) ScheduleReminder(appt *models.Appointment) error {
	start, err := time.ParseInLocation("2006-01-02 15:04", appt.Date+" "+appt.TimeSlot.StartTime, time.Local)
	if err != nil {
		return fmt.Errorf("parsing appointment time: %w", err)
	}
	fireAt := start.Add(-reminderLead)
	if fireAt.Before(time.Now()) {
		fireAt = time.Now().Add(time.Minute)
	}

	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		UserID:        appt.UserID,
		DoctorName:    appt.DoctorName,
		Hospital:      appt.Hospital,
		Date:          appt.Date,
		StartTime:     appt.TimeSlot.StartTime,
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("building reminder task: %w", err)
	}
	if _, err := c.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("enqueueing reminder task: %w", err)
	}
	return nil
}
