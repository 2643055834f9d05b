package cron

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"tutorly/config"
	"tutorly/models"
	"tutorly/services/tasks"
	"tutorly/utils"
)

// InitReminderWorker runs the reminder worker in the background. It drains
// the Redis-backed queue of reminder:appointment tasks.
func InitReminderWorker() *asynq.Server {
	logger := utils.GetLogger()

	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeAppointmentReminder, handleReminderTask(logger))

	go func() {
		logger.Sugar().Info("reminder worker: starting")
		if err := srv.Run(mux); err != nil {
			logger.Sugar().Errorf("reminder worker: stopped: %v", err)
		}
	}()

	return srv
}

func handleReminderTask(logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("reminder worker: invalid payload", zap.Error(err))
			return err
		}

		// Delivery is a log line for now; the portal's push channel hangs
		// off this handler.
		logger.Info("appointment reminder due",
			zap.String("appointmentID", p.AppointmentID),
			zap.String("title", p.Title),
			zap.Time("startTime", p.StartTime),
			zap.Strings("students", p.StudentIDs),
			zap.Strings("tutors", p.TutorIDs),
			zap.Strings("parents", p.ParentIDs),
		)
		return nil
	}
}
