package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"medibook/config"
	"medibook/models"
	"medibook/services/availability"
	"medibook/services/practitioner"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeAvailabilityWarm = "availability:warm"

// WarmPayload asks the worker to precompute the default search window for
// every active practitioner in a vertical, populating the response cache.
type WarmPayload struct {
	Vertical string `json:"vertical"`
	Timezone string `json:"timezone"`
}

// InitWarmWorker runs the async cache-warming worker in background.
func InitWarmWorker(availSvc availability.Service, practitionerSvc practitioner.PractitionerService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisWarmerDB,
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
	mux.HandleFunc(TypeAvailabilityWarm, handleWarmTask(availSvc, practitionerSvc))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[WarmWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[WarmWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[WarmWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleWarmTask(availSvc availability.Service, practitionerSvc practitioner.PractitionerService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p WarmPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[WarmHandler] Invalid payload: %v", err)
			return err
		}

		summaries, err := practitionerSvc.GetByVertical(ctx, p.Vertical)
		if err != nil {
			log.Printf("[WarmHandler] Failed to resolve vertical %s: %v", p.Vertical, err)
			return err
		}
		if len(summaries) == 0 {
			return nil
		}

		ids := make([]string, 0, len(summaries))
		for _, s := range summaries {
			ids = append(ids, s.ID)
		}

		tz := p.Timezone
		if tz == "" {
			tz = "UTC"
		}

		// A plain search populates the shared response cache as a side effect.
		if _, err := availSvc.SearchAvailability(ctx, models.AvailabilityQuery{
			PractitionerIDs: ids,
			MemberTimezone:  tz,
		}); err != nil {
			log.Printf("[WarmHandler] Warm search failed for vertical %s: %v", p.Vertical, err)
			return err
		}

		log.Printf("[WarmHandler] Warmed availability for %d practitioners in %s", len(ids), p.Vertical)
		return nil
	}
}

// EnqueueWarm schedules a cache-warm task for one vertical.
func EnqueueWarm(client *asynq.Client, vertical, timezone string) error {
	payload, err := json.Marshal(WarmPayload{Vertical: vertical, Timezone: timezone})
	if err != nil {
		return err
	}
	_, err = client.Enqueue(asynq.NewTask(TypeAvailabilityWarm, payload))
	return err
}

// StartWarmScheduler enqueues a warm task per vertical on a fixed interval.
func StartWarmScheduler(client *asynq.Client, verticals []string, interval time.Duration) {
	if len(verticals) == 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			for _, vertical := range verticals {
				if err := EnqueueWarm(client, vertical, "UTC"); err != nil {
					log.Printf("[WarmScheduler] Failed to enqueue warm task for %s: %v", vertical, err)
				}
			}
		}
	}()
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisWarmerDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[WarmWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
