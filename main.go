package main

import (
	"context"
	"net/http"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/paivaedu632/dental-sub001/cmd"
	"github.com/paivaedu632/dental-sub001/internal/api"
	"github.com/paivaedu632/dental-sub001/internal/locks"
	"github.com/paivaedu632/dental-sub001/internal/notify"
	"github.com/paivaedu632/dental-sub001/repository"
	"github.com/paivaedu632/dental-sub001/utils"
)

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	args := os.Args[1:]
	if len(args) == 0 {
		logrus.Info("Please provide command")
		return
	}

	var err error
	command := args[0]
	switch command {
	case "server":
		logrus.Info("starting API server")
		err = runServer()
	case "reminder_sweep":
		logrus.Info("running onboarding reminder sweep")
		db, dberr := utils.GetDBConnection()
		if dberr != nil {
			logrus.Error(dberr.Error())
			return
		}
		job := cmd.NewReminderJob(
			repository.NewAccountRepository(db),
			repository.NewTokenRepository(db),
			buildNotifier(),
			utils.Config("BASE_URL"),
		)
		_, err = job.Run(context.Background())
	case "token_sweep":
		logrus.Info("removing expired access tokens")
		db, dberr := utils.GetDBConnection()
		if dberr != nil {
			logrus.Error(dberr.Error())
			return
		}
		job := cmd.NewTokenSweepJob(repository.NewTokenRepository(db))
		err = job.Run(context.Background())
	case "billing_report":
		logrus.Info("generating monthly usage statements")
		db, dberr := utils.GetDBConnection()
		if dberr != nil {
			logrus.Error(dberr.Error())
			return
		}
		job := cmd.NewBillingReportJob(db,
			repository.NewAppointmentRepository(db),
			cmd.NewS3ReportUploaderFromEnv())
		err = job.Run(context.Background())
	}
	if err != nil {
		logrus.Error(err.Error())
	}
}

func buildNotifier() notify.Notifier {
	queueURL := utils.Config("QUEUE_URL")
	if queueURL != "" {
		conn, err := amqp.Dial(queueURL)
		if err == nil {
			publisher, err := notify.NewQueueNotifier(conn)
			if err == nil {
				return publisher
			}
			logrus.WithError(err).Error("could not set up queue notifier, sending directly")
		} else {
			logrus.WithError(err).Error("could not connect to queue, sending directly")
		}
	}
	return notify.NewMailgunNotifier(
		utils.Config("MAILGUN_DOMAIN"),
		utils.Config("MAILGUN_API_KEY"),
		utils.Config("MAILGUN_SENDER"),
	)
}

func runServer() error {
	db, err := utils.GetDBConnection()
	if err != nil {
		return err
	}

	var lockSvc *locks.Service
	if redisURL := utils.Config("REDIS_URL"); redisURL != "" {
		rdb, err := locks.Connect(redisURL)
		if err != nil {
			return err
		}
		lockSvc = locks.NewService(rdb)
	} else {
		logrus.Warn("REDIS_URL not set, webhook dedupe and sweep locks disabled")
	}

	accounts := repository.NewAccountRepository(db)
	appointments := repository.NewAppointmentRepository(db)
	tokens := repository.NewTokenRepository(db)
	payments := repository.NewPaymentRepository(utils.GetBillingParams())
	notifier := buildNotifier()
	baseURL := utils.Config("BASE_URL")

	reminderJob := cmd.NewReminderJob(accounts, tokens, notifier, baseURL)
	tokenSweep := cmd.NewTokenSweepJob(tokens)

	c := cron.New()
	// hourly onboarding reminders
	_, _ = c.AddFunc("0 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		if ok, _ := lockSvc.AcquireSweepLock(ctx, "reminders", 50*time.Minute); !ok {
			logrus.Info("reminder sweep lock held by another instance, skipping")
			return
		}
		if _, err := reminderJob.Run(ctx); err != nil {
			logrus.Error(err.Error())
		}
	})
	// nightly token cleanup
	_, _ = c.AddFunc("0 3 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		if ok, _ := lockSvc.AcquireSweepLock(ctx, "token_sweep", 50*time.Minute); !ok {
			return
		}
		if err := tokenSweep.Run(ctx); err != nil {
			logrus.Error(err.Error())
		}
	})
	c.Start()

	router := api.NewRouter(api.RouterConfig{
		Accounts:      accounts,
		Appointments:  appointments,
		Tokens:        tokens,
		Payments:      payments,
		Notifier:      notifier,
		Dedupe:        lockSvc,
		ReminderJob:   reminderJob,
		WebhookSecret: utils.Config("STRIPE_WEBHOOK_SECRET"),
		BaseURL:       baseURL,
	})

	addr := utils.Config("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	logrus.Infof("listening on %s", addr)
	return http.ListenAndServe(addr, router)
}
