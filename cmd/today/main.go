// Command today lists the open tasks due today and can mark one completed.
//
//	today [-tz Europe/Berlin] [-complete <task id>]
//
// It reads the same configuration as the server.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"
	_ "time/tzdata"

	"github.com/google/uuid"
	"github.com/learnlynk/task-api/internal/clock"
	"github.com/learnlynk/task-api/internal/config"
	"github.com/learnlynk/task-api/internal/domain"
	"github.com/learnlynk/task-api/internal/platform/logger"
	"github.com/learnlynk/task-api/internal/platform/postgres"
	"github.com/learnlynk/task-api/internal/service"
)

func main() {
	tz := flag.String("tz", "UTC", "IANA time zone that defines \"today\"")
	complete := flag.String("complete", "", "ID of a task to mark completed before listing")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, *tz, *complete); err != nil {
		fmt.Fprintln(os.Stderr, "today:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, out io.Writer, tz, completeID string) error {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("invalid -tz %q: %w", tz, err)
	}

	var taskID uuid.UUID
	if completeID != "" {
		if taskID, err = uuid.Parse(completeID); err != nil {
			return fmt.Errorf("invalid -complete id %q: %w", completeID, err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Logs go to stderr so stdout stays a clean table.
	log, err := logger.SetupWithWriter(cfg.Server, os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	db, err := postgres.OpenDB(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := service.NewTaskRepositoryAdapter(
		postgres.NewPostgresApplicationStore(db, log),
		postgres.NewPostgresTaskStore(db, log),
		db,
	)
	svc, err := service.NewTaskService(repo, clock.System{}, log)
	if err != nil {
		return err
	}

	return execute(ctx, svc, out, loc, taskID)
}

// execute optionally completes taskID, then prints today's open tasks in loc.
func execute(ctx context.Context, svc service.TaskService, out io.Writer, loc *time.Location, taskID uuid.UUID) error {
	if taskID != uuid.Nil {
		if err := svc.CompleteTask(ctx, taskID); err != nil {
			return fmt.Errorf("failed to complete task %s: %w", taskID, err)
		}
		fmt.Fprintf(out, "Completed %s\n\n", taskID)
	}

	tasks, err := svc.ListDueToday(ctx, loc)
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}

	return printTasks(out, tasks, loc)
}

func printTasks(out io.Writer, tasks []*domain.Task, loc *time.Location) error {
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(out, "No tasks due today.")
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DUE\tTYPE\tSTATUS\tAPPLICATION\tID")
	for _, task := range tasks {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			task.DueAt.In(loc).Format("15:04"),
			task.Type,
			task.Status,
			task.ApplicationID,
			task.ID)
	}
	return tw.Flush()
}
