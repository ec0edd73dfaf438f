// Package add provides the runner logic for creating tasks.
package add

import (
	"context"
	"errors"
	"strconv"

	"github.com/manifoldco/promptui"

	"tableflip.dev/weekplan/pkg/planner"
	"tableflip.dev/weekplan/pkg/printers"
	"tableflip.dev/weekplan/pkg/task"
)

// Add creates a task from a draft on the given day.
type Add struct {
	Draft       task.Draft
	Day         string
	Interactive bool

	Store *planner.Store
}

// Do executes the add operation and prints the resulting day.
func (n *Add) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not add, no store")
	}

	if n.Interactive {
		if err := n.prompt(); err != nil {
			return err
		}
	}

	if err := n.Store.CreateTask(n.Draft, n.Day); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Day(n.Day, n.Store.State().TasksOn(n.Day))
	return nil
}

func (n *Add) prompt() error {
	title := promptui.Prompt{Label: "Title", Default: n.Draft.Title}
	v, err := title.Run()
	if err != nil {
		return err
	}
	n.Draft.Title = v

	when := promptui.Prompt{Label: "Time (HH:MM, empty for anytime)", Default: n.Draft.Time}
	if v, err = when.Run(); err != nil {
		return err
	}
	n.Draft.Time = v

	duration := promptui.Prompt{
		Label:   "Duration minutes",
		Default: strconv.Itoa(n.Draft.Duration),
		Validate: func(input string) error {
			_, err := strconv.Atoi(input)
			return err
		},
	}
	if v, err = duration.Run(); err != nil {
		return err
	}
	n.Draft.Duration, _ = strconv.Atoi(v)

	priorities := task.AllPriorities()
	selPriority := promptui.Select{Label: "Priority", Items: priorities}
	i, _, err := selPriority.Run()
	if err != nil {
		return err
	}
	n.Draft.Priority = priorities[i]

	buckets := task.AllBuckets()
	selBucket := promptui.Select{Label: "Bucket", Items: buckets}
	if i, _, err = selBucket.Run(); err != nil {
		return err
	}
	n.Draft.Bucket = buckets[i]

	return nil
}
