// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/weekplan/pkg/task"
)

// DraftOptions captures the task fields editable from the command line.
type DraftOptions struct {
	Time     string
	Duration int
	Priority string
	Bucket   string
	Icon     string
	Color    string
}

// AddDraftArgs wires draft-related flags on the provided command.
func AddDraftArgs(cmd *cobra.Command, o *DraftOptions) {
	cmd.Flags().StringVarP(&o.Time, "time", "t", "",
		`Schedule time as HH:MM, empty means anytime.`)
	cmd.Flags().IntVar(&o.Duration, "duration", 30,
		`Duration in minutes, clamped to a 5 minute floor.`)
	cmd.Flags().StringVarP(&o.Priority, "priority", "p", "medium",
		`Priority: high, medium, or low.`)
	cmd.Flags().StringVarP(&o.Bucket, "bucket", "b", "anytime",
		`Time-of-day bucket: anytime, morning, day, or evening.`)
	cmd.Flags().StringVar(&o.Icon, "icon", string(task.DefaultIcon),
		`Icon token for the task.`)
	cmd.Flags().StringVar(&o.Color, "color", string(task.DefaultColor),
		`Color token for the task.`)
}

// Draft converts the parsed flags into a task draft.
func (o *DraftOptions) Draft(title string) (task.Draft, error) {
	priority, err := task.ParsePriority(o.Priority)
	if err != nil {
		return task.Draft{}, err
	}
	bucket, err := task.ParseBucket(o.Bucket)
	if err != nil {
		return task.Draft{}, err
	}
	return task.Draft{
		Title:    title,
		Time:     o.Time,
		Duration: o.Duration,
		Priority: priority,
		Bucket:   bucket,
		Icon:     task.Icon(o.Icon),
		Color:    task.Color(o.Color),
	}, nil
}
