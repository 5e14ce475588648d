// Package dialog wraps the desktop dialogs the tool depends on: the
// multi-file image picker, the save confirmation, and the save-location
// picker. Cancellation is never an error here; it maps to the zero answer
// (no files, "no", empty path) so callers can treat it as a normal outcome.
package dialog

import (
	"context"
	"errors"
	"time"

	"github.com/ncruces/zenity"
)

// PollInterval is how often a pending answer is checked while a blocking
// dialog is on screen.
const PollInterval = time.Second

// Desktop provides the zenity-backed dialogs.
type Desktop struct {
	poll time.Duration
}

// New creates a Desktop with the default poll interval.
func New() *Desktop {
	return &Desktop{poll: PollInterval}
}

// PickImages opens a multi-select file picker for the source images.
// A cancelled picker returns an empty list and no error.
func (d *Desktop) PickImages(ctx context.Context) ([]string, error) {
	paths, err := zenity.SelectFileMultiple(
		zenity.Context(ctx),
		zenity.Title("Select images to create panorama of"),
		zenity.Filename("./"),
		zenity.FileFilters{
			{Name: "All Files", Patterns: []string{"*"}},
		},
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return nil, nil
	}
	return paths, err
}

// ConfirmSave asks whether the panorama should be saved. The question runs
// in the background and the answer is polled once per interval.
func (d *Desktop) ConfirmSave(ctx context.Context) (bool, error) {
	return await(ctx, d.poll, "save prompt", func() (bool, error) {
		err := zenity.Question(
			"Would you like to save the panorama image?",
			zenity.Context(ctx),
			zenity.Title("Save image?"),
			zenity.QuestionIcon,
			zenity.OKLabel("Yes"),
			zenity.CancelLabel("No"),
		)
		if err == nil {
			return true, nil
		}
		if errors.Is(err, zenity.ErrCanceled) {
			return false, nil
		}
		return false, err
	})
}

// PickSavePath opens a save-location picker. A cancelled dialog returns an
// empty path and no error; callers treat that as "do not save".
func (d *Desktop) PickSavePath(ctx context.Context) (string, error) {
	path, err := zenity.SelectFileSave(
		zenity.Context(ctx),
		zenity.Title("Choose save location"),
		zenity.Filename("./"),
		zenity.ConfirmOverwrite(),
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", nil
	}
	return path, err
}
