// Package notify reports run outcomes to the user. Every message goes out
// twice: a colored console line and a desktop notification.
package notify

import (
	"github.com/gen2brain/beeep"

	"github.com/jkelaty/panorama-stitching/internal/log"
	"github.com/jkelaty/panorama-stitching/pkg/console"
)

// Title shown on desktop notifications.
const Title = "Panorama Stitcher"

// Notifier pairs console output with desktop notifications.
type Notifier struct{}

// New creates a Notifier.
func New() *Notifier {
	return &Notifier{}
}

// Success reports a successful step: green console line plus a toast.
func (n *Notifier) Success(msg string) {
	console.Successf("%s", msg)
	if err := beeep.Notify(Title, msg, ""); err != nil {
		log.Warn("desktop notification failed", "error", err)
	}
}

// Failure reports an error: red console line plus an alert.
func (n *Notifier) Failure(msg string) {
	console.Errorf("%s", msg)
	if err := beeep.Alert(Title, msg, ""); err != nil {
		log.Warn("desktop alert failed", "error", err)
	}
}
