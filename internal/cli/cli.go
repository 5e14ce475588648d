// Package cli defines the command-line interface: one mutually exclusive
// acquisition mode per run, folded into an app.Config and dispatched.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jkelaty/panorama-stitching/internal/log"
	"github.com/jkelaty/panorama-stitching/pkg/app"
	"github.com/jkelaty/panorama-stitching/pkg/console"
	"github.com/jkelaty/panorama-stitching/pkg/dialog"
	"github.com/jkelaty/panorama-stitching/pkg/notify"
	"github.com/jkelaty/panorama-stitching/pkg/present"
	"github.com/jkelaty/panorama-stitching/pkg/source"
	"github.com/jkelaty/panorama-stitching/pkg/stitch"
)

// flags holds the raw flag values before they are folded into app.Config.
type flags struct {
	camera    bool
	selectGUI bool
	images    []string
	video     string
	demo      int
	frequency float64
	device    int
	debug     bool
}

// Execute runs the root command and returns the process exit code. Run
// failures are already reported to the user by the time they arrive here;
// anything else is an argument error and gets the red parse line.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := NewRootCommand()
	if err := cmd.ExecuteContext(ctx); err != nil {
		var rep reportedError
		if !errors.As(err, &rep) {
			console.Errorf("Error parsing args: %v", err)
		}
		return 1
	}
	return 0
}

// NewRootCommand builds the panorama command.
func NewRootCommand() *cobra.Command {
	cmd, _ := newRoot()
	return cmd
}

func newRoot() (*cobra.Command, *flags) {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "panorama",
		Short: "Create panoramic images from files, a camera, or a video",
		Long:  usageLong(),
		Example: `  panorama -i left.png middle.png right.png
  panorama -c
  panorama -v hike.mp4 -f 0.05
  panorama -d 4`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, selected, err := buildConfig(cmd, f, args)
			if err != nil {
				return err
			}
			if !selected {
				console.Warnf("Use -h or --help for more information")
				return nil
			}
			if cfg.Debug {
				log.Init("debug")
			} else {
				log.Init("info")
			}
			return run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().BoolVarP(&f.camera, "camera", "c", false, "capture images interactively from a camera")
	cmd.Flags().BoolVarP(&f.selectGUI, "select", "s", false, "choose images with a file picker")
	cmd.Flags().StringSliceVarP(&f.images, "images", "i", nil, "image files to stitch, in order")
	cmd.Flags().StringVarP(&f.video, "video", "v", "", "video file to sample frames from")
	cmd.Flags().IntVarP(&f.demo, "demo", "d", 0, "bundled demo dataset index (0-10)")
	cmd.Flags().Float64VarP(&f.frequency, "frequency", "f", app.DefaultFrequency, "video sampling frequency, inside (0, 1)")
	cmd.Flags().IntVar(&f.device, "device", 0, "camera device index")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "enable debug logging")
	cmd.MarkFlagsMutuallyExclusive("camera", "select", "images", "video", "demo")

	// Help goes out in cyan like every other informational line.
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		console.Infof("%s\n\n%s", c.Long, strings.TrimRight(c.UsageString(), "\n"))
	})

	return cmd, f
}

// buildConfig folds parsed flags into the acquisition config. The second
// return value reports whether any mode was selected at all. Positional
// arguments extend the -i file list so `panorama -i a.png b.png` works.
func buildConfig(cmd *cobra.Command, f *flags, args []string) (app.Config, bool, error) {
	cfg := app.DefaultConfig()
	cfg.Debug = f.debug
	cfg.Frequency = f.frequency
	cfg.CameraDevice = f.device

	set := cmd.Flags().Changed
	switch {
	case set("camera"):
		cfg.Mode = app.ModeCamera
	case set("select"):
		cfg.Mode = app.ModeSelect
	case set("images"):
		cfg.Mode = app.ModeImages
		cfg.Images = append(f.images, args...)
	case set("video"):
		cfg.Mode = app.ModeVideo
		cfg.VideoPath = f.video
	case set("demo"):
		cfg.Mode = app.ModeDemo
		cfg.DemoIndex = f.demo
	default:
		return cfg, false, nil
	}

	if err := cfg.Validate(); err != nil {
		return cfg, true, err
	}
	return cfg, true, nil
}

// buildSource constructs the selected acquisition strategy.
func buildSource(cfg app.Config, dialogs *dialog.Desktop) (source.Source, error) {
	switch cfg.Mode {
	case app.ModeImages:
		return source.NewFiles(cfg.Images), nil
	case app.ModeCamera:
		return source.NewCamera(cfg.CameraDevice), nil
	case app.ModeSelect:
		return source.NewPicker(dialogs.PickImages), nil
	case app.ModeVideo:
		return source.NewVideo(cfg.VideoPath, cfg.Frequency)
	case app.ModeDemo:
		return source.NewDemo(cfg.DemoIndex)
	}
	return nil, app.ErrNoMode
}

func run(ctx context.Context, cfg app.Config) error {
	dialogs := dialog.New()

	src, err := buildSource(cfg, dialogs)
	if err != nil {
		return err
	}

	a := &app.App{
		Source:    src,
		Stitcher:  stitch.New(),
		Presenter: present.New(dialogs, notify.New()),
	}
	if err := a.Run(ctx); err != nil {
		return reportedError{err: err}
	}
	return nil
}

// reportedError marks a failure the user has already seen through the
// presenter, so Execute only maps it to the exit code.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

func usageLong() string {
	var b strings.Builder
	b.WriteString("Create a single panoramic image from overlapping source images.\n\n")
	b.WriteString("Images come from exactly one source per run: an explicit file list,\n")
	b.WriteString("an interactive camera session, a desktop file picker, frames sampled\n")
	b.WriteString("from a video, or one of the bundled demo datasets:\n\n")
	for i, set := range source.DemoSets() {
		fmt.Fprintf(&b, "  %2d  %-12s %2d images\n", i, set.Name, set.Frames)
	}
	return strings.TrimRight(b.String(), "\n")
}
