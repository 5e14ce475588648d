package cli

import (
	"errors"
	"testing"

	"github.com/jkelaty/panorama-stitching/pkg/app"
	"github.com/jkelaty/panorama-stitching/pkg/dialog"
	"github.com/jkelaty/panorama-stitching/pkg/source"
)

// parse runs flag parsing only, without executing the command.
func parse(t *testing.T, args []string) (app.Config, bool, error) {
	t.Helper()
	cmd, f := newRoot()
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags(%v) failed: %v", args, err)
	}
	return buildConfig(cmd, f, cmd.Flags().Args())
}

func TestBuildConfig_NoMode(t *testing.T) {
	cfg, selected, err := parse(t, nil)
	if err != nil {
		t.Fatalf("buildConfig failed: %v", err)
	}
	if selected {
		t.Error("Expected no mode selected for empty args")
	}
	if cfg.Mode != app.ModeNone {
		t.Errorf("Expected ModeNone, got %v", cfg.Mode)
	}
}

func TestBuildConfig_Images(t *testing.T) {
	cfg, selected, err := parse(t, []string{"-i", "a.png", "b.png", "c.png"})
	if err != nil {
		t.Fatalf("buildConfig failed: %v", err)
	}
	if !selected || cfg.Mode != app.ModeImages {
		t.Fatalf("Expected ModeImages, got %v (selected=%v)", cfg.Mode, selected)
	}

	// The first path binds to -i; the rest arrive as positional args and
	// must be appended in order.
	want := []string{"a.png", "b.png", "c.png"}
	if len(cfg.Images) != len(want) {
		t.Fatalf("Expected %d images, got %v", len(want), cfg.Images)
	}
	for i := range want {
		if cfg.Images[i] != want[i] {
			t.Errorf("Image %d: expected %q, got %q", i, want[i], cfg.Images[i])
		}
	}
}

func TestBuildConfig_Camera(t *testing.T) {
	cfg, selected, err := parse(t, []string{"-c", "--device", "2"})
	if err != nil {
		t.Fatalf("buildConfig failed: %v", err)
	}
	if !selected || cfg.Mode != app.ModeCamera {
		t.Fatalf("Expected ModeCamera, got %v", cfg.Mode)
	}
	if cfg.CameraDevice != 2 {
		t.Errorf("Expected device 2, got %d", cfg.CameraDevice)
	}
}

func TestBuildConfig_VideoDefaults(t *testing.T) {
	cfg, selected, err := parse(t, []string{"-v", "trip.mp4"})
	if err != nil {
		t.Fatalf("buildConfig failed: %v", err)
	}
	if !selected || cfg.Mode != app.ModeVideo {
		t.Fatalf("Expected ModeVideo, got %v", cfg.Mode)
	}
	if cfg.VideoPath != "trip.mp4" {
		t.Errorf("Expected video path trip.mp4, got %q", cfg.VideoPath)
	}
	if cfg.Frequency != 0.1 {
		t.Errorf("Expected default frequency 0.1, got %v", cfg.Frequency)
	}
}

func TestBuildConfig_VideoFrequencyRejected(t *testing.T) {
	_, _, err := parse(t, []string{"-v", "trip.mp4", "-f", "1.5"})
	if !errors.Is(err, source.ErrFrequency) {
		t.Errorf("Expected ErrFrequency, got %v", err)
	}
}

func TestBuildConfig_Demo(t *testing.T) {
	cfg, selected, err := parse(t, []string{"-d", "0"})
	if err != nil {
		t.Fatalf("buildConfig failed: %v", err)
	}
	if !selected || cfg.Mode != app.ModeDemo {
		t.Fatalf("Expected ModeDemo, got %v", cfg.Mode)
	}
	if cfg.DemoIndex != 0 {
		t.Errorf("Expected demo index 0, got %d", cfg.DemoIndex)
	}
}

func TestBuildConfig_DemoOutOfRange(t *testing.T) {
	_, _, err := parse(t, []string{"-d", "11"})
	if !errors.Is(err, source.ErrDemoIndex) {
		t.Errorf("Expected ErrDemoIndex, got %v", err)
	}
}

func TestBuildSource_ModeMapping(t *testing.T) {
	dialogs := dialog.New()

	cases := []struct {
		name string
		cfg  app.Config
		want string
	}{
		{"images", app.Config{Mode: app.ModeImages, Images: []string{"a.png"}}, "files"},
		{"camera", app.Config{Mode: app.ModeCamera}, "camera"},
		{"select", app.Config{Mode: app.ModeSelect}, "select"},
		{"video", app.Config{Mode: app.ModeVideo, VideoPath: "v.mp4", Frequency: 0.1}, "video"},
		{"demo", app.Config{Mode: app.ModeDemo, DemoIndex: 3}, "demo"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src, err := buildSource(tc.cfg, dialogs)
			if err != nil {
				t.Fatalf("buildSource failed: %v", err)
			}
			if src.Name() != tc.want {
				t.Errorf("Expected source %q, got %q", tc.want, src.Name())
			}
		})
	}
}

func TestBuildSource_NoMode(t *testing.T) {
	_, err := buildSource(app.Config{Mode: app.ModeNone}, dialog.New())
	if !errors.Is(err, app.ErrNoMode) {
		t.Errorf("Expected ErrNoMode, got %v", err)
	}
}

func TestReportedError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	err := reportedError{err: inner}

	if !errors.Is(err, inner) {
		t.Error("Expected reportedError to unwrap to the inner error")
	}
	if err.Error() != "boom" {
		t.Errorf("Expected message to pass through, got %q", err.Error())
	}
}
