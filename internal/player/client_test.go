package player

import (
	"context"
	"errors"
	"testing"
)

type fakeExecutor struct {
	output string
	err    error
	calls  int
}

func (f *fakeExecutor) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	f.calls++
	if name != "osascript" {
		return nil, errors.New("unexpected binary " + name)
	}
	if f.err != nil {
		return nil, f.err
	}
	return []byte(f.output), nil
}

func TestNowPlayingParsesSnapshot(t *testing.T) {
	executor := &fakeExecutor{output: "Song A|||Artist B|||Album C|||200.5|||50.25|||\n"}
	client := New(10, WithExecutor(executor))

	data, err := client.NowPlaying(context.Background())
	if err != nil {
		t.Fatalf("NowPlaying returned error: %v", err)
	}
	if data == nil {
		t.Fatal("expected snapshot, got nil")
	}
	if data.Title != "Song A" || data.Artist != "Artist B" || data.Album != "Album C" {
		t.Fatalf("unexpected fields: %#v", data)
	}
	if data.Duration != 200.5 || data.Position != 50.25 {
		t.Fatalf("unexpected numbers: duration=%v position=%v", data.Duration, data.Position)
	}
	if data.URL != "" {
		t.Fatalf("expected empty url, got %q", data.URL)
	}
}

func TestNowPlayingPassesThroughTrackURL(t *testing.T) {
	executor := &fakeExecutor{output: "Song A|||Artist B|||Album C|||200|||50|||https://music.apple.com/track/1"}
	client := New(10, WithExecutor(executor))

	data, err := client.NowPlaying(context.Background())
	if err != nil {
		t.Fatalf("NowPlaying returned error: %v", err)
	}
	if data == nil || data.URL != "https://music.apple.com/track/1" {
		t.Fatalf("expected url passthrough, got %#v", data)
	}
}

func TestNowPlayingNotPlayingMarker(t *testing.T) {
	executor := &fakeExecutor{output: "NOT_PLAYING\n"}
	client := New(10, WithExecutor(executor))

	data, err := client.NowPlaying(context.Background())
	if err != nil {
		t.Fatalf("NowPlaying returned error: %v", err)
	}
	if data != nil {
		t.Fatalf("expected nil snapshot, got %#v", data)
	}
}

func TestNowPlayingToleratesMalformedOutput(t *testing.T) {
	cases := []struct {
		name   string
		output string
	}{
		{"empty", ""},
		{"too few fields", "Song A|||Artist B|||Album C"},
		{"non-numeric duration", "Song A|||Artist B|||Album C|||abc|||50|||"},
		{"non-numeric position", "Song A|||Artist B|||Album C|||200|||xyz|||"},
		{"empty title", "|||Artist B|||Album C|||200|||50|||"},
		{"empty artist", "Song A||||||Album C|||200|||50|||"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := New(10, WithExecutor(&fakeExecutor{output: tc.output}))
			data, err := client.NowPlaying(context.Background())
			if err != nil {
				t.Fatalf("NowPlaying returned error: %v", err)
			}
			if data != nil {
				t.Fatalf("expected nil snapshot, got %#v", data)
			}
		})
	}
}

func TestNowPlayingSurfacesExecError(t *testing.T) {
	executor := &fakeExecutor{err: errors.New("osascript exploded")}
	client := New(10, WithExecutor(executor))

	if _, err := client.NowPlaying(context.Background()); err == nil {
		t.Fatal("expected executor error to surface")
	}
}

func TestParseOutputClampsPosition(t *testing.T) {
	data := parseOutput("Song A|||Artist B|||Album C|||100|||250|||")
	if data == nil {
		t.Fatal("expected snapshot")
	}
	if data.Position != data.Duration {
		t.Fatalf("expected clamped position, got %v/%v", data.Position, data.Duration)
	}
}
