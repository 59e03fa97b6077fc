package widget_test

import (
	"context"
	"crypto/tls"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/krau/SiteLens/pkg/display"
	"github.com/krau/SiteLens/pkg/manifest"
	"github.com/krau/SiteLens/pkg/widget"
)

// redirectClient sends every request to srv regardless of the requested host.
func redirectClient(srv *httptest.Server) *http.Client {
	addr := srv.Listener.Addr().String()
	return &http.Client{
		Transport: &http.Transport{
			DialContext: func(ctx context.Context, network, _ string) (net.Conn, error) {
				var d net.Dialer
				return d.DialContext(ctx, network, addr)
			},
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
	}
}

func TestSubmitEndToEnd(t *testing.T) {
	var gotHost, gotPath string
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHost, gotPath = r.Host, r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"title":"Test","items":[{"slug":"a","metadata":{}}]}`))
	}))
	defer srv.Close()

	w := widget.New(manifest.NewFetcher(manifest.WithHTTPClient(redirectClient(srv))), nil)
	res, err := w.Submit(context.Background(), "test.org")
	if err != nil {
		t.Fatalf("Submit unexpected error: %v", err)
	}
	if gotHost != "test.org" || gotPath != "/site.json" {
		t.Errorf("requested %s%s; want test.org/site.json", gotHost, gotPath)
	}
	if res.ManifestURL != "https://test.org/site.json" {
		t.Errorf("ManifestURL = %q", res.ManifestURL)
	}
	m := w.Model()
	if m != res.Model {
		t.Fatal("Model() does not return the committed model")
	}
	if m.Name != "Test" {
		t.Errorf("Name = %q; want Test", m.Name)
	}
	if len(m.Cards) != 1 {
		t.Fatalf("cards = %d; want 1", len(m.Cards))
	}
	if m.Cards[0].SlugURL != "https://test.org/a" {
		t.Errorf("SlugURL = %q; want https://test.org/a", m.Cards[0].SlugURL)
	}
	if m.Cards[0].LastUpdatedDisplay != display.NotSpecified {
		t.Errorf("LastUpdatedDisplay = %q; want %q", m.Cards[0].LastUpdatedDisplay, display.NotSpecified)
	}
}

type fakeFetcher struct {
	calls atomic.Int32
	fetch func(ctx context.Context, manifestURL string) (*manifest.Raw, error)
}

func (f *fakeFetcher) Fetch(ctx context.Context, manifestURL string) (*manifest.Raw, error) {
	f.calls.Add(1)
	return f.fetch(ctx, manifestURL)
}

func titled(title string) *manifest.Raw {
	return manifest.NewRaw(map[string]any{"title": title})
}

func TestSubmitEmptyInput(t *testing.T) {
	f := &fakeFetcher{fetch: func(context.Context, string) (*manifest.Raw, error) {
		return titled("x"), nil
	}}
	w := widget.New(f, nil)
	if _, err := w.Submit(context.Background(), "   "); !errors.Is(err, manifest.ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	if f.calls.Load() != 0 {
		t.Errorf("fetcher called %d times for empty input", f.calls.Load())
	}
	if w.Model() != nil {
		t.Error("model set after empty input")
	}
	if w.Latest() != 0 {
		t.Errorf("Latest() = %d; empty input must not issue a request", w.Latest())
	}
}

func TestSubmitFailureKeepsModel(t *testing.T) {
	fail := false
	f := &fakeFetcher{fetch: func(_ context.Context, u string) (*manifest.Raw, error) {
		if fail {
			return nil, &manifest.FetchError{URL: u, Kind: manifest.ErrInvalidDocument, Err: errors.New("bad json")}
		}
		return titled("First"), nil
	}}
	w := widget.New(f, nil)
	if _, err := w.Submit(context.Background(), "a.example"); err != nil {
		t.Fatalf("first Submit unexpected error: %v", err)
	}
	fail = true
	if _, err := w.Submit(context.Background(), "b.example"); !manifest.IsParseError(err) {
		t.Fatalf("expected parse error, got %v", err)
	}
	if m := w.Model(); m == nil || m.Name != "First" {
		t.Errorf("model after failed submit = %+v; want the first model", m)
	}
}

func TestSubmitDiscardsSuperseded(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	f := &fakeFetcher{fetch: func(_ context.Context, u string) (*manifest.Raw, error) {
		if u == "https://slow.example/site.json" {
			close(started)
			<-release
			return titled("Slow"), nil
		}
		return titled("Fast"), nil
	}}
	w := widget.New(f, nil)

	slowErr := make(chan error, 1)
	go func() {
		_, err := w.Submit(context.Background(), "slow.example")
		slowErr <- err
	}()
	<-started

	res, err := w.Submit(context.Background(), "fast.example")
	if err != nil {
		t.Fatalf("fast Submit unexpected error: %v", err)
	}
	if res.Seq != 2 {
		t.Errorf("fast Seq = %d; want 2", res.Seq)
	}
	close(release)

	if err := <-slowErr; !errors.Is(err, widget.ErrSuperseded) {
		t.Fatalf("slow Submit error = %v; want ErrSuperseded", err)
	}
	if m := w.Model(); m == nil || m.Name != "Fast" {
		t.Errorf("model = %+v; want the fast result", m)
	}
}

func TestSubmitDiscardsSupersededFailure(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	f := &fakeFetcher{fetch: func(_ context.Context, u string) (*manifest.Raw, error) {
		if u == "https://slow.example/site.json" {
			close(started)
			<-release
			return nil, &manifest.FetchError{URL: u, Kind: manifest.ErrUnreachable, Err: errors.New("connection refused")}
		}
		return titled("Fast"), nil
	}}
	w := widget.New(f, nil)

	slowErr := make(chan error, 1)
	go func() {
		_, err := w.Submit(context.Background(), "slow.example")
		slowErr <- err
	}()
	<-started

	if _, err := w.Submit(context.Background(), "fast.example"); err != nil {
		t.Fatalf("fast Submit unexpected error: %v", err)
	}
	close(release)

	err := <-slowErr
	if !errors.Is(err, widget.ErrSuperseded) {
		t.Fatalf("slow Submit error = %v; want ErrSuperseded", err)
	}
	if !errors.Is(err, manifest.ErrUnreachable) {
		t.Errorf("slow Submit error = %v; want the fetch cause kept", err)
	}
	seq, m := w.Snapshot()
	if m == nil || m.Name != "Fast" || seq != 2 {
		t.Errorf("snapshot = %d %+v; want the fast result at seq 2", seq, m)
	}
}

func TestSnapshotTracksCommittedSeq(t *testing.T) {
	fail := false
	f := &fakeFetcher{fetch: func(_ context.Context, u string) (*manifest.Raw, error) {
		if fail {
			return nil, &manifest.FetchError{URL: u, Kind: manifest.ErrBadStatus, StatusCode: 500}
		}
		return titled("First"), nil
	}}
	w := widget.New(f, nil)
	if seq, m := w.Snapshot(); seq != 0 || m != nil {
		t.Fatalf("initial snapshot = %d %+v; want zero", seq, m)
	}
	if _, err := w.Submit(context.Background(), "a.example"); err != nil {
		t.Fatalf("Submit unexpected error: %v", err)
	}
	fail = true
	if _, err := w.Submit(context.Background(), "b.example"); err == nil {
		t.Fatal("expected failure")
	}
	seq, m := w.Snapshot()
	if seq != 1 || m == nil || m.Name != "First" {
		t.Errorf("snapshot = %d %+v; want seq 1 with the first model", seq, m)
	}
	if w.Latest() != 2 {
		t.Errorf("Latest() = %d; want 2", w.Latest())
	}
}
