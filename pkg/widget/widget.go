package widget

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/krau/SiteLens/pkg/display"
	"github.com/krau/SiteLens/pkg/manifest"
	"github.com/rs/xid"
)

// ErrSuperseded is returned for a submission that finished after a newer
// one was issued, whether it succeeded or failed. Its outcome is discarded.
var ErrSuperseded = errors.New("submission superseded by a newer one")

type Fetcher interface {
	Fetch(ctx context.Context, manifestURL string) (*manifest.Raw, error)
}

type Mapper interface {
	Map(raw *manifest.Raw, baseURL string) *display.Model
}

// Result is the outcome of one submission.
type Result struct {
	Seq         uint64
	ID          string
	ManifestURL string
	Model       *display.Model
}

// Widget owns the current display model. Submissions may overlap, every
// one gets a sequence number and only the latest issued one may replace
// the model.
type Widget struct {
	fetcher Fetcher
	mapper  Mapper

	seq       atomic.Uint64
	mu        sync.RWMutex
	model     *display.Model
	committed uint64
}

func New(fetcher Fetcher, mapper Mapper) *Widget {
	if mapper == nil {
		mapper = display.NewMapper()
	}
	return &Widget{
		fetcher: fetcher,
		mapper:  mapper,
	}
}

// Submit normalizes input, fetches and maps the manifest and, if no newer
// submission was issued meanwhile, replaces the current model.
//
// Input validation fails before any fetch. On any error the current model
// is left untouched.
func (w *Widget) Submit(ctx context.Context, input string) (*Result, error) {
	manifestURL, err := manifest.Normalize(input)
	if err != nil {
		return nil, err
	}
	res := &Result{
		Seq:         w.seq.Add(1),
		ID:          xid.New().String(),
		ManifestURL: manifestURL,
	}
	logger := log.FromContext(ctx).WithPrefix("widget").With("request", res.ID, "seq", res.Seq)
	logger.Info("Analyzing site", "url", manifestURL)

	raw, err := w.fetcher.Fetch(ctx, manifestURL)
	if err != nil {
		if latest := w.seq.Load(); latest != res.Seq {
			logger.Debug("Discarding superseded failure", "latest", latest, "error", err)
			return nil, errors.Join(ErrSuperseded, err)
		}
		logger.Warn("Failed to fetch manifest", "error", err)
		return nil, err
	}
	res.Model = w.mapper.Map(raw, manifest.BaseURL(manifestURL))

	if !w.commit(res.Seq, res.Model) {
		logger.Debug("Discarding superseded result", "latest", w.seq.Load())
		return nil, ErrSuperseded
	}
	logger.Info("Site analyzed", "name", res.Model.Name, "cards", len(res.Model.Cards))
	return res, nil
}

func (w *Widget) commit(seq uint64, model *display.Model) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if seq != w.seq.Load() {
		return false
	}
	w.model = model
	w.committed = seq
	return true
}

// Model returns the last committed model, nil before the first success.
func (w *Widget) Model() *display.Model {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.model
}

// Snapshot returns the last committed model together with the sequence
// number of the submission that produced it. Both are zero before the first
// success.
func (w *Widget) Snapshot() (uint64, *display.Model) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.committed, w.model
}

// Latest returns the sequence number of the most recently issued submission.
func (w *Widget) Latest() uint64 {
	return w.seq.Load()
}
