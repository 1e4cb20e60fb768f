package pipeline

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsun/ski-results/constants"
	"github.com/fsun/ski-results/internal/common"
	"github.com/fsun/ski-results/internal/entity"
	"github.com/fsun/ski-results/internal/extract"
)

// fakeStore serves file bytes from a map.
type fakeStore struct {
	keys map[string][]byte
}

func (s *fakeStore) List(_ context.Context) ([]string, error) {
	var out []string
	for k := range s.keys {
		out = append(out, k)
	}
	return out, nil
}

func (s *fakeStore) Fetch(_ context.Context, key string) ([]byte, error) {
	b, ok := s.keys[key]
	if !ok {
		return nil, common.ErrNotFound
	}
	return b, nil
}

// fakeExtractor returns one canned unit per call.
type fakeExtractor struct {
	mu    sync.Mutex
	units []extract.Unit
	err   error
	calls int
}

func (e *fakeExtractor) Extract(_ context.Context, _ string) ([]extract.Unit, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls++
	if e.err != nil {
		return nil, e.err
	}
	return e.units, nil
}

// fakeInvoker replays scripted responses; errs (when set) are consumed first,
// one per call, a nil entry meaning success.
type fakeInvoker struct {
	mu           sync.Mutex
	response     string
	errs         []error
	calls        int
	instructions []string
}

func (i *fakeInvoker) invoke(instruction string) (string, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.calls++
	i.instructions = append(i.instructions, instruction)
	if len(i.errs) > 0 {
		err := i.errs[0]
		i.errs = i.errs[1:]
		if err != nil {
			return "", err
		}
	}
	return i.response, nil
}

func (i *fakeInvoker) Invoke(_ context.Context, _ []byte, _ string, instruction string) (string, error) {
	return i.invoke(instruction)
}

func (i *fakeInvoker) InvokeText(_ context.Context, instruction string) (string, error) {
	return i.invoke(instruction)
}

type persistedEvent struct {
	id            int
	competitionID int
	ev            entity.EventRecord
}

// fakeSink records upserts in memory.
type fakeSink struct {
	mu           sync.Mutex
	competitions map[string]int
	events       map[string]persistedEvent
	rows         map[int][]entity.ResultRow
	nextID       int
}

func newFakeSink() *fakeSink {
	return &fakeSink{
		competitions: make(map[string]int),
		events:       make(map[string]persistedEvent),
		rows:         make(map[int][]entity.ResultRow),
		nextID:       1,
	}
}

func (s *fakeSink) UpsertCompetition(_ context.Context, season, name, _, _ string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := season + "/" + name
	if id, ok := s.competitions[key]; ok {
		return id, nil
	}
	id := s.nextID
	s.nextID++
	s.competitions[key] = id
	return id, nil
}

func (s *fakeSink) UpsertEvent(_ context.Context, competitionID int, ev entity.EventRecord) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.events[ev.SourceFile]; ok {
		s.events[ev.SourceFile] = persistedEvent{id: prev.id, competitionID: competitionID, ev: ev}
		return prev.id, nil
	}
	id := s.nextID
	s.nextID++
	s.events[ev.SourceFile] = persistedEvent{id: id, competitionID: competitionID, ev: ev}
	return id, nil
}

func (s *fakeSink) ReplaceResults(_ context.Context, eventID int, rows []entity.ResultRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[eventID] = rows
	return nil
}

func (s *fakeSink) rowsFor(sourceFile string) []entity.ResultRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rows[s.events[sourceFile].id]
}

// fakeTracker records outcomes keyed by file.
type fakeTracker struct {
	mu        sync.Mutex
	processed map[string]bool
	outcomes  map[string]entity.ProcessingRecord
}

func newFakeTracker() *fakeTracker {
	return &fakeTracker{
		processed: make(map[string]bool),
		outcomes:  make(map[string]entity.ProcessingRecord),
	}
}

func (t *fakeTracker) IsProcessed(_ context.Context, fileKey string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.processed[fileKey], nil
}

func (t *fakeTracker) RecordOutcome(_ context.Context, rec entity.ProcessingRecord) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.outcomes[rec.FileKey] = rec
	return nil
}

const eventResponse = `{
  "competition": "2024全国青少年滑雪巡回赛",
  "discipline": "回转",
  "gender": "女子",
  "results": [
    {"rank": null, "bib": "7", "name": "李四", "total_time": "DNF", "status": "DNF"},
    {"rank": 1, "bib": "12", "name": "张三", "total_time": "58.31", "status": "OK"}
  ]
}`

func testOrchestrator(t *testing.T, st *fakeStore, ex Extractor, inv *fakeInvoker, sink *fakeSink, tr *fakeTracker, cfg Config) *Orchestrator {
	t.Helper()
	if cfg.CacheDir == "" {
		cfg.CacheDir = t.TempDir()
	}
	if cfg.Workers == 0 {
		cfg.Workers = 1
	}
	if cfg.BackoffBase == 0 {
		cfg.BackoffBase = time.Millisecond
	}
	return NewOrchestrator(cfg, st, ex, inv, sink, tr, nil)
}

func imageUnits() []extract.Unit {
	return []extract.Unit{{Page: 0, Kind: extract.ModelRouted, Image: []byte{0x01}, MediaType: "image/png"}}
}

func TestRunEndToEnd(t *testing.T) {
	key := "24-25雪季/回转成绩.pdf"
	st := &fakeStore{keys: map[string][]byte{key: []byte("pdf-bytes")}}
	ex := &fakeExtractor{units: imageUnits()}
	inv := &fakeInvoker{response: eventResponse}
	sink := newFakeSink()
	tr := newFakeTracker()

	sum, err := testOrchestrator(t, st, ex, inv, sink, tr, Config{}).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), sum.Total)
	assert.Equal(t, int64(1), sum.Succeeded)
	assert.Equal(t, int64(0), sum.Failed)

	pe, ok := sink.events[key]
	require.True(t, ok)
	assert.Equal(t, "24-25雪季", pe.ev.Season, "season inferred from path")
	assert.Equal(t, "回转", pe.ev.Discipline)

	rows := sink.rowsFor(key)
	require.Len(t, rows, 2)
	assert.Equal(t, "张三", rows[0].Name, "ranked row first")
	assert.Equal(t, "李四", rows[1].Name, "DNF row last")
	assert.Nil(t, rows[1].TotalSeconds)
	require.NotNil(t, rows[0].TotalSeconds)
	assert.InDelta(t, 58.31, *rows[0].TotalSeconds, 0.0001)

	assert.Equal(t, constants.ProcessingSuccess, tr.outcomes[key].Status)
}

func TestRunTextNativeUnitsUseTextInvocation(t *testing.T) {
	key := "24-25雪季/回转成绩.pdf"
	st := &fakeStore{keys: map[string][]byte{key: []byte("pdf-bytes")}}
	ex := &fakeExtractor{units: []extract.Unit{
		{Page: 0, Kind: extract.TextNative, Text: "排名 1 张三 58.31"},
	}}
	inv := &fakeInvoker{response: eventResponse}

	_, err := testOrchestrator(t, st, ex, inv, newFakeSink(), newFakeTracker(), Config{}).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, inv.instructions, 1)
	assert.Contains(t, inv.instructions[0], "排名 1 张三 58.31", "page text embedded in the parse instruction")
}

func TestRunSkipsNonResultFiles(t *testing.T) {
	st := &fakeStore{keys: map[string][]byte{
		"24-25雪季/出发顺序表.pdf": []byte("x"),
		"24-25雪季/秩序册.pdf":   []byte("x"),
	}}
	ex := &fakeExtractor{units: imageUnits()}
	inv := &fakeInvoker{response: eventResponse}
	tr := newFakeTracker()

	sum, err := testOrchestrator(t, st, ex, inv, newFakeSink(), tr, Config{}).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), sum.Skipped)
	assert.Equal(t, int64(0), sum.Succeeded)
	assert.Equal(t, 0, ex.calls, "skipped files never reach extraction")
	assert.Equal(t, constants.ProcessingSkipped, tr.outcomes["24-25雪季/出发顺序表.pdf"].Status)
}

func TestRunSkipsAlreadyProcessed(t *testing.T) {
	key := "24-25雪季/回转成绩.pdf"
	st := &fakeStore{keys: map[string][]byte{key: []byte("x")}}
	ex := &fakeExtractor{units: imageUnits()}
	inv := &fakeInvoker{response: eventResponse}
	tr := newFakeTracker()
	tr.processed[key] = true

	sum, err := testOrchestrator(t, st, ex, inv, newFakeSink(), tr, Config{}).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(0), sum.Total)
	assert.Equal(t, 0, ex.calls)
}

func TestRunForceReprocesses(t *testing.T) {
	key := "24-25雪季/回转成绩.pdf"
	st := &fakeStore{keys: map[string][]byte{key: []byte("x")}}
	ex := &fakeExtractor{units: imageUnits()}
	inv := &fakeInvoker{response: eventResponse}
	tr := newFakeTracker()
	tr.processed[key] = true

	sum, err := testOrchestrator(t, st, ex, inv, newFakeSink(), tr, Config{Force: true}).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), sum.Succeeded)
	assert.Equal(t, 1, ex.calls)
}

func TestRunRetriesTransientFailures(t *testing.T) {
	key := "24-25雪季/回转成绩.jpg"
	st := &fakeStore{keys: map[string][]byte{key: []byte("x")}}
	ex := &fakeExtractor{units: imageUnits()}
	transient := &common.ModelInvocationError{Transient: true, Status: 429, Cause: errors.New("rate limited")}
	inv := &fakeInvoker{response: eventResponse, errs: []error{transient, transient, nil}}

	sum, err := testOrchestrator(t, st, ex, inv, newFakeSink(), newFakeTracker(), Config{MaxAttempts: 3}).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), sum.Succeeded)
	assert.Equal(t, 3, inv.calls)
}

func TestRunPermanentFailureNotRetried(t *testing.T) {
	key := "24-25雪季/回转成绩.jpg"
	st := &fakeStore{keys: map[string][]byte{key: []byte("x")}}
	ex := &fakeExtractor{units: imageUnits()}
	permanent := &common.ModelInvocationError{Transient: false, Status: 401, Cause: errors.New("bad key")}
	inv := &fakeInvoker{response: eventResponse, errs: []error{permanent}}
	tr := newFakeTracker()

	sum, err := testOrchestrator(t, st, ex, inv, newFakeSink(), tr, Config{MaxAttempts: 3}).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), sum.Failed)
	assert.Equal(t, 1, inv.calls, "permanent failures must not burn retry attempts")
	assert.Equal(t, constants.ProcessingFailed, tr.outcomes[key].Status)
	assert.Contains(t, tr.outcomes[key].ErrorReason, "model invocation failed")
}

func TestRunFailureDoesNotAbortBatch(t *testing.T) {
	good := "24-25雪季/回转成绩.jpg"
	bad := "24-25雪季/大回转成绩.jpg"
	st := &fakeStore{keys: map[string][]byte{good: []byte("x"), bad: []byte("x")}}
	exErr := &common.ExtractionError{Key: bad, Cause: errors.New("corrupt file")}
	ex := &pathSensitiveExtractor{failSuffix: "大回转成绩.jpg", units: imageUnits(), err: exErr}
	inv := &fakeInvoker{response: eventResponse}
	tr := newFakeTracker()

	sum, err := testOrchestrator(t, st, ex, inv, newFakeSink(), tr, Config{}).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), sum.Succeeded)
	assert.Equal(t, int64(1), sum.Failed)
	assert.Equal(t, constants.ProcessingSuccess, tr.outcomes[good].Status)
	assert.Equal(t, constants.ProcessingFailed, tr.outcomes[bad].Status)
}

type pathSensitiveExtractor struct {
	failSuffix string
	units      []extract.Unit
	err        error
}

func (e *pathSensitiveExtractor) Extract(_ context.Context, path string) ([]extract.Unit, error) {
	if strings.HasSuffix(path, e.failSuffix) {
		return nil, e.err
	}
	return e.units, nil
}

func TestRunEmptyResultsRecordedAsSkipped(t *testing.T) {
	key := "24-25雪季/回转成绩.jpg"
	st := &fakeStore{keys: map[string][]byte{key: []byte("x")}}
	ex := &fakeExtractor{units: imageUnits()}
	inv := &fakeInvoker{response: `{"discipline": "回转", "results": []}`}
	tr := newFakeTracker()

	sum, err := testOrchestrator(t, st, ex, inv, newFakeSink(), tr, Config{}).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), sum.Skipped)
	assert.Equal(t, int64(0), sum.Failed)
	assert.Equal(t, constants.ProcessingSkipped, tr.outcomes[key].Status)
	assert.Equal(t, "no results found", tr.outcomes[key].ErrorReason)
}

func TestRunAllRowsDroppedRecordedAsFailed(t *testing.T) {
	// A sheet that listed rows but none survived validation is a failure,
	// unlike an empty sheet.
	key := "24-25雪季/回转成绩.jpg"
	st := &fakeStore{keys: map[string][]byte{key: []byte("x")}}
	ex := &fakeExtractor{units: imageUnits()}
	inv := &fakeInvoker{response: `{"discipline": "回转", "results": [{"rank": 1, "bib": "12", "name": "", "total_time": "58.31"}]}`}
	tr := newFakeTracker()

	sum, err := testOrchestrator(t, st, ex, inv, newFakeSink(), tr, Config{}).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), sum.Failed)
	assert.Equal(t, int64(0), sum.Skipped)
	assert.Equal(t, constants.ProcessingFailed, tr.outcomes[key].Status)
}

func TestRunConcurrentRunsConvergeToOneEvent(t *testing.T) {
	key := "24-25雪季/回转成绩.jpg"
	sink := newFakeSink()
	tr := newFakeTracker()

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		st := &fakeStore{keys: map[string][]byte{key: []byte("x")}}
		ex := &fakeExtractor{units: imageUnits()}
		inv := &fakeInvoker{response: eventResponse}
		o := testOrchestrator(t, st, ex, inv, sink, tr, Config{Force: true})
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := o.Run(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, sink.events, 1, "both runs land on the same event record")
	assert.Len(t, sink.competitions, 1)
	assert.Len(t, sink.rowsFor(key), 2)
	assert.Equal(t, constants.ProcessingSuccess, tr.outcomes[key].Status)
}

func TestRunMaxFilesCapsBatch(t *testing.T) {
	st := &fakeStore{keys: map[string][]byte{
		"24-25雪季/a.jpg": []byte("x"),
		"24-25雪季/b.jpg": []byte("x"),
		"24-25雪季/c.jpg": []byte("x"),
	}}
	ex := &fakeExtractor{units: imageUnits()}
	inv := &fakeInvoker{response: eventResponse}

	sum, err := testOrchestrator(t, st, ex, inv, newFakeSink(), newFakeTracker(), Config{MaxFiles: 2}).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), sum.Succeeded)
	assert.Equal(t, 2, ex.calls)
}
