package session

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"

	"bikeshare/domain/entities/selection"
	"bikeshare/domain/entities/trip"
	"bikeshare/domain/entities/triptable"
	explorerErrors "bikeshare/explorer/errors"
	"bikeshare/explorer/reporters/factory"
)

// scriptedPrompter returns the filters and answers in order. When the script ends it fails like a
// closed stdin
type scriptedPrompter struct {
	filters   []selection.Selection
	answers   []string
	questions []string
}

func (sp *scriptedPrompter) GetFilters() (selection.Selection, error) {
	if len(sp.filters) == 0 {
		return selection.Selection{}, explorerErrors.ErrInputClosed
	}
	filters := sp.filters[0]
	sp.filters = sp.filters[1:]
	return filters, nil
}

func (sp *scriptedPrompter) Ask(question string) (string, error) {
	sp.questions = append(sp.questions, question)
	if len(sp.answers) == 0 {
		return "", explorerErrors.ErrInputClosed
	}
	answer := sp.answers[0]
	sp.answers = sp.answers[1:]
	return answer, nil
}

type stubLoader struct {
	table  *triptable.Table
	err    error
	loaded []selection.Selection
}

func (sl *stubLoader) Load(filters selection.Selection) (*triptable.Table, error) {
	sl.loaded = append(sl.loaded, filters)
	return sl.table, sl.err
}

type recordingReporter struct {
	calls int
}

func (rr *recordingReporter) GetType() string {
	return "recording"
}

func (rr *recordingReporter) Report(_ *triptable.Table, _ selection.Selection) {
	rr.calls++
}

func newTestTable(rows int) *triptable.Table {
	stations := make([]string, rows)
	hours := make([]int, rows)
	for i := range stations {
		stations[i] = "station"
		hours[i] = i % 24
	}
	return triptable.NewTable(dataframe.New(
		series.New(stations, series.String, trip.StartStation),
		series.New(hours, series.Int, trip.Hour),
	))
}

type testSession struct {
	session   *Session
	prompter  *scriptedPrompter
	loader    *stubLoader
	reporter  *recordingReporter
	out       *bytes.Buffer
	visited   []State
	allFilter selection.Selection
}

func newTestSession(filters int, answers []string, table *triptable.Table) *testSession {
	allFilter := selection.NewSelection(selection.Chicago, selection.AllFilter, selection.AllFilter)
	prompter := &scriptedPrompter{answers: answers}
	for i := 0; i < filters; i++ {
		prompter.filters = append(prompter.filters, allFilter)
	}

	ts := &testSession{
		prompter:  prompter,
		loader:    &stubLoader{table: table},
		reporter:  &recordingReporter{},
		out:       &bytes.Buffer{},
		visited:   []State{StatePrompting},
		allFilter: allFilter,
	}
	ts.session = NewSession(ts.prompter, ts.loader, []factory.IReporter{ts.reporter}, ts.out, rand.New(rand.NewSource(1)), 5)
	ts.session.OnTransition(func(_ State, to State) {
		ts.visited = append(ts.visited, to)
	})
	return ts
}

func assertStates(t *testing.T, got []State, want []State) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("visited %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("visited %v, want %v", got, want)
		}
	}
}

func TestRunTerminatesWhenUserDoesNotRestart(t *testing.T) {
	ts := newTestSession(1, []string{"no", "no"}, newTestTable(3))

	if err := ts.session.Run(); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	assertStates(t, ts.visited, []State{
		StatePrompting, StateLoading, StateReporting, StateSampleOffer, StateRestartOffer, StateTerminated,
	})
	if ts.session.GetState() != StateTerminated {
		t.Errorf("GetState() = %s, want TERMINATED", ts.session.GetState())
	}
	if ts.reporter.calls != 1 {
		t.Errorf("reporter called %v times, want 1", ts.reporter.calls)
	}
}

func TestRunRestartsWhenUserAnswersYes(t *testing.T) {
	ts := newTestSession(2, []string{"no", "YES", "maybe", "nope"}, newTestTable(3))

	if err := ts.session.Run(); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	assertStates(t, ts.visited, []State{
		StatePrompting, StateLoading, StateReporting, StateSampleOffer, StateRestartOffer,
		StatePrompting, StateLoading, StateReporting, StateSampleOffer, StateRestartOffer,
		StateTerminated,
	})
	if len(ts.loader.loaded) != 2 || ts.loader.loaded[0] != ts.allFilter {
		t.Errorf("loader received %v", ts.loader.loaded)
	}
	if ts.reporter.calls != 2 {
		t.Errorf("reporter called %v times, want 2", ts.reporter.calls)
	}
}

func TestSampleOfferLoopsWhileUserAnswersYes(t *testing.T) {
	ts := newTestSession(1, []string{"yes", "yes", "Yes", "no"}, newTestTable(12))

	if err := ts.session.Run(); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	assertStates(t, ts.visited, []State{
		StatePrompting, StateLoading, StateReporting,
		StateSampleOffer, StateSampleOffer, StateSampleOffer, StateRestartOffer, StateTerminated,
	})

	output := ts.out.String()
	if strings.Count(output, "Showing sample of 5 data rows:") != 2 {
		t.Errorf("sample should be shown twice:\n%s", output)
	}
	if strings.Contains(output, trip.Hour) {
		t.Errorf("derived columns should not be shown:\n%s", output)
	}
	if !strings.Contains(output, trip.StartStation) {
		t.Errorf("sample should have a header:\n%s", output)
	}
}

func TestSampleOfSmallTable(t *testing.T) {
	ts := newTestSession(1, []string{"yes", "no", "no"}, newTestTable(2))

	if err := ts.session.Run(); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !strings.Contains(ts.out.String(), "Showing sample of 2 data rows:") {
		t.Errorf("unexpected sample output:\n%s", ts.out.String())
	}
}

func TestSampleOfEmptyTable(t *testing.T) {
	ts := newTestSession(1, []string{"yes", "no", "no"}, newTestTable(0))

	if err := ts.session.Run(); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !strings.Contains(ts.out.String(), noRowsMessage) {
		t.Errorf("unexpected sample output:\n%s", ts.out.String())
	}
}

func TestRunReturnsInputErrors(t *testing.T) {
	ts := newTestSession(1, []string{"no"}, newTestTable(3))

	err := ts.session.Run()
	if !errors.Is(err, explorerErrors.ErrInputClosed) {
		t.Fatalf("Run() error = %v, want ErrInputClosed", err)
	}
	if ts.session.GetState() != StateRestartOffer {
		t.Errorf("GetState() = %s, want RESTART_OFFER", ts.session.GetState())
	}
}

func TestRunReturnsLoaderErrors(t *testing.T) {
	ts := newTestSession(1, []string{}, nil)
	ts.loader.err = errors.Wrap(explorerErrors.ErrDatasetNotFound, "chicago.csv")

	err := ts.session.Run()
	if !errors.Is(err, explorerErrors.ErrDatasetNotFound) {
		t.Fatalf("Run() error = %v, want ErrDatasetNotFound", err)
	}
	if ts.reporter.calls != 0 {
		t.Errorf("reporters should not run after a load error")
	}
}

func TestSessionsHaveDifferentIDs(t *testing.T) {
	first := newTestSession(0, nil, nil).session
	second := newTestSession(0, nil, nil).session
	if first.GetID() == "" || first.GetID() == second.GetID() {
		t.Errorf("unexpected IDs %q and %q", first.GetID(), second.GetID())
	}
}

func TestStateString(t *testing.T) {
	if StateSampleOffer.String() != "SAMPLE_OFFER" || State(42).String() != "State(42)" {
		t.Errorf("unexpected state names %s, %s", StateSampleOffer, State(42))
	}
}
