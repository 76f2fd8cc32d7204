package session

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/selection"
	"bikeshare/domain/entities/triptable"
	"bikeshare/explorer/reporters/factory"
)

const (
	sessionType      = "session"
	yesAnswer        = "yes"
	sampleQuestion   = "\nWould you like to view a sample of data? Enter yes or no."
	restartQuestion  = "\nWould you like to restart? Enter yes or no."
	noRowsMessage    = "No rows to show."
	sampleRowsHeader = "Showing sample of %v data rows:\n"
)

// State of the session loop
type State int

const (
	StatePrompting State = iota
	StateLoading
	StateReporting
	StateSampleOffer
	StateRestartOffer
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StatePrompting:
		return "PROMPTING"
	case StateLoading:
		return "LOADING"
	case StateReporting:
		return "REPORTING"
	case StateSampleOffer:
		return "SAMPLE_OFFER"
	case StateRestartOffer:
		return "RESTART_OFFER"
	case StateTerminated:
		return "TERMINATED"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// FilterPrompter asks the user for the filters and answers yes/no questions
type FilterPrompter interface {
	GetFilters() (selection.Selection, error)
	Ask(question string) (string, error)
}

// DatasetLoader returns the trips that match the filters
type DatasetLoader interface {
	Load(filters selection.Selection) (*triptable.Table, error)
}

// Session runs the loop prompt -> load -> report -> sample -> restart until the user does not restart
// + filters, table: state of the current iteration. Dropped when the loop restarts
// + onTransition: optional hook called on every state change
type Session struct {
	id           string
	prompter     FilterPrompter
	loader       DatasetLoader
	reporters    []factory.IReporter
	out          io.Writer
	random       *rand.Rand
	sampleSize   int
	state        State
	filters      selection.Selection
	table        *triptable.Table
	onTransition func(from State, to State)
}

func NewSession(
	prompter FilterPrompter,
	loader DatasetLoader,
	reporters []factory.IReporter,
	out io.Writer,
	random *rand.Rand,
	sampleSize int,
) *Session {
	return &Session{
		id:         uuid.NewString(),
		prompter:   prompter,
		loader:     loader,
		reporters:  reporters,
		out:        out,
		random:     random,
		sampleSize: sampleSize,
		state:      StatePrompting,
	}
}

// OnTransition registers a function called every time the session changes its state
func (s *Session) OnTransition(hook func(from State, to State)) {
	s.onTransition = hook
}

func (s *Session) GetID() string {
	return s.id
}

func (s *Session) GetState() State {
	return s.state
}

func (s *Session) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[%s: %s][state: %s][method: %s][status: ERROR] %s: %s", sessionType, s.id, s.state, method, message, err.Error())
	}
	return fmt.Sprintf("[%s: %s][state: %s][method: %s][status: OK] %s", sessionType, s.id, s.state, method, message)
}

// Run executes the loop until the state is TERMINATED. Errors from the prompter or the loader end the
// session and are returned
func (s *Session) Run() error {
	log.Info(s.getLogMessage("Run", "session started", nil))

	for s.state != StateTerminated {
		next, err := s.step()
		if err != nil {
			log.Error(s.getLogMessage("Run", "session aborted", err))
			return err
		}
		s.transition(next)
	}

	log.Info(s.getLogMessage("Run", "session finished", nil))
	return nil
}

// step runs the action of the current state and returns the next state
func (s *Session) step() (State, error) {
	switch s.state {
	case StatePrompting:
		filters, err := s.prompter.GetFilters()
		if err != nil {
			return s.state, err
		}
		s.filters = filters
		return StateLoading, nil

	case StateLoading:
		table, err := s.loader.Load(s.filters)
		if err != nil {
			return s.state, err
		}
		s.table = table
		return StateReporting, nil

	case StateReporting:
		for _, reporter := range s.reporters {
			log.Debug(s.getLogMessage("step", fmt.Sprintf("running reporter %s", reporter.GetType()), nil))
			reporter.Report(s.table, s.filters)
		}
		return StateSampleOffer, nil

	case StateSampleOffer:
		answer, err := s.prompter.Ask(sampleQuestion)
		if err != nil {
			return s.state, err
		}
		if answer != yesAnswer {
			return StateRestartOffer, nil
		}
		s.showSample()
		return StateSampleOffer, nil

	case StateRestartOffer:
		answer, err := s.prompter.Ask(restartQuestion)
		if err != nil {
			return s.state, err
		}
		s.filters = selection.Selection{}
		s.table = nil
		if strings.ToLower(answer) != yesAnswer {
			return StateTerminated, nil
		}
		return StatePrompting, nil
	}

	return StateTerminated, fmt.Errorf("[method: step][status: error] unknown state %s", s.state)
}

func (s *Session) transition(next State) {
	previous := s.state
	s.state = next
	log.Debug(s.getLogMessage("transition", fmt.Sprintf("%s -> %s", previous, next), nil))

	if s.onTransition != nil {
		s.onTransition(previous, next)
	}
}

// showSample prints sampleSize random rows of the current table, without the derived columns
func (s *Session) showSample() {
	if s.table == nil || s.table.IsEmpty() {
		fmt.Fprintln(s.out, noRowsMessage)
		return
	}

	sample := s.table.Sample(s.random, s.sampleSize).WithoutDerived()
	fmt.Fprintf(s.out, sampleRowsHeader, sample.Len())

	writer := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	for _, record := range sample.Records() {
		fmt.Fprintln(writer, strings.Join(record, "\t"))
	}

	err := writer.Flush()
	if err != nil {
		log.Error(s.getLogMessage("showSample", "error writing sample", err))
	}
}
