package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/selection"
	explorerErrors "bikeshare/explorer/errors"
	"bikeshare/utils"
)

const (
	promptType = "filter-prompt"
	greeting   = "Hello! Let's explore some US bikeshare data!"
)

// Prompter asks questions to the user through out and reads the answers from in, one per line
type Prompter struct {
	scanner   *bufio.Scanner
	out       io.Writer
	separator string
}

func NewPrompter(in io.Reader, out io.Writer, separatorWidth int) *Prompter {
	return &Prompter{
		scanner:   bufio.NewScanner(in),
		out:       out,
		separator: utils.GetSeparator(separatorWidth),
	}
}

func (p *Prompter) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[prompt: %s][method: %s][status: ERROR] %s: %s", promptType, method, message, err.Error())
	}
	return fmt.Sprintf("[prompt: %s][method: %s][status: OK] %s", promptType, method, message)
}

// GetFilters asks the user for a city, a month and a day until valid values are given.
// The values are returned in lower case. The only possible error is ErrInputClosed
func (p *Prompter) GetFilters() (selection.Selection, error) {
	fmt.Fprintln(p.out, greeting)
	fmt.Fprintln(p.out, p.separator)

	city, err := p.askUntilValid(
		fmt.Sprintf("Please select a city from the following:\n     %s", formatOptions(selection.Cities())),
		selection.IsValidCity,
	)
	if err != nil {
		return selection.Selection{}, err
	}

	month, err := p.askUntilValid(
		fmt.Sprintf("Which month do you want? Select from the following:\n     %s", formatOptions(selection.Months())),
		selection.IsValidMonth,
	)
	if err != nil {
		return selection.Selection{}, err
	}

	day, err := p.askUntilValid(
		fmt.Sprintf("Which day of week do you want? Select from the following:\n    %s", formatOptions(selection.Days())),
		selection.IsValidDay,
	)
	if err != nil {
		return selection.Selection{}, err
	}

	fmt.Fprintln(p.out, p.separator)

	filters := selection.NewSelection(city, month, day)
	log.Debug(p.getLogMessage("GetFilters", fmt.Sprintf("selected %+v", filters), nil))
	return filters, nil
}

// Ask prints the question and returns the next answer without surrounding blanks
func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprintln(p.out, question)

	if !p.scanner.Scan() {
		err := p.scanner.Err()
		if err == nil {
			err = io.EOF
		}
		log.Error(p.getLogMessage("Ask", "cannot read answer", err))
		return "", errors.Wrap(explorerErrors.ErrInputClosed, err.Error())
	}

	return strings.TrimSpace(p.scanner.Text()), nil
}

// askUntilValid repeats the question until the lower-cased answer is accepted by isValid
func (p *Prompter) askUntilValid(question string, isValid func(string) bool) (string, error) {
	for {
		answer, err := p.Ask(question)
		if err != nil {
			return "", err
		}

		lowered := strings.ToLower(answer)
		if isValid(lowered) {
			return lowered, nil
		}
		log.Debug(p.getLogMessage("askUntilValid", fmt.Sprintf("invalid answer '%s'", answer), nil))
	}
}

// formatOptions returns the options as ['a', 'b', 'c']
func formatOptions(options []string) string {
	quoted := make([]string, len(options))
	for i, option := range options {
		quoted[i] = "'" + option + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
