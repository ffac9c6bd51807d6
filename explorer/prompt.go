package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"bikeshare/domain/entities/city"
	"bikeshare/domain/entities/filter"
)

var ErrInputClosed = errors.New("input closed")

const (
	cityQuestion   = "Enter city. \nChoose either Chicago, New York City or Washington: "
	monthQuestion  = "Enter a month (January, February, March, April, May or June) to filter output or enter all for no filter: "
	dayQuestion    = "Enter day of week to filter output or enter all for no filter: "
	invalidCity    = "That's not a valid city! Choose either Chicago, New York City or Washington."
	invalidMonth   = "That's not a valid month!"
	invalidDay     = "That's not a valid day!"
	greetMessage   = "Hello! Let's explore some US bikeshare data!"
	rawDataMessage = "\nWould you like to see %d (more) rows of raw data? Enter yes or no.\n"
	restartMessage = "\nWould you like to restart? Enter yes or no.\n"
)

// Prompter asks questions in the console and reads one line per answer
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Ask writes question and returns the next line of input.
// ErrInputClosed is returned once the input has no more lines.
func (p *Prompter) Ask(question string) (string, error) {
	_, _ = fmt.Fprint(p.out, question)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("error reading answer: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// AskUntilValid repeats question until parse accepts the answer
func (p *Prompter) AskUntilValid(question string, invalidMessage string, parse func(string) (string, error)) (string, error) {
	for {
		answer, err := p.Ask(question)
		if err != nil {
			return "", err
		}

		value, err := parse(answer)
		if err == nil {
			return value, nil
		}
		_, _ = fmt.Fprintln(p.out, invalidMessage)
	}
}

// GetFilters asks the user for a city, a month and a day to analyze
func (p *Prompter) GetFilters() (filter.Criteria, error) {
	_, _ = fmt.Fprintln(p.out, greetMessage)

	cityName, err := p.AskUntilValid(cityQuestion, invalidCity, func(answer string) (string, error) {
		c, err := city.Parse(answer)
		return c.String(), err
	})
	if err != nil {
		return filter.Criteria{}, err
	}

	month, err := p.AskUntilValid(monthQuestion, invalidMonth, filter.ParseMonth)
	if err != nil {
		return filter.Criteria{}, err
	}

	day, err := p.AskUntilValid(dayQuestion, invalidDay, filter.ParseDay)
	if err != nil {
		return filter.Criteria{}, err
	}

	_, _ = fmt.Fprintln(p.out, strings.Repeat("-", 40))
	return filter.NewCriteria(cityName, month, day)
}
