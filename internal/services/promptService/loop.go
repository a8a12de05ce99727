package promptservice

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	weatherservice "github.com/redjax/weathercli/internal/services/weatherService"
	"github.com/redjax/weathercli/internal/utils/strutils"
)

// ExitSentinel typed at the city prompt ends the program.
const ExitSentinel = "exit"

const (
	notFoundMessage = "City not found. Please check the city name and try again."
	goodbyeMessage  = "Thank you for using the weather application. Goodbye!"
)

// Options are the menu choices, in display order. Choice n runs Options[n-1].
var Options = []string{"Current weather", "Weather forecast", "Air pollution"}

// Querier runs the three weather queries. *weatherservice.Service satisfies it.
type Querier interface {
	CurrentWeather(ctx context.Context, city string) (weatherservice.WeatherReading, error)
	Forecast(ctx context.Context, city string) ([]weatherservice.ForecastEntry, error)
	AirPollution(ctx context.Context, city string) (weatherservice.AirQualityReading, error)
}

// Config wires a Loop to its I/O and a Querier.
type Config struct {
	In      io.Reader
	Out     io.Writer
	Querier Querier

	// Formatter renders query results. The zero value prints plain text.
	Formatter weatherservice.Formatter
	// Banner decorates the welcome line. Optional.
	Banner func(string) string
	// Alert decorates validation and lookup failure messages. Optional.
	Alert func(string) string
	// Spinner is started around each query and its stop func is called when
	// the query returns. Optional.
	Spinner func(message string) (stop func())
}

type state int

const (
	stateMenu state = iota
	stateOption
	stateCity
	stateDispatch
	stateContinue
	stateDone
)

// Loop is the interactive menu. It reads one line per prompt and is not safe
// for concurrent use.
type Loop struct {
	cfg     Config
	scanner *bufio.Scanner

	state  state
	option int
	city   string
}

// New returns a Loop reading prompts from cfg.In and writing to cfg.Out.
func New(cfg Config) *Loop {
	return &Loop{
		cfg:     cfg,
		scanner: bufio.NewScanner(cfg.In),
	}
}

// Run drives the menu until the user exits, declines to continue, or input
// ends. It returns an error only when reading input or ctx fails.
func (l *Loop) Run(ctx context.Context) error {
	l.state = stateMenu

	for l.state != stateDone {
		if err := ctx.Err(); err != nil {
			return err
		}

		var err error
		switch l.state {
		case stateMenu:
			l.printMenu()
			l.state = stateOption
		case stateOption:
			err = l.selectOption()
		case stateCity:
			err = l.promptCity()
		case stateDispatch:
			l.dispatch(ctx)
		case stateContinue:
			err = l.promptContinue()
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func (l *Loop) println(a ...any) {
	fmt.Fprintln(l.cfg.Out, a...)
}

func (l *Loop) alert(msg string) {
	if l.cfg.Alert != nil {
		msg = l.cfg.Alert(msg)
	}
	l.println(msg)
}

// readLine prints prompt and returns the next input line. ok is false once
// input is exhausted.
func (l *Loop) readLine(prompt string) (line string, ok bool, err error) {
	fmt.Fprint(l.cfg.Out, prompt)

	if !l.scanner.Scan() {
		return "", false, l.scanner.Err()
	}

	return l.scanner.Text(), true, nil
}

func (l *Loop) printMenu() {
	banner := "--- Welcome to the Weather Application ---"
	if l.cfg.Banner != nil {
		banner = l.cfg.Banner(banner)
	}

	l.println()
	l.println(banner)
	l.println()
	l.println("Select one of the options below:")
	for i, opt := range Options {
		l.println(fmt.Sprintf("%d. %s", i+1, opt))
	}
	l.println("----------------------------------------")
}

// selectOption re-prompts until a valid choice is read.
func (l *Loop) selectOption() error {
	for {
		line, ok, err := l.readLine("Which option would you like to choose? (1/2/3): ")
		if err != nil || !ok {
			l.state = stateDone
			return err
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			l.alert("Invalid input. Please enter a number (1, 2, or 3).")
			continue
		}
		if choice < 1 || choice > len(Options) {
			l.alert("Invalid option. Please choose between 1, 2, or 3.")
			continue
		}

		l.option = choice
		l.state = stateCity
		return nil
	}
}

// promptCity re-prompts until a non-empty city or the exit sentinel is read.
func (l *Loop) promptCity() error {
	for {
		line, ok, err := l.readLine("\nEnter the city name (or type 'exit' to quit): ")
		if err != nil || !ok {
			l.state = stateDone
			return err
		}

		city := strings.TrimSpace(line)
		if strings.EqualFold(city, ExitSentinel) {
			l.state = stateDone
			return nil
		}
		if city == "" {
			l.alert("Please enter a valid city name.")
			continue
		}

		l.city = city
		l.state = stateDispatch
		return nil
	}
}

// dispatch runs the selected query. Failure goes back to the city prompt for
// the same option.
func (l *Loop) dispatch(ctx context.Context) {
	stop := func() {}
	if l.cfg.Spinner != nil {
		stop = l.cfg.Spinner(fmt.Sprintf("Fetching %s for %s...", strings.ToLower(Options[l.option-1]), l.city))
	}

	lines, err := l.query(ctx)
	stop()

	if err != nil {
		l.alert(notFoundMessage)
		l.state = stateCity
		return
	}

	for _, line := range lines {
		l.println(line)
	}
	l.state = stateContinue
}

func (l *Loop) query(ctx context.Context) ([]string, error) {
	f := l.cfg.Formatter

	switch l.option {
	case 1:
		reading, err := l.cfg.Querier.CurrentWeather(ctx, l.city)
		if err != nil {
			return nil, err
		}
		return f.Current(reading), nil
	case 2:
		entries, err := l.cfg.Querier.Forecast(ctx, l.city)
		if err != nil {
			return nil, err
		}
		return f.Forecast(l.city, entries), nil
	case 3:
		reading, err := l.cfg.Querier.AirPollution(ctx, l.city)
		if err != nil {
			return nil, err
		}
		return f.AirPollution(l.city, reading), nil
	default:
		return nil, fmt.Errorf("unknown option %d", l.option)
	}
}

func (l *Loop) promptContinue() error {
	line, ok, err := l.readLine("\nWould you like to enter a new city? (yes/no): ")
	if err != nil || !ok {
		l.state = stateDone
		return err
	}

	if !strutils.IsYes(line) {
		l.println(goodbyeMessage)
		l.state = stateDone
		return nil
	}

	l.state = stateMenu
	return nil
}
