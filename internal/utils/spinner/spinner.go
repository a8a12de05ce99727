package spinner

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// StartSpinner starts a terminal spinner on stderr with the given message.
// Returns a stop function to halt and clear the spinner. Nothing is drawn
// when stderr is not a terminal.
//
// Usage: assign the spinner to a 'stop' variable, run some code, then call stop().
// i.e.:
//
//	stop := spinner.StartSpinner("Fetching weather...")
//	reading, err := svc.CurrentWeather(ctx, city)
//	stop()
//	if err != nil { return err }
func StartSpinner(message string) func() {
	// CharSets[14] is the braille dots set
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriterFile(os.Stderr))
	s.Suffix = " " + message
	s.Start()

	return s.Stop
}
