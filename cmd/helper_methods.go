package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	kerrors "github.com/PolarWolf314/envseal/internal/errors"
	"github.com/PolarWolf314/envseal/internal/ui"
	"github.com/briandowns/spinner"
)

// startSpinner creates and starts a spinner with the given message when not in verbose or debug mode.
// Returns the spinner and a function that should be deferred to clean up.
//
// FinalMSG values do not need trailing newlines; cleanup adds one before printing.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	quiet := !verbose && !debug
	if quiet {
		s.Start()
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if quiet {
			log.SetOutput(os.Stderr)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if quiet {
			s.Stop()
		}

		// Print to stdout so tests can capture it.
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// formatStoreError turns a store error into a user-facing message. Only
// names and paths appear in it.
func formatStoreError(err error) string {
	var decErr *kerrors.DecryptionError
	switch {
	case errors.As(err, &decErr):
		return ui.ErrorMark() + " Could not decrypt " + ui.Name.Sprint(decErr.Name) + "\n" +
			ui.InfoMark() + " The store only opens for the user and project path it was written with"

	case errors.Is(err, kerrors.ErrCorruptStore):
		return ui.ErrorMark() + " The secret store could not be read: " + err.Error() + "\n" +
			ui.InfoMark() + " Run " + ui.Code.Sprint("envseal set NAME=value") + " to start a fresh store"

	case errors.Is(err, kerrors.ErrNoCommand):
		return ui.ErrorMark() + " " + err.Error() + "\n" +
			ui.InfoMark() + " Usage: " + ui.Code.Sprint("envseal run -- COMMAND [ARGS...]")

	default:
		return ui.ErrorMark() + " " + err.Error()
	}
}

// shownError marks an error whose message has already been printed, so
// Execute does not print it again.
type shownError struct {
	err error
}

func (e *shownError) Error() string { return e.err.Error() }
func (e *shownError) Unwrap() error { return e.err }

func shown(err error) error {
	return &shownError{err: err}
}
