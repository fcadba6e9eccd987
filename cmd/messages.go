package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/pocket"
)

// Failure messages shown to the user. Each ends with a newline.

func addFailure(err error) string {
	switch {
	case errors.Is(err, pocket.ErrMalformedInput):
		return "The format of a record should be like this: meal breakfast -50.\nFail to add a record.\n"
	case errors.Is(err, pocket.ErrInvalidCategory):
		return "The specified category is not in the category list.\n" +
			"You can check the category list by command \"view categories\".\n" +
			"Fail to add a record.\n"
	case errors.Is(err, pocket.ErrNonIntegerAmount):
		return "Invalid value for money. Should be an integer.\nFail to add a record.\n"
	}
	return fmt.Sprintf("%v.\nFail to add a record.\n", err)
}

// deleteFailure needs the record the user typed, and the line they chose if any.
func deleteFailure(err error, record string, line int) string {
	switch {
	case errors.Is(err, pocket.ErrMalformedInput):
		return "The format of the input should be like this: meal breakfast -50.\nFail to delete a record.\n"
	case errors.Is(err, pocket.ErrNotFound):
		return fmt.Sprintf("There's no record with \"%s\".\nFail to delete a record.\n", record)
	case errors.Is(err, pocket.ErrInvalidLineInput):
		return "Invalid input. Should be an integer.\nFail to delete a record.\n"
	case errors.Is(err, pocket.ErrLineNotInSet):
		return fmt.Sprintf("Invalid input number. No record of \"%s\" in line %d.\nFail to delete a record.\n", record, line)
	}
	return fmt.Sprintf("%v.\nFail to delete a record.\n", err)
}

func findFailure(err error, category string) string {
	switch {
	case errors.Is(err, pocket.ErrUnknownCategory):
		return fmt.Sprintf("There is no category \"%s\".\n"+
			"You can check the categories with command \"view categories\".\n", category)
	case errors.Is(err, pocket.ErrNoRecords):
		return fmt.Sprintf("There is no record with category \"%s\".\n", category)
	}
	return fmt.Sprintf("%v.\n", err)
}

// skippedRecords lists the records a listing left out, one per line.
func skippedRecords(skipped []pocket.Skipped) string {
	var b strings.Builder
	for _, s := range skipped {
		fmt.Fprintf(&b, "Record \"%s\" in line %d is not valid and was left out.\n", s.Record, s.Number)
	}
	return b.String()
}

const (
	invalidStartingBalance = "Invalid value for money. Set to 0 by default.\n"
	cannotSave             = "Cannot open file.\n"
	invalidCommand         = "Invalid command. Try again.\n"
)
