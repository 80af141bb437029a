// Package cli is a thin console front-end standing in for the graphical
// screens. It only talks to the service contract the UI layer is allowed to
// call: accounts via UserService, readings via LogService.
package cli

import (
	"fmt"
	"time"

	"github.com/alp-turan/sugarbyte/internal/domain"
)

// Context carries the wired services into the commands.
type Context struct {
	Users domain.UserService
	Logs  domain.LogService
}

// CLI is the top-level command tree.
type CLI struct {
	Register RegisterCmd `cmd:"" help:"Register a new account."`
	Login    LoginCmd    `cmd:"" help:"Check an email/password pair."`
	Profile  ProfileCmd  `cmd:"" help:"Show or update a profile."`
	Log      LogCmd      `cmd:"" help:"Save a reading for a day and time slot."`
	Day      DayCmd      `cmd:"" help:"List all readings for a date."`
	Graph    GraphCmd    `cmd:"" help:"Print readings over a date range."`
}

func resolveDate(s string) (string, error) {
	if s == "today" || s == "" {
		return time.Now().Format(domain.DateFormat), nil
	}
	if _, err := time.Parse(domain.DateFormat, s); err != nil {
		return "", fmt.Errorf("invalid date %q, use yyyy-MM-dd or 'today'", s)
	}
	return s, nil
}
