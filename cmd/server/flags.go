package main

import (
	"errors"
	"flag"
	"io"
)

// options holds the command-line switches. Everything else comes from the
// environment through config.Load.
type options struct {
	CreateAdmin bool
	Email       string
	Name        string
	Password    string
	MigrateDown bool
}

func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("blog-api", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.BoolVar(&opts.CreateAdmin, "create-admin", false, "Create an admin user and exit")
	fs.StringVar(&opts.Email, "email", "", "Email of the user to create")
	fs.StringVar(&opts.Name, "name", "", "Display name of the user to create")
	fs.StringVar(&opts.Password, "password", "", "Password of the user to create")
	fs.BoolVar(&opts.MigrateDown, "migrate-down", false, "Roll back the last migration and exit")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if opts.CreateAdmin && opts.MigrateDown {
		return options{}, errors.New("-create-admin and -migrate-down are mutually exclusive")
	}
	if opts.CreateAdmin && (opts.Email == "" || opts.Password == "") {
		return options{}, errors.New("-create-admin requires -email and -password")
	}
	if opts.CreateAdmin && opts.Name == "" {
		opts.Name = opts.Email
	}

	return opts, nil
}
