// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelview-demo/main.go
// Summary: Entry point for the demo applications. Picks an app and a
// driver, loads the theme and config store, and runs the program loop.

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/framegrace/texelview/apps/dashboard"
	"github.com/framegrace/texelview/apps/sourceview"
	"github.com/framegrace/texelview/apps/todo"
	"github.com/framegrace/texelview/backend"
	"github.com/framegrace/texelview/config"
	"github.com/framegrace/texelview/core"
	"github.com/framegrace/texelview/theme"
)

func main() {
	appName := flag.String("app", "", "demo to run: dashboard, sourceview, todo (default: general.default_app)")
	themeFlag := flag.String("theme", "", "theme document path, or a named theme under the config dir")
	driverFlag := flag.String("driver", "", "terminal driver: ansi or tcell (default: render.driver)")
	logPath := flag.String("log", "", "append logs to this file (default: discard)")
	flag.Parse()

	setupLogging(*logPath)

	if err := run(*appName, *themeFlag, *driverFlag, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "texelview-demo: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging keeps log output off the terminal the UI owns.
func setupLogging(path string) {
	if path == "" {
		log.SetOutput(io.Discard)
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "texelview-demo: open log: %v\n", err)
		os.Exit(1)
	}
	log.SetOutput(f)
}

// run fills unset flags from the system config before building anything:
// general.default_app names the app, general.theme the theme, and
// render.driver the driver.
func run(appName, themeFlag, driverFlag string, args []string) error {
	general := config.System().Section("general")
	if appName == "" {
		appName = general.GetString("default_app", "dashboard")
	}
	if themeFlag == "" {
		themeFlag = general.GetString("theme", "")
	}
	if driverFlag == "" {
		driverFlag = config.System().Section("render").GetString("driver", "ansi")
	}

	th, err := loadTheme(themeFlag)
	if err != nil {
		return err
	}

	app, tick, mapEvent, cleanup, err := buildApp(appName, th, args)
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	driver, err := buildDriver(driverFlag)
	if err != nil {
		return err
	}

	program, err := core.NewProgram(core.ProgramConfig{
		App:          app,
		Driver:       driver,
		MapEvent:     mapEvent,
		TickInterval: tick,
	})
	if err != nil {
		return err
	}

	log.Printf("Demo: running %s with %s driver", appName, driverFlag)
	return program.Run()
}

// loadTheme resolves the flag as a path first, then as a named theme in
// the config dir. No flag means the empty theme: every widget falls
// back to its built-in styles.
func loadTheme(flagValue string) (*theme.Theme, error) {
	if flagValue == "" {
		return theme.Empty(), nil
	}
	if _, err := os.Stat(flagValue); err == nil {
		return theme.Load(flagValue)
	}
	path, err := config.ThemePath(flagValue)
	if err != nil {
		return nil, err
	}
	return theme.Load(path)
}

func buildApp(name string, th *theme.Theme, args []string) (core.App, time.Duration, core.EventMapper, func(), error) {
	switch name {
	case "dashboard":
		return dashboard.New(th), dashboard.TickInterval(), dashboard.MapEvent, nil, nil
	case "sourceview":
		if len(args) != 1 {
			return nil, 0, nil, nil, errors.New("sourceview needs one file argument")
		}
		m, err := sourceview.Load(args[0], th)
		if err != nil {
			return nil, 0, nil, nil, err
		}
		return m, 0, sourceview.MapEvent, nil, nil
	case "todo":
		path, err := todo.DataPath()
		if err != nil {
			return nil, 0, nil, nil, err
		}
		store, err := todo.OpenStore(path)
		if err != nil {
			return nil, 0, nil, nil, err
		}
		m, err := todo.New(store, th)
		if err != nil {
			store.Close()
			return nil, 0, nil, nil, err
		}
		return m, 0, todo.MapEvent, func() { store.Close() }, nil
	}
	return nil, 0, nil, nil, fmt.Errorf("unknown app %q", name)
}

func buildDriver(name string) (core.Driver, error) {
	switch name {
	case "ansi":
		return backend.NewANSIDriver(), nil
	case "tcell":
		return backend.NewTcellDriver()
	}
	return nil, fmt.Errorf("unknown driver %q", name)
}
