package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/srv6net/srv6ctl/pkg/srv6"
	"github.com/srv6net/srv6ctl/pkg/util"
)

var (
	watchMode     bool
	watchDebounce time.Duration
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Check configuration syntax",
	Long: `Parse a configuration file and report success or the first error.

With --watch, srv6ctl keeps running and re-checks the file whenever it
changes, until interrupted.

Examples:
  srv6ctl check srv6.conf
  srv6ctl check srv6.conf --watch`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configArg(args)
		if err != nil {
			return err
		}
		if watchMode {
			if path == "-" {
				return fmt.Errorf("--watch requires a file path, not stdin")
			}
			return watchConfig(path)
		}
		cfg, err := parseConfigFile(path)
		if err != nil {
			return err
		}
		printCheckOK(path, cfg)
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&watchMode, "watch", false, "Re-check on file change")
	checkCmd.Flags().DurationVar(&watchDebounce, "debounce", 200*time.Millisecond, "Delay before re-checking after a change")
}

func printCheckOK(path string, cfg *srv6.Config) {
	prefixes := 0
	for _, loc := range cfg.Locators() {
		prefixes += len(loc.Prefixes)
	}
	fmt.Printf("%s %s: %d locator(s), %d prefix(es)\n",
		green("OK"), displayName(path), cfg.NumLocators(), prefixes)
}

// checkOnce re-parses the file and prints the outcome without aborting
// the watch loop on parse errors.
func checkOnce(path string) {
	cfg, err := parseConfigFile(path)
	if err != nil {
		fmt.Printf("%s %v\n", red("FAIL"), err)
		return
	}
	printCheckOK(path, cfg)
}

// watchConfig re-checks path on every change until SIGINT/SIGTERM.
// The parent directory is watched rather than the file itself so that
// editors that replace the file on save keep triggering events. Events
// are debounced so a burst of writes produces a single re-check.
func watchConfig(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	checkOnce(path)
	util.WithFile(path).Infof("watching for changes")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)
	resetTimer := func() {
		if timer == nil {
			timer = time.NewTimer(watchDebounce)
			timerC = timer.C
			return
		}
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(watchDebounce)
		timerC = timer.C
	}

	for {
		select {
		case <-sigCh:
			if timer != nil {
				timer.Stop()
			}
			return nil
		case <-timerC:
			timerC = nil
			checkOnce(path)
		case err, ok := <-watcher.Errors:
			if !ok {
				return errors.New("watcher closed")
			}
			util.Warnf("watch error: %v", err)
		case evt, ok := <-watcher.Events:
			if !ok {
				return errors.New("watcher closed")
			}
			if filepath.Base(evt.Name) != filepath.Base(abs) {
				continue
			}
			if evt.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			resetTimer()
		}
	}
}
