package debug

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/nxadm/tail"
)

// Logs prints the debug log at path. In live mode it follows new entries
// from the end of the file, otherwise it prints what is already there.
func Logs(w io.Writer, path string, live bool) error {
	if live {
		return tailLiveLogs(w, path)
	}
	return showExistingLogs(w, path)
}

func tailLiveLogs(w io.Writer, path string) error {
	shouldFollow := isatty.IsTerminal(os.Stdout.Fd())
	tailConfig := tail.Config{
		ReOpen: shouldFollow,
		Follow: shouldFollow,
		Poll:   true,
		Logger: tail.DiscardingLogger,
		Location: &tail.SeekInfo{
			Offset: 0,
			Whence: io.SeekEnd,
		},
	}

	t, err := tail.TailFile(path, tailConfig)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("log file does not exist: enable logging in config and run some conversions first")
		}
		return err
	}
	slog.Info("live tail started", "path", path)

	for line := range t.Lines {
		fmt.Fprintln(w, line.Text)
	}
	return nil
}

func showExistingLogs(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("no log file exists yet: enable logging in config and run some conversions first")
		}
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fmt.Fprintln(w, scanner.Text())
	}
	return scanner.Err()
}
