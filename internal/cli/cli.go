package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/babarot/goduration/internal/config"
	"github.com/babarot/goduration/internal/env"
	"github.com/babarot/goduration/internal/utils/debug"
	"github.com/babarot/goduration/internal/utils/log"
	"github.com/jessevdk/go-flags"
	"github.com/rs/xid"
)

type Option struct {
	Nanos     bool   `short:"n" long:"nanos" description:"Print nanoseconds instead of the canonical duration"`
	FromNanos bool   `short:"f" long:"from-nanos" description:"Treat inputs as integer nanoseconds"`
	Format    string `short:"o" long:"format" description:"Output format (overrides config)" choice:"plain" choice:"table" choice:"json"`
	Config    string `long:"config" description:"Path to config file" default:""`

	Meta MetaOption `group:"Meta Options"`
}

type MetaOption struct {
	Version bool   `short:"V" long:"version" description:"Show version"`
	Debug   bool   `long:"debug" description:"Write debug logs to stderr"`
	Logs    string `long:"logs" description:"View debug logs (default: \"full\")" optional-value:"full" optional:"yes" choice:"full" choice:"live"`
}

type CLI struct {
	version Version
	option  Option
	config  config.Config
	runID   string
	stdin   io.Reader
	stdout  io.Writer
}

var runID = sync.OnceValue(func() string {
	return xid.New().String()
})

func Run(v Version) error {
	var opt Option
	parser := flags.NewParser(&opt, flags.Default)
	parser.Name = v.AppName
	parser.Usage = "[OPTIONS] [--] [DURATION...]"
	args, err := parser.Parse()
	if err != nil {
		if flags.WroteHelp(err) {
			return nil
		}
		return err
	}

	cfg, err := config.Parse(opt.Config)
	if err != nil {
		return err
	}
	if opt.Format != "" {
		cfg.Output.Format = opt.Format
	}

	setupLogger(opt, cfg)

	defer slog.Debug("main function finished")
	slog.Debug("main function started", "version", v.Version, "revision", v.Revision, "buildDate", v.BuildDate)

	cli := CLI{
		version: v,
		option:  opt,
		config:  cfg,
		runID:   runID(),
		stdin:   os.Stdin,
		stdout:  os.Stdout,
	}

	if err := cli.Run(args); err != nil {
		slog.Error("exit", "error", fmt.Errorf("cli.run failed: %w", err))
		return err
	}
	return nil
}

func (c CLI) Run(args []string) error {
	switch {
	case c.option.Meta.Version:
		fmt.Fprint(c.stdout, c.version.Print())
		return nil

	case c.option.Meta.Logs != "":
		return debug.Logs(c.stdout, env.GODURATION_LOG_PATH, c.option.Meta.Logs == "live")

	default:
		return c.Convert(context.Background(), args)
	}
}

// setupLogger installs the default logger. --debug wins over the config
// file; without either, logs are discarded.
func setupLogger(opt Option, cfg config.Config) {
	level, err := log.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = log.InfoLevel
	}

	opts := []log.Option{
		log.UseLevel(level),
		log.UseFormatter(log.ParseFormatter(cfg.Logging.Format)),
		log.UseReportTimestamp(true),
		log.UseTimeFormat(time.Kitchen),
		log.UseFields("run_id", runID()),
		log.AsDefault(),
	}

	switch {
	case opt.Meta.Debug:
		opts = append(opts, log.UseOutput(os.Stderr), log.UseLevel(log.DebugLevel))
	case cfg.Logging.Enabled:
		opts = append(opts, log.UseOutputFunc(func() (io.Writer, error) {
			return log.NewRotateWriter(
				env.GODURATION_LOG_PATH,
				cfg.Logging.Rotation.MaxSize,
				cfg.Logging.Rotation.MaxFiles,
			)
		}))
	default:
		opts = append(opts, log.UseOutput(io.Discard))
	}

	log.New(opts...)
}
