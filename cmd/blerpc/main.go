// Command blerpc inspects the driver marshalling layer: it decodes events,
// describes protocol codes, converts units and exercises the dispatch loop.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/rigado/blerpc"
)

var (
	enc    *encoder
	stdout io.Writer = os.Stdout
	closer io.Closer
)

func output(_ *cli.Context, v interface{}) error {
	return enc.write(stdout, v)
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "blerpc"
	app.Usage = "inspect BLE driver RPC events, codes and dispatch"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config", Usage: "config file (default ./blerpc.yaml, ~/.blerpc/blerpc.yaml)"},
		cli.StringFlag{Name: "log-level, l", Usage: "log level"},
		cli.StringFlag{Name: "log-file", Usage: "write logs to a rotated file"},
		cli.StringFlag{Name: "format, f", Usage: "output format: json, cbor or cbor-hex"},
		cli.StringSliceFlag{Name: "tables, t", Usage: "extra name table files"},
	}
	app.Commands = []cli.Command{
		statusCommand(),
		namesCommand(),
		hexCommand(),
		unitsCommand(),
		eventCommand(),
		selftestCommand(),
	}
	app.Before = before
	app.After = func(*cli.Context) error {
		if closer != nil {
			return closer.Close()
		}
		return nil
	}
	return app
}

func before(c *cli.Context) error {
	cfg, err := loadConfig(c.GlobalString("config"))
	if err != nil {
		return err
	}

	if c.GlobalIsSet("log-level") {
		cfg.Log.Level = c.GlobalString("log-level")
	}
	if c.GlobalIsSet("log-file") {
		cfg.Log.File = c.GlobalString("log-file")
	}
	if c.GlobalIsSet("format") {
		cfg.Format = c.GlobalString("format")
	}
	cfg.Tables = append(cfg.Tables, c.GlobalStringSlice("tables")...)
	if err := cfg.validate(); err != nil {
		return err
	}

	if closer, err = cfg.apply(); err != nil {
		return err
	}
	enc, err = newEncoder(cfg.Format)
	return err
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		blerpc.GetLogger().Error(err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
