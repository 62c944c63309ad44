package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/rigado/blerpc"
	"github.com/rigado/blerpc/adapter"
	"github.com/rigado/blerpc/conv"
	"github.com/rigado/blerpc/diag"
	"github.com/rigado/blerpc/evt"
	"github.com/rigado/blerpc/names"
	"github.com/rigado/blerpc/task"
)

func parseCode(s string, bits int) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, bits)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid code %q", s)
	}
	return v, nil
}

func argCode(c *cli.Context, i int, bits int) (uint64, error) {
	if c.NArg() <= i {
		return 0, errors.Errorf("missing argument %d", i+1)
	}
	return parseCode(c.Args().Get(i), bits)
}

func statusCommand() cli.Command {
	return cli.Command{
		Name:  "status",
		Usage: "describe result and status codes",
		Subcommands: []cli.Command{
			{
				Name:      "error",
				Usage:     "describe a driver result code",
				ArgsUsage: "<code> [operation]",
				Action: func(c *cli.Context) error {
					code, err := argCode(c, 0, 32)
					if err != nil {
						return err
					}
					op := c.Args().Get(1)
					if op == "" {
						op = "calling the driver"
					}
					m := diag.ErrorMessage(int(code), op)
					if m == nil {
						m = blerpc.Object{"errno": 0.0, "errcode": names.Errors().Name(names.Success)}
					}
					return output(c, m)
				},
			},
			{
				Name:      "hci",
				Usage:     "describe an HCI status code",
				ArgsUsage: "<code>",
				Action: func(c *cli.Context) error {
					code, err := argCode(c, 0, 8)
					if err != nil {
						return err
					}
					return output(c, diag.HCIStatusMessage(int(code)))
				},
			},
			{
				Name:      "app",
				Usage:     "describe an RPC transport status",
				ArgsUsage: "<code> [message]",
				Action: func(c *cli.Context) error {
					code, err := argCode(c, 0, 16)
					if err != nil {
						return err
					}
					return output(c, diag.StatusMessage(int(code), c.Args().Get(1), conv.CurrentTimestamp()))
				},
			},
		},
	}
}

func namesCommand() cli.Command {
	return cli.Command{
		Name:      "names",
		Usage:     "list name tables, dump a table or look up a code",
		ArgsUsage: "[table [code]]",
		Action: func(c *cli.Context) error {
			set := names.Default()
			if c.NArg() == 0 {
				return output(c, toArray(set.Names()))
			}

			t := set.Table(c.Args().First())
			if t == nil {
				return errors.Errorf("no table %q", c.Args().First())
			}

			if c.NArg() > 1 {
				code, err := argCode(c, 1, 16)
				if err != nil {
					return err
				}
				return output(c, blerpc.Object{"code": float64(code), "name": t.Name(uint16(code))})
			}
			return output(c, dumpTable(t))
		},
	}
}

func dumpTable(t *names.Table) blerpc.Object {
	m := blerpc.Object{}
	for _, code := range t.Codes() {
		m[fmt.Sprintf("0x%04X", code)] = t.Name(code)
	}
	return m
}

func toArray(ss []string) blerpc.Array {
	a := make(blerpc.Array, len(ss))
	for i, s := range ss {
		a[i] = s
	}
	return a
}

func hexCommand() cli.Command {
	return cli.Command{
		Name:  "hex",
		Usage: "convert between hex text and bytes",
		Subcommands: []cli.Command{
			{
				Name:      "decode",
				ArgsUsage: "<hex>",
				Action: func(c *cli.Context) error {
					b, err := conv.ExtractHex(c.Args().First())
					if err != nil {
						return err
					}
					return output(c, conv.ToValueArray(b))
				},
			},
			{
				Name:      "encode",
				ArgsUsage: "<byte>...",
				Action: func(c *cli.Context) error {
					b := make([]byte, 0, c.NArg())
					for i := range c.Args() {
						v, err := argCode(c, i, 8)
						if err != nil {
							return err
						}
						b = append(b, byte(v))
					}
					return output(c, conv.EncodeHex(b))
				},
			},
		},
	}
}

func parseUnit(s string) (conv.Unit, error) {
	switch strings.TrimSuffix(s, "ms") {
	case "625":
		return conv.Unit625ms, nil
	case "1250":
		return conv.Unit1250ms, nil
	case "10000", "10s":
		return conv.Unit10000ms, nil
	}
	return 0, errors.Errorf("unknown unit %q (625, 1250 or 10000)", s)
}

func unitsCommand() cli.Command {
	unitFlag := cli.StringFlag{Name: "unit, u", Value: "1250", Usage: "protocol unit: 625, 1250 or 10000"}

	return cli.Command{
		Name:  "units",
		Usage: "convert durations to and from protocol units",
		Subcommands: []cli.Command{
			{
				Name:      "to-units",
				ArgsUsage: "<msecs>",
				Flags:     []cli.Flag{unitFlag},
				Action: func(c *cli.Context) error {
					unit, err := parseUnit(c.String("unit"))
					if err != nil {
						return err
					}
					ms, err := strconv.ParseFloat(c.Args().First(), 64)
					if err != nil {
						return errors.Wrap(err, "msecs")
					}
					return output(c, conv.ToNumber(conv.MsecsToUnitsUint16(ms, unit)))
				},
			},
			{
				Name:      "to-msecs",
				ArgsUsage: "<units>",
				Flags:     []cli.Flag{unitFlag},
				Action: func(c *cli.Context) error {
					unit, err := parseUnit(c.String("unit"))
					if err != nil {
						return err
					}
					u, err := argCode(c, 0, 16)
					if err != nil {
						return err
					}
					return output(c, conv.UnitsToMsecs(uint16(u), unit))
				},
			},
		},
	}
}

// decodeEvent decodes a hex payload for event id as a host object.
func decodeEvent(id, connHandle uint16, payload string) (blerpc.Object, error) {
	p, err := conv.ExtractHex(strings.Replace(payload, " ", "", -1))
	if err != nil {
		return nil, errors.Wrap(err, "payload")
	}
	e, err := evt.Decode(id, conv.CurrentTimestamp(), connHandle, p)
	if err != nil {
		return nil, err
	}
	return e.ToMap(), nil
}

func eventCommand() cli.Command {
	return cli.Command{
		Name:  "event",
		Usage: "decode driver events",
		Subcommands: []cli.Command{
			{
				Name:      "decode",
				ArgsUsage: "<id> <hex payload>",
				Flags: []cli.Flag{
					cli.StringFlag{Name: "conn, c", Value: "0", Usage: "connection handle"},
				},
				Action: func(c *cli.Context) error {
					id, err := argCode(c, 0, 16)
					if err != nil {
						return err
					}
					conn, err := parseCode(c.String("conn"), 16)
					if err != nil {
						return err
					}
					m, err := decodeEvent(uint16(id), uint16(conn), c.Args().Get(1))
					if err != nil {
						return err
					}
					return output(c, m)
				},
			},
			{
				Name:  "ids",
				Usage: "list decodable event ids",
				Action: func(c *cli.Context) error {
					m := blerpc.Object{}
					for _, id := range evt.IDs() {
						m[fmt.Sprintf("0x%02X", id)] = names.Events().Name(id)
					}
					return output(c, m)
				},
			},
		},
	}
}

type selftestResult struct {
	Scheduled int
	Callbacks int
	Succeeded int
	Failed    int
	Published int
}

type loopbackAdapter struct {
	port string
}

func (l *loopbackAdapter) Port() string { return l.port }

// runSelftest pushes n batons through a request loop. Every failEvery-th
// native call fails; the others produce a connection event that is encoded
// for the host and published on a bus.
func runSelftest(ctx context.Context, n, failEvery int) (selftestResult, error) {
	res := selftestResult{Scheduled: n}
	if n < 0 {
		return res, errors.Errorf("operation count must not be negative, got %d", n)
	}
	if failEvery < 0 {
		return res, errors.Errorf("fail-every must not be negative, got %d", failEvery)
	}

	loop, err := task.NewLoop()
	if err != nil {
		return res, err
	}
	ctx, cancel := context.WithCancel(ctx)
	stopped := make(chan struct{})
	go func() {
		loop.Run(ctx)
		close(stopped)
	}()
	defer func() {
		cancel()
		<-stopped
	}()

	reg := adapter.NewRegistry()
	h := &loopbackAdapter{port: "loopback"}
	reg.Add(h)

	bus := evt.NewBus(n)
	defer bus.Close()
	sub := bus.Subscribe(evt.IDGapConnected)

	var callbacks, ok, failed int32
	var wg sync.WaitGroup
	futures := make([]*task.Future, 0, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		b := task.NewBaton("connecting", func(err error, result interface{}) {
			defer wg.Done()
			atomic.AddInt32(&callbacks, 1)
			if err != nil {
				atomic.AddInt32(&failed, 1)
				return
			}
			atomic.AddInt32(&ok, 1)
		}, i)
		b.SetAdapter(reg, h)

		f, err := loop.Schedule(b, func(b *task.Baton) int {
			i := b.Data.(int)
			if failEvery > 0 && i%failEvery == 0 {
				return 0x8005
			}
			cp := evt.ConnParams{MinConnInterval: evt.ConnIntervalMin, MaxConnInterval: evt.ConnIntervalMin, ConnSupTimeout: 400}
			e := &evt.GapConnected{Header: evt.NewHeader(evt.IDGapConnected, uint16(i)), Role: 1, ConnParams: cp}
			b.SetOutput(e)
			return names.Success
		}, func(b *task.Baton) (interface{}, error) {
			e := b.Output().(*evt.GapConnected)
			bus.Publish(e)
			return e.ToMap(), nil
		})
		if err != nil {
			wg.Done()
			return res, err
		}
		futures = append(futures, f)
	}

	for _, f := range futures {
		f.Wait(ctx)
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
	}
	wg.Wait()

	// bus delivery is asynchronous
drain:
	for res.Published < int(ok) {
		select {
		case <-sub:
			res.Published++
		case <-time.After(time.Second):
			break drain
		}
	}

	res.Callbacks = int(callbacks)
	res.Succeeded = int(ok)
	res.Failed = int(failed)
	return res, nil
}

func selftestCommand() cli.Command {
	return cli.Command{
		Name:  "selftest",
		Usage: "run synthetic native calls through the dispatch loop",
		Flags: []cli.Flag{
			cli.IntFlag{Name: "n", Value: 100, Usage: "number of operations"},
			cli.IntFlag{Name: "fail-every", Value: 7, Usage: "fail every nth operation, 0 for never"},
		},
		Action: func(c *cli.Context) error {
			res, err := runSelftest(context.Background(), c.Int("n"), c.Int("fail-every"))
			if err != nil {
				return err
			}
			if res.Callbacks != res.Scheduled {
				return cli.NewExitError(fmt.Sprintf("%d callbacks for %d operations", res.Callbacks, res.Scheduled), 2)
			}
			return output(c, blerpc.Object{
				"scheduled": float64(res.Scheduled),
				"callbacks": float64(res.Callbacks),
				"succeeded": float64(res.Succeeded),
				"failed":    float64(res.Failed),
				"published": float64(res.Published),
			})
		},
	}
}
