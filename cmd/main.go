// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	vec "github.com/facebookincubator/go-simplevector"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "simplevector",
		Usage: "exercise a growable vector from the command line",
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "apply a script of vector operations to a vector of ints",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"in", "i"},
						Usage:   "script to read from (default is stdin)",
					},
					&cli.BoolFlag{
						Name:    "trace",
						Aliases: []string{"t"},
						Usage:   "print size and capacity after every operation",
					},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() > 0 {
						return fmt.Errorf("unexpected command line arguments: %q", c.Args().Slice())
					}
					var reader io.Reader
					if c.IsSet("input") {
						f, err := os.Open(c.String("input"))
						if err != nil {
							return err
						}
						reader = f
						defer f.Close()
					} else {
						reader = os.Stdin
					}
					in := newInterpreter(os.Stdout, c.Bool("trace"))
					start := time.Now()
					n, err := in.run(reader)
					if err != nil {
						return fmt.Errorf("run: %w", err)
					}
					log.Printf("applied %d operations in %s, final size %d capacity %d",
						n, time.Since(start), in.v.Size(), in.v.Capacity())
					return nil
				},
			},
			{
				Name:  "grow",
				Usage: "compare capacity growth of repeated PushBack and Insert at end",
				Flags: []cli.Flag{
					&cli.UintFlag{
						Name:    "count",
						Aliases: []string{"n"},
						Value:   16,
						Usage:   "number of elements to add",
					},
				},
				Action: func(c *cli.Context) error {
					pushes, inserts := growthTrace(c.Uint("count"))
					fmt.Printf("%6s %10s %10s\n", "size", "pushback", "insert")
					for i := range pushes {
						fmt.Printf("%6d %10d %10d\n", i+1, pushes[i], inserts[i])
					}
					fmt.Printf("%d reallocations by PushBack, %d by Insert\n",
						reallocations(pushes), reallocations(inserts))
					return nil
				},
			},
			{
				Name:  "explain",
				Usage: "describe the growth policy and storage needed for a capacity",
				Flags: []cli.Flag{
					&cli.UintFlag{
						Name:    "capacity",
						Aliases: []string{"c"},
						Value:   1024,
						Usage:   "number of int slots",
					},
				},
				Action: func(c *cli.Context) error {
					var cfg vec.Config[int]
					cfg.Explain(c.Uint("capacity"))
					return nil
				},
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
