// hand_asm takes a filename and produces a bin file from parsing the
// output as a hand assembled file of the form:
//
// XXXX OP A1 A2
//
// Where XXXX is the address field and OP is the opcode, A1,A2 are
// optional params as needed. A line with more than three bytes is
// rejected.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"gopkg.in/urfave/cli.v2"
)

func assemble(fn, out string, offset int) error {
	b, err := exec.Command("/bin/sh", "-c", fmt.Sprintf(`egrep ^[0-9A-F][0-9A-F][0-9A-F][0-9A-F] %s | sed -e 's:\t.*$::' -e 's:(\*).*$::'| cut -c6-`, fn)).Output()
	if err != nil {
		return fmt.Errorf("can't open and process %q for input: %w", fn, err)
	}

	scanner := bufio.NewScanner(bytes.NewReader(b))
	output := make([]byte, offset)
	l := 0
	for scanner.Scan() {
		t := scanner.Text()
		l++
		toks := strings.Split(t, " ")
		if len(toks) > 3 {
			return fmt.Errorf("invalid line %d - %q", l, t)
		}
		for _, v := range toks {
			n, err := strconv.ParseUint(v, 16, 8)
			if err != nil {
				return fmt.Errorf("can't process input line %d %q: %w", l, t, err)
			}
			output = append(output, byte(n))
		}
	}

	of, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("can't open output %q: %w", out, err)
	}
	defer of.Close()
	n, err := of.Write(output)
	if err != nil {
		return fmt.Errorf("error writing to %q: %w", out, err)
	}
	if got, want := n, len(output); got != want {
		return fmt.Errorf("short write to %q: got %d want %d", out, got, want)
	}
	return nil
}

func main() {
	app := &cli.App{
		Name:      "hand_asm",
		Usage:     "assemble a hand-written 6502 listing into a raw binary image",
		ArgsUsage: "<input> <output>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "offset",
				Value: 0x0000,
				Usage: "offset to start writing assembled data; everything prior is zero filled",
			},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 2 {
				return fmt.Errorf("usage: %s <input> <output>", os.Args[0])
			}
			return assemble(c.Args().Get(0), c.Args().Get(1), c.Int("offset"))
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
