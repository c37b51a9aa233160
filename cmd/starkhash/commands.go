package main

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/aerius-labs/stark-hash-go/field"
	"github.com/aerius-labs/stark-hash-go/hasher"
)

var (
	funcFlag = &cli.StringFlag{
		Name:    "func",
		Aliases: []string{"f"},
		Usage:   "hash function (see 'starkhash list')",
		Value:   "rescue",
		EnvVars: []string{"STARKHASH_FUNC"},
	}
	hexFlag = &cli.StringFlag{
		Name:  "hex",
		Usage: "input bytes as hex",
	}
	elementsFlag = &cli.StringFlag{
		Name:  "elements",
		Usage: "input as comma-separated decimal field elements",
	}
	paramsFlag = &cli.StringFlag{
		Name:      "params",
		Usage:     "TOML file with a custom sponge parameter set",
		EnvVars:   []string{"STARKHASH_PARAMS"},
		TakesFile: true,
	}
)

var listCommand = &cli.Command{
	Name:  "list",
	Usage: "list available hash functions",
	Action: func(ctx *cli.Context) error {
		for _, name := range hasher.Names() {
			info, _ := hasher.Lookup(name)
			limit := "unbounded"
			if info.MaxInput > 0 {
				limit = fmt.Sprintf("max %d bytes", info.MaxInput)
			}
			fmt.Fprintf(ctx.App.Writer, "%-10s %s\n", name, limit)
		}
		return nil
	},
}

var hashCommand = &cli.Command{
	Name:  "hash",
	Usage: "hash one input to 32 bytes",
	Flags: []cli.Flag{funcFlag, hexFlag, elementsFlag},
	Action: func(ctx *cli.Context) error {
		info, err := hasher.Lookup(ctx.String(funcFlag.Name))
		if err != nil {
			return err
		}
		input, err := readInput(ctx)
		if err != nil {
			return err
		}
		if info.MaxInput > 0 && len(input) > info.MaxInput {
			return fmt.Errorf("%s accepts at most %d input bytes, got %d", info.Name, info.MaxInput, len(input))
		}

		log.WithField("func", info.Name).WithField("bytes", len(input)).Debug("hashing")
		sum := hasher.Sum(info.Fn, input)
		fmt.Fprintln(ctx.App.Writer, hex.EncodeToString(sum[:]))
		return nil
	},
}

var digestCommand = &cli.Command{
	Name:      "digest",
	Usage:     "absorb decimal field elements into the Rescue sponge",
	ArgsUsage: "<element>...",
	Flags:     []cli.Flag{paramsFlag},
	Action: func(ctx *cli.Context) error {
		h, err := loadSponge(ctx.String(paramsFlag.Name))
		if err != nil {
			return err
		}
		values, err := parseElements(ctx.Args().Slice())
		if err != nil {
			return err
		}
		if len(values) > h.Rate() {
			return fmt.Errorf("sponge rate is %d elements, got %d", h.Rate(), len(values))
		}

		out := h.Digest(values)
		parts := make([]string, len(out))
		for i := range out {
			parts[i] = out[i].String()
		}
		fmt.Fprintln(ctx.App.Writer, strings.Join(parts, " "))
		return nil
	},
}

var batchCommand = &cli.Command{
	Name:      "batch",
	Usage:     "hash one hex input per line in parallel",
	ArgsUsage: "<file|->",
	Flags:     []cli.Flag{funcFlag},
	Action: func(ctx *cli.Context) error {
		info, err := hasher.Lookup(ctx.String(funcFlag.Name))
		if err != nil {
			return err
		}

		r := ctx.App.Reader
		if path := ctx.Args().First(); path != "" && path != "-" {
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()
			r = f
		}
		inputs, err := readHexLines(r)
		if err != nil {
			return err
		}

		sums, err := hasher.Batch(ctx.Context, info.Fn, inputs)
		if err != nil {
			return err
		}
		log.WithField("func", info.Name).WithField("inputs", len(inputs)).Info("batch complete")
		for _, sum := range sums {
			fmt.Fprintln(ctx.App.Writer, hex.EncodeToString(sum[:]))
		}
		return nil
	},
}

func readInput(ctx *cli.Context) ([]byte, error) {
	hexIn, elemIn := ctx.String(hexFlag.Name), ctx.String(elementsFlag.Name)
	switch {
	case hexIn != "" && elemIn != "":
		return nil, errors.New("--hex and --elements are mutually exclusive")
	case hexIn != "":
		b, err := hex.DecodeString(strings.TrimPrefix(hexIn, "0x"))
		if err != nil {
			return nil, fmt.Errorf("--hex: %w", err)
		}
		return b, nil
	case elemIn != "":
		values, err := parseElements(strings.Split(elemIn, ","))
		if err != nil {
			return nil, fmt.Errorf("--elements: %w", err)
		}
		var b []byte
		for _, v := range values {
			b = append(b, field.ToBytes(v)...)
		}
		return b, nil
	}
	return nil, nil
}

func readHexLines(r io.Reader) ([][]byte, error) {
	var inputs [][]byte
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		b, err := hex.DecodeString(strings.TrimPrefix(text, "0x"))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		inputs = append(inputs, b)
	}
	return inputs, scanner.Err()
}
