package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/aerius-labs/stark-hash-go/field"
	"github.com/aerius-labs/stark-hash-go/sponge"
)

// spongeConfig is the TOML form of a sponge parameter set. Field elements
// are decimal strings.
//
//	width = 2
//	rate = 1
//	digest_size = 1
//	rounds = 3
//	cycle_length = 2
//	mds = ["2", "1", "1", "1"]
//	inv_mds = [...]
//	ark = [["1", "2"], ...]
type spongeConfig struct {
	Width       int        `toml:"width"`
	Rate        int        `toml:"rate"`
	DigestSize  int        `toml:"digest_size"`
	Rounds      int        `toml:"rounds"`
	CycleLength int        `toml:"cycle_length"`
	MDS         []string   `toml:"mds"`
	InvMDS      []string   `toml:"inv_mds"`
	ARK         [][]string `toml:"ark"`
}

// loadSponge builds a hasher from a TOML file, or returns the default
// parameter set when path is empty.
func loadSponge(path string) (*sponge.Hasher, error) {
	if path == "" {
		return sponge.Default(), nil
	}

	var cfg spongeConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("read sponge params: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("read sponge params: unknown key %q", undecoded[0].String())
	}

	params, err := cfg.params()
	if err != nil {
		return nil, err
	}
	h, err := sponge.New(params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.WithField("path", path).WithField("width", h.Width()).Debug("loaded sponge parameters")
	return h, nil
}

func (c *spongeConfig) params() (sponge.Params, error) {
	p := sponge.Params{
		Width:       c.Width,
		Rate:        c.Rate,
		DigestSize:  c.DigestSize,
		Rounds:      c.Rounds,
		CycleLength: c.CycleLength,
	}

	var err error
	if p.MDS, err = parseElements(c.MDS); err != nil {
		return p, fmt.Errorf("mds: %w", err)
	}
	if p.InvMDS, err = parseElements(c.InvMDS); err != nil {
		return p, fmt.Errorf("inv_mds: %w", err)
	}
	p.ARK = make([][]field.Element, len(c.ARK))
	for i, row := range c.ARK {
		if p.ARK[i], err = parseElements(row); err != nil {
			return p, fmt.Errorf("ark row %d: %w", i, err)
		}
	}
	return p, nil
}

func parseElements(ss []string) ([]field.Element, error) {
	out := make([]field.Element, len(ss))
	for i, s := range ss {
		if _, err := out[i].SetString(strings.TrimSpace(s)); err != nil {
			return nil, err
		}
	}
	return out, nil
}
