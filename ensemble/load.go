package ensemble

import (
	"fmt"
	"io"
	"os"

	"github.com/parsweep/parsweep/core"
	"github.com/parsweep/parsweep/parse"
)

// inputBlockName is the reserved top-level key; the settings block may
// not collide with it.
const inputBlockName = "input"

// Load reads the YAML ensemble description at path and expands it into
// its full member set. settingsBlock names the top-level block to read
// settings from; pass "" to skip settings entirely. Load fails fast: a
// problem anywhere in the file aborts the whole load with an error
// wrapping one of the core sentinels.
func Load(path, settingsBlock string) (*Ensemble, error) {
	if settingsBlock == inputBlockName {
		return nil, fmt.Errorf("%w: %q collides with the reserved input block",
			core.ErrInvalidSettingsBlock, settingsBlock)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", core.ErrFileNotFound, path, err)
	}
	defer f.Close()

	return load(f, settingsBlock)
}

// load drives parse → postprocess → build over an open source. Split
// from Load so tests can feed in-memory documents without touching the
// filesystem.
func load(r io.Reader, settingsBlock string) (*Ensemble, error) {
	data, err := parse.Parse(r, settingsBlock)
	if err != nil {
		return nil, err
	}
	if err := data.Postprocess(); err != nil {
		return nil, err
	}

	inputs, typ, err := build(data)
	if err != nil {
		return nil, err
	}

	outputs := make([]*core.Output, len(inputs))
	for i := range outputs {
		outputs[i] = core.NewOutput()
	}

	return &Ensemble{
		typ:      typ,
		settings: data.Settings,
		inputs:   inputs,
		outputs:  outputs,
	}, nil
}
