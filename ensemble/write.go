package ensemble

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"

	"github.com/parsweep/parsweep/core"
)

// Write serializes the ensemble as a Python module at path: a settings
// object, an input object and an output object, each quantity rendered
// as one list spanning all members in record order. NaN and the
// infinities become the nan/inf literals imported from Python's math
// module. An output quantity absent from some records is padded with
// nan (or an empty list for array quantities), so ragged client metrics
// still produce a loadable module.
func (e *Ensemble) Write(path string) error {
	if e.Size() == 0 {
		return fmt.Errorf("%w: nothing to write", core.ErrEmptyEnsemble)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: could not write ensemble data to %q: %v",
			core.ErrWriteFailure, path, err)
	}

	w := bufio.NewWriter(f)
	e.writeModule(w)
	if err := w.Flush(); err != nil {
		f.Close()

		return fmt.Errorf("%w: could not write ensemble data to %q: %v",
			core.ErrWriteFailure, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: could not write ensemble data to %q: %v",
			core.ErrWriteFailure, path, err)
	}

	return nil
}

// writeModule emits the module body. Write errors accumulate inside the
// buffered writer and surface at Flush.
func (e *Ensemble) writeModule(w io.Writer) {
	fmt.Fprintf(w, "# This file was automatically generated by parsweep.\n\n")
	fmt.Fprintf(w, "from math import nan as nan, inf as inf\n\n")
	fmt.Fprintf(w, "# Object is just a dynamic container that stores input/output data.\n")
	fmt.Fprintf(w, "class Object(object):\n")
	fmt.Fprintf(w, "    pass\n\n")

	if e.settings != nil {
		fmt.Fprintf(w, "# Settings are stored here.\n")
		fmt.Fprintf(w, "settings = Object()\n")
		for _, name := range e.settings.Names() {
			value, _ := e.settings.Get(name)
			fmt.Fprintf(w, "settings.%s = '%s'\n", name, value)
		}
	}

	// Every input quantity exists in every record by construction, so the
	// first record's names cover them all.
	fmt.Fprintf(w, "# Input is stored here.\n")
	fmt.Fprintf(w, "input = Object()\n")
	for _, name := range e.inputs[0].Names() {
		fmt.Fprintf(w, "input.%s = [", name)
		for _, in := range e.inputs {
			v, _ := in.Get(name)
			fmt.Fprintf(w, "%s, ", formatReal(v))
		}
		fmt.Fprintf(w, "]\n")
	}
	for _, name := range e.inputs[0].ArrayNames() {
		fmt.Fprintf(w, "input.%s = [", name)
		for _, in := range e.inputs {
			values, _ := in.GetArray(name)
			writeList(w, values)
		}
		fmt.Fprintf(w, "]\n")
	}

	// Output quantities may be ragged: collect the union of names.
	fmt.Fprintf(w, "\n# Output data is stored here.\n")
	fmt.Fprintf(w, "output = Object()\n")
	scalarNames, arrayNames := e.outputNames()
	for _, name := range scalarNames {
		fmt.Fprintf(w, "output.%s = [", name)
		for _, out := range e.outputs {
			v := math.NaN()
			if out.Has(name) {
				v, _ = out.Get(name)
			}
			fmt.Fprintf(w, "%s, ", formatReal(v))
		}
		fmt.Fprintf(w, "]\n")
	}
	for _, name := range arrayNames {
		fmt.Fprintf(w, "output.%s = [", name)
		for _, out := range e.outputs {
			var values []core.Real
			if out.HasArray(name) {
				values, _ = out.GetArray(name)
			}
			writeList(w, values)
		}
		fmt.Fprintf(w, "]\n")
	}
}

// outputNames returns the sorted union of scalar and array metric names
// across all records.
func (e *Ensemble) outputNames() (scalars, arrays []string) {
	scalarSet := make(map[string]struct{})
	arraySet := make(map[string]struct{})
	for _, out := range e.outputs {
		for _, name := range out.Names() {
			scalarSet[name] = struct{}{}
		}
		for _, name := range out.ArrayNames() {
			arraySet[name] = struct{}{}
		}
	}

	return sortedSet(scalarSet), sortedSet(arraySet)
}

// sortedSet flattens a name set into sorted order.
func sortedSet(set map[string]struct{}) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// writeList emits one inner array value: "[v, v, ],".
func writeList(w io.Writer, values []core.Real) {
	fmt.Fprintf(w, "[")
	for _, v := range values {
		fmt.Fprintf(w, "%s, ", formatReal(v))
	}
	fmt.Fprintf(w, "],")
}

// formatReal renders one value as a Python float literal. Go's 'g' verb
// spells the specials "NaN" and "+Inf", which Python cannot read back,
// so they map to the literals imported at the top of the module.
func formatReal(v core.Real) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	default:
		return strconv.FormatFloat(v, 'g', 10, 64)
	}
}
