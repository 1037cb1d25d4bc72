// Command easeldemo drives the command dispatcher through a small scripted
// scene and writes the result as a PNG. It doubles as a smoke test for the
// wire protocol: every drawing call goes through the same byte-encoded
// path a host would use.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/gogpu/easel"
	"github.com/gogpu/easel/command"
	"github.com/gogpu/easel/raster"
	"github.com/gogpu/easel/surface"
)

func main() {
	out := flag.String("out", "easeldemo.png", "output PNG path")
	size := flag.Int("size", 256, "surface width and height in pixels")
	verbose := flag.Bool("v", false, "log dispatched operations")
	flag.Parse()

	if *verbose {
		easel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	d := command.NewDispatcher(surface.NewRegistry(raster.New()))
	if err := run(d, *size, *out); err != nil {
		fmt.Fprintln(os.Stderr, "easeldemo:", err)
		os.Exit(1)
	}
	fmt.Println("wrote", *out)
}

func run(d *command.Dispatcher, size int, out string) error {
	dim := strconv.Itoa(size)
	half := strconv.Itoa(size / 2)

	steps := []struct {
		op   string
		args []string
	}{
		{"create_surface", []string{"1", dim, dim}},
		{"clear", []string{"1", "255", "24", "24", "32"}},

		// Diagonal gradient band.
		{"fill_rect", []string{"1", "16", "16", half, half,
			`{"src_type":"LinearGradient","start":[16,16],"end":[144,144],"spread":"Pad",` +
				`"gradient":{"stops":[` +
				`{"position":0,"color":{"r":255,"g":99,"b":71,"a":255}},` +
				`{"position":1,"color":{"r":65,"g":105,"b":225,"a":255}}]}}`}},

		// A stroked triangle on a rotated transform.
		{"set_transform", []string{"1", "4", "0", "12", "0", "0", "0", "0"}},
		{"stroke", []string{"1",
			`{"steps":[` +
				`{"path_type":"Move","linear":[60,180]},` +
				`{"path_type":"Line","linear":[180,180]},` +
				`{"path_type":"Line","linear":[120,80]},` +
				`{"path_type":"Close"}]}`,
			`{"src_type":"Solid","color":{"r":255,"g":215,"b":0,"a":255}}`,
			`{"width":4,"cap":"Round","join":"Round","miter_limit":4,"dash_array":[],"dash_offset":0}`}},
		{"set_transform", []string{"1", "1", "1", "0", "0", "1", "0", "0"}},

		// Translucent layer with a circle, flattened with Multiply.
		{"push_layer_with_blend", []string{"1", "0.8", `"Multiply"`}},
		{"fill", []string{"1",
			`{"steps":[{"path_type":"Arc","arc":[128,128,72,0,6.2831855]},{"path_type":"Close"}]}`,
			`{"src_type":"RadialGradient","center":[128,128],"radius":72,"spread":"Pad",` +
				`"gradient":{"stops":[` +
				`{"position":0,"color":{"r":255,"g":255,"b":255,"a":255}},` +
				`{"position":1,"color":{"r":34,"g":139,"b":34,"a":255}}]}}`}},
		{"pop_layer", []string{"1"}},

		{"write_png", []string{"1", out}},
	}

	for _, step := range steps {
		args := make([][]byte, len(step.args))
		for i, a := range step.args {
			args[i] = []byte(a)
		}
		if res := d.Dispatch(step.op, args...); res.Status != command.StatusOK {
			return fmt.Errorf("%s: %s: %w", step.op, res.Status, res.Err)
		}
	}
	return nil
}
