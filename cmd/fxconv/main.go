// Command fxconv converts a glyph sheet image into a packed bitmap font and
// writes it as a Python stub for the gint font loader.
//
//	fxconv <input-image> [-o output.py] charset:print grid.size:8x9 proportional:true
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	flags "github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
	"github.com/wbrown/fxfont"
	"github.com/wbrown/fxfont/imageutil"
	"github.com/wbrown/fxfont/render"
	"golang.org/x/term"
)

type options struct {
	Output  string `short:"o" long:"output" description:"Output file (default: input with a .py extension)"`
	Verbose bool   `short:"v" long:"verbose" description:"Log conversion details"`

	RenderFont string  `long:"render-font" description:"Render the sheet from a TrueType font instead of reading an image"`
	FontSize   float64 `long:"font-size" default:"16" description:"Pixel size used with --render-font"`
	OpenCV     bool    `long:"opencv" description:"Decode the input image with OpenCV (needs -tags gocv)"`

	SaveSheet string `long:"save-sheet" description:"Write the sheet, as the converter classifies it, to a PNG"`
	Preview   string `long:"preview" description:"Write the decoded glyphs to a PNG"`
	Record    string `long:"record" description:"Also write the packed font as a binary record"`
	Dump      bool   `long:"dump" description:"Print the decoded glyphs"`
}

// param is one key:value token.
type param struct {
	Key, Value string
}

type invocation struct {
	opts   options
	input  string
	params []param
}

// parseArgs splits argv into options, the input path and key:value params.
// Unknown "--" flags are dropped, as are positional tokens after the input.
// A single-dash token the parser does not know, such as "-x", is positional.
func parseArgs(argv []string) (*invocation, error) {
	inv := &invocation{}
	parser := flags.NewParser(&inv.opts, flags.HelpFlag|flags.PassDoubleDash|flags.IgnoreUnknown)
	parser.Usage = "[OPTIONS] <input-image> [key:value ...]"
	parser.LongDescription = "Unknown --flags are ignored; a single-dash token is read as an argument.\n" +
		"Charsets: " + strings.Join(fxfont.CharsetNames(), ", ")
	rest, err := parser.ParseArgs(argv)
	if err != nil {
		return nil, err
	}

	for _, tok := range rest {
		if strings.HasPrefix(tok, "--") {
			logrus.WithField("flag", tok).Debug("ignoring unknown flag")
			continue
		}
		if key, value, ok := strings.Cut(tok, ":"); ok {
			inv.params = append(inv.params, param{Key: key, Value: value})
			continue
		}
		if inv.input == "" {
			inv.input = tok
			continue
		}
		logrus.WithField("arg", tok).Debug("ignoring extra argument")
	}
	return inv, nil
}

// outputPath is the explicit output, or the input with a .py extension.
func (inv *invocation) outputPath() string {
	if inv.opts.Output != "" {
		return inv.opts.Output
	}
	base := inv.input
	if base == "" {
		base = inv.opts.RenderFont
	}
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".py"
}

// config applies the key:value params. Unknown keys are warned about and
// skipped.
func (inv *invocation) config() (fxfont.Config, error) {
	var cfg fxfont.Config
	for _, p := range inv.params {
		err := cfg.Set(p.Key, p.Value)
		if errors.Is(err, fxfont.ErrUnknownParam) {
			logrus.WithField("key", p.Key).Warn("ignoring unknown parameter")
			continue
		}
		if err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func loadSource(inv *invocation, cfg *fxfont.Config) (*imageutil.Sheet, error) {
	if inv.opts.RenderFont != "" {
		if cfg.Charset == "" {
			return nil, fxfont.ErrMissingCharset
		}
		ttf, err := render.LoadFont(inv.opts.RenderFont)
		if err != nil {
			return nil, err
		}
		img, grid, err := render.Charset(ttf, cfg.Charset, render.Options{Size: inv.opts.FontSize})
		if err != nil {
			return nil, fmt.Errorf("failed to render sheet: %w", err)
		}
		if cfg.Grid.Size == "" && cfg.Grid.Width == 0 && cfg.Grid.Height == 0 {
			cfg.Grid = grid
		}
		logrus.WithFields(logrus.Fields{
			"font":  inv.opts.RenderFont,
			"sheet": img.Bounds().Size(),
		}).Debug("rendered sheet")
		return imageutil.NewSheet(img), nil
	}

	if inv.input == "" {
		return nil, errors.New("no input image given")
	}
	if inv.opts.OpenCV {
		return imageutil.LoadSheetMat(inv.input)
	}
	return imageutil.LoadSheet(inv.input)
}

func run(argv []string, stdout, stderr io.Writer) int {
	logrus.SetOutput(stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logrus.SetLevel(logrus.InfoLevel)

	inv, err := parseArgs(argv)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, err)
			return 0
		}
		fmt.Fprintf(stderr, "Conversion failed: %v\n", err)
		return 1
	}
	if inv.opts.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if err := convert(inv, stdout); err != nil {
		fmt.Fprintf(stderr, "Conversion failed: %v\n", err)
		return 1
	}
	return 0
}

func convert(inv *invocation, stdout io.Writer) error {
	cfg, err := inv.config()
	if err != nil {
		return err
	}
	sheet, err := loadSource(inv, &cfg)
	if err != nil {
		return err
	}

	if inv.opts.SaveSheet != "" {
		if err := imageutil.SavePNG(imageutil.Monochrome(sheet), inv.opts.SaveSheet); err != nil {
			return err
		}
	}

	font, err := fxfont.Convert(sheet, cfg)
	if err != nil {
		return err
	}

	output := inv.outputPath()
	if err := writeStub(output, cfg.Name, font); err != nil {
		return err
	}

	if inv.opts.Record != "" {
		data, err := font.MarshalBinary()
		if err != nil {
			return err
		}
		if err := os.WriteFile(inv.opts.Record, data, 0o644); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	if inv.opts.Preview != "" {
		img, err := imageutil.RenderPreview(font, imageutil.PreviewOptions{Spacing: 1, Scale: 4})
		if err != nil {
			return err
		}
		if err := imageutil.SavePNG(img, inv.opts.Preview); err != nil {
			return err
		}
	}
	if inv.opts.Dump {
		if err := dump(stdout, font); err != nil {
			return err
		}
	}

	fmt.Fprintf(stdout, "Output written to %s\n", output)
	return nil
}

func writeStub(path, name string, font *fxfont.PackedFont) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := fxfont.WriteStub(out, name, font); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// dump prints every decoded glyph, using block characters on a terminal.
func dump(w io.Writer, font *fxfont.PackedFont) error {
	on := '#'
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		on = '█'
	}
	runes := fxfont.Runes(font.CharsetBlocks())
	for i := 0; i < font.NumGlyphs(); i++ {
		g, err := font.Glyph(i)
		if err != nil {
			return err
		}
		label := "(unassigned)"
		if i < len(runes) {
			label = fmt.Sprintf("%q", runes[i])
		}
		fmt.Fprintf(w, "glyph %d %s %dx%d\n", i, label, g.Width, g.Height)
		fmt.Fprint(w, g.Format(on, ' '))
	}
	return nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
