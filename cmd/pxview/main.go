/*
Command pxview is an interactive previewer for pixel fonts.

Usage:

   pxview -font tiny [-trace Debug] [-out preview.png] [-align right] [-fg yellow] [-bg #102040]
          [-scale 2] [-margin 4px]

Every line entered is appended to the preview text. Commands start with a
colon; enter ":help" to list them. The preview is rendered into a PNG file
with ":save".

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/npillmayer/pixtype/backend/raster"
	"github.com/npillmayer/pixtype/core"
	"github.com/npillmayer/pixtype/core/colour"
	"github.com/npillmayer/pixtype/core/dimen"
	"github.com/npillmayer/pixtype/core/font"
	"github.com/npillmayer/pixtype/core/font/fontregistry"
	"github.com/npillmayer/pixtype/core/locate/resources"
	"github.com/npillmayer/pixtype/core/resource"
	"github.com/npillmayer/pixtype/engine/layout"
	"github.com/npillmayer/pixtype/engine/text"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'pixtype.cli'
func tracer() tracing.Trace {
	return tracing.Select("pixtype.cli")
}

// the previewer has exactly one font
const mainFont = "main"

// default margin around the preview text, in unscaled pixels
const defaultMargin = "2px"

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "tiny", "Font to load (name or directory)")
	outfile := flag.String("out", "preview.png", "PNG file to save previews to")
	align := flag.String("align", "left", "Alignment of lines [left|right]")
	fg := flag.String("fg", "white", "Foreground colour, e.g. 'yellow', 'dark-red' or '#ffcc00'")
	bg := flag.String("bg", "black", "Background colour, same format as -fg")
	scale := flag.Int("scale", 1, "Integer scale factor for output")
	margin := flag.String("margin", defaultMargin, "Margin around the preview text, e.g. '4px'")
	flag.Parse()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":         "go",
		"trace.pixtype.cli":       *tlevel,
		"trace.pixtype.font":      *tlevel,
		"trace.pixtype.raster":    *tlevel,
		"trace.pixtype.layout":    "Error",
		"trace.pixtype.text":      "Error",
		"trace.pixtype.resources": *tlevel,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	pterm.Info.Println("Welcome to the pixel font previewer") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	intp := newIntp(*outfile, *scale)
	for _, err := range []error{
		intp.setAlign(*align),
		intp.setColour(&intp.fg, *fg),
		intp.setColour(&intp.bg, *bg),
		intp.setMargin(*margin),
	} {
		if err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(2)
		}
	}
	//
	// load font to use
	if err := intp.loadFont(*fontname); err != nil { // font name provided by flag
		pterm.Error.Println(core.UserMessage(err))
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	//
	// set up REPL
	repl, err := readline.New("px > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp.repl = repl
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl    *readline.Instance
	font    font.Font
	fonts   *font.PathMap[string]
	metrics *font.Metrics
	lines   []string
	align   dimen.XAnchor
	palette *resource.DefaultingMap[string, colour.Definition]
	fg, bg  string // keys into palette
	margin  dimen.Length
	out     string
	scale   int
}

func newIntp(out string, scale int) *Intp {
	intp := &Intp{
		palette: egaPalette(),
		fg:      "white",
		bg:      "black",
		out:     out,
		scale:   scale,
	}
	intp.margin, _ = dimen.ParseLength(defaultMargin)
	return intp
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !strings.HasPrefix(line, ":") {
			intp.lines = append(intp.lines, line)
			intp.showSize()
			continue
		}
		quit, err := intp.execute(strings.Fields(line[1:]))
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) execute(cmd []string) (bool, error) {
	if len(cmd) == 0 {
		help()
		return false, nil
	}
	tracer().Debugf("cmd = %v", cmd)
	arg := strings.Join(cmd[1:], " ")
	switch strings.ToLower(cmd[0]) {
	case "quit", "q":
		return true, nil
	case "clear":
		intp.lines = intp.lines[:0]
	case "align":
		return false, intp.setAlign(arg)
	case "fg":
		return false, intp.setColour(&intp.fg, arg)
	case "bg":
		return false, intp.setColour(&intp.bg, arg)
	case "margin":
		return false, intp.setMargin(arg)
	case "scale":
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 {
			return false, fmt.Errorf("not a scale factor: %q", arg)
		}
		intp.scale = n
	case "font":
		return false, intp.loadFont(arg)
	case "measure":
		r := layout.DryRun(intp.metrics, arg)
		pterm.Printfln("%q measures %s", arg, r.Size)
	case "glyph":
		for _, r := range arg {
			pterm.Printfln("%q: cell %s, advance %s", r, intp.metrics.GlyphRect(r),
				intp.metrics.SpanWChar(r))
		}
	case "info":
		intp.info()
	case "save":
		if arg != "" {
			intp.out = arg
		}
		return false, intp.save()
	default:
		help()
	}
	return false, nil
}

func (intp *Intp) loadFont(name string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	f, err := resources.ResolveFont(name).Await(ctx)
	if err != nil {
		return err
	}
	fonts := font.NewPathMap(map[string]string{mainFont: f.Dir})
	mm, err := fonts.LoadMetrics()
	if err != nil {
		return err
	}
	intp.font, intp.fonts, intp.metrics = f, fonts, mm.Get(mainFont)
	pterm.Info.Printfln("Loaded font %s from %s", f.Name(), f.Dir)
	return nil
}

func (intp *Intp) setAlign(a string) error {
	anchor, ok := dimen.ParseXAnchor(strings.TrimSpace(a))
	if !ok {
		return fmt.Errorf("unknown alignment: %q", a)
	}
	intp.align = anchor
	return nil
}

var hues = map[string]colour.EgaHue{
	"white":   colour.White,
	"black":   colour.Black,
	"blue":    colour.Blue,
	"green":   colour.Green,
	"cyan":    colour.Cyan,
	"red":     colour.Red,
	"magenta": colour.Magenta,
	"yellow":  colour.Yellow,
}

// egaPalette names the EGA colours, e.g. "yellow" and "dark-yellow".
func egaPalette() *resource.DefaultingMap[string, colour.Definition] {
	p := resource.NewDefaultingMap[string, colour.Definition](nil, colour.EGA.Bright.White)
	for name, hue := range hues {
		p.Set(name, colour.EGA.Get(colour.Bright(hue)))
		p.Set("dark-"+name, colour.EGA.Get(colour.Dark(hue)))
	}
	return p
}

// setColour sets *which to colour c, which is either a palette name or a
// hex colour. Hex colours are added to the palette.
func (intp *Intp) setColour(which *string, c string) error {
	c = strings.ToLower(strings.TrimSpace(c))
	if strings.HasPrefix(c, "#") {
		d, err := colour.Hex(c)
		if err != nil {
			return err
		}
		intp.palette.Set(c, d)
	} else if _, ok := intp.palette.Lookup(c); !ok {
		return fmt.Errorf("unknown colour: %q", c)
	}
	*which = c
	return nil
}

func (intp *Intp) setMargin(m string) error {
	l, err := dimen.ParseLength(strings.TrimSpace(m))
	if err != nil {
		return fmt.Errorf("not a margin: %q: %w", m, err)
	}
	if l < 0 {
		return fmt.Errorf("margin must not be negative: %s", l)
	}
	intp.margin = l
	return nil
}

func hex(d colour.Definition) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", d.R, d.G, d.B, d.A)
}

func (intp *Intp) text() string {
	return strings.Join(intp.lines, "\n")
}

func (intp *Intp) showSize() {
	sz := layout.DryRun(intp.metrics, intp.text()).Size
	pterm.Printfln("%d line(s), %s", len(intp.lines), sz)
}

func (intp *Intp) info() {
	m := intp.metrics
	pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"Font", "Cell", "Padding", "Encoding", "Foreground", "Background", "Align", "Margin"},
		{intp.font.Name(), m.Char.String(), m.Pad.String(), m.Encoding.String(),
			hex(colour.FgOrWhite(intp.palette, intp.fg)), hex(colour.BgOrBlack(intp.palette, intp.bg)),
			intp.align.String(), intp.margin.String()},
	}).Render()
}

// save renders the preview text into a new image and writes it as PNG.
func (intp *Intp) save() error {
	if len(intp.lines) == 0 {
		return errors.New("nothing to save")
	}
	str := intp.text()
	margin := intp.margin
	bounds := layout.DryRun(intp.metrics, str).Grow(margin)
	size := bounds.Size
	img := image.NewNRGBA(image.Rect(0, 0, int(size.W)*intp.scale, int(size.H)*intp.scale))
	//
	reg := fontregistry.NewRegistry[string, string, *image.NRGBA](intp.fonts, intp.palette, raster.Loader{})
	r, err := raster.NewRenderer[string, string](img, reg)
	if err != nil {
		return err
	}
	r.WithScale(intp.scale)
	if err := r.Clear(colour.BgOrBlack(intp.palette, intp.bg)); err != nil {
		return err
	}
	w := text.NewWriter[string, string](r).
		WithFont(font.SpecOf(mainFont, intp.fg)).
		WithPos(dimen.Point{X: margin + intp.align.Offset(size.W-2*margin), Y: margin}).
		Align(intp.align)
	if _, err := w.WriteString(str); err != nil {
		return err
	}
	reg.LogFontList()
	//
	f, err := os.Create(intp.out)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return err
	}
	pterm.Info.Printfln("Saved %dx%d preview to %s", img.Rect.Dx(), img.Rect.Dy(), intp.out)
	return nil
}

func help() {
	pterm.Info.Println("Enter text lines to add them to the preview. Commands:")
	pterm.Println(`  :align left|right   set line alignment
  :fg [dark-]<hue>     set foreground colour (or :fg #rrggbb)
  :bg [dark-]<hue>     set background colour (or :bg #rrggbb)
  :margin <n>[px]      set margin around the preview
  :scale <n>           set output scale factor
  :font <name|dir>     load another font
  :measure <text>      print the size of a text
  :glyph <chars>       print texture cells and advances
  :info                show current settings
  :clear               clear the preview text
  :save [file.png]     render the preview to a PNG file
  :quit                leave`)
}
