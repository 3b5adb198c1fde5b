package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/esimov/stamps"
	"github.com/esimov/stamps/gui"
	"github.com/esimov/stamps/paint"
	"github.com/esimov/stamps/utils"
)

const HelpBanner = `
┌─┐┌┬┐┌─┐┬  ┬  ┌─┐┬─┐  ┌─┐┌┬┐┌─┐┌┬┐┌─┐┌─┐
└─┐ │ ├┤ │  │  ├─┤├┬┘  └─┐ │ ├─┤│││├─┘└─┐
└─┘ ┴ └─┘┴─┘┴─┘┴ ┴┴└─  └─┘ ┴ ┴ ┴┴ ┴┴  └─┘

Draw marker strokes and stamp emoji stickers.
    Version: %s

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	source      = flag.String("in", "", "Action script to replay (- reads from stdin)")
	destination = flag.String("out", "stamps.png", "Exported image (- writes PNG to stdout)")
	width       = flag.Int("width", 256, "Board width")
	height      = flag.Int("height", 256, "Board height")
	scale       = flag.Float64("scale", stamps.ExportScale, "Export scale factor")
	background  = flag.String("bg", "#ffffff", "Background color of the exports without alpha channel")
	fontPath    = flag.String("font", "", "Sticker font, local path or URL")
	showGui     = flag.Bool("gui", false, "Open the drawing window")
	verbose     = flag.Bool("verbose", false, "Trace the gestures and the history changes")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *width <= 0 || *height <= 0 {
		log.Fatal(utils.DecorateText("The board width and height must be positive!", utils.ErrorMessage))
	}
	if *scale <= 0 {
		log.Fatal(utils.DecorateText("The export scale must be positive!", utils.ErrorMessage))
	}

	op := &stamps.Ops{
		Src:        *source,
		Dst:        *destination,
		PipeName:   pipeName,
		Width:      *width,
		Height:     *height,
		Scale:      *scale,
		Background: *background,
		Font:       *fontPath,
		Verbose:    *verbose,
	}

	switch {
	case *showGui:
		if err := runGui(op); err != nil {
			log.Fatalf(utils.DecorateText("Failed to open the board: %v", utils.ErrorMessage), err)
		}
	case *source != "":
		if err := op.Execute(); err != nil {
			log.Fatalf(
				utils.DecorateText("\nError replaying the board: %s", utils.ErrorMessage),
				utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err), utils.DefaultMessage),
			)
		}
	default:
		flag.Usage()
		log.Fatal(utils.DecorateText("\nPlease provide an action script or the -gui flag!", utils.ErrorMessage))
	}
}

// runGui opens the desktop window on a new board.
func runGui(op *stamps.Ops) error {
	bg, err := utils.HexToRGBA(op.Background)
	if err != nil {
		return err
	}
	fnt, err := op.LoadFont()
	if err != nil {
		return err
	}

	c := paint.NewCanvas(op.Width, op.Height)
	if fnt != nil {
		c.SetFont(fnt)
	}
	board, err := stamps.NewBoard(c)
	if err != nil {
		return err
	}
	if op.Verbose {
		board.Logger = log.New(os.Stderr, utils.DecorateText("stamps: ", utils.StatusMessage), 0)
	}

	gui.Run(board, c, stamps.Exporter{Scale: op.Scale, Font: fnt, Background: bg})
	return nil
}
