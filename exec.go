package stamps

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/esimov/stamps/paint"
	"github.com/esimov/stamps/utils"
	"golang.org/x/image/font/opentype"
	"golang.org/x/term"
)

// Ops holds the options of a headless replay: the action script to read,
// the board geometry and where the final image is written.
type Ops struct {
	Src, Dst, PipeName string
	Width, Height      int
	Scale              float64
	Background         string
	Font               string
	Verbose            bool

	spinner *utils.Spinner
}

// Execute replays the script read from op.Src on a new board and exports
// the resulting image to op.Dst. Export actions of the script are written
// along the way.
func (op *Ops) Execute() error {
	now := time.Now()
	op.spinner = utils.NewSpinner(utils.Banner("⇢ exporting the board...", utils.DefaultMessage), time.Millisecond*80, true)

	// Capture CTRL-C signal and restores back the cursor visibility.
	signalChan := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	defer func() {
		signal.Stop(signalChan)
		close(done)
	}()
	go func() {
		select {
		case <-signalChan:
			op.spinner.RestoreCursor()
			os.Exit(1)
		case <-done:
		}
	}()

	bg, err := utils.HexToRGBA(op.Background)
	if err != nil {
		return err
	}
	fnt, err := op.LoadFont()
	if err != nil {
		return err
	}

	canvas := paint.NewCanvas(op.Width, op.Height)
	if fnt != nil {
		canvas.SetFont(fnt)
	}
	board, err := NewBoard(canvas)
	if err != nil {
		return err
	}
	if op.Verbose {
		board.Logger = log.New(os.Stderr, utils.DecorateText("stamps: ", utils.StatusMessage), 0)
	}

	script := &Script{
		Board: board,
		Exporter: Exporter{
			Scale:      op.Scale,
			Font:       fnt,
			Background: bg,
		},
	}
	script.OnExport = func(path string, img *image.NRGBA) error {
		return op.write(script.Exporter, path, img)
	}

	src, err := op.openSource()
	if err != nil {
		return err
	}
	defer src.Close()

	n, err := script.Play(src)
	if err != nil {
		return fontHint(err)
	}
	fmt.Fprintf(os.Stderr, "%s\n", utils.Banner(fmt.Sprintf("⇢ replayed %d actions, %d items on the board", n, board.History().Len()), utils.DefaultMessage))

	if op.Dst != "" {
		img, err := board.Export(script.Exporter)
		if err != nil {
			return fontHint(err)
		}
		if err := op.write(script.Exporter, op.Dst, img); err != nil {
			return err
		}
	}
	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n", utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))

	return nil
}

// write encodes img to path, or to stdout as PNG when path is the pipe name.
func (op *Ops) write(e Exporter, path string, img *image.NRGBA) error {
	successMsg := utils.Banner("⇢ the board has been exported successfully ✔", utils.SuccessMessage)
	errorMsg := utils.Banner("exporting the board failed... ✘", utils.ErrorMessage)

	op.spinner.Start()

	var err error
	if path == op.PipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			err = errors.New("`-` should be used with a pipe for stdout")
		} else {
			err = e.Encode(os.Stdout, img, PNG)
		}
	} else {
		err = e.EncodeFile(path, img)
	}

	if err != nil {
		op.spinner.StopMsg = errorMsg + "\n"
		op.spinner.Stop()
		return err
	}
	op.spinner.StopMsg = successMsg + "\n"
	op.spinner.Stop()

	if path != op.PipeName {
		fmt.Fprintf(os.Stderr, "The board has been saved as: %s\n",
			utils.DecorateText(filepath.Base(path), utils.SuccessMessage),
		)
	}
	return nil
}

// openSource opens the action script, be it an URL, the pipe name or a local file.
func (op *Ops) openSource() (io.ReadCloser, error) {
	if utils.IsValidUrl(op.Src) {
		f, err := utils.DownloadFile(op.Src, "text")
		if err != nil {
			return nil, fmt.Errorf("failed to load the script: %w", err)
		}
		return &tempFile{f}, nil
	}
	if op.Src == op.PipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, errors.New("`-` should be used with a pipe for stdin")
		}
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(op.Src)
	if err != nil {
		return nil, fmt.Errorf("unable to open the source file: %w", err)
	}
	return f, nil
}

// LoadFont returns the sticker font given by a local path or an URL.
// It returns nil when no font is configured.
func (op *Ops) LoadFont() (*opentype.Font, error) {
	if op.Font == "" {
		return nil, nil
	}
	path := op.Font
	if utils.IsValidUrl(op.Font) {
		f, err := utils.DownloadFile(op.Font, "font")
		if err != nil {
			return nil, fmt.Errorf("failed to load the font: %w", err)
		}
		f.Close()
		defer os.Remove(f.Name())
		path = f.Name()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read the font file: %w", err)
	}
	return paint.ParseFont(data)
}

// fontHint points to the -font flag when a sticker glyph is missing from the font.
func fontHint(err error) error {
	if errors.Is(err, paint.ErrMissingGlyph) {
		return fmt.Errorf("%w; use -font with a font covering the sticker glyphs, e.g. Noto Emoji", err)
	}
	return err
}

// tempFile removes the downloaded file once it is closed.
type tempFile struct {
	*os.File
}

func (t *tempFile) Close() error {
	err := t.File.Close()
	os.Remove(t.Name())
	return err
}
