package gui

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/esimov/stamps"
	"github.com/esimov/stamps/paint"
)

// Title is the window title.
const Title = "Stellar Stamps"

// thumbSize is the bounding box of the preview shown after an export.
const thumbSize = 128

var thicknesses = map[string]float64{
	"Thin":  stamps.Thin,
	"Thick": stamps.Thick,
}

// Gui is the desktop front end of a board.
type Gui struct {
	board    *stamps.Board
	exporter stamps.Exporter

	window   fyne.Window
	widget   *BoardWidget
	stickers *fyne.Container
	undo     *widget.Button
	redo     *widget.Button
	status   *widget.Label
}

// NewGUI builds the window content for board b drawing onto c.
func NewGUI(a fyne.App, b *stamps.Board, c *paint.Canvas, e stamps.Exporter) *Gui {
	g := &Gui{
		board:    b,
		exporter: e,
		window:   a.NewWindow(Title),
		status:   widget.NewLabel(""),
	}
	g.widget = NewBoardWidget(b, c)
	g.widget.OnRedraw(g.updateStatus)

	g.window.SetContent(container.NewBorder(
		container.NewVBox(
			widget.NewLabelWithStyle(Title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
			g.actions(),
			g.markerTools(),
			g.stickerTools(),
		),
		g.status,
		nil, nil,
		container.NewCenter(g.widget),
	))
	g.bindKeys()
	g.updateStatus()

	return g
}

// Run opens the window and blocks until it is closed.
func Run(b *stamps.Board, c *paint.Canvas, e stamps.Exporter) {
	g := NewGUI(app.New(), b, c, e)
	g.board.Redraw()
	g.window.ShowAndRun()
}

func (g *Gui) actions() fyne.CanvasObject {
	g.undo = widget.NewButtonWithIcon("Undo", theme.ContentUndoIcon(), func() { g.board.Undo() })
	g.redo = widget.NewButtonWithIcon("Redo", theme.ContentRedoIcon(), func() { g.board.Redo() })

	return container.NewHBox(
		widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), g.board.Clear),
		g.undo,
		g.redo,
		widget.NewButtonWithIcon("Export", theme.DocumentSaveIcon(), g.export),
	)
}

func (g *Gui) markerTools() fyne.CanvasObject {
	thickness := widget.NewSelect([]string{"Thin", "Thick"}, func(s string) {
		g.board.SetThickness(thicknesses[s])
	})
	thickness.SetSelected("Thin")

	swatches := container.NewHBox()
	for _, c := range stamps.Palette {
		swatches.Add(newColorSwatch(c, g.board.SetColor))
	}
	random := widget.NewButtonWithIcon("Random", theme.ViewRefreshIcon(), func() {
		g.board.RandomColor()
	})

	return container.NewHBox(
		widget.NewLabel("Marker:"),
		thickness,
		swatches,
		random,
	)
}

func (g *Gui) stickerTools() fyne.CanvasObject {
	g.stickers = container.NewHBox()
	g.refreshStickers()

	rotation := widget.NewSlider(0, 360)
	rotation.Step = 15
	rotation.OnChanged = g.board.SetRotation

	custom := widget.NewButtonWithIcon("Custom", theme.ContentAddIcon(), g.customSticker)

	return container.NewVBox(
		container.NewHBox(widget.NewLabel("Stickers:"), g.stickers, custom),
		container.NewBorder(nil, nil, widget.NewLabel("Rotation:"), nil, rotation),
	)
}

func (g *Gui) refreshStickers() {
	g.stickers.RemoveAll()
	for _, glyph := range g.board.Stickers() {
		g.stickers.Add(widget.NewButton(glyph, func() { g.board.SetGlyph(glyph) }))
	}
	g.stickers.Refresh()
}

// customSticker prompts for a glyph, adds it to the sticker set and selects it.
func (g *Gui) customSticker() {
	entry := widget.NewEntry()
	entry.SetPlaceHolder("🦄")

	dialog.ShowForm("Custom sticker", "Add", "Cancel",
		[]*widget.FormItem{widget.NewFormItem("Glyph", entry)},
		func(ok bool) {
			if !ok || !g.board.AddSticker(entry.Text) {
				return
			}
			g.refreshStickers()
			g.board.SetGlyph(entry.Text)
		}, g.window)
}

// export renders the board at the exporter scale and writes it to the chosen file.
func (g *Gui) export() {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer func() {
			if err := writer.Close(); err != nil {
				log.Printf("could not close the exported file: %v", err)
			}
		}()

		f, err := stamps.FormatFromPath(writer.URI().Path())
		if err != nil {
			dialog.ShowError(err, g.window)
			return
		}
		img, err := g.board.Export(g.exporter)
		if err != nil {
			dialog.ShowError(fontHint(err), g.window)
			return
		}
		if err := g.exporter.Encode(writer, img, f); err != nil {
			dialog.ShowError(err, g.window)
			return
		}
		g.status.SetText(fmt.Sprintf("Exported %s", writer.URI().Name()))

		thumb := canvas.NewImageFromImage(stamps.Thumbnail(img, thumbSize))
		thumb.FillMode = canvas.ImageFillOriginal
		dialog.ShowCustom("Exported", "OK", thumb, g.window)
	}, g.window)
	fd.SetFileName("stamps.png")
	fd.Show()
}

func (g *Gui) bindKeys() {
	c := g.window.Canvas()
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) { g.board.Undo() })
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) { g.board.Redo() })
	c.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			g.window.Close()
		}
	})
}

// updateStatus reflects the history state in the action buttons and the status line.
func (g *Gui) updateStatus() {
	h := g.board.History()
	if h.CanUndo() {
		g.undo.Enable()
	} else {
		g.undo.Disable()
	}
	if h.CanRedo() {
		g.redo.Enable()
	} else {
		g.redo.Disable()
	}
	t := g.board.Tool()
	if err := g.widget.Err(); err != nil {
		g.status.SetText(fontHint(err).Error())
		return
	}
	g.status.SetText(fmt.Sprintf("%d items · %s", h.Len(), t.Mode))
}

// fontHint points to the -font flag when a sticker glyph is missing from the font.
func fontHint(err error) error {
	if errors.Is(err, paint.ErrMissingGlyph) {
		return fmt.Errorf("%w: restart with -font pointing to an emoji font", err)
	}
	return err
}

// colorSwatch is a tappable color sample.
type colorSwatch struct {
	widget.BaseWidget
	Color    color.NRGBA
	OnTapped func(color.NRGBA)
}

func newColorSwatch(c color.NRGBA, tapped func(color.NRGBA)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}
