/*
Package stamps implements Stellar Stamps, a small drawing board where freehand
marker strokes and emoji stickers are laid down, undone, redone and exported
as a high resolution image.

The board keeps every committed item in an undo/redo history and redraws its
surface from scratch on each change. The surface is any paint.Surface, which
makes the board usable headless as well as from a desktop window.

A board can also be driven by a recorded stream of JSON actions:

	$ stamps -in actions.json -out board.png

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"log"

		"github.com/esimov/stamps"
		"github.com/esimov/stamps/paint"
	)

	func main() {
		board, err := stamps.NewBoard(paint.NewCanvas(256, 256))
		if err != nil {
			log.Fatal(err)
		}
		board.SetThickness(stamps.Thick)
		board.Press(stamps.Point{X: 10, Y: 10})
		board.Move(stamps.Point{X: 120, Y: 80})
		board.Release()

		img, err := board.Export(stamps.Exporter{})
		if err != nil {
			log.Fatal(err)
		}
		if err := stamps.EncodeFile("board.png", img); err != nil {
			log.Fatal(err)
		}
	}
*/
package stamps
