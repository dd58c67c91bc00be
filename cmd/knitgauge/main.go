// KnitGauge - sweater measurement configurator
//
// Collects the measurements of a hand-knit sweater, fills them from
// standard size presets, and hands them to a renderer as a PDF or
// spreadsheet measurement sheet.
//
// Build:
//   go build -o knitgauge ./cmd/knitgauge
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o knitgauge.exe ./cmd/knitgauge
//   GOOS=darwin  GOARCH=arm64 go build -o knitgauge-darwin ./cmd/knitgauge

package main

import "github.com/piwi3910/knitgauge/internal/cli"

func main() {
	cli.Execute()
}
