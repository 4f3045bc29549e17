// Command qrdecode locates QR codes in a PNG image and prints an html
// page to stdout showing each match as a red rectangle overlaid on the
// image. Hovering a rectangle shows the decoded message in a tooltip.
package main

import (
	"errors"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/pkg/browser"
	"github.com/rs/zerolog"

	"github.com/jalphad/qrcode/qrcode"
	"github.com/jalphad/qrcode/qrcode/binarize"
	"github.com/jalphad/qrcode/qrcode/finder"
	"github.com/jalphad/qrcode/qrcode/rgbimage"
)

const usage = `Usage: qrdecode [-open] [-candidates] PNG

Given a png image, tries to locate QR codes in it. On success,
prints on the standard output an html page that shows the matches
in the image as red rectangles. Hovering a rectangle with the mouse
will show the decoded message associated with the QR code.

  -open         after writing the html page, open it in a browser;
                only takes effect when stdout is redirected to a file
  -candidates   also mark every finder pattern candidate with a blue
                circle, including the ones that never formed a match
`

// imageError wraps a failure to open or decode the input PNG. It is the
// one error type this command originates itself, rather than one of
// qrcode's DecodeError/MemoryError, and always ends the process with
// exit code 1.
type imageError struct {
	path string
	err  error
}

func (e *imageError) Error() string { return fmt.Sprintf("cannot load %s: %v", e.path, e.err) }
func (e *imageError) Unwrap() error { return e.err }

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	openInBrowser, markCandidates, path := parseArgs(os.Args[1:])
	if path == "" {
		fmt.Print(usage)
		os.Exit(1)
	}

	f, err := os.Open(path)
	if err != nil {
		fail(logger, &imageError{path: path, err: err})
	}
	defer f.Close()

	img, err := rgbimage.Load(f)
	if err != nil {
		fail(logger, &imageError{path: path, err: err})
	}

	matches, err := qrcode.FindQRCodes(img)
	if err != nil {
		fail(logger, err)
	}

	data := pageData{ImagePath: path}
	for _, m := range matches {
		data.Matches = append(data.Matches, toPageMatch(m))
	}
	if markCandidates {
		bm := binarize.Binarize(img)
		for _, c := range finder.Find(bm, finder.Finder) {
			data.Candidates = append(data.Candidates, pageCandidate{X: int(c.X), Y: int(c.Y)})
		}
	}

	if err := pageTemplate.Execute(os.Stdout, data); err != nil {
		logger.Fatal().Err(err).Msg("failed to render output page")
	}

	if openInBrowser {
		if stdoutPath, ok := resolveStdoutPath(); ok {
			if err := browser.OpenFile(stdoutPath); err != nil {
				logger.Warn().Err(err).Msg("failed to open browser")
			}
		} else {
			logger.Warn().Msg("-open has no effect unless stdout is redirected to a file")
		}
	}
}

func fail(logger zerolog.Logger, err error) {
	var imgErr *imageError
	var decodeErr *qrcode.DecodeError
	var memErr *qrcode.MemoryError
	switch {
	case errors.As(err, &imgErr):
		logger.Error().Err(err).Msg("could not load image")
	case errors.As(err, &decodeErr):
		logger.Error().Err(err).Msg("no QR code decoded")
	case errors.As(err, &memErr):
		logger.Error().Err(err).Msg("out of memory")
	default:
		logger.Error().Err(err).Msg("qrdecode failed")
	}
	fmt.Fprintf(os.Stderr, "qrdecode: %v\n", err)
	os.Exit(1)
}

func parseArgs(args []string) (openInBrowser, markCandidates bool, path string) {
	for _, a := range args {
		switch a {
		case "-open":
			openInBrowser = true
		case "-candidates":
			markCandidates = true
		default:
			path = a
		}
	}
	return
}

// resolveStdoutPath reports the path stdout is redirected to, if any.
// It is not redirected when it is still attached to a terminal, or
// when it is a pipe rather than a regular file.
func resolveStdoutPath() (string, bool) {
	info, err := os.Stdout.Stat()
	if err != nil || info.Mode()&os.ModeCharDevice != 0 || !info.Mode().IsRegular() {
		return "", false
	}
	path, err := os.Readlink("/proc/self/fd/1")
	if err != nil {
		return "", false
	}
	return path, true
}

type pageMatch struct {
	MinX, MinY, Width, Height int
	Tooltip                   string
}

type pageCandidate struct {
	X, Y int
}

type pageData struct {
	ImagePath  string
	Matches    []pageMatch
	Candidates []pageCandidate
}

func toPageMatch(m qrcode.Match) pageMatch {
	minX := min4(m.TopLeftX, m.TopRightX, m.BottomLeftX, m.BottomRightX)
	maxX := max4(m.TopLeftX, m.TopRightX, m.BottomLeftX, m.BottomRightX)
	minY := min4(m.TopLeftY, m.TopRightY, m.BottomLeftY, m.BottomRightY)
	maxY := max4(m.TopLeftY, m.TopRightY, m.BottomLeftY, m.BottomRightY)

	var tooltip strings.Builder
	if m.ContainsOnlyText() {
		tooltip.WriteString("Text message: ")
		_, _ = tooltip.Write(m.Message)
	} else {
		tooltip.WriteString("Binary message:")
		for _, b := range m.Message {
			fmt.Fprintf(&tooltip, " %02x", b)
		}
	}

	return pageMatch{
		MinX:    minX,
		MinY:    minY,
		Width:   maxX - minX,
		Height:  maxY - minY,
		Tooltip: tooltip.String(),
	}
}

func min4(a, b, c, d int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	if d < m {
		m = d
	}
	return m
}

func max4(a, b, c, d int) int {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	if d > m {
		m = d
	}
	return m
}

var pageTemplate = template.Must(template.New("page").Parse(`<html>
<head></head>
<body>
<div style='position:absolute; top:0px; left:0px'>
<img src='{{.ImagePath}}'>
<div>
{{range .Matches}}<div style='position:absolute; top:{{.MinY}}px; left:{{.MinX}}px'>
  <svg xmlns='http://www.w3.org/2000/svg' version='1.1' width='{{.Width}}px' height='{{.Height}}px'>
    <rect width='{{.Width}}' height='{{.Height}}' style='stroke: red; stroke-width: 4; fill: none'/>
    <title>{{.Tooltip}}</title>
  </svg>
</div>
{{end}}{{range .Candidates}}<div style='position:absolute; top:{{.Y}}px; left:{{.X}}px'>
  <svg xmlns='http://www.w3.org/2000/svg' version='1.1' width='10px' height='10px'>
    <circle cx='5' cy='5' r='5' style='stroke: blue; stroke-width: 2; fill: none'/>
  </svg>
</div>
{{end}}</div>
</body>
</html>
`))
