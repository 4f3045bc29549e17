// Package qrcode locates and decodes QR codes in a raster image: it
// composes every pipeline stage under qrcode/ into the single
// RGBImage -> []Match entrypoint, FindQRCodes, plus a concurrent helper
// for scanning several images at once.
package qrcode

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/jalphad/qrcode/qrcode/binarize"
	"github.com/jalphad/qrcode/qrcode/blocks"
	"github.com/jalphad/qrcode/qrcode/buffer"
	"github.com/jalphad/qrcode/qrcode/codeword"
	"github.com/jalphad/qrcode/qrcode/finder"
	"github.com/jalphad/qrcode/qrcode/format"
	"github.com/jalphad/qrcode/qrcode/group"
	"github.com/jalphad/qrcode/qrcode/locate"
	"github.com/jalphad/qrcode/qrcode/mask"
	"github.com/jalphad/qrcode/qrcode/reedsolomon"
	"github.com/jalphad/qrcode/qrcode/rgbimage"
	"github.com/jalphad/qrcode/qrcode/segment"
)

// maxPixels bounds the image area this driver will attempt to binarise.
// Nothing past this point is a correctness limit; it exists so a
// pathological input (spec §5's "very large images") fails fast with a
// MemoryError instead of exhausting the host's memory silently.
const maxPixels = 64_000_000

// Match is one decoded QR code: its payload bytes and the pixel
// coordinates, in the source image, of the four corners of its sampled
// module grid.
type Match struct {
	Message []byte

	TopLeftX, TopLeftY         int
	TopRightX, TopRightY       int
	BottomLeftX, BottomLeftY   int
	BottomRightX, BottomRightY int
}

// ContainsOnlyText reports whether Message can be shown as text rather
// than hex-dumped binary: no control byte outside TAB/CR/LF.
func (m Match) ContainsOnlyText() bool {
	for _, c := range m.Message {
		if c <= 0x1F && c != '\t' && c != '\r' && c != '\n' {
			return false
		}
	}
	return true
}

// DecodeError reports that some candidate region of the image did not
// parse as a valid QR code (bad format bits, too many RS errors, a
// malformed segment, no finder candidates, no groups, ...). It is never
// fatal: FindQRCodes continues to the next candidate, and a DecodeError
// only surfaces at the top level when no candidate decoded at all.
type DecodeError struct {
	Reason string
}

func (e *DecodeError) Error() string { return fmt.Sprintf("qrcode: %s", e.Reason) }

// MemoryError reports that the driver refused or failed an allocation.
// Unlike DecodeError, it always propagates: the caller gets no matches.
type MemoryError struct {
	Reason string
}

func (e *MemoryError) Error() string { return fmt.Sprintf("qrcode: %s", e.Reason) }

// FindQRCodes is a pure, synchronous function of img: binarise, find
// finder-pattern candidates, group them into triples, sample a module
// grid per group, and decode each into a Match. It never mutates img.
func FindQRCodes(img *rgbimage.RGBImage) ([]Match, error) {
	if img.Width <= 0 || img.Height <= 0 {
		return nil, &DecodeError{Reason: "image has no pixels"}
	}
	if img.Width*img.Height > maxPixels {
		return nil, &MemoryError{Reason: fmt.Sprintf("image is %dx%d, larger than this driver will binarise", img.Width, img.Height)}
	}

	bm := binarize.Binarize(img)

	centers := finder.Find(bm, finder.Finder)
	if len(centers) == 0 {
		return nil, &DecodeError{Reason: "no finder pattern candidates found"}
	}

	groups := group.Find(centers)
	if len(groups) == 0 {
		return nil, &DecodeError{Reason: "no candidate finder pattern groups found"}
	}

	var matches []Match
	for _, g := range groups {
		qr := locate.Locate(g, bm)
		if qr == nil {
			continue
		}

		match, err := decodeQRCode(qr)
		if err != nil {
			var decodeErr *DecodeError
			if errors.As(err, &decodeErr) {
				continue
			}
			return nil, err
		}
		matches = append(matches, match)
	}

	if len(matches) == 0 {
		return nil, &DecodeError{Reason: "no QR codes found"}
	}
	return matches, nil
}

// decodeQRCode runs one sampled module grid through format/version
// recovery, codeword extraction, de-interleaving, Reed-Solomon
// correction, and segment decoding.
func decodeQRCode(qr *locate.QRCode) (Match, error) {
	info, err := format.DecodeFormat(qr.Modules)
	if err != nil {
		return Match{}, &DecodeError{Reason: err.Error()}
	}

	version, err := format.DecodeVersion(qr.Modules)
	if err != nil {
		return Match{}, &DecodeError{Reason: err.Error()}
	}

	functionModules, err := mask.FunctionModules(qr.Modules.Width())
	if err != nil {
		return Match{}, &DecodeError{Reason: err.Error()}
	}

	rawCodewords, err := codeword.Extract(qr.Modules, functionModules, mask.Pattern(info.MaskPattern))
	if err != nil {
		return Match{}, &DecodeError{Reason: err.Error()}
	}

	blockList, err := blocks.Deinterleave(rawCodewords, version, info.ECLevel)
	if err != nil {
		return Match{}, &DecodeError{Reason: err.Error()}
	}

	var dataCodewords []byte
	for i := range blockList {
		if _, err := reedsolomon.Decode(&blockList[i]); err != nil {
			return Match{}, &DecodeError{Reason: err.Error()}
		}
		dataCodewords = append(dataCodewords, blockList[i].Codewords[:blockList[i].NData]...)
	}

	payload, err := segment.Decode(buffer.NewBitStream(dataCodewords), version)
	if err != nil {
		return Match{}, &DecodeError{Reason: err.Error()}
	}

	return Match{
		Message:      payload.Bytes(),
		TopLeftX:     qr.TopLeftX,
		TopLeftY:     qr.TopLeftY,
		TopRightX:    qr.TopRightX,
		TopRightY:    qr.TopRightY,
		BottomLeftX:  qr.BottomLeftX,
		BottomLeftY:  qr.BottomLeftY,
		BottomRightX: qr.BottomRightX,
		BottomRightY: qr.BottomRightY,
	}, nil
}

// ScanAll runs FindQRCodes over every image concurrently, using a
// worker pool bounded by GOMAXPROCS. A DecodeError from one image (no
// matches there) is swallowed, matching FindQRCodes's own per-candidate
// recovery. Any other error (a MemoryError, or ctx's error for images
// not yet started once ctx is done) is recorded while the remaining
// images are still processed; ScanAll then returns the first such error
// in input order and no matches. Results preserve the input image order.
func ScanAll(ctx context.Context, images []*rgbimage.RGBImage) ([]Match, error) {
	results := make([][]Match, len(images))
	errs := make([]error, len(images))

	workers := runtime.GOMAXPROCS(0)
	if workers > len(images) {
		workers = len(images)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				select {
				case <-ctx.Done():
					errs[i] = ctx.Err()
					continue
				default:
				}
				matches, err := FindQRCodes(images[i])
				if err != nil {
					var decodeErr *DecodeError
					if errors.As(err, &decodeErr) {
						continue
					}
					errs[i] = err
					continue
				}
				results[i] = matches
			}
		}()
	}

	for i := range images {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var all []Match
	for i := range images {
		if errs[i] != nil {
			return nil, errs[i]
		}
		all = append(all, results[i]...)
	}
	return all, nil
}
