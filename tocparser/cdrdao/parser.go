// Package cdrdao parses CDRDAO/TOC disc description files into a
// format.ToC. It recognizes the same statement vocabulary cdrdao
// itself emits: a CD_DA header, TRACK AUDIO markers, and per-track
// FILE "name" START mm:ss:ff LENGTH mm:ss:ff statements.
//
// Unlike a Cuesheet, a TOC file states each track's length explicitly
// rather than leaving it to be derived from the next track's start, so
// this parser accumulates offsets and lengths directly instead of
// going through tocparser.Handler's INDEX-diffing logic; it shares
// tocparser.MsfToFrames and produces the same format.ToC shape.
package cdrdao

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-accuraterip/arcsdec/arcserr"
	"github.com/go-accuraterip/arcsdec/format"
	"github.com/go-accuraterip/arcsdec/tocparser"
)

// ID is the descriptor identifier this package registers under.
const ID = "cdrdao"

// Reader is the CDRDAO/TOC ToCParser backend.
type Reader struct{}

// New constructs a Reader, for use as a format.FileReaderDescriptor
// factory.
func New() format.FileReader { return &Reader{} }

// Close is a no-op: Parse does not hold state between calls.
func (r *Reader) Close() error { return nil }

// Parse reads and interprets path as a CDRDAO/TOC file.
func (r *Reader) Parse(path string) (format.ToC, error) {
	f, err := os.Open(path)
	if err != nil {
		return format.ToC{}, arcserr.NewFileReadErrorUnknownPos(err.Error())
	}
	defer f.Close()

	var offsets, lengths []int32
	var filenames []string
	trackOpen := false

	scanner := bufio.NewScanner(f)
	lineNo := 0
	var bytePos int64
	for scanner.Scan() {
		lineNo++
		bytePos += int64(len(scanner.Bytes())) + 1
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		tokens := tokenize(line)
		tag := strings.ToUpper(tokens[0])

		switch tag {
		case "CD_DA", "CD_ROM", "CD_ROM_XA":
			continue

		case "TRACK":
			if len(tokens) < 2 {
				return format.ToC{}, arcserr.NewInvalidAudioError("cdrdao line %d: TRACK missing mode", lineNo)
			}
			trackOpen = true

		case "FILE":
			if !trackOpen {
				return format.ToC{}, arcserr.NewInvalidAudioError("cdrdao line %d: FILE outside a TRACK block", lineNo)
			}
			offset, length, name, err := parseFileLine(tokens)
			if err != nil {
				return format.ToC{}, arcserr.NewInvalidAudioError("cdrdao line %d: %v", lineNo, err)
			}
			offsets = append(offsets, offset)
			lengths = append(lengths, length)
			filenames = append(filenames, name)

		default:
			// Silence, catalog, ISRC and CD-TEXT statements carry no
			// information the ToC model tracks; recognized and skipped.
		}
	}
	if err := scanner.Err(); err != nil {
		return format.ToC{}, arcserr.NewFileReadError(err.Error(), bytePos+1)
	}

	return format.ToC{
		TrackCount: len(offsets),
		Offsets:    offsets,
		Lengths:    lengths,
		Filenames:  filenames,
	}, nil
}

// parseFileLine parses FILE "name" START mm:ss:ff LENGTH mm:ss:ff.
// LENGTH is optional; its absence yields the tocparser sentinel length
// for a track that runs to the next track's start or the leadout.
func parseFileLine(tokens []string) (offset, length int32, name string, err error) {
	if len(tokens) < 2 {
		return 0, 0, "", fmt.Errorf("missing filename")
	}
	name = tokens[1]
	length = tocparser.InvalidFrames

	for i := 2; i < len(tokens); i++ {
		switch strings.ToUpper(tokens[i]) {
		case "START":
			if i+1 >= len(tokens) {
				return 0, 0, "", fmt.Errorf("START missing position")
			}
			m, s, fr, perr := parseMsf(tokens[i+1])
			if perr != nil {
				return 0, 0, "", perr
			}
			frames := tocparser.MsfToFrames(m, s, fr)
			if frames == tocparser.InvalidFrames {
				return 0, 0, "", fmt.Errorf("START position %q out of range", tokens[i+1])
			}
			offset = frames
			i++
		case "LENGTH":
			if i+1 >= len(tokens) {
				return 0, 0, "", fmt.Errorf("LENGTH missing position")
			}
			m, s, fr, perr := parseMsf(tokens[i+1])
			if perr != nil {
				return 0, 0, "", perr
			}
			frames := tocparser.MsfToFrames(m, s, fr)
			if frames == tocparser.InvalidFrames {
				return 0, 0, "", fmt.Errorf("LENGTH position %q out of range", tokens[i+1])
			}
			length = frames
			i++
		default:
			return 0, 0, "", fmt.Errorf("unrecognized FILE argument %q", tokens[i])
		}
	}
	return offset, length, name, nil
}

// parseMsf parses an "mm:ss:ff" token into its three integer fields.
func parseMsf(s string) (m, sec, f int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("malformed MSF position %q", s)
	}
	vals := make([]int, 3)
	for i, p := range parts {
		v, convErr := strconv.Atoi(p)
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("malformed MSF position %q", s)
		}
		vals[i] = v
	}
	return vals[0], vals[1], vals[2], nil
}
