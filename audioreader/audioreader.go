// Package audioreader provides the shared base every concrete audio
// backend embeds: samples-per-read clamping and the SampleProvider
// signal plumbing. Concrete backends (wavpcm, flacreader, alacreader,
// extreader) embed Base and implement the decode loop themselves.
package audioreader

import "github.com/go-accuraterip/arcsdec/sampleproc"

// MinSamplesPerRead is the smallest permitted block size: large enough
// that at least one FLAC frame fits in a block.
const MinSamplesPerRead = 65536

// MaxSamplesPerRead is the largest permitted block size: 256 MiB of
// 32-bit samples.
const MaxSamplesPerRead = 67108864

// DefaultSamplesPerRead is the block size new readers start with.
const DefaultSamplesPerRead = 16777216

// Base is embedded by every concrete AudioReader backend. It owns the
// attached SampleProvider and the configured block size.
type Base struct {
	sampleproc.SampleProvider
	samplesPerRead int
}

// NewBase returns a Base configured with the default block size.
func NewBase() Base {
	return Base{samplesPerRead: DefaultSamplesPerRead}
}

// SetSamplesPerRead sets the preferred block size, clipping it into
// [MinSamplesPerRead, MaxSamplesPerRead].
func (b *Base) SetSamplesPerRead(n int) {
	switch {
	case n < MinSamplesPerRead:
		n = MinSamplesPerRead
	case n > MaxSamplesPerRead:
		n = MaxSamplesPerRead
	}
	b.samplesPerRead = n
}

// SamplesPerRead returns the current block size.
func (b *Base) SamplesPerRead() int {
	if b.samplesPerRead == 0 {
		return DefaultSamplesPerRead
	}
	return b.samplesPerRead
}

// AttachProcessor stores processor for the duration of the next
// ProcessFile call.
func (b *Base) AttachProcessor(p sampleproc.SampleProcessor) {
	b.Attach(p)
}

// Close is the default no-op Close for readers that hold no
// between-call resources. Backends that open a file ahead of
// ProcessFile override it.
func (b *Base) Close() error { return nil }
