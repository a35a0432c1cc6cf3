// Package sampleproc defines the callback contract audio readers drive
// while streaming decoded samples, and the bookkeeping mixin concrete
// readers embed to implement it correctly.
package sampleproc

import "github.com/go-accuraterip/arcsdec/cdda"

// AudioSize reports the total number of 32-bit interleaved stereo
// samples a stream contains, determined before any sample is streamed.
type AudioSize struct {
	Samples int64
}

// NewAudioSizeFromSamples builds an AudioSize from a sample count.
func NewAudioSizeFromSamples(n int64) AudioSize { return AudioSize{Samples: n} }

// NewAudioSizeFromBytes builds an AudioSize from a PCM byte count, using
// the core's 4-bytes-per-stereo-sample packing.
func NewAudioSizeFromBytes(n int64) AudioSize {
	return AudioSize{Samples: n / cdda.BytesPerSample}
}

// SampleProcessor is driven by an AudioReader during ProcessFile. Calls
// arrive in the exact order: StartInput, UpdateAudioSize, zero or more
// AppendSamples (each a contiguous, file-order, non-overlapping range of
// the stream), then EndInput. Implementations must not retain the slice
// passed to AppendSamples beyond the call; the reader may reuse its
// backing array on the next call.
type SampleProcessor interface {
	StartInput()
	UpdateAudioSize(size AudioSize)
	AppendSamples(samples []int32)
	EndInput()
}

// SampleProvider is the mixin embedded by concrete AudioReader
// implementations. It holds the attached processor and the counters the
// core's invariants are checked against, and exposes SignalX helpers
// that readers call in place of invoking the processor directly, so the
// bookkeeping can never be forgotten.
type SampleProvider struct {
	processor          SampleProcessor
	sequencesProcessed int
	samplesProcessed   int64
}

// Attach stores the processor for the duration of the next ProcessFile
// call. It must be called before ProcessFile.
func (p *SampleProvider) Attach(proc SampleProcessor) {
	p.processor = proc
}

// Processor returns the currently attached processor, or nil.
func (p *SampleProvider) Processor() SampleProcessor {
	return p.processor
}

// SequencesProcessed is the number of AppendSamples calls made during the
// most recent ProcessFile call.
func (p *SampleProvider) SequencesProcessed() int { return p.sequencesProcessed }

// SamplesProcessed is the total number of samples passed to AppendSamples
// during the most recent ProcessFile call.
func (p *SampleProvider) SamplesProcessed() int64 { return p.samplesProcessed }

// SignalStart resets the counters and invokes StartInput. Readers call
// this exactly once, before any other signal, at the start of
// ProcessFile.
func (p *SampleProvider) SignalStart() {
	p.sequencesProcessed = 0
	p.samplesProcessed = 0
	if p.processor != nil {
		p.processor.StartInput()
	}
}

// SignalUpdateSize invokes UpdateAudioSize. Readers call this exactly
// once, after StartInput and before the first SignalAppend.
func (p *SampleProvider) SignalUpdateSize(size AudioSize) {
	if p.processor != nil {
		p.processor.UpdateAudioSize(size)
	}
}

// SignalAppend invokes AppendSamples and updates the counters. Readers
// call this zero or more times, with contiguous, file-order ranges.
func (p *SampleProvider) SignalAppend(samples []int32) {
	if p.processor != nil {
		p.processor.AppendSamples(samples)
	}
	p.sequencesProcessed++
	p.samplesProcessed += int64(len(samples))
}

// SignalEnd invokes EndInput. Readers call this exactly once, on every
// exit path from ProcessFile (success or failure), after StartInput.
func (p *SampleProvider) SignalEnd() {
	if p.processor != nil {
		p.processor.EndInput()
	}
}
