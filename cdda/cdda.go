// Package cdda holds the Redbook (CD-DA) constants that the core's
// validators and readers are built against.
package cdda

// SamplesPerSecond is the CD-DA sample rate in Hz.
const SamplesPerSecond = 44100

// BitsPerSample is the CD-DA bit depth.
const BitsPerSample = 16

// NumberOfChannels is the CD-DA channel count (stereo).
const NumberOfChannels = 2

// BytesPerSample is the size in bytes of one stereo sample pair as the
// core represents it: two 16-bit channels packed into one 32-bit value.
const BytesPerSample = 4

// FramesPerSecond is the number of CD sectors ("frames") per second (75).
const FramesPerSecond = 75

// SamplesPerFrame is the number of stereo samples contained in one CD
// sector: SamplesPerSecond / FramesPerSecond.
const SamplesPerFrame = SamplesPerSecond / FramesPerSecond

// MaxSamplesRedbook is the maximum number of samples a Redbook-conformant
// disc can contain. Discs exceeding this are known to exist in the wild;
// callers that want to warn about such discs can compare against this
// constant. The core itself does not reject or clip streams based on it.
const MaxSamplesRedbook = 264599412
