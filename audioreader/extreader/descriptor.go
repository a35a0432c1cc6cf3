package extreader

import "github.com/go-accuraterip/arcsdec/format"

// WavpackMatcher recognizes a WavPack stream by its "wvpk" signature
// at offset 0.
func WavpackMatcher() format.Matcher {
	pattern := format.NewBytes(0, format.NewByteSeq([]byte("wvpk")))
	return format.NewMatcher(
		format.WV,
		[]format.Codec{format.CodecWavpack},
		format.NewSuffixSet("wv"),
		&pattern,
	)
}

// MonkeyMatcher recognizes a Monkey's Audio stream by its "MAC "
// signature at offset 0. The fifth byte, which starts the
// version-dependent header field, is wildcarded.
func MonkeyMatcher() format.Matcher {
	pattern := format.NewBytes(0, format.NewByteSeqWithWildcards([]byte("MAC \x00"), 4))
	return format.NewMatcher(
		format.APE,
		[]format.Codec{format.CodecMonkey},
		format.NewSuffixSet("ape"),
		&pattern,
	)
}

// WavpackDescriptor returns the FileReaderDescriptor registry.Bootstrap
// wires in for WavPack input.
func WavpackDescriptor() format.FileReaderDescriptor {
	return format.NewFileReaderDescriptor(
		WavpackID, "WavPack (ffmpeg)",
		[]format.Format{format.WV},
		[]format.Codec{format.CodecWavpack},
		[]format.LibraryInfo{{Name: "ffmpeg"}},
		format.AudioInput,
		NewWavpack,
	)
}

// MonkeyDescriptor returns the FileReaderDescriptor registry.Bootstrap
// wires in for Monkey's Audio input.
func MonkeyDescriptor() format.FileReaderDescriptor {
	return format.NewFileReaderDescriptor(
		MonkeyID, "Monkey's Audio (ffmpeg)",
		[]format.Format{format.APE},
		[]format.Codec{format.CodecMonkey},
		[]format.LibraryInfo{{Name: "ffmpeg"}},
		format.AudioInput,
		NewMonkey,
	)
}
