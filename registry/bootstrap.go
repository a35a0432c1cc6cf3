package registry

import (
	"github.com/go-accuraterip/arcsdec/audioreader/alacreader"
	"github.com/go-accuraterip/arcsdec/audioreader/cafreader"
	"github.com/go-accuraterip/arcsdec/audioreader/extreader"
	"github.com/go-accuraterip/arcsdec/audioreader/flacreader"
	"github.com/go-accuraterip/arcsdec/audioreader/wavpcm"
	"github.com/go-accuraterip/arcsdec/format"
	"github.com/go-accuraterip/arcsdec/tocparser/cdrdao"
	"github.com/go-accuraterip/arcsdec/tocparser/cuesheet"
)

// Bootstrap builds a fresh Registry with every built-in Matcher and
// FileReaderDescriptor wired in. It replaces the source library's
// static-constructor registration hooks (evaluated before main) with
// an explicit, one-shot initializer any caller can invoke directly;
// Default wraps it behind a sync.Once for process-wide use.
func Bootstrap() *Registry {
	r := New()

	r.RegisterMatcher(cuesheet.Matcher())
	r.RegisterMatcher(cdrdao.Matcher())
	r.RegisterMatcher(wavpcm.Matcher())
	r.RegisterMatcher(flacreader.Matcher())
	r.RegisterMatcher(extreader.MonkeyMatcher())
	r.RegisterMatcher(cafreader.Matcher())
	r.RegisterMatcher(alacreader.Matcher())
	r.RegisterMatcher(format.OggMatcher())
	r.RegisterMatcher(extreader.WavpackMatcher())
	r.RegisterMatcher(format.AiffMatcher())

	r.RegisterDescriptor(cuesheet.Descriptor())
	r.RegisterDescriptor(cdrdao.Descriptor())
	r.RegisterDescriptor(wavpcm.Descriptor())
	r.RegisterDescriptor(flacreader.Descriptor())
	r.RegisterDescriptor(extreader.MonkeyDescriptor())
	r.RegisterDescriptor(cafreader.Descriptor())
	r.RegisterDescriptor(alacreader.Descriptor())
	r.RegisterDescriptor(extreader.WavpackDescriptor())

	return r
}
