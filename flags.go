package ittech

import (
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
)

// ModuleFlags is the capability set of a module, merging the header Flags
// word (lower 16 bits) and the Special word (upper 16 bits) into a single
// set. Only the documented bits below can ever be set; construction drops
// everything else.
type ModuleFlags uint32

const (
	// On = Stereo, Off = Mono
	Stereo ModuleFlags = 1 << 0

	// If on, no mixing occurs if the volume at mixing time is 0 (redundant v1.04+)
	Vol0MixOptimizations ModuleFlags = 1 << 1

	// On = Use instruments, Off = Use samples
	UseInstruments ModuleFlags = 1 << 2

	// On = Linear slides, Off = Amiga slides
	LinearSlides ModuleFlags = 1 << 3

	// On = Old Effects, Off = IT Effects. Old mode updates vibrato on every
	// frame and twice as deep, and command Oxx past the end of a sample sets
	// the offset to the end instead of ignoring the command.
	OldEffects ModuleFlags = 1 << 4

	// On = Link Effect G's memory with Effects E/F, and Gxx with an
	// instrument present retriggers the envelopes.
	LinkGEEffects ModuleFlags = 1 << 5

	// Use MIDI pitch controller, pitch depth given by PitchWheelDepth
	UseMIDIPitch ModuleFlags = 1 << 6

	// Request embedded MIDI configuration
	RequestMIDIConfigEmbedded ModuleFlags = 1 << 7

	// The Special word occupies the upper half.

	// Song message attached. The message is stored at MessageOffset, is
	// MessageLength bytes, uses 0Dh for line breaks and ends at a 0 byte.
	MessageAttached ModuleFlags = 1 << (0 + 16)

	// MIDI configuration embedded
	MIDIConfigEmbedded ModuleFlags = 1 << (3 + 16)
)

const knownFlags = Stereo | Vol0MixOptimizations | UseInstruments | LinearSlides |
	OldEffects | LinkGEEffects | UseMIDIPitch | RequestMIDIConfigEmbedded |
	MessageAttached | MIDIConfigEmbedded

// ModuleFlagsFromParts builds the capability set from the two raw 16-bit
// header words, placing the special word at bit 16. Undocumented and reserved
// bits are silently dropped so that files written by future format revisions
// still load. This is the only construction path for flags coming from a
// file.
func ModuleFlagsFromParts(flags, special uint16) ModuleFlags {
	return ModuleFlags(uint32(flags)|uint32(special)<<16) & knownFlags
}

// Parts splits the set back into the Flags and Special header words.
func (f ModuleFlags) Parts() (flags, special uint16) {
	return uint16(f), uint16(f >> 16)
}

// Has reports whether every bit of flag is set in f.
func (f ModuleFlags) Has(flag ModuleFlags) bool { return f&flag == flag }

func (f ModuleFlags) Union(other ModuleFlags) ModuleFlags { return f | other }

func (f ModuleFlags) Intersect(other ModuleFlags) ModuleFlags { return f & other }

func (f ModuleFlags) MarshalYAML() (interface{}, error) { return uint32(f & knownFlags), nil }

// UnmarshalYAML masks to the documented bits, like ModuleFlagsFromParts, so
// reserved bits cannot enter a Module through its serialized form either.
func (f *ModuleFlags) UnmarshalYAML(value *yaml.Node) error {
	var raw uint32
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*f = ModuleFlags(raw) & knownFlags
	return nil
}

func (f ModuleFlags) MarshalJSON() ([]byte, error) { return json.Marshal(uint32(f & knownFlags)) }

func (f *ModuleFlags) UnmarshalJSON(data []byte) error {
	var raw uint32
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*f = ModuleFlags(raw) & knownFlags
	return nil
}

var flagNames = []struct {
	flag ModuleFlags
	name string
}{
	{Stereo, "stereo"},
	{Vol0MixOptimizations, "vol0-mix-optimizations"},
	{UseInstruments, "use-instruments"},
	{LinearSlides, "linear-slides"},
	{OldEffects, "old-effects"},
	{LinkGEEffects, "link-g-e-effects"},
	{UseMIDIPitch, "use-midi-pitch"},
	{RequestMIDIConfigEmbedded, "request-midi-config"},
	{MessageAttached, "message"},
	{MIDIConfigEmbedded, "midi-config"},
}

func (f ModuleFlags) String() string {
	var names []string
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			names = append(names, fn.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}
