package ittech

import (
	"fmt"
	"iter"
	"strings"
)

type (
	// Module is the in-memory structure of one tracker song: header scalars,
	// the orders list and the instrument, sample and pattern collections, all
	// owned by the Module. It is assembled once by a codec and not mutated by
	// anything in this package afterwards, so any number of readers can share
	// one Module.
	Module struct {
		// Song name; fixed capacity, may contain NUL bytes mid-string.
		Name Name

		// Free-form comment message. Line breaks are CR bytes, as stored on
		// disk.
		Message string `yaml:",omitempty"`

		// Rows per measure / rows per beat row highlight. Display hint only,
		// no playback effect.
		Highlight Highlight

		// "Made with" and "compatible with" tracker version tags; opaque
		// here, used by codecs for compatibility heuristics.
		MadeWithVersion       uint16
		CompatibleWithVersion uint16

		Flags ModuleFlags

		GlobalVolume  Volume
		SampleVolume  Volume
		Speed         Speed
		Tempo         Tempo
		PanSeparation Volume

		// Pitch wheel depth; meaningful only when UseMIDIPitch is set.
		PitchWheelDepth byte

		// Initial panning and volume per channel slot, indexed by channel
		// number. Always all 64 slots, however many channels carry notes.
		InitChannelPanning [MaxChannels]byte `yaml:",flow"`
		InitChannelVolume  [MaxChannels]byte `yaml:",flow"`

		// Orders is the playback order of patterns; the slice order is the
		// playback order.
		Orders []Order `yaml:",flow"`

		Instruments []Instrument
		Samples     []Sample
		Patterns    []Pattern
	}

	// Highlight is the (rows per measure, rows per beat) display hint pair.
	Highlight struct {
		RowsPerMeasure byte
		RowsPerBeat    byte
	}
)

// Instrument returns the instrument for id, or false if the module has no
// such instrument.
func (m *Module) Instrument(id InstrumentID) (*Instrument, bool) {
	return lookup(m.Instruments, uint8(id))
}

// Sample returns the sample for id, or false if the module has no such
// sample.
func (m *Module) Sample(id SampleID) (*Sample, bool) {
	return lookup(m.Samples, uint8(id))
}

// Pattern returns the pattern for id, or false if the module has no such
// pattern.
func (m *Module) Pattern(id PatternID) (*Pattern, bool) {
	return lookup(m.Patterns, uint8(id))
}

// MustInstrument is Instrument for callers that have already validated the
// id; it panics on absence. Ordinary lookups should use Instrument.
func (m *Module) MustInstrument(id InstrumentID) *Instrument {
	instr, ok := m.Instrument(id)
	if !ok {
		panic(fmt.Sprintf("no instrument %d in module", id))
	}
	return instr
}

// MustSample is Sample for callers that have already validated the id; it
// panics on absence.
func (m *Module) MustSample(id SampleID) *Sample {
	smp, ok := m.Sample(id)
	if !ok {
		panic(fmt.Sprintf("no sample %d in module", id))
	}
	return smp
}

// MustPattern is Pattern for callers that have already validated the id; it
// panics on absence.
func (m *Module) MustPattern(id PatternID) *Pattern {
	pat, ok := m.Pattern(id)
	if !ok {
		panic(fmt.Sprintf("no pattern %d in module", id))
	}
	return pat
}

// OrderedPatterns returns an iterator over the patterns as listed in the
// orders list. It can yield the same pattern multiple times or not yield some
// patterns at all. Separator and end-of-song markers yield nothing and do not
// stop the iteration; so does an entry referencing a pattern the module does
// not have, which is common in partially corrupt order lists. The iterator is
// restartable and the yielded pointers alias the module's patterns slice.
func (m *Module) OrderedPatterns() iter.Seq[*Pattern] {
	return func(yield func(*Pattern) bool) {
		for _, o := range m.Orders {
			id, ok := o.Pattern()
			if !ok {
				continue
			}
			pat, ok := m.Pattern(id)
			if !ok {
				continue
			}
			if !yield(pat) {
				return
			}
		}
	}
}

// ActiveChannels returns the channels in use when actually playing the
// module: the union of the activity sets of every pattern reached through the
// orders list. Patterns present in the collection but never referenced by an
// order entry do not contribute.
func (m *Module) ActiveChannels() ActiveChannels {
	var ret ActiveChannels
	for pat := range m.OrderedPatterns() {
		ret = ret.Union(pat.ActiveChannels)
	}
	return ret
}

// MessageLines splits the song message on the CR line breaks it is stored
// with.
func (m *Module) MessageLines() []string {
	if m.Message == "" {
		return nil
	}
	return strings.Split(m.Message, "\r")
}

// Validate checks the cross-references of the module: every order entry that
// names a pattern should name one the module has. Traversal tolerates
// dangling entries, but a codec about to write the module out usually wants
// to know about them.
func (m *Module) Validate() error {
	for i, o := range m.Orders {
		if id, ok := o.Pattern(); ok {
			if int(id) >= len(m.Patterns) {
				return fmt.Errorf("order %d references pattern %d but the module has %d patterns", i, id, len(m.Patterns))
			}
		}
	}
	return nil
}

// Copy makes a deep copy of a Module.
func (m *Module) Copy() Module {
	ret := *m
	ret.Orders = make([]Order, len(m.Orders))
	copy(ret.Orders, m.Orders)
	ret.Instruments = make([]Instrument, len(m.Instruments))
	copy(ret.Instruments, m.Instruments)
	ret.Samples = make([]Sample, len(m.Samples))
	copy(ret.Samples, m.Samples)
	ret.Patterns = make([]Pattern, len(m.Patterns))
	for i, pat := range m.Patterns {
		ret.Patterns[i] = pat.Copy()
	}
	return ret
}
