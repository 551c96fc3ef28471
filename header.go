package ittech

import "bytes"

// ModuleHeader mirrors the on-disk header layout: the same scalars as Module,
// but with the child collections still in the form of byte offsets into the
// source stream. A codec fills it while reading the header block, decodes the
// payloads the offsets point at, assembles the Module and drops the header;
// it is never kept around next to a Module.
type ModuleHeader struct {
	Name                  Name
	Highlight             Highlight
	MadeWithVersion       uint16
	CompatibleWithVersion uint16
	Flags                 ModuleFlags
	GlobalVolume          Volume
	SampleVolume          Volume
	Speed                 Speed
	Tempo                 Tempo
	PanSeparation         Volume
	PitchWheelDepth       byte
	MessageLength         uint16
	MessageOffset         uint32
	InitChannelPanning    [MaxChannels]byte
	InitChannelVolume     [MaxChannels]byte
	Orders                []Order
	InstrumentOffsets     []uint32
	SampleOffsets         []uint32
	PatternOffsets        []uint32
}

// Module assembles the aggregate from the header scalars and the collections
// the codec decoded from the header's offset tables. message is the raw
// message block read at MessageOffset, still in its stored form; it is
// ignored unless the MessageAttached flag is set. The collections are handed
// over to the Module as is.
func (h *ModuleHeader) Module(message []byte, instruments []Instrument, samples []Sample, patterns []Pattern) Module {
	var text string
	if h.Flags.Has(MessageAttached) {
		if len(message) > int(h.MessageLength) {
			message = message[:h.MessageLength]
		}
		text = DecodeMessage(message)
	}
	orders := make([]Order, len(h.Orders))
	copy(orders, h.Orders)
	return Module{
		Name:                  h.Name,
		Message:               text,
		Highlight:             h.Highlight,
		MadeWithVersion:       h.MadeWithVersion,
		CompatibleWithVersion: h.CompatibleWithVersion,
		Flags:                 h.Flags,
		GlobalVolume:          h.GlobalVolume,
		SampleVolume:          h.SampleVolume,
		Speed:                 h.Speed,
		Tempo:                 h.Tempo,
		PanSeparation:         h.PanSeparation,
		PitchWheelDepth:       h.PitchWheelDepth,
		InitChannelPanning:    h.InitChannelPanning,
		InitChannelVolume:     h.InitChannelVolume,
		Orders:                orders,
		Instruments:           instruments,
		Samples:               samples,
		Patterns:              patterns,
	}
}

// Header is the encode-side inverse of ModuleHeader.Module: the scalars are
// copied back and the offset tables come out zeroed at the right lengths, for
// the codec to fill in as it serializes each collection.
func (m *Module) Header() ModuleHeader {
	orders := make([]Order, len(m.Orders))
	copy(orders, m.Orders)
	return ModuleHeader{
		Name:                  m.Name,
		Highlight:             m.Highlight,
		MadeWithVersion:       m.MadeWithVersion,
		CompatibleWithVersion: m.CompatibleWithVersion,
		Flags:                 m.Flags,
		GlobalVolume:          m.GlobalVolume,
		SampleVolume:          m.SampleVolume,
		Speed:                 m.Speed,
		Tempo:                 m.Tempo,
		PanSeparation:         m.PanSeparation,
		PitchWheelDepth:       m.PitchWheelDepth,
		MessageLength:         uint16(len(m.Message)),
		InitChannelPanning:    m.InitChannelPanning,
		InitChannelVolume:     m.InitChannelVolume,
		Orders:                orders,
		InstrumentOffsets:     make([]uint32, len(m.Instruments)),
		SampleOffsets:         make([]uint32, len(m.Samples)),
		PatternOffsets:        make([]uint32, len(m.Patterns)),
	}
}

// DecodeMessage applies the song message convention to a raw message block:
// the text ends at the first 0 byte. Line breaks stay as the CR bytes they
// are stored as; MessageLines splits on them.
func DecodeMessage(raw []byte) string {
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	return string(raw)
}
