package ittech

// Pattern is one pattern of the module. Only the structure the sequencing
// queries need lives here: the row count, the packed note data in the form
// the codec produced it, and which channels that data touches.
type Pattern struct {
	Rows           int
	Data           []byte `yaml:",omitempty"`
	ActiveChannels ActiveChannels
}

// Copy makes a deep copy of a Pattern.
func (p *Pattern) Copy() Pattern {
	data := make([]byte, len(p.Data))
	copy(data, p.Data)
	return Pattern{Rows: p.Rows, Data: data, ActiveChannels: p.ActiveChannels}
}
