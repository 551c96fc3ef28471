package ittech

// Instrument is an instrument header. The note map and envelope payloads are
// the codec's business and are not modeled here.
type Instrument struct {
	Name         Name
	Filename     string `yaml:",omitempty"`
	GlobalVolume Volume
}

func (instr *Instrument) Copy() Instrument { return *instr }

// Sample is a sample header, without the audio data itself. The global volume
// here is the raw header byte (0..64 in the format), not one of the ranged
// module scalars.
type Sample struct {
	Name         Name
	Filename     string `yaml:",omitempty"`
	GlobalVolume byte
	Length       int
	LoopStart    int
	LoopEnd      int
}

func (smp *Sample) Copy() Sample { return *smp }
