package ittech_test

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/tracedump/ittech"
)

func mustVolume(v byte) ittech.Volume {
	vol, err := ittech.NewVolume(v)
	if err != nil {
		panic(err)
	}
	return vol
}

func mustSpeed(v byte) ittech.Speed {
	spd, err := ittech.NewSpeed(v)
	if err != nil {
		panic(err)
	}
	return spd
}

func mustTempo(v byte) ittech.Tempo {
	tmp, err := ittech.NewTempo(v)
	if err != nil {
		panic(err)
	}
	return tmp
}

func chans(channels ...int) ittech.ActiveChannels {
	var a ittech.ActiveChannels
	for _, ch := range channels {
		a = a.With(ch)
	}
	return a
}

func testModule() ittech.Module {
	return ittech.Module{
		Name:                  ittech.NewName([]byte("fear of heights")),
		Message:               "greetings\rto all trackers",
		Highlight:             ittech.Highlight{RowsPerMeasure: 16, RowsPerBeat: 4},
		MadeWithVersion:       0x0217,
		CompatibleWithVersion: 0x0200,
		Flags:                 ittech.ModuleFlagsFromParts(0b1101, 0b0001),
		GlobalVolume:          mustVolume(128),
		SampleVolume:          mustVolume(48),
		Speed:                 mustSpeed(6),
		Tempo:                 mustTempo(125),
		PanSeparation:         mustVolume(128),
		PitchWheelDepth:       0,
		Orders: []ittech.Order{
			ittech.PatternOrder(0),
			ittech.OrderSeparator,
			ittech.PatternOrder(1),
			ittech.OrderEndOfSong,
		},
		Instruments: []ittech.Instrument{
			{Name: ittech.NewName([]byte("lead")), Filename: "lead.iti", GlobalVolume: mustVolume(128)},
			{Name: ittech.NewName([]byte("bass")), GlobalVolume: mustVolume(96)},
		},
		Samples: []ittech.Sample{
			{Name: ittech.NewName([]byte("saw")), Filename: "saw.its", GlobalVolume: 64, Length: 16384, LoopStart: 0, LoopEnd: 16384},
		},
		Patterns: []ittech.Pattern{
			{Rows: 64, Data: []byte{0x81, 0x3c, 0x01, 0x40}, ActiveChannels: chans(0, 1)},
			{Rows: 64, Data: []byte{0x82, 0x30, 0x02, 0x40}, ActiveChannels: chans(1, 2)},
		},
	}
}

func TestLookup(t *testing.T) {
	mod := testModule()
	for id := 0; id < 8; id++ {
		if _, ok := mod.Pattern(ittech.PatternID(id)); ok != (id < len(mod.Patterns)) {
			t.Errorf("Pattern(%v) ok = %v with %v patterns", id, ok, len(mod.Patterns))
		}
		if _, ok := mod.Instrument(ittech.InstrumentID(id)); ok != (id < len(mod.Instruments)) {
			t.Errorf("Instrument(%v) ok = %v with %v instruments", id, ok, len(mod.Instruments))
		}
		if _, ok := mod.Sample(ittech.SampleID(id)); ok != (id < len(mod.Samples)) {
			t.Errorf("Sample(%v) ok = %v with %v samples", id, ok, len(mod.Samples))
		}
	}
	pat, ok := mod.Pattern(1)
	if !ok || pat != &mod.Patterns[1] {
		t.Fatalf("Pattern(1) should return a pointer into the patterns slice")
	}
}

func TestMustLookupPanics(t *testing.T) {
	mod := testModule()
	if got := mod.MustPattern(0); got != &mod.Patterns[0] {
		t.Fatalf("MustPattern(0) returned a wrong pattern")
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("MustPattern with an invalid id should panic")
		}
	}()
	mod.MustPattern(100)
}

func TestOrderedPatterns(t *testing.T) {
	mod := testModule()
	mod.Orders = []ittech.Order{
		ittech.OrderSeparator,
		ittech.PatternOrder(0),
		ittech.OrderEndOfSong,
		ittech.PatternOrder(0),
	}
	var got []*ittech.Pattern
	for pat := range mod.OrderedPatterns() {
		got = append(got, pat)
	}
	want := []*ittech.Pattern{&mod.Patterns[0], &mod.Patterns[0]}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("traversal yielded %v patterns, want pattern 0 twice", len(got))
	}
}

func TestOrderedPatternsEmpty(t *testing.T) {
	mod := testModule()
	mod.Orders = nil
	for range mod.OrderedPatterns() {
		t.Fatalf("traversal over an empty orders list yielded a pattern")
	}
}

func TestOrderedPatternsDanglingReference(t *testing.T) {
	mod := testModule()
	mod.Orders = []ittech.Order{ittech.PatternOrder(7), ittech.PatternOrder(1)}
	var got []*ittech.Pattern
	for pat := range mod.OrderedPatterns() {
		got = append(got, pat)
	}
	if len(got) != 1 || got[0] != &mod.Patterns[1] {
		t.Fatalf("dangling reference should be skipped, got %v patterns", len(got))
	}
}

func TestOrderedPatternsRestartable(t *testing.T) {
	mod := testModule()
	seq := mod.OrderedPatterns()
	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}
	if first, second := count(), count(); first != second || first != 2 {
		t.Fatalf("re-traversal yielded %v then %v patterns", first, second)
	}
	for range seq {
		break // stopping early must not break later traversals
	}
	if got := count(); got != 2 {
		t.Fatalf("traversal after an early break yielded %v patterns", got)
	}
}

func TestModuleActiveChannels(t *testing.T) {
	mod := testModule()
	if got, want := mod.ActiveChannels(), chans(0, 1, 2); got != want {
		t.Fatalf("ActiveChannels() = %#x, want %#x", uint64(got), uint64(want))
	}
}

func TestModuleActiveChannelsUnreferencedPatterns(t *testing.T) {
	mod := testModule()
	mod.Orders = []ittech.Order{ittech.OrderSeparator}
	if got := mod.ActiveChannels(); got != 0 {
		t.Fatalf("patterns without order entries contributed channels: %#x", uint64(got))
	}
}

func TestModuleActiveChannelsOrderIndependent(t *testing.T) {
	mod := testModule()
	mod.Orders = []ittech.Order{
		ittech.PatternOrder(0), ittech.PatternOrder(1), ittech.PatternOrder(0), ittech.OrderSeparator,
	}
	want := mod.ActiveChannels()
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		rnd.Shuffle(len(mod.Orders), func(i, j int) {
			mod.Orders[i], mod.Orders[j] = mod.Orders[j], mod.Orders[i]
		})
		if got := mod.ActiveChannels(); got != want {
			t.Fatalf("permuted orders %v gave %#x, want %#x", mod.Orders, uint64(got), uint64(want))
		}
	}
}

func TestModuleValidate(t *testing.T) {
	mod := testModule()
	if err := mod.Validate(); err != nil {
		t.Fatalf("valid module failed validation: %v", err)
	}
	mod.Orders = append(mod.Orders, ittech.PatternOrder(9))
	if err := mod.Validate(); err == nil {
		t.Fatalf("dangling order entry should fail validation")
	}
}

func TestModuleMessageLines(t *testing.T) {
	mod := testModule()
	if got, want := mod.MessageLines(), []string{"greetings", "to all trackers"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("MessageLines() = %q, want %q", got, want)
	}
	mod.Message = ""
	if got := mod.MessageLines(); got != nil {
		t.Fatalf("empty message should have no lines, got %q", got)
	}
}

func TestModuleCopy(t *testing.T) {
	mod := testModule()
	dup := mod.Copy()
	if !reflect.DeepEqual(dup, mod) {
		t.Fatalf("copy differs from the original")
	}
	dup.Orders[0] = ittech.OrderEndOfSong
	dup.Patterns[0].Data[0] = 0xff
	dup.Instruments[0].Filename = "changed"
	if reflect.DeepEqual(dup, mod) {
		t.Fatalf("mutating the copy changed the original")
	}
	if mod.Patterns[0].Data[0] == 0xff {
		t.Fatalf("pattern data is shared between copies")
	}
}
