package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(48000)

// drain reads a finite streamer to exhaustion and returns sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("Streamer did not terminate")
	return 0, 0
}

func TestOscillatorDuration(t *testing.T) {
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, testRate)
	n, peak := drain(t, osc)
	if n != testRate.N(100*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", testRate.N(100*time.Millisecond), n)
	}
	if peak > 1.0 || peak < 0.9 {
		t.Errorf("Expected sine peak near 1, got %v", peak)
	}
}

func TestOscillatorWaveRange(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		_, peak := drain(t, NewSweep(1000, 200, 20*time.Millisecond, wave, testRate))
		if peak > 1.0 {
			t.Errorf("Wave %d exceeded unit amplitude: %v", wave, peak)
		}
	}
}

func TestEnvelopeShapesEdges(t *testing.T) {
	dur := 50 * time.Millisecond
	osc := NewOscillator(0, dur, WaveSquare, testRate) // phase stays 0, constant +1
	env := NewEnvelope(osc, dur, 10*time.Millisecond, 10*time.Millisecond, testRate)

	buf := make([][2]float64, testRate.N(dur))
	n, _ := env.Stream(buf)
	if n == 0 {
		t.Fatal("Expected samples from envelope")
	}
	if buf[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %v", buf[0][0])
	}
	mid := n / 2
	if buf[mid][0] != 1 {
		t.Errorf("Expected full sustain mid-way, got %v", buf[mid][0])
	}
	if buf[n-1][0] >= buf[mid][0] {
		t.Errorf("Expected release to fade, got %v at end", buf[n-1][0])
	}
}

func TestSoundEffectsTerminate(t *testing.T) {
	for st := SoundType(0); st < soundTypeCount; st++ {
		s := GetSoundEffect(st, testRate)
		if s == nil {
			t.Fatalf("Expected streamer for %v", st)
		}
		n, _ := drain(t, s)
		if n == 0 {
			t.Errorf("Expected samples for %v", st)
		}
	}
	if GetSoundEffect(soundTypeCount, testRate) != nil {
		t.Error("Expected nil for unknown sound type")
	}
}
