// Package sound plays the short click cues (sonar, click, coin, laser,
// blip) from pre-rendered WAV files in a cue directory. Playback is
// asynchronous and best-effort: a missing or broken cue is reported once
// and otherwise silent.
package sound

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

const speakerBuffer = time.Second / 20

// Player caches decoded click cues and plays them through the speaker.
// Not safe for concurrent use; drive it from the UI thread like the rest
// of the effects.
type Player struct {
	dir      string
	cache    map[string]*beep.Buffer
	rate     beep.SampleRate
	initDone bool
}

// NewPlayer returns a player that looks up cues as <dir>/<kind>.wav.
func NewPlayer(dir string) *Player {
	return &Player{
		dir:   dir,
		cache: make(map[string]*beep.Buffer),
	}
}

// Play starts the cue for the given kind. "off" and unknown kinds are
// no-ops; decode and speaker failures are returned but leave the player
// usable.
func (p *Player) Play(kind string) error {
	if kind == "" || kind == "off" {
		return nil
	}
	buf, err := p.load(kind)
	if err != nil {
		return err
	}
	if buf == nil {
		return nil
	}

	streamer := beep.Streamer(buf.Streamer(0, buf.Len()))
	if buf.Format().SampleRate != p.rate {
		streamer = beep.Resample(4, buf.Format().SampleRate, p.rate, streamer)
	}
	speaker.Play(streamer)
	return nil
}

func (p *Player) load(kind string) (*beep.Buffer, error) {
	if buf, ok := p.cache[kind]; ok {
		return buf, nil
	}

	path := filepath.Join(p.dir, kind+".wav")
	f, err := os.Open(path)
	if err != nil {
		// No cue file for this kind; remember that and stay quiet.
		p.cache[kind] = nil
		return nil, nil
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		p.cache[kind] = nil
		return nil, fmt.Errorf("sound: decode %s: %w", path, err)
	}
	defer streamer.Close()

	if !p.initDone {
		if err := speaker.Init(format.SampleRate, format.SampleRate.N(speakerBuffer)); err != nil {
			return nil, fmt.Errorf("sound: speaker init: %w", err)
		}
		p.rate = format.SampleRate
		p.initDone = true
	}

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	p.cache[kind] = buf
	return buf, nil
}
