package sound

// Cue names match the base filenames under assets/sounds, e.g. a
// record.mp3 or record.wav file backs CueRecord.
const (
	CueRecord = "record"
	CueFill   = "fill"
	CueRotate = "rotate"
)
