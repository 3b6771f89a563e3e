package constants

import "os"

const NumStrings = 6

// frets 0..11, 0 being the open string
const NumFrets = 12

// low to high, standard tuning
var OpenPitchClasses = [NumStrings]int{4, 9, 2, 7, 11, 4}
var OpenMidiKeys = [NumStrings]uint8{40, 45, 50, 55, 59, 64}
var StringLabels = [NumStrings]string{"E", "A", "D", "G", "B", "E"}

var NoteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// formula matching
const MaxFormulaMatches = 5
const MinFormulaCoverage = 3

const DefaultPort = "8080"

func getEnvOr(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetLibrarySource returns where the chord library is loaded from. Empty means
// the bundled library.
func GetLibrarySource() string {
	return os.Getenv("FRETDEX_LIBRARY")
}

func GetPort() string {
	return getEnvOr("PORT", DefaultPort)
}

func GetLogLevel() string {
	return getEnvOr("FRETDEX_LOG_LEVEL", "info")
}

func GetDynamoEndpoint() string {
	return os.Getenv("DYNAMODB_ENDPOINT")
}

func GetDynamoRegion() string {
	return getEnvOr("DYNAMODB_REGION", "us-east-1")
}

func GetMidiPort() string {
	return os.Getenv("FRETDEX_MIDI_PORT")
}
