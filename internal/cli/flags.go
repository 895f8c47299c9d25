package cli

import "time"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile         string
	InputFile       string
	OutputFile      string
	Language        string
	ResumeFrom      string
	CheckpointEvery int
	CheckpointDir   string
	Pace            time.Duration
	Debug           bool
	ListModels      bool

	// OpenAI flags
	OpenAIModel    string
	RequestTimeout time.Duration

	// Prompt configuration flags
	PromptsDir string
	Preset     string

	// Translation memory flags
	MemoryDB string

	// Logging flags
	LogJSON bool
	LogFile string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		InputFile:       "SheetFlatFiles/directors.csv",
		Language:        "Afrikaans",
		CheckpointEvery: 5,
		CheckpointDir:   "checkpoints",
		Pace:            500 * time.Millisecond,
		OpenAIModel:     "gpt-4o",
		RequestTimeout:  60 * time.Second,
		PromptsDir:      "prompt_configs",
	}
}
