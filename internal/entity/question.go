package entity

// Question is a flashcard: English is the prompt, German the expected translation.
type Question struct {
	ID       string `json:"id" yaml:"id"`
	Category string `json:"category" yaml:"category"`
	German   string `json:"german" yaml:"german"`
	English  string `json:"english" yaml:"english"`
}
