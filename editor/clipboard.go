package editor

// Clipboard connects copy, cut and paste to the host.
//
// Errors are ignored; clipboard failures never interrupt editing.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}
