package core

const (
	NoNameLabel          = "[No Name]"
	NoFileTypeLabel      = "no ft"
	ModifiedLabel        = "(modified)"
	SaveAsPrompt         = "Save as: %s (ESC to cancel)"
	SaveAbortedMessage   = "Save aborted"
	BytesWrittenMessage  = "%d bytes written to disk"
	SaveFailedMessage    = "Can't save! I/O error: %v"
	OpenFailedMessage    = "Can't open %s: %v"
	QuitWarningMessage   = "WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit."
	CopiedLineMessage    = "Copied line %d"
	ClipboardFailMessage = "Clipboard error: %v"
)
