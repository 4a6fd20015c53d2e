package core

type Mode string

const (
	EditMode   Mode = "edit"
	PromptMode Mode = "prompt"
)

// EditorMode receives every key while it is the active mode.
type EditorMode interface {
	Name() Mode
	HandleKey(editor *Editor, key KeyEvent) error
	Enter(editor *Editor) // Called when entering the mode
	Exit(editor *Editor)  // Called when exiting the mode
}
