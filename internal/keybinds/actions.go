package keybinds

// Action represents a user action that can be triggered by a keybinding
type Action string

// Context represents the context in which keybindings are active
type Context string

const (
	// Contexts define where keybindings are active
	ContextGlobal  Context = "global"  // Available in every mode
	ContextNormal  Context = "normal"  // Navigation / command mode
	ContextEditing Context = "editing" // URL input mode; printable keys always insert
)

// Contexts lists every context in lookup order
var Contexts = []Context{ContextGlobal, ContextNormal, ContextEditing}

const (
	// Global actions
	ActionQuit      Action = "quit"       // Quit application
	ActionQuitForce Action = "quit_force" // Force quit (ctrl+c)

	// Normal mode actions
	ActionEdit           Action = "edit"            // Start editing the URL
	ActionMethodNext     Action = "method_next"     // Select next method
	ActionMethodPrevious Action = "method_previous" // Select previous method
	ActionMethodClear    Action = "method_clear"    // Clear method selection (send GET)
	ActionScrollUp       Action = "scroll_up"       // Scroll exchange log up
	ActionScrollDown     Action = "scroll_down"     // Scroll exchange log down
	ActionCopyURL        Action = "copy_url"        // Copy URL buffer to clipboard

	// Text input actions
	ActionTextSubmit    Action = "text_submit"     // Send the request
	ActionTextCancel    Action = "text_cancel"     // Back to normal mode
	ActionTextBackspace Action = "text_backspace"  // Delete char before cursor
	ActionTextDelete    Action = "text_delete"     // Delete char at cursor
	ActionTextMoveLeft  Action = "text_move_left"  // Move cursor left
	ActionTextMoveRight Action = "text_move_right" // Move cursor right
	ActionTextMoveHome  Action = "text_move_home"  // Move cursor to start
	ActionTextMoveEnd   Action = "text_move_end"   // Move cursor to end
	ActionTextPaste     Action = "text_paste"      // Paste from clipboard
	ActionTextClear     Action = "text_clear"      // Clear the buffer

	ActionNoOp Action = "noop" // No operation (ignore key)
)

// ActionInfo contains metadata about an action
type ActionInfo struct {
	Action      Action
	Description string
	Category    string
}

var actionInfos = map[Action]ActionInfo{
	ActionQuit:           {ActionQuit, "quit", "Global"},
	ActionQuitForce:      {ActionQuitForce, "force quit", "Global"},
	ActionEdit:           {ActionEdit, "edit url", "Normal"},
	ActionMethodNext:     {ActionMethodNext, "next method", "Normal"},
	ActionMethodPrevious: {ActionMethodPrevious, "prev method", "Normal"},
	ActionMethodClear:    {ActionMethodClear, "clear method", "Normal"},
	ActionScrollUp:       {ActionScrollUp, "scroll up", "Normal"},
	ActionScrollDown:     {ActionScrollDown, "scroll down", "Normal"},
	ActionCopyURL:        {ActionCopyURL, "copy url", "Normal"},
	ActionTextSubmit:     {ActionTextSubmit, "send", "Text Input"},
	ActionTextCancel:     {ActionTextCancel, "stop editing", "Text Input"},
	ActionTextBackspace:  {ActionTextBackspace, "delete back", "Text Input"},
	ActionTextDelete:     {ActionTextDelete, "delete", "Text Input"},
	ActionTextMoveLeft:   {ActionTextMoveLeft, "left", "Text Input"},
	ActionTextMoveRight:  {ActionTextMoveRight, "right", "Text Input"},
	ActionTextMoveHome:   {ActionTextMoveHome, "home", "Text Input"},
	ActionTextMoveEnd:    {ActionTextMoveEnd, "end", "Text Input"},
	ActionTextPaste:      {ActionTextPaste, "paste", "Text Input"},
	ActionTextClear:      {ActionTextClear, "clear", "Text Input"},
	ActionNoOp:           {ActionNoOp, "ignore", "Other"},
}

// GetActionInfo returns human-readable information about an action
func GetActionInfo(action Action) ActionInfo {
	if info, ok := actionInfos[action]; ok {
		return info
	}
	return ActionInfo{action, string(action), "Unknown"}
}

// IsKnownAction reports whether action is one the application handles
func IsKnownAction(action Action) bool {
	_, ok := actionInfos[action]
	return ok
}
