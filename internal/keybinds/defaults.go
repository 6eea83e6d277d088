package keybinds

// NewDefaultRegistry creates a registry with all default keybindings
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	registerGlobalBindings(r)
	registerNormalModeBindings(r)
	registerEditingBindings(r)

	return r
}

// registerGlobalBindings sets up bindings available in all modes
func registerGlobalBindings(r *Registry) {
	r.Register(ContextGlobal, "ctrl+c", ActionQuitForce)
}

// registerNormalModeBindings sets up navigation and command keys
func registerNormalModeBindings(r *Registry) {
	r.Register(ContextNormal, "q", ActionQuit)
	r.Register(ContextNormal, "e", ActionEdit)
	r.Register(ContextNormal, "up", ActionMethodNext)
	r.Register(ContextNormal, "down", ActionMethodPrevious)
	r.Register(ContextNormal, "x", ActionMethodClear)
	r.RegisterMultiple(ContextNormal, []string{"pgup", "k"}, ActionScrollUp)
	r.RegisterMultiple(ContextNormal, []string{"pgdown", "j"}, ActionScrollDown)
	r.Register(ContextNormal, "y", ActionCopyURL)
}

// registerEditingBindings sets up the non-printable keys of URL editing
func registerEditingBindings(r *Registry) {
	r.Register(ContextEditing, "enter", ActionTextSubmit)
	r.Register(ContextEditing, "esc", ActionTextCancel)
	r.Register(ContextEditing, "backspace", ActionTextBackspace)
	r.Register(ContextEditing, "delete", ActionTextDelete)
	r.Register(ContextEditing, "left", ActionTextMoveLeft)
	r.Register(ContextEditing, "right", ActionTextMoveRight)
	r.RegisterMultiple(ContextEditing, []string{"home", "ctrl+a"}, ActionTextMoveHome)
	r.RegisterMultiple(ContextEditing, []string{"end", "ctrl+e"}, ActionTextMoveEnd)
	r.RegisterMultiple(ContextEditing, []string{"ctrl+v", "shift+insert"}, ActionTextPaste)
	r.Register(ContextEditing, "ctrl+u", ActionTextClear)
}
