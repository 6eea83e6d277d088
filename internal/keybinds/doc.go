/*
Package keybinds provides customizable keyboard binding management.

# Overview

Keys map to actions within a context. The application looks up the
context of the current mode first and falls back to the global context.

Contexts:
  - Global: bindings available in every mode (ctrl+c)
  - Normal: navigation and commands (e, q, up/down, pgup/pgdown, y)
  - Editing: non-printable keys of URL editing (enter, esc, arrows, ctrl+v)

Printable keys in Editing are always inserted as text, so binding one there
has no effect; the validator warns about it.

# Configuration File Format

Keybindings are read from keybinds.json. Comments and trailing commas are
accepted. Each section maps an action to a comma separated key list; a
listed action loses its default keys:

	{
	  "version": "1",
	  // vim users
	  "normal": {
	    "edit": "i,e",
	    "quit": "q,ZZ",
	  },
	  "editing": {
	    "text_cancel": "esc,ctrl+[",
	  }
	}

# Reserved Keys

ctrl+c always maps to quit_force. Rebinding it is a validation error.

# Example Usage

	registry, result, err := keybinds.Load(config.KeybindsFile)
	if err != nil {
		return err
	}
	for _, w := range result.Warnings {
		logger.Warn("keybinding", "issue", w.Error())
	}

	if action, ok := registry.Match(keybinds.ContextNormal, "e"); ok {
		// Handle action
	}
*/
package keybinds
