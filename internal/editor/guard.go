package editor

// Verdict is the outcome of the unsaved-changes guard.
type Verdict int

const (
	Continue Verdict = iota
	Abort
)

func (v Verdict) String() string {
	if v == Continue {
		return "continue"
	}
	return "abort"
}

// Choice is the user's answer to the save-before-continuing question.
type Choice int

const (
	ChoiceSave Choice = iota
	ChoiceDiscard
	ChoiceCancel
)

// CheckUnsaved decides whether a destructive operation may proceed. An empty
// buffer or one matching the snapshot continues at once; otherwise the user
// picks save, discard or cancel. A save that fails or is cancelled aborts.
func (c *Controller) CheckUnsaved(respond func(Verdict)) {
	c.Refresh()

	text := c.surface.Text()
	if text == "" || c.state.Matches(text) {
		respond(Continue)
		return
	}

	c.prompt.ConfirmUnsaved(c.state.DisplayName(), func(choice Choice) {
		switch choice {
		case ChoiceSave:
			c.Save(func(ok bool) {
				if !ok {
					c.logger.Info("Editor", "save failed, pending operation aborted", nil)
					respond(Abort)
					return
				}
				respond(Continue)
			})
		case ChoiceDiscard:
			respond(Continue)
		default:
			respond(Abort)
		}
	})
}

// Guard runs next only when CheckUnsaved allows it.
func (c *Controller) Guard(next func()) {
	c.CheckUnsaved(func(v Verdict) {
		if v == Continue {
			next()
		}
	})
}
