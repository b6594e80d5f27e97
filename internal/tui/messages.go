package tui

type pageLoadedMsg struct {
	err error
}

type commentsLoadedMsg struct {
	err error
}

type draftSavedMsg struct {
	err error
}

type itemDeletedMsg struct {
	err error
}
