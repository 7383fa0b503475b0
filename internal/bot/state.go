package bot

// State хранит последние отправленные тексты между циклами.
// Живёт только в памяти процесса.
type State struct {
	LastMessage string
	LastError   string
}
