package i

// Logger writes leveled messages for a single component.
type Logger interface {
	Info(string)
	Warning(string)
	Error(string)
}
