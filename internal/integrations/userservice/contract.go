package userservice

// Logger logging facade
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
