package handler

// StatusError несёт HTTP-статус через error-путь до обёртки роутера
type StatusError struct {
	Code int
	Msg  string
}

func (e *StatusError) Error() string {
	return e.Msg
}
