package engine

// Recorder счётчики исходов операций
type Recorder interface {
	ShiftAdded(result string)
	ReservationCreated()
	ReservationConfirmed(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type nopRecorder struct{}

func (nopRecorder) ShiftAdded(string)           {}
func (nopRecorder) ReservationCreated()         {}
func (nopRecorder) ReservationConfirmed(string) {}
