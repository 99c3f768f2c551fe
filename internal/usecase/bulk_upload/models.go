package bulk_upload

// Коды ошибок строк в результатах загрузки
const (
	KindValidationError  = "validation_error"
	KindInvalidSlot      = "invalid_slot"
	KindCapacityExceeded = "capacity_exceeded"
	KindInternalError    = "internal_error"
)

// Request модель запроса пакетной загрузки
type Request struct {
	FileData []byte // Содержимое .xlsx файла
}

// RowResult результат обработки одной строки файла
type RowResult struct {
	Row       int // Номер строки в файле (начиная с 2, после заголовка)
	Name      string
	Email     string
	Created   bool
	VisitorID string // UUID созданной записи (если Created)
	QRCode    string // Код пропуска (если Created)
	ErrorKind string // Код ошибки (если !Created)
	Error     string // Текст ошибки (если !Created)
}

// Response результаты пакетной загрузки
// Обработка не атомарна: успешные строки остаются созданными
// независимо от ошибок в соседних
type Response struct {
	Total   int // Всего строк с данными в файле
	Created int
	Failed  int
	Results []RowResult
}
