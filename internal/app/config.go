package app

// Config описывает минимальные настройки запуска приложения.
type Config struct {
	// HTTPAddr — адрес основного API.
	HTTPAddr string
	// MetricsAddr — адрес служебного HTTP (метрики и health checks).
	MetricsAddr string
	// PostgresDSN — строка подключения к PostgreSQL; пустое значение
	// переводит сервис на in-memory хранилище (режим разработки).
	PostgresDSN string
}

// DefaultConfig возвращает базовые адреса API и служебного HTTP.
func DefaultConfig() Config {
	return Config{
		HTTPAddr:    ":8080",
		MetricsAddr: ":9090",
	}
}
