package domain

// Product — товар каталога. Цена хранится как float, как и в исходной схеме.
type Product struct {
	ID    int64
	Name  string
	Price float64
}
